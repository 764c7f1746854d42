package ksuid

// hexDigits maps nibble values to their uppercase characters.
const hexDigits = "0123456789ABCDEF"

// encodeHex renders the identifier as exactly 40 uppercase hex characters,
// high nibble first. Hex is a power-of-two base, so no big-integer
// arithmetic is involved.
func encodeHex(id KSUID) string {
	var out [HexLen]byte
	for i, b := range id {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0x0F]
	}
	return string(out[:])
}

// decodeHex parses exactly 40 hex characters, either case, into an
// identifier.
func decodeHex(s string) (KSUID, error) {
	var id KSUID
	for i := 0; i < HexLen; i += 2 {
		hi := hexValue(s[i])
		if hi < 0 {
			return KSUID{}, invalidCharErr(s[i], i)
		}
		lo := hexValue(s[i+1])
		if lo < 0 {
			return KSUID{}, invalidCharErr(s[i+1], i+1)
		}
		id[i/2] = byte(hi)<<4 | byte(lo)
	}
	return id, nil
}

// hexValue returns the value of a hex character, or -1 if c is not in
// [0-9A-Fa-f].
func hexValue(c byte) int8 {
	switch {
	case c >= '0' && c <= '9':
		return int8(c - '0')
	case c >= 'A' && c <= 'F':
		return int8(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int8(c-'a') + 10
	default:
		return -1
	}
}
