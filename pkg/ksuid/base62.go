package ksuid

import (
	"github.com/ecstatic-morse/ksuid/internal/baseconv"
)

// base62Alphabet maps digit values 0..61 to their characters. The ordering
// (digits, uppercase, lowercase) makes string comparison of encoded
// identifiers agree with byte comparison of raw identifiers.
const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// base62Value is the inverse table: character to digit value, with -1 for
// every byte outside [0-9A-Za-z], non-ASCII bytes included.
var base62Value = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(base62Alphabet); i++ {
		t[base62Alphabet[i]] = int8(i)
	}
	return t
}()

// encodeBase62 renders the identifier as exactly 27 Base62 characters. The
// conversion runs on a scratch copy; the identifier itself is never clobbered.
func encodeBase62(id KSUID) string {
	scratch := id
	var out [Base62Len]byte
	if err := baseconv.ChangeBase(scratch[:], out[:], 256, 62); err != nil {
		// Unreachable: 20 bytes always fit in 27 Base62 digits. Sizing bugs
		// must fail loudly, not truncate.
		panic("ksuid: " + err.Error())
	}
	for i, d := range out {
		out[i] = base62Alphabet[d]
	}
	return string(out[:])
}

// decodeBase62 parses exactly 27 Base62 characters into an identifier. Every
// byte is mapped through the inverse table before any arithmetic runs.
func decodeBase62(s string) (KSUID, error) {
	var scratch [Base62Len]byte
	for i := 0; i < Base62Len; i++ {
		v := base62Value[s[i]]
		if v < 0 {
			return KSUID{}, invalidCharErr(s[i], i)
		}
		scratch[i] = byte(v)
	}

	var id KSUID
	if err := baseconv.ChangeBase(scratch[:], id[:], 62, 256); err != nil {
		// Unreachable for strings at or below maxBase62; kept as a loud
		// failure in case the bound check ever regresses.
		return KSUID{}, err
	}
	return id, nil
}
