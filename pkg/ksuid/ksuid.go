package ksuid

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Fixed sizes of the three representations.
const (
	// RawLen is the binary size: 4 timestamp bytes + 16 payload bytes.
	RawLen = 20

	// PayloadLen is the size of the opaque payload field.
	PayloadLen = 16

	// Base62Len is the exact length of the Base62 string form.
	Base62Len = 27

	// HexLen is the exact length of the hex string form.
	HexLen = 40
)

// epochSeconds is the custom epoch: 1.4e9 seconds after the UNIX epoch.
const epochSeconds int64 = 1_400_000_000

// Epoch is the zero point of the 32-bit timestamp field.
var Epoch = time.Unix(epochSeconds, 0).UTC()

// Max is the maximum identifier: all 20 bytes set.
var Max = KSUID{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// maxBase62 is the Base62 encoding of Max. Any 27-character string
// lexicographically greater than this cannot decode to 20 bytes.
const maxBase62 = "aWgEPTl1tmebfsQzFP4bxwgy80V"

// KSUID is a 20-byte, lexicographically sortable identifier encoded big-endian:
// [4 bytes seconds since Epoch][16 bytes payload].
type KSUID [RawLen]byte

// Now returns the current time used when deriving timestamps. Overridable in
// tests to pin the clock.
var Now = func() time.Time { return time.Now() }

// New builds an identifier directly from its two fields. Both are fixed
// width, so no validation is needed.
func New(timestamp uint32, payload [PayloadLen]byte) KSUID {
	var id KSUID
	id.SetTimestamp(timestamp)
	id.SetPayload(payload)
	return id
}

// FromPayload builds an identifier with the current timestamp and the given
// payload. It fails with ErrTimestampRange if the current time falls outside
// the 32-bit range relative to Epoch.
func FromPayload(payload [PayloadLen]byte) (KSUID, error) {
	ts, err := timestampAt(Now())
	if err != nil {
		return KSUID{}, err
	}
	return New(ts, payload), nil
}

// FromBytes parses an identifier from its 20-byte binary form.
func FromBytes(raw []byte) (KSUID, error) {
	if len(raw) != RawLen {
		return KSUID{}, fmt.Errorf("%w: raw form must be %d bytes, got %d", ErrInvalidLength, RawLen, len(raw))
	}
	var id KSUID
	copy(id[:], raw)
	return id, nil
}

// FromBase62 parses an identifier from its 27-character Base62 form.
//
// Length is validated first, then the string is compared byte-wise against
// the maximum valid encoding before any arithmetic runs: the 62^27 string
// space is larger than the 256^20 value space, so syntactically valid strings
// past that bound are rejected with ErrValueTooLarge.
func FromBase62(s string) (KSUID, error) {
	if len(s) != Base62Len {
		return KSUID{}, fmt.Errorf("%w: Base62 form must be %d characters, got %d", ErrInvalidLength, Base62Len, len(s))
	}
	if s > maxBase62 {
		return KSUID{}, fmt.Errorf("%w: %q > %q", ErrValueTooLarge, s, maxBase62)
	}
	return decodeBase62(s)
}

// FromHex parses an identifier from its 40-character hex form. Both character
// cases are accepted.
func FromHex(s string) (KSUID, error) {
	if len(s) != HexLen {
		return KSUID{}, fmt.Errorf("%w: hex form must be %d characters, got %d", ErrInvalidLength, HexLen, len(s))
	}
	return decodeHex(s)
}

// Bytes returns a copy of the raw 20-byte representation.
func (id KSUID) Bytes() []byte {
	b := make([]byte, RawLen)
	copy(b, id[:])
	return b
}

// Base62 returns the canonical 27-character Base62 string.
func (id KSUID) Base62() string {
	return encodeBase62(id)
}

// Hex returns the 40-character uppercase hex string.
func (id KSUID) Hex() string {
	return encodeHex(id)
}

// String returns the Base62 form.
func (id KSUID) String() string {
	return id.Base62()
}

// Timestamp returns the number of seconds after Epoch when this identifier
// was created.
func (id KSUID) Timestamp() uint32 {
	return binary.BigEndian.Uint32(id[:4])
}

// SetTimestamp overwrites the 4-byte timestamp field.
func (id *KSUID) SetTimestamp(timestamp uint32) {
	binary.BigEndian.PutUint32(id[:4], timestamp)
}

// Payload returns the 16-byte payload field.
func (id KSUID) Payload() [PayloadLen]byte {
	var p [PayloadLen]byte
	copy(p[:], id[4:])
	return p
}

// SetPayload overwrites the 16-byte payload field, leaving the timestamp
// untouched.
func (id *KSUID) SetPayload(payload [PayloadLen]byte) {
	copy(id[4:], payload[:])
}

// Time returns the absolute creation time: Epoch plus the timestamp field.
func (id KSUID) Time() time.Time {
	return Epoch.Add(time.Duration(id.Timestamp()) * time.Second)
}

// SetTime stores t in the timestamp field. It fails with ErrTimestampRange if
// t is before Epoch or past the 32-bit horizon.
func (id *KSUID) SetTime(t time.Time) error {
	ts, err := timestampAt(t)
	if err != nil {
		return err
	}
	id.SetTimestamp(ts)
	return nil
}

// Compare returns -1, 0, or 1 from byte-wise lexical comparison. Identifiers
// order chronologically first, then by payload.
func (id KSUID) Compare(other KSUID) int {
	for i := 0; i < RawLen; i++ {
		if id[i] < other[i] {
			return -1
		}
		if id[i] > other[i] {
			return 1
		}
	}
	return 0
}

// timestampAt converts an absolute time to the stored 32-bit offset.
func timestampAt(t time.Time) (uint32, error) {
	secs := t.Unix() - epochSeconds
	if secs < 0 || secs > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %v", ErrTimestampRange, t.UTC())
	}
	return uint32(secs), nil
}
