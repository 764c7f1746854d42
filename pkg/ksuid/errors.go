package ksuid

import (
	"errors"
	"fmt"
)

// Parse and construction failures. All are ordinary returned errors; nothing
// in this package coerces bad input to a zero identifier.
var (
	// ErrInvalidLength reports input of the wrong size for its representation
	// (raw 20 bytes, Base62 27 characters, hex 40 characters).
	ErrInvalidLength = errors.New("ksuid: invalid length")

	// ErrInvalidCharacter reports a parse-time byte outside the expected
	// alphabet. Errors carry the offending byte and its index.
	ErrInvalidCharacter = errors.New("ksuid: invalid character")

	// ErrValueTooLarge reports a syntactically valid Base62 string whose
	// value exceeds the maximum 20-byte identifier.
	ErrValueTooLarge = errors.New("ksuid: value exceeds maximum identifier")

	// ErrTimestampRange reports a time not representable in the 32-bit
	// timestamp field relative to the custom epoch.
	ErrTimestampRange = errors.New("ksuid: time outside representable range")
)

// invalidCharErr builds the one consistent payload shape for bad input bytes,
// whether non-ASCII or ASCII outside the alphabet.
func invalidCharErr(c byte, index int) error {
	return fmt.Errorf("%w 0x%02X at index %d", ErrInvalidCharacter, c, index)
}
