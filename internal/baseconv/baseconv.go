package baseconv

import (
	"errors"
	"math"
)

// MaxBase is the largest representable base: one digit per byte.
const MaxBase = 256

// ErrBufferTooSmall reports an output buffer with too little room for the
// fully-converted value. Conversion never truncates silently.
var ErrBufferTooSmall = errors.New("baseconv: output buffer too small for converted value")

// LenBound returns an upper bound on the number of base outBase digits needed
// to represent n digits of base inBase.
func LenBound(n, inBase, outBase int) int {
	out := float64(n) * (math.Log(float64(inBase)) / math.Log(float64(outBase)))
	return int(out) + 1
}

// ChangeBase rewrites the big-endian digit string num (one digit per byte,
// base inBase) as base outBase digits, written big-endian into out with the
// least significant digit at out[len(out)-1].
//
// num is consumed as scratch space: each long-division pass stores the
// quotient back into it and shrinks the active window past any leading zero,
// so the buffer holds garbage on return. out must be zeroed by the caller;
// positions left untouched become the leading zero digits of the result.
func ChangeBase(num []byte, out []byte, inBase, outBase int) error {
	if inBase < 2 || inBase > MaxBase || outBase < 2 || outBase > MaxBase {
		return errors.New("baseconv: base must be in [2, 256]")
	}

	k := len(out)

	// Grade-school long division. Each pass divides the remaining numerator
	// by outBase, emitting the remainder as the next least significant output
	// digit and keeping the quotient as the numerator for the following pass.
	for len(num) > 0 {
		rem := 0
		i := 0

		for j := 0; j < len(num); j++ {
			acc := int(num[j]) + inBase*rem
			div := acc / outBase
			rem = acc % outBase

			if i != 0 || div != 0 {
				num[i] = byte(div)
				i++
			}
		}

		if k == 0 {
			return ErrBufferTooSmall
		}
		k--
		out[k] = byte(rem)
		num = num[:i]
	}
	return nil
}
