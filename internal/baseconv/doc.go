// Package baseconv implements change-of-base for big-endian byte strings
// representing arbitrary-precision unsigned integers.
//
// The public interface is unusual in two ways:
//
// The numerator buffer is clobbered during conversion. It doubles as the
// long-division scratch, which saves an allocation on every call; callers
// that need their digits afterwards must pass a copy.
//
// The output buffer is preallocated and pre-zeroed by the caller. Binary and
// string encoded identifiers have statically known lengths, so callers can
// size the buffer at compile time; if the converted value needs more room
// than provided, ChangeBase returns ErrBufferTooSmall rather than truncating.
// General-purpose callers can size the buffer with LenBound.
package baseconv
