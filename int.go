package der

/*
int.go contains all types and methods pertaining to the ASN.1 INTEGER
type, limited to the range of a signed 32-bit word. Content octets are
the minimal two's-complement big-endian encoding; decoding
sign-extends from the first content byte.
*/

import (
	"io"
	"math"

	"golang.org/x/exp/constraints"
)

/*
Integer implements the ASN.1 INTEGER type (tag 2), narrowed to the
range of a signed 32-bit word.
*/
type Integer int32

/*
NewInteger returns an Integer wrapping v, converted from any signed or
unsigned Go integer type. It reports errorIntegerTooWide if v does not
fit in a signed 32-bit word, so callers can build an INTEGER from any
integer width without this package exposing one constructor per width.
*/
func NewInteger[T constraints.Signed | constraints.Unsigned](v T) (Integer, error) {
	// Compare in float64 to sidestep signed/unsigned conversion overflow:
	// int32's range is well within float64's exact-integer precision.
	f := float64(v)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return Integer(0), errorIntegerTooWide
	}
	return Integer(int32(f)), nil
}

func (r Integer) UniversalTag() UniversalTag { return TagInteger }
func (r Integer) ContentKind() ContentType   { return Primitive }

/*
Int32 returns the receiver cast as a native int32.
*/
func (r Integer) Int32() int32 { return int32(r) }

/*
String returns the receiver's base-10 string representation.
*/
func (r Integer) String() string { return itoa(int(r)) }

/*
EncodeContent writes the minimal two's-complement big-endian encoding
of the receiver: leading 0x00 bytes are stripped while the next byte's
top bit is clear, leading 0xFF bytes are stripped while the next byte's
top bit is set, and the last remaining byte is never stripped.
*/
func (r Integer) EncodeContent(w io.Writer) error {
	v := int32(r)

	var raw [4]byte
	raw[0] = byte(v >> 24)
	raw[1] = byte(v >> 16)
	raw[2] = byte(v >> 8)
	raw[3] = byte(v)

	start := 0
	for start < 3 {
		b, next := raw[start], raw[start+1]
		if b == 0x00 && next&0x80 == 0 {
			start++
			continue
		}
		if b == 0xFF && next&0x80 != 0 {
			start++
			continue
		}
		break
	}

	_, err := w.Write(raw[start:])
	return err
}

/*
DecodeContent reads a minimal two's-complement big-endian INTEGER and
sign-extends it into the receiver. It rejects empty content and content
wider than 4 bytes.
*/
func (r *Integer) DecodeContent(rd io.Reader, length int) error {
	if length == 0 {
		return errorIntegerEmpty
	}
	if length > 4 {
		return errorIntegerTooWide
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(rd, buf); err != nil {
		return err
	}

	var acc int32 = 0
	if buf[0]&0x80 != 0 {
		acc = -1
	}
	for _, b := range buf {
		acc = (acc << 8) | int32(b)
	}

	*r = Integer(acc)
	return nil
}
