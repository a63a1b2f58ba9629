package der

/*
bool.go contains all types and methods pertaining to the ASN.1 BOOLEAN
type.
*/

import "io"

/*
Boolean implements the ASN.1 BOOLEAN type.
*/
type Boolean bool

/*
NewBoolean returns a Boolean wrapping b.
*/
func NewBoolean(b bool) Boolean { return Boolean(b) }

func (r Boolean) UniversalTag() UniversalTag { return TagBoolean }
func (r Boolean) ContentKind() ContentType   { return Primitive }

/*
Byte returns the receiver expressed as a single byte: 0x00 for false,
0xFF for true (the canonical DER true encoding).
*/
func (r Boolean) Byte() byte {
	var b byte
	if bool(r) {
		b = 0xFF
	}
	return b
}

/*
String returns "true" or "false".
*/
func (r Boolean) String() string { return bool2str(bool(r)) }

/*
Bool returns the receiver cast as a native Go bool.
*/
func (r Boolean) Bool() bool { return bool(r) }

func (r Boolean) EncodeContent(w io.Writer) error {
	_, err := w.Write([]byte{r.Byte()})
	return err
}

/*
DecodeContent rejects any length other than 1, and treats any nonzero
content byte as true: DER's canonical encoder always emits 0xFF for
true, but a lenient decoder accepts any nonzero byte, matching common
consumer behavior.
*/
func (r *Boolean) DecodeContent(rd io.Reader, length int) error {
	if length != 1 {
		return errorBooleanLength
	}
	var b [1]byte
	if _, err := io.ReadFull(rd, b[:]); err != nil {
		return err
	}
	*r = Boolean(b[0] != 0)
	return nil
}
