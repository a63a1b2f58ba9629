package der

/*
oct.go contains all types and methods pertaining to the ASN.1 OCTET
STRING type.
*/

import "io"

/*
OctetString implements the ASN.1 OCTET STRING type (tag 4).
*/
type OctetString []byte

/*
NewOctetString returns an OctetString wrapping b's bytes.
*/
func NewOctetString(b []byte) OctetString {
	cp := make([]byte, len(b))
	copy(cp, b)
	return OctetString(cp)
}

func (r OctetString) UniversalTag() UniversalTag { return TagOctetString }
func (r OctetString) ContentKind() ContentType   { return Primitive }

/*
String returns the receiver's bytes reinterpreted as a string.
*/
func (r OctetString) String() string { return string(r) }

/*
Len returns the number of bytes held by the receiver.
*/
func (r OctetString) Len() int { return len(r) }

func (r OctetString) EncodeContent(w io.Writer) error {
	_, err := w.Write(r)
	return err
}

func (r *OctetString) DecodeContent(rd io.Reader, length int) error {
	buf := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(rd, buf); err != nil {
			return err
		}
	}
	*r = OctetString(buf)
	return nil
}
