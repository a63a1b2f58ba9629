package der

/*
codec.go defines the Codec contract every encodable type satisfies, and
the derived operations (Encode, DecodeInto, Bytes, FromBytes,
ToIntermediate, FromIntermediate) built once on top of it.
*/

import (
	"bytes"
	"io"
)

/*
Codec is satisfied by every ASN.1 primitive and structural type this
package implements except CHOICE: BOOLEAN, INTEGER, NULL, OCTET STRING,
UTF8String, the restricted strings, ENUMERATED, SEQUENCE and SEQUENCE
OF. A CHOICE has no identifier of its own and is encoded and decoded
through Choice.Encode and ChoiceDef.Decode (choice.go) instead.

UniversalTag and ContentKind describe the type's natural (untagged)
identifier. EncodeContent writes only the content octets (no identifier,
no length); DecodeContent reads exactly length content octets from r and
populates the receiver.
*/
type Codec interface {
	UniversalTag() UniversalTag
	ContentKind() ContentType
	EncodeContent(w io.Writer) error
	DecodeContent(r io.Reader, length int) error
}

/*
Encode writes c's full natural encoding (identifier, length, content) to
w, using c's universal tag, ClassUniversal and c.ContentKind().
*/
func Encode(c Codec, w io.Writer) error {
	ir, err := ToIntermediate(c)
	if err != nil {
		return err
	}
	return ir.Encode(w)
}

/*
DecodeInto reads one full TLV from r, verifies its identifier matches
c's natural universal tag under ClassUniversal, and dispatches the
content octets to c.DecodeContent.
*/
func DecodeInto(c Codec, r io.Reader) error {
	ir, err := Decode(r)
	if err != nil {
		return err
	}
	if ir.Class != ClassUniversal || UniversalTag(ir.Tag) != c.UniversalTag() || ir.ContentType != c.ContentKind() {
		return errorWrongTag(c.UniversalTag(), UniversalTag(ir.Tag))
	}
	return FromIntermediate(c, ir)
}

/*
Bytes returns c's full natural encoding as a byte slice.
*/
func Bytes(c Codec) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(c, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/*
FromBytes decodes c in place from b, requiring that b is consumed
exactly (no trailing octets).
*/
func FromBytes(c Codec, b []byte) error {
	r := bytes.NewReader(b)
	if err := DecodeInto(c, r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return mkerr("trailing bytes after decode")
	}
	return nil
}

/*
ToIntermediate stages c's natural encoding into an Intermediate without
attaching a class or tag override, suitable for further re-tagging by a
SEQUENCE or CHOICE field.
*/
func ToIntermediate(c Codec) (Intermediate, error) {
	var content bytes.Buffer
	if err := c.EncodeContent(&content); err != nil {
		return Intermediate{}, err
	}
	ir := New(ClassUniversal, c.ContentKind(), uint32(c.UniversalTag()))
	return ir.WithContent(content.Bytes()), nil
}

/*
FromIntermediate populates c from ir's content octets, without
re-validating ir's class or tag (the caller, whether SEQUENCE/CHOICE
decode or a direct untagged decode, is responsible for having matched
those already).
*/
func FromIntermediate(c Codec, ir Intermediate) error {
	return c.DecodeContent(bytes.NewReader(ir.Content), len(ir.Content))
}
