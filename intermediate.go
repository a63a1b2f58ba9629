package der

/*
intermediate.go contains the Intermediate staged representation that
sits between typed ASN.1 values and the outer DER byte stream: a
{class, content_type, tag, content} record. It is the only path through
which identifier and length octets are materialized; every Codec goes
through it via ToIntermediate/FromIntermediate (see codec.go).
*/

import (
	"bytes"
	"io"
)

/*
Intermediate holds one TLV's worth of staged state: the tag class, the
primitive/constructed flag, the tag number (never carrying the class or
P/C bits, which live in Class and ContentType), and the raw content
octets that will appear between the length header and the next sibling
element. For constructed values, Content is itself a concatenation of
child encodings.
*/
type Intermediate struct {
	Class       Class
	ContentType ContentType
	Tag         uint32
	Content     []byte
}

/*
New returns an empty Intermediate with the given class, content kind and
tag number.
*/
func New(class Class, ct ContentType, tag uint32) Intermediate {
	return Intermediate{Class: class, ContentType: ct, Tag: tag}
}

/*
WithContent returns the receiver with its content set to b, chain-style.
*/
func (ir Intermediate) WithContent(b []byte) Intermediate {
	ir.Content = b
	return ir
}

/*
Encode writes the receiver's identifier, length and content octets to w
in that order.
*/
func (ir Intermediate) Encode(w io.Writer) error {
	if err := EncodeTag(w, ir.Tag, ir.Class, ir.ContentType == Constructed); err != nil {
		return err
	}
	if err := EncodeLength(w, len(ir.Content)); err != nil {
		return err
	}
	_, err := w.Write(ir.Content)
	return err
}

/*
EncodeExplicit wraps the receiver's full natural encoding (identifier,
length and content) inside a new constructed identifier bearing class
and tag, and writes the result to w.
*/
func (ir Intermediate) EncodeExplicit(tag uint32, class Class, w io.Writer) error {
	var inner bytes.Buffer
	if err := ir.Encode(&inner); err != nil {
		return err
	}

	if err := EncodeTag(w, tag, class, true); err != nil {
		return err
	}
	if err := EncodeLength(w, inner.Len()); err != nil {
		return err
	}
	_, err := w.Write(inner.Bytes())
	return err
}

/*
EncodeImplicit re-tags the receiver's identifier with class and tag,
preserving its original content-type bit and content octets, and writes
the result to w.
*/
func (ir Intermediate) EncodeImplicit(tag uint32, class Class, w io.Writer) error {
	if err := EncodeTag(w, tag, class, ir.ContentType == Constructed); err != nil {
		return err
	}
	if err := EncodeLength(w, len(ir.Content)); err != nil {
		return err
	}
	_, err := w.Write(ir.Content)
	return err
}

/*
Decode reads one identifier and length from r, then reads exactly that
many content octets, returning the resulting Intermediate.
*/
func Decode(r io.Reader) (ir Intermediate, err error) {
	num, class, constructed, _, err := DecodeTag(r)
	if err != nil {
		return
	}

	length, _, err := DecodeLength(r)
	if err != nil {
		return
	}

	content := make([]byte, length)
	if length > 0 {
		if _, err = io.ReadFull(r, content); err != nil {
			return
		}
	}

	ct := Primitive
	if constructed {
		ct = Constructed
	}
	ir = Intermediate{Class: class, ContentType: ct, Tag: num, Content: content}
	return
}

/*
DecodeExplicit reads the outer identifier and length from r (the length
is discarded; the inner value self-describes its own length), then
recursively decodes one Intermediate from the remaining stream.
*/
func DecodeExplicit(r io.Reader) (outerTag uint32, outerClass Class, inner Intermediate, err error) {
	var num uint32
	var class Class
	num, class, _, _, err = DecodeTag(r)
	if err != nil {
		return
	}
	if _, _, err = DecodeLength(r); err != nil {
		return
	}
	inner, err = Decode(r)
	outerTag, outerClass = num, class
	return
}

/*
DecodeImplicit reads a re-tagged identifier and length from r and
constructs an Intermediate whose Class and Tag are overwritten with the
natural universal ones (naturalClass, naturalTag), so the downstream
typed decoder sees the identifier it would have produced untagged. The
content-type bit and content octets come from the wire as-is.
*/
func DecodeImplicit(r io.Reader, naturalTag UniversalTag, naturalClass Class) (outerTag uint32, outerClass Class, ir Intermediate, err error) {
	var num uint32
	var class Class
	var constructed bool
	num, class, constructed, _, err = DecodeTag(r)
	if err != nil {
		return
	}

	length, _, lerr := DecodeLength(r)
	if lerr != nil {
		err = lerr
		return
	}

	content := make([]byte, length)
	if length > 0 {
		if _, err = io.ReadFull(r, content); err != nil {
			return
		}
	}

	ct := Primitive
	if constructed {
		ct = Constructed
	}
	outerTag, outerClass = num, class
	ir = Intermediate{Class: naturalClass, ContentType: ct, Tag: uint32(naturalTag), Content: content}
	return
}

/*
EncodedSize returns the byte length of the identifier, length and
content octets that Encode would produce for a value with the given tag
number and content length, without materializing any of it.
*/
func EncodedSize(tagNum uint32, contentLen int) (size int) {
	size = 1
	if tagNum >= 31 {
		for t := tagNum; t > 0; t >>= 7 {
			size++
		}
	}

	size++ // length's first octet
	if contentLen >= 0x80 {
		n := contentLen
		for n > 0 {
			size++
			n >>= 8
		}
	}

	return size + contentLen
}

/*
String renders the receiver for diagnostics and test failure messages.
*/
func (ir Intermediate) String() string {
	return "{Class:" + ir.Class.String() +
		", ContentType:" + ir.ContentType.String() +
		", Tag:" + itoa(int(ir.Tag)) +
		", Length:" + itoa(len(ir.Content)) + "}"
}

/*
Eq reports whether the receiver and other carry the same class,
content-type, tag and (optionally) content.
*/
func (ir Intermediate) Eq(other Intermediate, compareContent ...bool) bool {
	match := ir.Class == other.Class &&
		ir.ContentType == other.ContentType &&
		ir.Tag == other.Tag

	if match && len(compareContent) > 0 && compareContent[0] {
		match = bytes.Equal(ir.Content, other.Content)
	}
	return match
}
