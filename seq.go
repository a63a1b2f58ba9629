package der

/*
seq.go contains all types and methods pertaining to the ASN.1 SEQUENCE
and SEQUENCE OF types. A SEQUENCE is declared as an ordered list of
Field records, each naming a tagging mode and a Codec-bearing value;
Sequence and SequenceOf interpret that list directly at encode and
decode time.
*/

import (
	"bytes"
	"io"
)

/*
Field is one member of a SEQUENCE: a name (for diagnostics only), the
tagging mode to apply on the wire, and the Codec-bearing value itself.
Value must be a pointer-typed Codec (e.g. *Integer, *UTF8String) so
Sequence.DecodeContent can populate it in place.
*/
type Field struct {
	Name  string
	Mode  TagMode
	Value Codec
}

/*
Sequence implements the ASN.1 SEQUENCE type (tag 16, constructed) as an
ordered list of Fields. Field order is declaration order; the on-wire
order is the same.
*/
type Sequence struct {
	Fields []Field
}

func (s Sequence) UniversalTag() UniversalTag { return TagSequence }
func (s Sequence) ContentKind() ContentType   { return Constructed }

/*
EncodeContent forms each field's Intermediate via ToIntermediate and
writes it according to its declared TagMode, in field order.
*/
func (s Sequence) EncodeContent(w io.Writer) error {
	for _, f := range s.Fields {
		ir, err := ToIntermediate(f.Value)
		if err != nil {
			return err
		}
		switch f.Mode.Kind {
		case Implicit:
			err = ir.EncodeImplicit(f.Mode.Tag, f.Mode.Class, w)
		case Explicit:
			err = ir.EncodeExplicit(f.Mode.Tag, f.Mode.Class, w)
		default:
			err = ir.Encode(w)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

/*
DecodeContent reads each field in order from the length-bounded content,
dispatching to Intermediate.Decode, DecodeExplicit or DecodeImplicit per
the field's declared TagMode, then reconstructing the field's value via
FromIntermediate.
*/
func (s Sequence) DecodeContent(r io.Reader, length int) error {
	buf := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
	}
	br := bytes.NewReader(buf)

	for _, f := range s.Fields {
		switch f.Mode.Kind {
		case Implicit:
			outerTag, outerClass, ir, err := DecodeImplicit(br, f.Value.UniversalTag(), ClassUniversal)
			if err != nil {
				return err
			}
			if outerClass != f.Mode.Class || outerTag != f.Mode.Tag {
				return errorWrongClass(f.Mode.Class, outerClass)
			}
			if err := FromIntermediate(f.Value, ir); err != nil {
				return err
			}
		case Explicit:
			outerTag, outerClass, inner, err := DecodeExplicit(br)
			if err != nil {
				return err
			}
			if outerClass != f.Mode.Class || outerTag != f.Mode.Tag {
				return errorWrongClass(f.Mode.Class, outerClass)
			}
			if err := FromIntermediate(f.Value, inner); err != nil {
				return err
			}
		default:
			ir, err := Decode(br)
			if err != nil {
				return err
			}
			if ir.Class != ClassUniversal || UniversalTag(ir.Tag) != f.Value.UniversalTag() {
				return errorWrongTag(f.Value.UniversalTag(), UniversalTag(ir.Tag))
			}
			if err := FromIntermediate(f.Value, ir); err != nil {
				return err
			}
		}
	}
	return nil
}

/*
SequenceOf implements the ASN.1 SEQUENCE OF type (tag 16, constructed):
an ordered, homogeneous list of elements all produced by New.
*/
type SequenceOf struct {
	// New returns a fresh, pointer-typed zero element used as the decode
	// target for each member of the list.
	New func() Codec

	Elems []Codec
}

func (s SequenceOf) UniversalTag() UniversalTag { return TagSequence }
func (s SequenceOf) ContentKind() ContentType   { return Constructed }

/*
EncodeContent concatenates the full natural encoding of each element in
original order.
*/
func (s SequenceOf) EncodeContent(w io.Writer) error {
	for _, e := range s.Elems {
		if err := Encode(e, w); err != nil {
			return err
		}
	}
	return nil
}

/*
DecodeContent repeatedly decodes elements from the length-bounded
content until it is exhausted, signaling errorSequenceOfShort if any
element's decode fails to fit inside the declared boundary.
*/
func (s *SequenceOf) DecodeContent(r io.Reader, length int) error {
	buf := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
	}
	br := bytes.NewReader(buf)

	elems := make([]Codec, 0, len(s.Elems))
	for br.Len() > 0 {
		elem := s.New()
		if err := DecodeInto(elem, br); err != nil {
			return errorSequenceOfShort
		}
		elems = append(elems, elem)
	}
	s.Elems = elems
	return nil
}
