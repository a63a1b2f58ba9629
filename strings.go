package der

/*
strings.go contains all types and methods pertaining to the restricted
character string types that carry no alphabet enforcement in this
library: NumericString, PrintableString, T61String, VideotexString,
IA5String, GraphicString, VisibleString, GeneralString,
UniversalString and CharacterString. BMPString (bmp.go) follows the
same shape but keeps its own file.
*/

import "io"

func encodeRestrictedContent(s string, w io.Writer) error {
	_, err := io.WriteString(w, s)
	return err
}

func decodeRestrictedContent(r io.Reader, length int) (string, error) {
	buf := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
	}
	return string(buf), nil
}

/*
NumericString implements the ASN.1 NumericString type (tag 18).
*/
type NumericString string

func NewNumericString(s string) NumericString   { return NumericString(s) }
func (r NumericString) UniversalTag() UniversalTag { return TagNumericString }
func (r NumericString) ContentKind() ContentType   { return Primitive }
func (r NumericString) String() string             { return string(r) }
func (r NumericString) Len() int                   { return len(r) }
func (r NumericString) EncodeContent(w io.Writer) error {
	return encodeRestrictedContent(string(r), w)
}
func (r *NumericString) DecodeContent(rd io.Reader, length int) error {
	s, err := decodeRestrictedContent(rd, length)
	if err == nil {
		*r = NumericString(s)
	}
	return err
}

/*
PrintableString implements the ASN.1 PrintableString type (tag 19).
*/
type PrintableString string

func NewPrintableString(s string) PrintableString  { return PrintableString(s) }
func (r PrintableString) UniversalTag() UniversalTag { return TagPrintableString }
func (r PrintableString) ContentKind() ContentType   { return Primitive }
func (r PrintableString) String() string             { return string(r) }
func (r PrintableString) Len() int                   { return len(r) }
func (r PrintableString) EncodeContent(w io.Writer) error {
	return encodeRestrictedContent(string(r), w)
}
func (r *PrintableString) DecodeContent(rd io.Reader, length int) error {
	s, err := decodeRestrictedContent(rd, length)
	if err == nil {
		*r = PrintableString(s)
	}
	return err
}

/*
T61String implements the ASN.1 T61String (Teletex String) type (tag 20).
*/
type T61String string

func NewT61String(s string) T61String          { return T61String(s) }
func (r T61String) UniversalTag() UniversalTag { return TagT61String }
func (r T61String) ContentKind() ContentType   { return Primitive }
func (r T61String) String() string             { return string(r) }
func (r T61String) Len() int                   { return len(r) }
func (r T61String) EncodeContent(w io.Writer) error {
	return encodeRestrictedContent(string(r), w)
}
func (r *T61String) DecodeContent(rd io.Reader, length int) error {
	s, err := decodeRestrictedContent(rd, length)
	if err == nil {
		*r = T61String(s)
	}
	return err
}

/*
VideotexString implements the ASN.1 VideotexString type (tag 21).
*/
type VideotexString string

func NewVideotexString(s string) VideotexString      { return VideotexString(s) }
func (r VideotexString) UniversalTag() UniversalTag { return TagVideotexString }
func (r VideotexString) ContentKind() ContentType   { return Primitive }
func (r VideotexString) String() string             { return string(r) }
func (r VideotexString) Len() int                   { return len(r) }
func (r VideotexString) EncodeContent(w io.Writer) error {
	return encodeRestrictedContent(string(r), w)
}
func (r *VideotexString) DecodeContent(rd io.Reader, length int) error {
	s, err := decodeRestrictedContent(rd, length)
	if err == nil {
		*r = VideotexString(s)
	}
	return err
}

/*
IA5String implements the ASN.1 IA5String type (tag 22).
*/
type IA5String string

func NewIA5String(s string) IA5String          { return IA5String(s) }
func (r IA5String) UniversalTag() UniversalTag { return TagIA5String }
func (r IA5String) ContentKind() ContentType   { return Primitive }
func (r IA5String) String() string             { return string(r) }
func (r IA5String) Len() int                   { return len(r) }
func (r IA5String) EncodeContent(w io.Writer) error {
	return encodeRestrictedContent(string(r), w)
}
func (r *IA5String) DecodeContent(rd io.Reader, length int) error {
	s, err := decodeRestrictedContent(rd, length)
	if err == nil {
		*r = IA5String(s)
	}
	return err
}

/*
GraphicString implements the ASN.1 GraphicString type (tag 25).
*/
type GraphicString string

func NewGraphicString(s string) GraphicString      { return GraphicString(s) }
func (r GraphicString) UniversalTag() UniversalTag { return TagGraphicString }
func (r GraphicString) ContentKind() ContentType   { return Primitive }
func (r GraphicString) String() string             { return string(r) }
func (r GraphicString) Len() int                   { return len(r) }
func (r GraphicString) EncodeContent(w io.Writer) error {
	return encodeRestrictedContent(string(r), w)
}
func (r *GraphicString) DecodeContent(rd io.Reader, length int) error {
	s, err := decodeRestrictedContent(rd, length)
	if err == nil {
		*r = GraphicString(s)
	}
	return err
}

/*
VisibleString implements the ASN.1 VisibleString type (tag 26).
*/
type VisibleString string

func NewVisibleString(s string) VisibleString      { return VisibleString(s) }
func (r VisibleString) UniversalTag() UniversalTag { return TagVisibleString }
func (r VisibleString) ContentKind() ContentType   { return Primitive }
func (r VisibleString) String() string             { return string(r) }
func (r VisibleString) Len() int                   { return len(r) }
func (r VisibleString) EncodeContent(w io.Writer) error {
	return encodeRestrictedContent(string(r), w)
}
func (r *VisibleString) DecodeContent(rd io.Reader, length int) error {
	s, err := decodeRestrictedContent(rd, length)
	if err == nil {
		*r = VisibleString(s)
	}
	return err
}

/*
GeneralString implements the ASN.1 GeneralString type (tag 27).
*/
type GeneralString string

func NewGeneralString(s string) GeneralString      { return GeneralString(s) }
func (r GeneralString) UniversalTag() UniversalTag { return TagGeneralString }
func (r GeneralString) ContentKind() ContentType   { return Primitive }
func (r GeneralString) String() string             { return string(r) }
func (r GeneralString) Len() int                   { return len(r) }
func (r GeneralString) EncodeContent(w io.Writer) error {
	return encodeRestrictedContent(string(r), w)
}
func (r *GeneralString) DecodeContent(rd io.Reader, length int) error {
	s, err := decodeRestrictedContent(rd, length)
	if err == nil {
		*r = GeneralString(s)
	}
	return err
}

/*
UniversalString implements the ASN.1 UniversalString type (tag 28).
*/
type UniversalString string

func NewUniversalString(s string) UniversalString  { return UniversalString(s) }
func (r UniversalString) UniversalTag() UniversalTag { return TagUniversalString }
func (r UniversalString) ContentKind() ContentType   { return Primitive }
func (r UniversalString) String() string             { return string(r) }
func (r UniversalString) Len() int                   { return len(r) }
func (r UniversalString) EncodeContent(w io.Writer) error {
	return encodeRestrictedContent(string(r), w)
}
func (r *UniversalString) DecodeContent(rd io.Reader, length int) error {
	s, err := decodeRestrictedContent(rd, length)
	if err == nil {
		*r = UniversalString(s)
	}
	return err
}

/*
CharacterString implements the ASN.1 CharacterString type (tag 29).
*/
type CharacterString string

func NewCharacterString(s string) CharacterString  { return CharacterString(s) }
func (r CharacterString) UniversalTag() UniversalTag { return TagCharacterString }
func (r CharacterString) ContentKind() ContentType   { return Primitive }
func (r CharacterString) String() string             { return string(r) }
func (r CharacterString) Len() int                   { return len(r) }
func (r CharacterString) EncodeContent(w io.Writer) error {
	return encodeRestrictedContent(string(r), w)
}
func (r *CharacterString) DecodeContent(rd io.Reader, length int) error {
	s, err := decodeRestrictedContent(rd, length)
	if err == nil {
		*r = CharacterString(s)
	}
	return err
}
