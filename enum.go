package der

/*
enum.go contains all types and methods pertaining to the ASN.1
ENUMERATED type. A definition is a named set of integer-discriminant
variants declared once via NewEnumeratedDef; the resulting definition
validates values on both construction and decode.
*/

import (
	"io"

	"golang.org/x/exp/constraints"
)

/*
Variant builds an EnumeratedVariant from any Go integer discriminant
type, so a definition can mix variant constants of different declared
widths.
*/
func Variant[T constraints.Integer](name string, value T) EnumeratedVariant {
	return EnumeratedVariant{Name: name, Value: int32(value)}
}

/*
EnumeratedVariant names one integer discriminant of an ENUMERATED type.
*/
type EnumeratedVariant struct {
	Name  string
	Value int32
}

/*
EnumeratedDef is a declarative ENUMERATED definition: a name plus the
set of valid variants. Construct one with NewEnumeratedDef and use it to
mint validated Enumerated values via New, or as the target of a decode
via Zero.
*/
type EnumeratedDef struct {
	name    string
	byValue map[int32]string
}

/*
NewEnumeratedDef builds a definition named name from variants.
*/
func NewEnumeratedDef(name string, variants ...EnumeratedVariant) *EnumeratedDef {
	m := make(map[int32]string, len(variants))
	for _, v := range variants {
		m[v.Value] = v.Name
	}
	return &EnumeratedDef{name: name, byValue: m}
}

/*
New returns an Enumerated bound to this definition and carrying value,
or errorUnknownEnum if value is not one of the declared variants.
*/
func (d *EnumeratedDef) New(value int32) (Enumerated, error) {
	if _, ok := d.byValue[value]; !ok {
		return Enumerated{}, errorUnknownEnum
	}
	return Enumerated{def: d, value: value}, nil
}

/*
Zero returns an empty Enumerated bound to this definition, suitable as
the target of DecodeInto.
*/
func (d *EnumeratedDef) Zero() Enumerated { return Enumerated{def: d} }

/*
Name returns the declared variant name for e's value, or a synthetic
"unknown(N)" string if e carries an unvalidated or stale value.
*/
func (d *EnumeratedDef) Name(e Enumerated) string {
	if n, ok := d.byValue[e.value]; ok {
		return n
	}
	return "unknown(" + itoa(int(e.value)) + ")"
}

/*
Enumerated implements the ASN.1 ENUMERATED type (tag 10). It is always
bound to the EnumeratedDef that minted or decoded it.
*/
type Enumerated struct {
	def   *EnumeratedDef
	value int32
}

func (r Enumerated) UniversalTag() UniversalTag { return TagEnumerated }
func (r Enumerated) ContentKind() ContentType   { return Primitive }

/*
Value returns the receiver's integer discriminant.
*/
func (r Enumerated) Value() int32 { return r.value }

/*
String returns the declared variant name, or the bare integer if the
receiver carries no definition.
*/
func (r Enumerated) String() string {
	if r.def != nil {
		return r.def.Name(r)
	}
	return itoa(int(r.value))
}

func (r Enumerated) EncodeContent(w io.Writer) error {
	return Integer(r.value).EncodeContent(w)
}

/*
DecodeContent reads the discriminant as a minimal two's-complement
INTEGER and, if the receiver is bound to a definition, rejects any
value outside its declared variant set.
*/
func (r *Enumerated) DecodeContent(rd io.Reader, length int) error {
	var i Integer
	if err := i.DecodeContent(rd, length); err != nil {
		return err
	}
	if r.def != nil {
		if _, ok := r.def.byValue[int32(i)]; !ok {
			return errorUnknownEnum
		}
	}
	r.value = int32(i)
	return nil
}
