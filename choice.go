package der

/*
choice.go contains all types and methods pertaining to the ASN.1
CHOICE type: a tagged union of variants, each carrying a TagMode,
declared once via NewChoiceDef. Every variant's wire identifier
(class, tag) must be distinct; a collision is a definition-time error.
*/

import "io"

/*
ChoiceVariant names one arm of a CHOICE: a name (diagnostics only), the
tagging mode that selects it on the wire, and a constructor for a fresh,
pointer-typed zero value of the arm's payload type.
*/
type ChoiceVariant struct {
	Name string
	Mode TagMode
	New  func() Codec
}

func (v ChoiceVariant) wireIdentity() (Class, uint32) {
	if v.Mode.Kind == Untagged {
		return ClassUniversal, uint32(v.New().UniversalTag())
	}
	return v.Mode.Class, v.Mode.Tag
}

/*
ChoiceDef is a declarative CHOICE definition. Build one with
NewChoiceDef, which rejects any two variants sharing a wire identifier.
*/
type ChoiceDef struct {
	variants []ChoiceVariant
}

/*
NewChoiceDef validates that every variant's (class, tag) is distinct and
returns the resulting definition.
*/
func NewChoiceDef(variants ...ChoiceVariant) (*ChoiceDef, error) {
	type key struct {
		class Class
		tag   uint32
	}
	seen := make(map[key]bool, len(variants))
	for _, v := range variants {
		class, tag := v.wireIdentity()
		k := key{class, tag}
		if seen[k] {
			return nil, errorDuplicateChoiceTag(class, UniversalTag(tag))
		}
		seen[k] = true
	}
	return &ChoiceDef{variants: variants}, nil
}

/*
Choice is one instantiated value of a CHOICE: the active variant's name
and its payload.
*/
type Choice struct {
	def     *ChoiceDef
	variant string
	value   Codec
}

/*
New returns a Choice bound to d with the named variant active, holding
value as its payload.
*/
func (d *ChoiceDef) New(variant string, value Codec) (Choice, error) {
	for _, v := range d.variants {
		if v.Name == variant {
			return Choice{def: d, variant: variant, value: value}, nil
		}
	}
	return Choice{}, mkerrf("CHOICE: undeclared variant ", variant)
}

/*
Variant returns the active variant's name.
*/
func (c Choice) Variant() string { return c.variant }

/*
Value returns the active variant's payload.
*/
func (c Choice) Value() Codec { return c.value }

/*
Encode writes the active variant's payload to w under its declared
TagMode. There is no outer CHOICE identifier; the variant's own
(possibly retagged) identifier is the wire representation.
*/
func (c Choice) Encode(w io.Writer) error {
	for _, v := range c.def.variants {
		if v.Name != c.variant {
			continue
		}
		ir, err := ToIntermediate(c.value)
		if err != nil {
			return err
		}
		switch v.Mode.Kind {
		case Implicit:
			return ir.EncodeImplicit(v.Mode.Tag, v.Mode.Class, w)
		case Explicit:
			return ir.EncodeExplicit(v.Mode.Tag, v.Mode.Class, w)
		default:
			return ir.Encode(w)
		}
	}
	return mkerrf("CHOICE: undeclared variant ", c.variant)
}

/*
Decode reads one Intermediate from r and matches its (class, tag)
against d's declared variants in order: UNTAGGED matches the variant
type's natural universal identifier, EXPLICIT and IMPLICIT match the
variant's declared (class, tag). If no variant matches,
errorNoChoiceMatch is returned.
*/
func (d *ChoiceDef) Decode(r io.Reader) (Choice, error) {
	ir, err := Decode(r)
	if err != nil {
		return Choice{}, err
	}
	trace("choice decode", "class", ir.Class, "tag", ir.Tag)

	for _, v := range d.variants {
		elem := v.New()
		switch v.Mode.Kind {
		case Untagged:
			if ir.Class == ClassUniversal && UniversalTag(ir.Tag) == elem.UniversalTag() {
				if err := FromIntermediate(elem, ir); err != nil {
					return Choice{}, err
				}
				return Choice{def: d, variant: v.Name, value: elem}, nil
			}
		case Explicit:
			if ir.Class == v.Mode.Class && ir.Tag == v.Mode.Tag {
				if err := FromBytes(elem, ir.Content); err != nil {
					return Choice{}, err
				}
				return Choice{def: d, variant: v.Name, value: elem}, nil
			}
		case Implicit:
			if ir.Class == v.Mode.Class && ir.Tag == v.Mode.Tag {
				rewritten := ir
				rewritten.Class = ClassUniversal
				rewritten.Tag = uint32(elem.UniversalTag())
				if err := FromIntermediate(elem, rewritten); err != nil {
					return Choice{}, err
				}
				return Choice{def: d, variant: v.Name, value: elem}, nil
			}
		}
	}

	return Choice{}, errorNoChoiceMatch
}
