package der

import (
	"bytes"
	"testing"
)

func commandChoiceDef() *ChoiceDef {
	def, err := NewChoiceDef(
		ChoiceVariant{Name: "Forward", Mode: ImplicitMode(ClassContextSpecific, 1), New: func() Codec { var i Integer; return &i }},
		ChoiceVariant{Name: "Rotate", Mode: ImplicitMode(ClassContextSpecific, 2), New: func() Codec { var i Integer; return &i }},
		ChoiceVariant{Name: "Start", Mode: ImplicitMode(ClassContextSpecific, 3), New: func() Codec { var n Null; return &n }},
		ChoiceVariant{Name: "Stop", Mode: ImplicitMode(ClassContextSpecific, 4), New: func() Codec { var n Null; return &n }},
	)
	if err != nil {
		panic(err)
	}
	return def
}

func TestChoiceRoundTripEachVariant(t *testing.T) {
	def := commandChoiceDef()

	forward := Integer(100)
	rotate := Integer(-90)
	start := Null{}
	stop := Null{}

	cases := []struct {
		name  string
		value Codec
	}{
		{"Forward", &forward},
		{"Rotate", &rotate},
		{"Start", &start},
		{"Stop", &stop},
	}

	for _, c := range cases {
		ch, err := def.New(c.name, c.value)
		if err != nil {
			t.Fatalf("%s: New: %v", c.name, err)
		}

		var buf bytes.Buffer
		if err := ch.Encode(&buf); err != nil {
			t.Fatalf("%s: Encode: %v", c.name, err)
		}

		got, err := def.Decode(&buf)
		if err != nil {
			t.Fatalf("%s: Decode: %v", c.name, err)
		}
		if got.Variant() != c.name {
			t.Errorf("variant: got %q, want %q", got.Variant(), c.name)
		}
	}
}

func TestChoiceDuplicateTagRejected(t *testing.T) {
	_, err := NewChoiceDef(
		ChoiceVariant{Name: "A", Mode: ImplicitMode(ClassContextSpecific, 1), New: func() Codec { var i Integer; return &i }},
		ChoiceVariant{Name: "B", Mode: ImplicitMode(ClassContextSpecific, 1), New: func() Codec { var i Integer; return &i }},
	)
	if err == nil {
		t.Fatal("expected error for colliding CHOICE variant tags")
	}
}

func TestChoiceNoMatchRejected(t *testing.T) {
	def := commandChoiceDef()
	buf := bytes.NewReader([]byte{0x89, 0x01, 0x00})
	// tag 9, context-specific, implicit-shaped identifier matching no variant
	if _, err := def.Decode(buf); err != errorNoChoiceMatch {
		t.Errorf("got %v, want errorNoChoiceMatch", err)
	}
}
