package der

import "testing"

func sampleEnumDef() *EnumeratedDef {
	return NewEnumeratedDef("Sample",
		Variant("Alpha", 5),
		Variant("Beta", 1222),
		Variant("Gamma", 42),
	)
}

func TestEnumeratedRoundTrip(t *testing.T) {
	def := sampleEnumDef()
	for _, want := range []int32{5, 1222, 42} {
		e, err := def.New(want)
		if err != nil {
			t.Fatalf("New(%d): %v", want, err)
		}
		wire, err := Bytes(&e)
		if err != nil {
			t.Fatalf("encode %d: %v", want, err)
		}

		got := def.Zero()
		if err := FromBytes(&got, wire); err != nil {
			t.Fatalf("decode %d: %v", want, err)
		}
		if got.Value() != want {
			t.Errorf("got %d, want %d", got.Value(), want)
		}
	}
}

func TestEnumeratedUnknownDiscriminantRejected(t *testing.T) {
	def := sampleEnumDef()
	if _, err := def.New(6); err != errorUnknownEnum {
		t.Errorf("New(6): got %v, want errorUnknownEnum", err)
	}
}

func TestEnumeratedDecodeRejectsUnknownValue(t *testing.T) {
	def := sampleEnumDef()
	other := NewEnumeratedDef("Other", Variant("Six", 6))
	six, err := other.New(6)
	if err != nil {
		t.Fatal(err)
	}
	wire, err := Bytes(&six)
	if err != nil {
		t.Fatal(err)
	}

	got := def.Zero()
	if err := FromBytes(&got, wire); err != errorUnknownEnum {
		t.Errorf("got %v, want errorUnknownEnum", err)
	}
}

func TestEnumeratedName(t *testing.T) {
	def := sampleEnumDef()
	e, err := def.New(1222)
	if err != nil {
		t.Fatal(err)
	}
	if got := e.String(); got != "Beta" {
		t.Errorf("got %q, want %q", got, "Beta")
	}
}
