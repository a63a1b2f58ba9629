package der

import "testing"

func TestRestrictedStringsRoundTripAndTags(t *testing.T) {
	ns := NewNumericString("12345")
	ps := NewPrintableString("Test User 1")
	ia5 := NewIA5String("user@example.com")
	us := NewUniversalString("abc")

	cases := []struct {
		name string
		tag  UniversalTag
		enc  func() ([]byte, error)
		dec  func([]byte) (string, error)
		want string
	}{
		{"NumericString", TagNumericString,
			func() ([]byte, error) { return Bytes(&ns) },
			func(b []byte) (string, error) { var v NumericString; err := FromBytes(&v, b); return string(v), err },
			"12345"},
		{"PrintableString", TagPrintableString,
			func() ([]byte, error) { return Bytes(&ps) },
			func(b []byte) (string, error) { var v PrintableString; err := FromBytes(&v, b); return string(v), err },
			"Test User 1"},
		{"IA5String", TagIA5String,
			func() ([]byte, error) { return Bytes(&ia5) },
			func(b []byte) (string, error) { var v IA5String; err := FromBytes(&v, b); return string(v), err },
			"user@example.com"},
		{"UniversalString", TagUniversalString,
			func() ([]byte, error) { return Bytes(&us) },
			func(b []byte) (string, error) { var v UniversalString; err := FromBytes(&v, b); return string(v), err },
			"abc"},
	}

	for _, c := range cases {
		wire, err := c.enc()
		if err != nil {
			t.Fatalf("%s: encode: %v", c.name, err)
		}
		if UniversalTag(wire[0]) != c.tag {
			t.Errorf("%s: wire tag = %d, want %d", c.name, wire[0], c.tag)
		}
		got, err := c.dec(wire)
		if err != nil {
			t.Fatalf("%s: decode: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestRestrictedStringsNoAlphabetEnforcement(t *testing.T) {
	// NumericString is documented as carrying no alphabet enforcement;
	// arbitrary bytes round-trip unchanged.
	ns := NewNumericString("not numeric at all!")
	wire, err := Bytes(&ns)
	if err != nil {
		t.Fatal(err)
	}
	var got NumericString
	if err := FromBytes(&got, wire); err != nil {
		t.Fatal(err)
	}
	if string(got) != "not numeric at all!" {
		t.Errorf("got %q", got)
	}
}
