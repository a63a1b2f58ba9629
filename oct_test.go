package der

import (
	"bytes"
	"testing"
)

func TestOctetStringRoundTrip(t *testing.T) {
	o := NewOctetString([]byte{0x01, 0x02, 0x03})
	wire, err := Bytes(&o)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x04, 0x03, 0x01, 0x02, 0x03}
	if !bytes.Equal(wire, want) {
		t.Errorf("got % X, want % X", wire, want)
	}

	var got OctetString
	if err := FromBytes(&got, wire); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, o) {
		t.Errorf("got %v, want %v", got, o)
	}
}

func TestOctetStringEmpty(t *testing.T) {
	o := NewOctetString(nil)
	wire, err := Bytes(&o)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(wire, []byte{0x04, 0x00}) {
		t.Errorf("got % X", wire)
	}
}

func TestOctetStringDefensiveCopy(t *testing.T) {
	src := []byte{0x01, 0x02}
	o := NewOctetString(src)
	src[0] = 0xFF
	if o[0] != 0x01 {
		t.Error("NewOctetString did not defensively copy its input")
	}
}
