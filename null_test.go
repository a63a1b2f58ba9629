package der

import (
	"bytes"
	"testing"
)

func TestNullEncode(t *testing.T) {
	var n Null
	got, err := Bytes(&n)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x05, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestNullRoundTrip(t *testing.T) {
	var n Null
	wire, err := Bytes(&n)
	if err != nil {
		t.Fatal(err)
	}
	var got Null
	if err := FromBytes(&got, wire); err != nil {
		t.Fatal(err)
	}
}

func TestNullBadLength(t *testing.T) {
	var got Null
	if err := FromBytes(&got, []byte{0x05, 0x01, 0x00}); err != errorNullLength {
		t.Errorf("got %v, want errorNullLength", err)
	}
}
