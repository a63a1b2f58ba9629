package der

import (
	"bytes"
	"testing"
)

func TestLengthRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 127, 128, 255, 256, 65535, 65536, 1 << 20} {
		var buf bytes.Buffer
		if err := EncodeLength(&buf, n); err != nil {
			t.Fatalf("encode %d: %v", n, err)
		}
		got, _, err := DecodeLength(&buf)
		if err != nil {
			t.Fatalf("decode %d: %v", n, err)
		}
		if got != n {
			t.Errorf("length %d round-tripped to %d", n, got)
		}
	}
}

func TestLengthShortForm(t *testing.T) {
	var buf bytes.Buffer
	EncodeLength(&buf, 100)
	if buf.Len() != 1 || buf.Bytes()[0] != 100 {
		t.Errorf("short-form length encoded as % X", buf.Bytes())
	}
}

func TestLengthLongForm(t *testing.T) {
	var buf bytes.Buffer
	EncodeLength(&buf, 256)
	want := []byte{0x82, 0x01, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestLengthIndefiniteRejected(t *testing.T) {
	_, _, err := DecodeLength(bytes.NewReader([]byte{0x80}))
	if err != errorIndefiniteProhibited {
		t.Errorf("got %v, want errorIndefiniteProhibited", err)
	}
}

func TestLengthOfLengthTooLarge(t *testing.T) {
	big := make([]byte, 1+maxLengthOfLengthBytes+1)
	big[0] = byte(0x80 | (maxLengthOfLengthBytes + 1))
	_, _, err := DecodeLength(bytes.NewReader(big))
	if err != errorLengthTooLarge {
		t.Errorf("got %v, want errorLengthTooLarge", err)
	}
}
