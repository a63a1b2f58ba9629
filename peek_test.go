package der

import (
	"bytes"
	"io"
	"testing"
)

func TestPeekReaderReplaysBufferedBytes(t *testing.T) {
	src := bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04})
	p := NewPeekReader(src)

	head := make([]byte, 2)
	if _, err := io.ReadFull(p, head); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(head, []byte{0x01, 0x02}) {
		t.Fatalf("peeked % X", head)
	}

	p.Stop()

	rest := make([]byte, 4)
	n, err := io.ReadFull(p, rest)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 || !bytes.Equal(rest, []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("got % X, want replayed-then-fresh bytes", rest[:n])
	}
}

func TestPeekReaderNoPeekIsPassthrough(t *testing.T) {
	src := bytes.NewReader([]byte{0xAA, 0xBB})
	p := NewPeekReader(src)
	p.Stop()

	got := make([]byte, 2)
	if _, err := io.ReadFull(p, got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0xAA, 0xBB}) {
		t.Errorf("got % X", got)
	}
}
