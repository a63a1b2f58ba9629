package der

/*
length.go contains the X.690 definite-length octet codec: short form
for lengths under 128, long form (a byte count header followed by the
big-endian length) otherwise. The indefinite form (0x80 alone) is never
emitted and is rejected on decode.
*/

import (
	"io"
	"math/bits"
)

// maxLengthOfLengthBytes bounds the long-form byte count to the native
// int width so a length never silently wraps during reconstruction.
const maxLengthOfLengthBytes = bits.UintSize / 8

/*
EncodeLength writes the definite-length octet(s) for n to w.
*/
func EncodeLength(w io.Writer, n int) error {
	if n < 0 {
		return mkerr("length must be non-negative")
	}
	if n < 0x80 {
		_, err := w.Write([]byte{byte(n)})
		return err
	}

	var tmp [maxLengthOfLengthBytes]byte
	size := 0
	v := n
	for v > 0 {
		tmp[size] = byte(v & 0xFF)
		v >>= 8
		size++
	}

	out := make([]byte, size+1)
	out[0] = 0x80 | byte(size)
	for i := 0; i < size; i++ {
		out[i+1] = tmp[size-1-i]
	}
	_, err := w.Write(out)
	return err
}

/*
DecodeLength reads the definite-length octet(s) from r, returning the
decoded length and the count of octets consumed.
*/
func DecodeLength(r io.Reader) (n int, bytesRead int, err error) {
	var hdr [1]byte
	if _, err = io.ReadFull(r, hdr[:]); err != nil {
		return
	}
	bytesRead = 1

	if hdr[0]&0x80 == 0 {
		n = int(hdr[0])
		return
	}

	numBytes := int(hdr[0] & 0x7F)
	if numBytes == 0 {
		err = errorIndefiniteProhibited
		return
	}
	if numBytes > maxLengthOfLengthBytes {
		err = errorLengthTooLarge
		return
	}

	buf := make([]byte, numBytes)
	if _, err = io.ReadFull(r, buf); err != nil {
		return
	}
	bytesRead += numBytes

	for _, b := range buf {
		n = (n << 8) | int(b)
	}
	if n < 0 {
		n = 0
		err = errorLengthTooLarge
	}
	return
}
