package der

/*
tag.go contains the X.690 identifier octet codec: the class, the
primitive/constructed bit, and the tag number in both its
low-tag-number (single octet) and high-tag-number (base-128
continuation) forms.
*/

import "io"

// maxTagBits bounds the accumulated tag value so it never overflows a
// uint32.
const maxTagBits = 31

/*
EncodeTag writes the identifier octet(s) for the given tag number,
class and primitive/constructed flag to w.
*/
func EncodeTag(w io.Writer, num uint32, class Class, constructed bool) error {
	var first byte = byte(class) << 6
	if constructed {
		first |= 0x20
	}

	if num < 31 {
		first |= byte(num)
		_, err := w.Write([]byte{first})
		return err
	}

	first |= 0x1F
	if _, err := w.Write([]byte{first}); err != nil {
		return err
	}
	return writeBase128(w, num)
}

// writeBase128 writes num as a base-128, big-endian, continuation-coded
// sequence of bytes (0x80 bit set on every byte but the last). A zero
// tag number is emitted as a single zero continuation byte.
func writeBase128(w io.Writer, num uint32) error {
	var groups [5]byte
	n := 0
	groups[0] = byte(num & 0x7F)
	num >>= 7
	n++
	for num > 0 {
		groups[n] = byte(num&0x7F) | 0x80
		num >>= 7
		n++
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = groups[n-1-i]
	}
	_, err := w.Write(out)
	return err
}

/*
DecodeTag reads an identifier octet (or octets, for the high-tag-number
form) from r and returns the tag number, class, primitive/constructed
flag, and the count of octets consumed.
*/
func DecodeTag(r io.Reader) (num uint32, class Class, constructed bool, n int, err error) {
	var hdr [1]byte
	if _, err = io.ReadFull(r, hdr[:]); err != nil {
		return
	}
	n = 1

	class = Class(hdr[0] >> 6)
	constructed = hdr[0]&0x20 != 0

	low := hdr[0] & 0x1F
	if low != 0x1F {
		num = uint32(low)
		return
	}

	// High-tag-number form: base-128 continuation, MSB-first, terminated
	// by a byte whose top bit is clear.
	var bitWidth int
	var buf [1]byte
	for {
		if _, rerr := io.ReadFull(r, buf[:]); rerr != nil {
			err = errorTruncatedTag
			return
		}
		n++
		num = (num << 7) | uint32(buf[0]&0x7F)
		bitWidth += 7
		if bitWidth > maxTagBits {
			err = errorTagTooLarge
			return
		}
		if buf[0]&0x80 == 0 {
			break
		}
	}
	trace("decode tag", "num", num, "class", class, "constructed", constructed)
	return
}
