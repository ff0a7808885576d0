package scan

import (
	"errors"
	"io"
	"math/bits"

	"argscan/diag"
)

// decodeUTF8 reads one code point from readByte. It validates the encoding
// byte by byte instead of deferring to the standard decoder so that each
// malformed sequence is reported as its own distinct error.
//
// readByte reports end of input with io.EOF.
func decodeUTF8(readByte func() (byte, error)) (rune, bool, error) {
	b0, err := readByte()
	if errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, diag.IO(err)
	}

	n, acc, derr := utf8Len(b0)
	if derr != nil {
		return 0, false, derr
	}
	if n == 1 {
		return rune(b0), true, nil
	}

	var rest [3]byte
	for i := 0; i < n-1; i++ {
		b, err := readByte()
		if errors.Is(err, io.EOF) {
			return 0, false, diag.Parse("Utf8 expected more bytes.", "")
		}
		if err != nil {
			return 0, false, diag.IO(err)
		}
		rest[i] = b
	}

	if overlongUTF8(b0, rest[0]) {
		return 0, false, diag.Parse("Utf8 overlong encoding.", "")
	}

	for i := 0; i < n-1; i++ {
		if rest[i]&0xC0 != 0x80 {
			return 0, false, diag.Parse("Invalid utf8 trailing byte.", "")
		}
		acc = acc<<6 | uint32(rest[i]&0x3F)
	}

	if acc > 0x10FFFF || (acc >= 0xD800 && acc <= 0xDFFF) {
		return 0, false, diag.Parse("Invalid utf8 code.", "")
	}
	return rune(acc), true, nil
}

// utf8Len determines the sequence length from the count of leading one bits
// of the first byte and returns the payload bits it contributes.
func utf8Len(b byte) (int, uint32, *diag.Error) {
	switch bits.LeadingZeros8(^b) {
	case 0:
		return 1, uint32(b), nil
	case 2:
		return 2, uint32(b & 0x1F), nil
	case 3:
		return 3, uint32(b & 0x0F), nil
	case 4:
		return 4, uint32(b & 0x07), nil
	}
	return 0, 0, diag.Parse("Invalid leading utf8 byte.", "")
}

// overlongUTF8 reports lead/second byte pairs that would encode a code
// point in more bytes than its minimal form.
func overlongUTF8(b0, b1 byte) bool {
	return b0 == 0xC0 || b0 == 0xC1 ||
		(b0 == 0xE0 && b1 < 0xA0) ||
		(b0 == 0xF0 && b1 < 0x90)
}
