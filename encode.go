package textcodec

// EncodeScalarUTF8 writes the UTF-8 encoding of cp into dst and returns
// the number of bytes written: one byte through U+007F, two through
// U+07FF, three through U+FFFF (unpaired surrogates included, so
// malformed wide strings still encode), four through U+10FFFF. Values
// beyond U+10FFFF encode as U+FFFD. dst must have room for four bytes.
func EncodeScalarUTF8(dst []byte, cp uint32) int {
	switch {
	case cp <= 0x7F:
		dst[0] = byte(cp)
		return 1
	case cp <= 0x7FF:
		dst[0] = 0xC0 | byte(cp>>6)
		dst[1] = 0x80 | byte(cp)&0x3F
		return 2
	case cp <= 0xFFFF:
		dst[0] = 0xE0 | byte(cp>>12)
		dst[1] = 0x80 | byte(cp>>6)&0x3F
		dst[2] = 0x80 | byte(cp)&0x3F
		return 3
	case cp <= 0x10FFFF:
		dst[0] = 0xF0 | byte(cp>>18)
		dst[1] = 0x80 | byte(cp>>12)&0x3F
		dst[2] = 0x80 | byte(cp>>6)&0x3F
		dst[3] = 0x80 | byte(cp)&0x3F
		return 4
	default:
		return EncodeScalarUTF8(dst, 0xFFFD)
	}
}

// WideToUTF8 encodes a wide string as UTF-8. A high surrogate followed
// by a low surrogate is recombined into one scalar before encoding;
// an unpaired surrogate is encoded as a lone three-byte unit rather
// than failing.
func WideToUTF8(wide []uint16) []byte {
	out := make([]byte, 0, len(wide)*3)
	var buf [4]byte
	for i := 0; i < len(wide); i++ {
		cp := uint32(wide[i])
		if cp >= 0xD800 && cp <= 0xDBFF && i+1 < len(wide) {
			if lo := uint32(wide[i+1]); lo >= 0xDC00 && lo <= 0xDFFF {
				cp = 0x10000 + (cp-0xD800)<<10 + (lo - 0xDC00)
				i++
			}
		}
		n := EncodeScalarUTF8(buf[:], cp)
		out = append(out, buf[:n]...)
	}
	return out
}
