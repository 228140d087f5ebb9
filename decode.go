// Package textcodec converts byte buffers tagged with a character set
// into a canonical wide-string form (UTF-16 code units) and back to
// UTF-8. Decoding is total: malformed byte sequences never fail, they
// fall back to emitting the raw byte value, so corrupted payloads still
// surface as text. The only error in the package is an unresolvable
// charset name at the registry boundary.
package textcodec

import "github.com/ericlevine/textcodec/charset"

// Decode converts data from the given character set into a sequence of
// UTF-16 code units. Codepoints above U+FFFF become surrogate pairs.
// The whole buffer is always consumed; every step advances at least one
// byte.
func Decode(data []byte, cs charset.Charset) []uint16 {
	switch cs.Strategy() {
	case charset.StrategySingleByte:
		return decodeSingleByte(data, cs.Table())
	case charset.StrategyShiftJIS:
		return decodeShiftJIS(data)
	case charset.StrategyBig5, charset.StrategyGB2312, charset.StrategyEUCKR:
		return decodeDoubleByte(data, cs)
	case charset.StrategyGB18030:
		return decodeGB18030(data)
	case charset.StrategyEUCJP:
		return decodeEUCJP(data)
	case charset.StrategyUTF8:
		return decodeUTF8(data)
	case charset.StrategyUTF16BE:
		return decodeUTF16(data, true)
	case charset.StrategyUTF16LE:
		return decodeUTF16(data, false)
	case charset.StrategyUTF32BE:
		return decodeUTF32(data, true)
	case charset.StrategyUTF32LE:
		return decodeUTF32(data, false)
	default:
		return decodeBinary(data)
	}
}

// DecodeString decodes data and re-encodes the result as a UTF-8
// string, the form the host-binding layer consumes.
func DecodeString(data []byte, cs charset.Charset) string {
	return string(WideToUTF8(Decode(data, cs)))
}

// appendScalar appends one Unicode scalar value, as a surrogate pair if
// it lies above the BMP.
func appendScalar(w []uint16, cp rune) []uint16 {
	if cp > 0xFFFF {
		cp -= 0x10000
		return append(w, uint16(0xD800|cp>>10), uint16(0xDC00|cp&0x3FF))
	}
	return append(w, uint16(cp))
}

// decodeBinary is the identity passthrough used for BINARY and ASCII.
// It accepts any byte, including non-ASCII values.
func decodeBinary(data []byte) []uint16 {
	w := make([]uint16, len(data))
	for i, b := range data {
		w[i] = uint16(b)
	}
	return w
}

func decodeSingleByte(data []byte, table *[256]rune) []uint16 {
	w := make([]uint16, len(data))
	for i, b := range data {
		w[i] = uint16(table[b])
	}
	return w
}

func decodeShiftJIS(data []byte) []uint16 {
	w := make([]uint16, 0, len(data))
	for i := 0; i < len(data); i++ {
		b := data[i]
		switch {
		case b < 0x80:
			// Direct ASCII, unconditionally: 0x5C stays backslash and
			// 0x7E stays tilde, not the JIS X 0201 Yen sign / overline.
			w = append(w, uint16(b))
		case b >= 0xA1 && b <= 0xDF:
			// half-width katakana
			w = append(w, uint16(0xFF61+rune(b)-0xA1))
		default:
			if i+1 < len(data) {
				if r, ok := charset.LookupDouble(charset.ShiftJIS, b, data[i+1]); ok {
					w = appendScalar(w, r)
					i++
					continue
				}
			}
			w = append(w, uint16(b))
		}
	}
	return w
}

// decodeDoubleByte handles Big5, GB2312 and EUC-KR: ASCII below 0x80,
// lead+trail table lookup above, raw byte value when the pair has no
// mapping.
func decodeDoubleByte(data []byte, cs charset.Charset) []uint16 {
	w := make([]uint16, 0, len(data))
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b < 0x80 {
			w = append(w, uint16(b))
			continue
		}
		if i+1 < len(data) {
			if r, ok := charset.LookupDouble(cs, b, data[i+1]); ok {
				w = appendScalar(w, r)
				i++
				continue
			}
		}
		w = append(w, uint16(b))
	}
	return w
}

func decodeGB18030(data []byte) []uint16 {
	w := make([]uint16, 0, len(data))
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b < 0x80 {
			w = append(w, uint16(b))
			continue
		}
		if b >= 0x81 && i+1 < len(data) {
			if r, ok := charset.LookupDouble(charset.GB18030, b, data[i+1]); ok {
				w = appendScalar(w, r)
				i++
				continue
			}
			// Two bytes did not resolve; a trail digit marks the
			// four-byte extension form.
			if t := data[i+1]; t >= 0x30 && t <= 0x39 && i+3 < len(data) &&
				data[i+2] >= 0x81 && data[i+2] <= 0xFE &&
				data[i+3] >= 0x30 && data[i+3] <= 0x39 {
				idx := int(b-0x81)*12600 + int(t-0x30)*1260 +
					int(data[i+2]-0x81)*10 + int(data[i+3]-0x30)
				if r, ok := charset.LookupGB18030Linear(idx); ok {
					w = appendScalar(w, r)
					i += 3
					continue
				}
			}
		}
		w = append(w, uint16(b))
	}
	return w
}

func decodeEUCJP(data []byte) []uint16 {
	w := make([]uint16, 0, len(data))
	for i := 0; i < len(data); i++ {
		b := data[i]
		switch {
		case b < 0x80:
			w = append(w, uint16(b))
		case b == 0x8E:
			// single-shift to half-width katakana
			if i+1 < len(data) && data[i+1] >= 0xA1 && data[i+1] <= 0xDF {
				w = append(w, uint16(0xFF61+rune(data[i+1])-0xA1))
				i++
				continue
			}
			w = append(w, uint16(b))
		case b == 0x8F:
			// single-shift to JIS X 0212
			if i+2 < len(data) {
				if r, ok := charset.LookupEUCJPPlane2(data[i+1], data[i+2]); ok {
					w = appendScalar(w, r)
					i += 2
					continue
				}
			}
			w = append(w, uint16(b))
		default:
			if i+1 < len(data) {
				if r, ok := charset.LookupDouble(charset.EUCJP, b, data[i+1]); ok {
					w = appendScalar(w, r)
					i++
					continue
				}
			}
			w = append(w, uint16(b))
		}
	}
	return w
}

// decodeUTF8 is a tolerant UTF-8 decoder: any byte that does not begin
// or complete a well-formed sequence is emitted as its own codepoint
// and decoding resynchronizes at the next byte.
func decodeUTF8(data []byte) []uint16 {
	w := make([]uint16, 0, len(data))
	for i := 0; i < len(data); {
		b := data[i]
		if b < 0x80 {
			w = append(w, uint16(b))
			i++
			continue
		}
		var size int
		var cp rune
		switch {
		case b&0xE0 == 0xC0:
			size, cp = 2, rune(b&0x1F)
		case b&0xF0 == 0xE0:
			size, cp = 3, rune(b&0x0F)
		case b&0xF8 == 0xF0:
			size, cp = 4, rune(b&0x07)
		default:
			// stray continuation byte or invalid lead
			w = append(w, uint16(b))
			i++
			continue
		}
		if i+size > len(data) {
			w = append(w, uint16(b))
			i++
			continue
		}
		ok := true
		for j := 1; j < size; j++ {
			c := data[i+j]
			if c&0xC0 != 0x80 {
				ok = false
				break
			}
			cp = cp<<6 | rune(c&0x3F)
		}
		if !ok || cp > 0x10FFFF ||
			(size == 2 && cp < 0x80) || (size == 3 && cp < 0x800) || (size == 4 && cp < 0x10000) {
			w = append(w, uint16(b))
			i++
			continue
		}
		w = appendScalar(w, cp)
		i += size
	}
	return w
}

// decodeUTF16 consumes two bytes per unit in the declared byte order.
// Surrogate pairs in the input pass through structurally unchanged;
// only the byte order is normalized. A dangling odd byte is emitted as
// its raw value.
func decodeUTF16(data []byte, bigEndian bool) []uint16 {
	w := make([]uint16, 0, len(data)/2+1)
	i := 0
	for ; i+1 < len(data); i += 2 {
		u := takeUint16(data[i:], bigEndian)
		if u >= 0xD800 && u <= 0xDBFF && i+3 < len(data) {
			if lo := takeUint16(data[i+2:], bigEndian); lo >= 0xDC00 && lo <= 0xDFFF {
				w = append(w, u, lo)
				i += 2
				continue
			}
		}
		w = append(w, u)
	}
	if i < len(data) {
		w = append(w, uint16(data[i]))
	}
	return w
}

// decodeUTF32 consumes four bytes per scalar in the declared byte
// order, expanding values above U+FFFF to surrogate pairs. Scalars
// beyond U+10FFFF have no UTF-16 form and become U+FFFD. Trailing bytes
// of a short final word are emitted as raw values.
func decodeUTF32(data []byte, bigEndian bool) []uint16 {
	w := make([]uint16, 0, len(data)/4+3)
	i := 0
	for ; i+3 < len(data); i += 4 {
		var v uint32
		if bigEndian {
			v = uint32(data[i])<<24 | uint32(data[i+1])<<16 | uint32(data[i+2])<<8 | uint32(data[i+3])
		} else {
			v = uint32(data[i+3])<<24 | uint32(data[i+2])<<16 | uint32(data[i+1])<<8 | uint32(data[i])
		}
		if v > 0x10FFFF {
			w = append(w, charset.Replacement)
			continue
		}
		w = appendScalar(w, rune(v))
	}
	for ; i < len(data); i++ {
		w = append(w, uint16(data[i]))
	}
	return w
}

func takeUint16(data []byte, bigEndian bool) uint16 {
	if bigEndian {
		return uint16(data[0])<<8 | uint16(data[1])
	}
	return uint16(data[1])<<8 | uint16(data[0])
}
