package charset

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Replacement marks table slots with no defined mapping. Decoding still
// emits it rather than failing; legacy payloads are expected to be noisy.
const Replacement = 0xFFFD

const (
	// gb18030LinearBMP is the number of four-byte GB18030 sequences in
	// the BMP section: linear offsets 0 (0x81308130) through 39419
	// (0x8431A439) cover U+0080..U+FFFF, minus the two-byte code space.
	gb18030LinearBMP = 39420

	// gb18030LinearSupp is the linear offset of 0x90308130, the start of
	// the supplementary section. From here the mapping to
	// U+10000..U+10FFFF is a pure offset.
	gb18030LinearSupp = 189000
)

var (
	singleByteTables [numCharsets]*[256]rune
	doubleByteTables [numCharsets]map[uint16]rune
	eucjpPlane2      map[uint16]rune
	gb18030Linear    [gb18030LinearBMP]rune
)

// Tables are derived once from the x/text encodings and are read-only
// afterwards; package init is the happens-before barrier that makes
// concurrent lookups safe without locking.
func init() {
	for cs, cm := range map[Charset]*charmap.Charmap{
		ISO8859_1:  charmap.ISO8859_1,
		ISO8859_2:  charmap.ISO8859_2,
		ISO8859_3:  charmap.ISO8859_3,
		ISO8859_4:  charmap.ISO8859_4,
		ISO8859_5:  charmap.ISO8859_5,
		ISO8859_6:  charmap.ISO8859_6,
		ISO8859_7:  charmap.ISO8859_7,
		ISO8859_8:  charmap.ISO8859_8,
		ISO8859_9:  charmap.ISO8859_9,
		ISO8859_10: charmap.ISO8859_10,
		// ISO-8859-11 with the CP874 extensions in 0x80-0x9F, matching
		// the historical tables barcode payloads were produced against.
		ISO8859_11: charmap.Windows874,
		ISO8859_13: charmap.ISO8859_13,
		ISO8859_14: charmap.ISO8859_14,
		ISO8859_15: charmap.ISO8859_15,
		ISO8859_16: charmap.ISO8859_16,
		Cp437:      charmap.CodePage437,
		Cp1250:     charmap.Windows1250,
		Cp1251:     charmap.Windows1251,
		Cp1252:     charmap.Windows1252,
		Cp1256:     charmap.Windows1256,
	} {
		singleByteTables[cs] = buildSingleByteTable(cm)
	}

	doubleByteTables[ShiftJIS] = buildDoubleByteTable(japanese.ShiftJIS,
		[][2]byte{{0x81, 0x9F}, {0xE0, 0xFC}}, [2]byte{0x40, 0xFC})
	doubleByteTables[Big5] = buildDoubleByteTable(traditionalchinese.Big5,
		[][2]byte{{0x81, 0xFE}}, [2]byte{0x40, 0xFE})
	// GB2312 proper is the EUC range of GBK.
	doubleByteTables[GB2312] = buildDoubleByteTable(simplifiedchinese.GBK,
		[][2]byte{{0xA1, 0xF7}}, [2]byte{0xA1, 0xFE})
	doubleByteTables[GB18030] = buildDoubleByteTable(simplifiedchinese.GB18030,
		[][2]byte{{0x81, 0xFE}}, [2]byte{0x40, 0xFE})
	doubleByteTables[EUCKR] = buildDoubleByteTable(korean.EUCKR,
		[][2]byte{{0x81, 0xFE}}, [2]byte{0x41, 0xFE})
	doubleByteTables[EUCJP] = buildDoubleByteTable(japanese.EUCJP,
		[][2]byte{{0xA1, 0xFE}}, [2]byte{0xA1, 0xFE})

	eucjpPlane2 = buildEUCJPPlane2()
	buildGB18030Linear()
}

// buildSingleByteTable fills a 256-entry table: the low half is the
// 7-bit ASCII identity sub-table shared by every single-byte charset,
// the high half comes from the charmap.
func buildSingleByteTable(cm *charmap.Charmap) *[256]rune {
	var t [256]rune
	for i := 0; i < 0x80; i++ {
		t[i] = rune(i)
	}
	for i := 0x80; i < 0x100; i++ {
		t[i] = cm.DecodeByte(byte(i))
	}
	return &t
}

// buildDoubleByteTable runs every lead/trail window through the
// encoding's decoder and keeps the pairs that decode to exactly one
// codepoint. The table is keyed by lead<<8|trail.
func buildDoubleByteTable(enc encoding.Encoding, leads [][2]byte, trail [2]byte) map[uint16]rune {
	dec := enc.NewDecoder()
	table := make(map[uint16]rune)
	pair := make([]byte, 2)
	for _, lr := range leads {
		for lead := int(lr[0]); lead <= int(lr[1]); lead++ {
			for t := int(trail[0]); t <= int(trail[1]); t++ {
				pair[0], pair[1] = byte(lead), byte(t)
				if r, ok := decodeWhole(dec, pair); ok {
					table[uint16(lead)<<8|uint16(t)] = r
				}
			}
		}
	}
	return table
}

// buildEUCJPPlane2 tables the JIS X 0212 plane reached through the
// 0x8F single-shift, keyed by the two bytes after the shift.
func buildEUCJPPlane2() map[uint16]rune {
	dec := japanese.EUCJP.NewDecoder()
	table := make(map[uint16]rune)
	seq := make([]byte, 3)
	for b2 := 0xA1; b2 <= 0xFE; b2++ {
		for b3 := 0xA1; b3 <= 0xFE; b3++ {
			seq[0], seq[1], seq[2] = 0x8F, byte(b2), byte(b3)
			if r, ok := decodeWhole(dec, seq); ok {
				table[uint16(b2)<<8|uint16(b3)] = r
			}
		}
	}
	return table
}

// buildGB18030Linear fills the BMP section of the four-byte code space,
// indexed by the sequence's linear offset from 0x81308130.
func buildGB18030Linear() {
	dec := simplifiedchinese.GB18030.NewDecoder()
	quad := make([]byte, 4)
	for idx := 0; idx < gb18030LinearBMP; idx++ {
		quad[0] = byte(0x81 + idx/12600)
		quad[1] = byte(0x30 + idx/1260%10)
		quad[2] = byte(0x81 + idx/10%126)
		quad[3] = byte(0x30 + idx%10)
		if r, ok := decodeWhole(dec, quad); ok {
			gb18030Linear[idx] = r
		} else {
			gb18030Linear[idx] = Replacement
		}
	}
}

// decodeWhole reports the single codepoint the sequence decodes to, or
// false if the decoder rejected any part of it.
func decodeWhole(dec *encoding.Decoder, seq []byte) (rune, bool) {
	out, err := dec.Bytes(seq)
	if err != nil {
		return 0, false
	}
	r, size := utf8.DecodeRune(out)
	if r == utf8.RuneError || size != len(out) {
		return 0, false
	}
	return r, true
}

// LookupDouble resolves a two-byte sequence against the charset's
// double-byte table. ok is false when the charset has no such table or
// the pair has no defined mapping.
func LookupDouble(c Charset, lead, trail byte) (rune, bool) {
	if c < 0 || c >= numCharsets {
		return 0, false
	}
	table := doubleByteTables[c]
	if table == nil {
		return 0, false
	}
	r, ok := table[uint16(lead)<<8|uint16(trail)]
	return r, ok
}

// LookupEUCJPPlane2 resolves the two bytes following an EUC-JP 0x8F
// single-shift against the JIS X 0212 table.
func LookupEUCJPPlane2(b2, b3 byte) (rune, bool) {
	r, ok := eucjpPlane2[uint16(b2)<<8|uint16(b3)]
	return r, ok
}

// LookupGB18030Linear resolves the linear offset of a four-byte GB18030
// sequence, computed as (b1-0x81)*12600 + (b2-0x30)*1260 +
// (b3-0x81)*10 + (b4-0x30). BMP offsets go through the table; the
// supplementary section is a pure offset to U+10000..U+10FFFF.
func LookupGB18030Linear(idx int) (rune, bool) {
	switch {
	case idx >= 0 && idx < gb18030LinearBMP:
		return gb18030Linear[idx], true
	case idx >= gb18030LinearSupp && idx <= gb18030LinearSupp+0x10FFFF-0x10000:
		return rune(0x10000 + idx - gb18030LinearSupp), true
	}
	return 0, false
}
