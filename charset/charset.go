// Package charset maps character set names and ECI values to decoding
// strategies and lookup tables.
package charset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCharset is returned when a name does not resolve to any
// registered character set.
var ErrUnknownCharset = errors.New("charset: unknown charset")

// Charset identifies a registered character set.
type Charset int

const (
	Binary Charset = iota
	ASCII
	ISO8859_1
	ISO8859_2
	ISO8859_3
	ISO8859_4
	ISO8859_5
	ISO8859_6
	ISO8859_7
	ISO8859_8
	ISO8859_9
	ISO8859_10
	ISO8859_11
	ISO8859_13
	ISO8859_14
	ISO8859_15
	ISO8859_16
	Cp437
	Cp1250
	Cp1251
	Cp1252
	Cp1256
	ShiftJIS
	Big5
	GB2312
	GB18030
	EUCKR
	EUCJP
	UTF8
	UTF16BE
	UTF16LE
	UTF32BE
	UTF32LE

	numCharsets
)

// Strategy is the decoding algorithm family a Charset is bound to.
type Strategy int

const (
	StrategySingleByte Strategy = iota
	StrategyShiftJIS
	StrategyBig5
	StrategyGB2312
	StrategyGB18030
	StrategyEUCKR
	StrategyEUCJP
	StrategyUTF8
	StrategyUTF16BE
	StrategyUTF16LE
	StrategyUTF32BE
	StrategyUTF32LE
	StrategyBinary
)

var names = [numCharsets]string{
	Binary:     "BINARY",
	ASCII:      "ASCII",
	ISO8859_1:  "ISO8859_1",
	ISO8859_2:  "ISO8859_2",
	ISO8859_3:  "ISO8859_3",
	ISO8859_4:  "ISO8859_4",
	ISO8859_5:  "ISO8859_5",
	ISO8859_6:  "ISO8859_6",
	ISO8859_7:  "ISO8859_7",
	ISO8859_8:  "ISO8859_8",
	ISO8859_9:  "ISO8859_9",
	ISO8859_10: "ISO8859_10",
	ISO8859_11: "ISO8859_11",
	ISO8859_13: "ISO8859_13",
	ISO8859_14: "ISO8859_14",
	ISO8859_15: "ISO8859_15",
	ISO8859_16: "ISO8859_16",
	Cp437:      "Cp437",
	Cp1250:     "Cp1250",
	Cp1251:     "Cp1251",
	Cp1252:     "Cp1252",
	Cp1256:     "Cp1256",
	ShiftJIS:   "Shift_JIS",
	Big5:       "Big5",
	GB2312:     "GB2312",
	GB18030:    "GB18030",
	EUCKR:      "EUC_KR",
	EUCJP:      "EUC_JP",
	UTF8:       "UTF8",
	UTF16BE:    "UTF16BE",
	UTF16LE:    "UTF16LE",
	UTF32BE:    "UTF32BE",
	UTF32LE:    "UTF32LE",
}

var strategies = [numCharsets]Strategy{
	Binary:     StrategyBinary,
	ASCII:      StrategyBinary,
	ISO8859_1:  StrategySingleByte,
	ISO8859_2:  StrategySingleByte,
	ISO8859_3:  StrategySingleByte,
	ISO8859_4:  StrategySingleByte,
	ISO8859_5:  StrategySingleByte,
	ISO8859_6:  StrategySingleByte,
	ISO8859_7:  StrategySingleByte,
	ISO8859_8:  StrategySingleByte,
	ISO8859_9:  StrategySingleByte,
	ISO8859_10: StrategySingleByte,
	ISO8859_11: StrategySingleByte,
	ISO8859_13: StrategySingleByte,
	ISO8859_14: StrategySingleByte,
	ISO8859_15: StrategySingleByte,
	ISO8859_16: StrategySingleByte,
	Cp437:      StrategySingleByte,
	Cp1250:     StrategySingleByte,
	Cp1251:     StrategySingleByte,
	Cp1252:     StrategySingleByte,
	Cp1256:     StrategySingleByte,
	ShiftJIS:   StrategyShiftJIS,
	Big5:       StrategyBig5,
	GB2312:     StrategyGB2312,
	GB18030:    StrategyGB18030,
	EUCKR:      StrategyEUCKR,
	EUCJP:      StrategyEUCJP,
	UTF8:       StrategyUTF8,
	UTF16BE:    StrategyUTF16BE,
	UTF16LE:    StrategyUTF16LE,
	UTF32BE:    StrategyUTF32BE,
	UTF32LE:    StrategyUTF32LE,
}

// aliases maps normalized alternate spellings to charsets. Canonical
// names resolve through the same index and need no entry here.
var aliases = map[string]Charset{
	"SJIS":               ShiftJIS,
	"LATIN1":             ISO8859_1,
	"CP819":              ISO8859_1,
	"USASCII":            ASCII,
	"ISO646US":           ASCII,
	"EUCCN":              GB2312,
	"GBK":                GB18030,
	"BIG5HKSCS":          Big5,
	"TIS620":             ISO8859_11,
	"WINDOWS874":         ISO8859_11,
	"IBM437":             Cp437,
	"WINDOWS1250":        Cp1250,
	"WINDOWS1251":        Cp1251,
	"WINDOWS1252":        Cp1252,
	"WINDOWS1256":        Cp1256,
	"UNICODEBIG":         UTF16BE,
	"UNICODEBIGUNMARKED": UTF16BE,
	"UNICODELITTLE":      UTF16LE,
	"UTF16":              UTF16BE,
	"UTF32":              UTF32BE,
}

var byName map[string]Charset

func init() {
	byName = make(map[string]Charset, int(numCharsets)+len(aliases))
	for cs := Charset(0); cs < numCharsets; cs++ {
		byName[normalizeName(names[cs])] = cs
	}
	for name, cs := range aliases {
		byName[name] = cs
	}
}

// normalizeName upper-cases a charset name and strips the separators
// that vary between spellings ("Shift_JIS", "shift-jis", "SHIFT JIS").
func normalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		switch c := name[i]; c {
		case '-', '_', ' ':
		default:
			if 'a' <= c && c <= 'z' {
				c -= 'a' - 'A'
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FromName resolves a canonical or alias name to a Charset. Matching is
// case-insensitive and ignores "-", "_" and " " separators. Returns
// ErrUnknownCharset if no registered charset matches; there is no
// fallback to a default.
func FromName(name string) (Charset, error) {
	if cs, ok := byName[normalizeName(name)]; ok {
		return cs, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
}

// String returns the canonical name of the charset.
// FromName(cs.String()) round-trips for every registered value.
func (c Charset) String() string {
	if c < 0 || c >= numCharsets {
		return "UNKNOWN"
	}
	return names[c]
}

// Strategy returns the decoding strategy the charset dispatches to.
func (c Charset) Strategy() Strategy {
	if c < 0 || c >= numCharsets {
		return StrategyBinary
	}
	return strategies[c]
}

// Table returns the 256-entry byte-to-codepoint table for single-byte
// charsets, or nil for every other strategy. Entries 0x00-0x7F are the
// shared ASCII identity sub-table; unmapped high slots hold U+FFFD.
func (c Charset) Table() *[256]rune {
	if c < 0 || c >= numCharsets {
		return nil
	}
	return singleByteTables[c]
}

// All returns every registered charset in enumeration order.
func All() []Charset {
	all := make([]Charset, numCharsets)
	for i := range all {
		all[i] = Charset(i)
	}
	return all
}
