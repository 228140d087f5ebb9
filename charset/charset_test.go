package charset

import (
	"errors"
	"testing"
)

func TestNameRoundTrip(t *testing.T) {
	for _, cs := range All() {
		got, err := FromName(cs.String())
		if err != nil {
			t.Errorf("FromName(%q) error: %v", cs.String(), err)
			continue
		}
		if got != cs {
			t.Errorf("FromName(%q) = %v, want %v", cs.String(), got, cs)
		}
	}
}

func TestFromNameAliases(t *testing.T) {
	cases := []struct {
		name string
		want Charset
	}{
		{"BINARY", Binary},
		{"ASCII", ASCII},
		{"US-ASCII", ASCII},
		{"ISO8859_1", ISO8859_1},
		{"ISO-8859-1", ISO8859_1},
		{"iso-8859-15", ISO8859_15},
		{"latin1", ISO8859_1},
		{"Shift_JIS", ShiftJIS},
		{"SJIS", ShiftJIS},
		{"shift-jis", ShiftJIS},
		{"Big5", Big5},
		{"GB2312", GB2312},
		{"EUC-CN", GB2312},
		{"GBK", GB18030},
		{"GB18030", GB18030},
		{"EUC_KR", EUCKR},
		{"euc-kr", EUCKR},
		{"EUC_JP", EUCJP},
		{"UTF8", UTF8},
		{"utf-8", UTF8},
		{"UTF-16BE", UTF16BE},
		{"UnicodeBig", UTF16BE},
		{"UTF16LE", UTF16LE},
		{"UTF32BE", UTF32BE},
		{"utf-32le", UTF32LE},
		{"windows-1252", Cp1252},
		{"IBM437", Cp437},
	}
	for _, c := range cases {
		got, err := FromName(c.name)
		if err != nil {
			t.Errorf("FromName(%q) error: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("FromName(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFromNameUnknown(t *testing.T) {
	for _, name := range []string{"", "KLINGON", "ISO8859_12", "UTF-7"} {
		if _, err := FromName(name); !errors.Is(err, ErrUnknownCharset) {
			t.Errorf("FromName(%q) error = %v, want ErrUnknownCharset", name, err)
		}
	}
}

func TestFromECI(t *testing.T) {
	cases := []struct {
		value int
		want  Charset
	}{
		{0, Cp437},
		{1, ISO8859_1},
		{2, Cp437},
		{3, ISO8859_1},
		{4, ISO8859_2},
		{13, ISO8859_11},
		{15, ISO8859_13},
		{18, ISO8859_16},
		{20, ShiftJIS},
		{23, Cp1252},
		{25, UTF16BE},
		{26, UTF8},
		{27, ASCII},
		{28, Big5},
		{29, GB2312},
		{30, EUCKR},
		{31, GB18030},
		{32, GB18030},
		{33, UTF16LE},
		{34, UTF32BE},
		{35, UTF32LE},
		{170, ASCII},
		{899, Binary},
	}
	for _, c := range cases {
		got, err := FromECI(c.value)
		if err != nil {
			t.Errorf("FromECI(%d) error: %v", c.value, err)
			continue
		}
		if got != c.want {
			t.Errorf("FromECI(%d) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestFromECIInvalid(t *testing.T) {
	for _, v := range []int{-1, 14, 19, 36, 900, 1000000} {
		if _, err := FromECI(v); !errors.Is(err, ErrInvalidECI) {
			t.Errorf("FromECI(%d) error = %v, want ErrInvalidECI", v, err)
		}
	}
}

func TestECIRoundTrip(t *testing.T) {
	for _, cs := range All() {
		v := cs.ECI()
		if v < 0 {
			if cs != EUCJP {
				t.Errorf("%v has no ECI designator", cs)
			}
			continue
		}
		got, err := FromECI(v)
		if err != nil {
			t.Errorf("FromECI(%d) error: %v", v, err)
			continue
		}
		if got != cs {
			t.Errorf("FromECI(%d) = %v, want %v", v, got, cs)
		}
	}
}

func TestStrategy(t *testing.T) {
	cases := []struct {
		cs   Charset
		want Strategy
	}{
		{Binary, StrategyBinary},
		{ASCII, StrategyBinary},
		{ISO8859_1, StrategySingleByte},
		{Cp1251, StrategySingleByte},
		{ShiftJIS, StrategyShiftJIS},
		{Big5, StrategyBig5},
		{GB2312, StrategyGB2312},
		{GB18030, StrategyGB18030},
		{EUCKR, StrategyEUCKR},
		{EUCJP, StrategyEUCJP},
		{UTF8, StrategyUTF8},
		{UTF16BE, StrategyUTF16BE},
		{UTF16LE, StrategyUTF16LE},
		{UTF32BE, StrategyUTF32BE},
		{UTF32LE, StrategyUTF32LE},
	}
	for _, c := range cases {
		if got := c.cs.Strategy(); got != c.want {
			t.Errorf("%v.Strategy() = %v, want %v", c.cs, got, c.want)
		}
	}
}

func TestTablePresence(t *testing.T) {
	for _, cs := range All() {
		table := cs.Table()
		if cs.Strategy() == StrategySingleByte {
			if table == nil {
				t.Errorf("%v.Table() = nil, want table", cs)
			}
			continue
		}
		if table != nil {
			t.Errorf("%v.Table() != nil, want nil", cs)
		}
	}
}
