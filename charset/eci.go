package charset

import (
	"errors"
	"fmt"
)

// ErrInvalidECI is returned for ECI values outside the assigned range.
var ErrInvalidECI = errors.New("charset: invalid ECI value")

// eciAssignments lists the AIM ECI designators for each charset. The
// first value is the canonical one reported by ECI; the rest are
// historical duplicates that still resolve.
var eciAssignments = map[Charset][]int{
	Cp437:      {2, 0},
	ISO8859_1:  {3, 1},
	ISO8859_2:  {4},
	ISO8859_3:  {5},
	ISO8859_4:  {6},
	ISO8859_5:  {7},
	ISO8859_6:  {8},
	ISO8859_7:  {9},
	ISO8859_8:  {10},
	ISO8859_9:  {11},
	ISO8859_10: {12},
	ISO8859_11: {13},
	ISO8859_13: {15},
	ISO8859_14: {16},
	ISO8859_15: {17},
	ISO8859_16: {18},
	ShiftJIS:   {20},
	Cp1250:     {21},
	Cp1251:     {22},
	Cp1252:     {23},
	Cp1256:     {24},
	UTF16BE:    {25},
	UTF8:       {26},
	ASCII:      {27, 170},
	Big5:       {28},
	GB2312:     {29},
	GB18030:    {32, 31},
	EUCKR:      {30},
	UTF16LE:    {33},
	UTF32BE:    {34},
	UTF32LE:    {35},
	Binary:     {899},
}

var byECI map[int]Charset

func init() {
	byECI = make(map[int]Charset, len(eciAssignments)+4)
	for cs, values := range eciAssignments {
		for _, v := range values {
			byECI[v] = cs
		}
	}
}

// FromECI resolves an ECI designator to a Charset. Returns
// ErrInvalidECI for out-of-range or unassigned values.
func FromECI(value int) (Charset, error) {
	if value < 0 || value > 899 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidECI, value)
	}
	cs, ok := byECI[value]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidECI, value)
	}
	return cs, nil
}

// ECI returns the canonical ECI designator for the charset, or -1 if
// none is assigned (EUC_JP has no designator).
func (c Charset) ECI() int {
	if values, ok := eciAssignments[c]; ok {
		return values[0]
	}
	return -1
}
