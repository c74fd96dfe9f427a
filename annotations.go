package goban

import "strconv"

// --- Grid Line Annotation Labels ---

// latinLetters is the alphabet used for letter labels. "I" is left out,
// as on real boards, so the 9th column reads "J".
const latinLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// annotationLabel returns the label for grid line index (0-based) in
// the given style, or "" for AnnotationNone. Labels are distinct and
// non-empty for every index of an annotated axis, for any axis length.
func annotationLabel(style AnnotationStyle, index int) string {
	switch style {
	case AnnotationArabic:
		return strconv.Itoa(index + 1)
	case AnnotationLatin:
		return latinLabel(index)
	case AnnotationChinese:
		return chineseNumeral(index + 1)
	case AnnotationRoman:
		return romanNumeral(index + 1)
	default:
		return ""
	}
}

// latinLabel counts A..Z (no I), then AA, AB, ... - bijective base 25,
// so every index gets a unique label no matter how long the axis is.
func latinLabel(index int) string {
	n := index + 1
	var out []byte
	for n > 0 {
		n--
		out = append([]byte{latinLetters[n%len(latinLetters)]}, out...)
		n /= len(latinLetters)
	}
	return string(out)
}

// --- Chinese Numerals ---

var (
	chineseDigits = []string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	chineseUnits  = []string{"", "十", "百", "千"}
)

// chineseNumeral composes n (n >= 1) in standard Chinese numerals:
// 一 二 ... 十 十一 ... 二十 ... 一百 一百零一 ... with 万 groups above
// 9999, so arbitrarily long axes stay labelable.
func chineseNumeral(n int) string {
	if n < 10000 {
		return chineseSmall(n)
	}
	high := chineseNumeral(n/10000) + "万"
	rest := n % 10000
	if rest == 0 {
		return high
	}
	if rest < 1000 {
		// An interior gap of units is marked with a single 零.
		return high + chineseDigits[0] + chineseSmall(rest)
	}
	return high + chineseSmall(rest)
}

func chineseSmall(n int) string {
	if n == 0 {
		return chineseDigits[0]
	}
	var out string
	started := false
	pendingZero := false
	for pos, p := 3, 1000; pos >= 0; pos, p = pos-1, p/10 {
		d := (n / p) % 10
		if d == 0 {
			if started {
				pendingZero = true
			}
			continue
		}
		if pendingZero {
			out += chineseDigits[0]
			pendingZero = false
		}
		// 10..19 read 十.. rather than 一十..
		if !(d == 1 && pos == 1 && !started) {
			out += chineseDigits[d]
		}
		out += chineseUnits[pos]
		started = true
	}
	return out
}

// --- Roman Numerals ---

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// romanNumeral composes n (n >= 1) with the usual subtractive rules;
// values past 3999 just stack more M, which keeps labels unique.
func romanNumeral(n int) string {
	var out string
	for _, entry := range romanTable {
		for n >= entry.value {
			out += entry.symbol
			n -= entry.value
		}
	}
	return out
}
