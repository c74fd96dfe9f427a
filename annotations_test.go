package goban

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArabicLabels(t *testing.T) {
	assert.Equal(t, "1", annotationLabel(AnnotationArabic, 0))
	assert.Equal(t, "9", annotationLabel(AnnotationArabic, 8))
	assert.Equal(t, "19", annotationLabel(AnnotationArabic, 18))
}

func TestLatinLabelsSkipI(t *testing.T) {
	want := []string{"A", "B", "C", "D", "E", "F", "G", "H", "J"}
	for i, expected := range want {
		assert.Equal(t, expected, annotationLabel(AnnotationLatin, i))
	}
}

func TestLatinLabelsWrap(t *testing.T) {
	assert.Equal(t, "Z", latinLabel(24))
	assert.Equal(t, "AA", latinLabel(25))
	assert.Equal(t, "AB", latinLabel(26))
	assert.Equal(t, "AZ", latinLabel(49))
	assert.Equal(t, "BA", latinLabel(50))

	// Labels stay unique over a long axis.
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		label := latinLabel(i)
		assert.NotEmpty(t, label)
		_, dup := seen[label]
		assert.False(t, dup, "duplicate label %q at index %d", label, i)
		seen[label] = struct{}{}
	}
}

func TestChineseNumerals(t *testing.T) {
	cases := map[int]string{
		1:     "一",
		2:     "二",
		9:     "九",
		10:    "十",
		11:    "十一",
		12:    "十二",
		19:    "十九",
		20:    "二十",
		21:    "二十一",
		99:    "九十九",
		100:   "一百",
		101:   "一百零一",
		110:   "一百一十",
		1000:  "一千",
		1005:  "一千零五",
		10000: "一万",
		10001: "一万零一",
		20000: "二万",
	}
	for n, want := range cases {
		assert.Equal(t, want, chineseNumeral(n), "n=%d", n)
	}
}

func TestRomanNumerals(t *testing.T) {
	cases := map[int]string{
		1:    "I",
		3:    "III",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		19:   "XIX",
		40:   "XL",
		90:   "XC",
		400:  "CD",
		1944: "MCMXLIV",
		3999: "MMMCMXCIX",
		4000: "MMMM",
	}
	for n, want := range cases {
		assert.Equal(t, want, romanNumeral(n), "n=%d", n)
	}
}

func TestNoneStyleYieldsNoLabel(t *testing.T) {
	assert.Equal(t, "", annotationLabel(AnnotationNone, 5))
}
