package goban

import "errors"

// Sentinel errors returned by NewBoardSpec and BuildLayout.
// Callers should branch with errors.Is; the wrapped message carries the
// offending parameter and value.
var (
	// ErrInvalidDimension - a board axis is smaller than 2 lines.
	ErrInvalidDimension = errors.New("goban: invalid board dimension")

	// ErrInvalidSpacingOrWidth - a spacing, line width, diameter or font
	// size is not positive.
	ErrInvalidSpacingOrWidth = errors.New("goban: invalid spacing or width")

	// ErrInvalidStarPoint - an explicit star point lies outside the grid,
	// or an integer stride is not positive.
	ErrInvalidStarPoint = errors.New("goban: invalid star point")

	// ErrInvalidAnnotationStyle - an annotation style outside the
	// supported set (none, arabic_numerals, latin_letters,
	// chinese_numerals, roman_numerals).
	ErrInvalidAnnotationStyle = errors.New("goban: invalid annotation style")
)
