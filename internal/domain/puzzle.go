package domain

import (
	"errors"
	"strings"
)

// ErrMalformedGrid is returned when a grid description holds fewer
// than 81 cell tokens.
var ErrMalformedGrid = errors.New("malformed grid")

// Puzzle is a 9x9 grid as 81 digits in row-major order, 0 meaning the
// cell is still unknown.
type Puzzle [81]uint8

// Parse reads a grid description. A '.' or '0' marks an empty cell,
// any other digit is a given, and every other character is ignored,
// so line breaks and pretty-printing borders are harmless.
func Parse(s string) (*Puzzle, error) {
	var p Puzzle
	i := 0
	for _, r := range s {
		if i > 80 {
			break
		}
		switch {
		case r == '.':
			i++
		case r >= '0' && r <= '9':
			p[i] = uint8(r - '0')
			i++
		}
	}
	if i < 81 {
		return nil, ErrMalformedGrid
	}
	return &p, nil
}

// Digits returns the compact 81-character form, '.' for unknowns.
func (p *Puzzle) Digits() string {
	var b strings.Builder
	b.Grow(81)
	for _, v := range p {
		if v == 0 {
			b.WriteByte('.')
		} else {
			b.WriteByte('0' + v)
		}
	}
	return b.String()
}

// Givens counts the filled cells.
func (p *Puzzle) Givens() int {
	n := 0
	for _, v := range p {
		if v != 0 {
			n++
		}
	}
	return n
}

// Solved reports whether every cell holds a digit.
func (p *Puzzle) Solved() bool {
	for _, v := range p {
		if v == 0 {
			return false
		}
	}
	return true
}

const boxBorder = "+------+------+------+\n"

// String renders the grid with box borders, '.' for unknowns.
func (p *Puzzle) String() string {
	var b strings.Builder
	for i, v := range p {
		if i != 0 && i%9 == 0 {
			b.WriteString("|\n")
		}
		if i%27 == 0 {
			b.WriteString(boxBorder)
		}
		if i%3 == 0 {
			b.WriteByte('|')
		}
		if v != 0 {
			b.WriteByte('0' + v)
			b.WriteByte(' ')
		} else {
			b.WriteString(". ")
		}
	}
	b.WriteString("|\n")
	b.WriteString(boxBorder)
	return b.String()
}
