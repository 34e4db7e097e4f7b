// Package glyph draws letters as large block art for the lesson card and the
// tracing canvas.
package glyph

import (
	"strings"
)

// Rows and Cols are the size of a glyph in font cells. Each font cell is
// drawn two terminal columns wide so glyphs look square.
const (
	Rows = 7
	Cols = 6
)

var font = map[rune][Rows]string{
	'A': {"..##..", ".#..#.", "#....#", "#....#", "######", "#....#", "#....#"},
	'B': {"#####.", "#....#", "#....#", "#####.", "#....#", "#....#", "#####."},
	'C': {".####.", "#....#", "#.....", "#.....", "#.....", "#....#", ".####."},
	'D': {"####..", "#...#.", "#....#", "#....#", "#....#", "#...#.", "####.."},
	'E': {"######", "#.....", "#.....", "#####.", "#.....", "#.....", "######"},
	'F': {"######", "#.....", "#.....", "#####.", "#.....", "#.....", "#....."},
	'G': {".####.", "#....#", "#.....", "#..###", "#....#", "#....#", ".####."},
	'H': {"#....#", "#....#", "#....#", "######", "#....#", "#....#", "#....#"},
	'I': {".####.", "..##..", "..##..", "..##..", "..##..", "..##..", ".####."},
	'J': {"..####", "....#.", "....#.", "....#.", "#...#.", "#...#.", ".###.."},
	'K': {"#...#.", "#..#..", "#.#...", "##....", "#.#...", "#..#..", "#...#."},
	'L': {"#.....", "#.....", "#.....", "#.....", "#.....", "#.....", "######"},
	'M': {"#....#", "##..##", "#.##.#", "#....#", "#....#", "#....#", "#....#"},
	'N': {"#....#", "##...#", "#.#..#", "#..#.#", "#...##", "#....#", "#....#"},
	'O': {".####.", "#....#", "#....#", "#....#", "#....#", "#....#", ".####."},
	'P': {"#####.", "#....#", "#....#", "#####.", "#.....", "#.....", "#....."},
	'Q': {".####.", "#....#", "#....#", "#....#", "#..#.#", "#...#.", ".###.#"},
	'R': {"#####.", "#....#", "#....#", "#####.", "#..#..", "#...#.", "#....#"},
	'S': {".####.", "#....#", "#.....", ".####.", ".....#", "#....#", ".####."},
	'T': {"######", "..##..", "..##..", "..##..", "..##..", "..##..", "..##.."},
	'U': {"#....#", "#....#", "#....#", "#....#", "#....#", "#....#", ".####."},
	'V': {"#....#", "#....#", "#....#", "#....#", ".#..#.", ".#..#.", "..##.."},
	'W': {"#....#", "#....#", "#....#", "#....#", "#.##.#", "##..##", "#....#"},
	'X': {"#....#", ".#..#.", "..##..", "..##..", "..##..", ".#..#.", "#....#"},
	'Y': {"#....#", ".#..#.", "..##..", "..##..", "..##..", "..##..", "..##.."},
	'Z': {"######", "....#.", "...#..", "..#...", ".#....", "#.....", "######"},
}

// Has reports whether r has a block glyph.
func Has(r rune) bool {
	_, ok := font[r]
	return ok
}

// Filled reports whether the font cell at (row, col) of r is inked.
func Filled(r rune, row, col int) bool {
	g, ok := font[r]
	if !ok || row < 0 || row >= Rows || col < 0 || col >= Cols {
		return false
	}
	return g[row][col] == '#'
}

// Render draws r with ink for filled cells and blank space elsewhere.
// Unknown runes render as the plain character.
func Render(r rune, ink string) string {
	g, ok := font[r]
	if !ok {
		return string(r)
	}
	blank := strings.Repeat(" ", len([]rune(ink)))
	lines := make([]string, Rows)
	for i, row := range g {
		var b strings.Builder
		for _, c := range row {
			if c == '#' {
				b.WriteString(ink)
			} else {
				b.WriteString(blank)
			}
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Big draws r in solid blocks.
func Big(r rune) string {
	return Render(r, "██")
}

// Outline draws r in a light dotted pattern used as a tracing guide.
func Outline(r rune) string {
	return Render(r, "░░")
}
