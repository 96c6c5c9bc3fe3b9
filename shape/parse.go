package shape

import (
	"fmt"
	"strings"

	"xdao.co/shapes/compliance"
)

const (
	occupied = 'O'
	vacant   = 'x'
	rowSep   = '/'
)

// ParseGrid reads a grid literal.
//
// The canonical literal is three rows of three glyphs joined by '/', using
// 'O' for occupied and 'x' for empty cells: "Oxx/xOx/xOx". This is the form
// Grid.String produces and the only form accepted under compliance.Strict.
//
// Under compliance.Permissive the parser also tolerates surrounding
// whitespace, newline (LF or CRLF) row separators, blanks between glyphs,
// and the alternate glyphs 'o' and '#' (occupied) and '.' and '-' (empty).
// Row and column counts are never relaxed.
func ParseGrid(s string, mode compliance.Mode) (Grid, error) {
	g, err := parseTolerant(s)
	if err != nil {
		return Grid{}, err
	}
	if mode == compliance.Strict && g.String() != s {
		return Grid{}, newError(KindCanonical, "SHAPE-CANON-001",
			fmt.Sprintf("non-canonical grid literal %q (canonical form is %q)", s, g.String()))
	}
	return g, nil
}

// MustParseGrid is like ParseGrid in permissive mode but panics on error.
// It is intended for literals in tests and package-level tables.
func MustParseGrid(s string) Grid {
	g, err := ParseGrid(s, compliance.Permissive)
	if err != nil {
		panic(err)
	}
	return g
}

func parseTolerant(s string) (Grid, error) {
	b := strings.ReplaceAll(s, "\r\n", "\n")
	b = strings.TrimSpace(b)
	if b == "" {
		return Grid{}, newError(KindParse, "SHAPE-PARSE-001", "empty grid literal")
	}
	b = strings.ReplaceAll(b, "\n", string(rowSep))

	rows := strings.Split(b, string(rowSep))
	if len(rows) != Dim {
		return Grid{}, newError(KindParse, "SHAPE-PARSE-001",
			fmt.Sprintf("grid literal has %d rows, want %d", len(rows), Dim))
	}

	var g Grid
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if ch == ' ' || ch == '\t' {
				continue
			}
			v, ok := glyph(ch)
			if !ok {
				return Grid{}, newError(KindParse, "SHAPE-PARSE-003",
					fmt.Sprintf("row %d: unknown cell glyph %q", r, ch))
			}
			if c >= Dim {
				return Grid{}, newError(KindParse, "SHAPE-PARSE-002",
					fmt.Sprintf("row %d has more than %d cells", r, Dim))
			}
			g.cells[r][c] = v
			c++
		}
		if c != Dim {
			return Grid{}, newError(KindParse, "SHAPE-PARSE-002",
				fmt.Sprintf("row %d has %d cells, want %d", r, c, Dim))
		}
	}
	return g, nil
}

func glyph(ch rune) (occ bool, ok bool) {
	switch ch {
	case occupied, 'o', '#':
		return true, true
	case vacant, '.', '-':
		return false, true
	default:
		return false, false
	}
}
