package wavefront

import (
	"bufio"
	"strings"
)

// A logical line split into its directive keyword and value tokens.
type line struct {
	// 1-based number of the first physical line.
	num int

	// Directive as it appears in the input and its lower-cased version
	// which is used for dispatching.
	keyword string
	key     string

	values []string
}

// lineScanner produces logical lines from obj/mtl text. Comments are stripped,
// backslash-continued physical lines are joined and blank lines are skipped.
// A lineScanner can only be consumed once.
type lineScanner struct {
	scanner *bufio.Scanner
	lineNum int
	cur     line
}

func newLineScanner(text string) *lineScanner {
	scanner := bufio.NewScanner(strings.NewReader(text))

	// Allow arbitrarily long lines; the whole input is already in memory.
	maxLen := bufio.MaxScanTokenSize
	if len(text)+1 > maxLen {
		maxLen = len(text) + 1
	}
	scanner.Buffer(make([]byte, 0, 4096), maxLen)

	return &lineScanner{scanner: scanner}
}

// Advance to the next non-blank logical line. Returns false when the input
// is exhausted.
func (s *lineScanner) Scan() bool {
	var (
		content   strings.Builder
		startLine int
		continued bool
	)

	for s.scanner.Scan() {
		s.lineNum++
		physical := stripComment(s.scanner.Text())
		physical = strings.TrimRight(physical, " \t\r\v\f")

		if !continued {
			startLine = s.lineNum
		}

		if strings.HasSuffix(physical, `\`) {
			content.WriteString(physical[:len(physical)-1])
			content.WriteByte(' ')
			continued = true
			continue
		}

		content.WriteString(physical)
		if s.emit(startLine, content.String()) {
			return true
		}
		content.Reset()
		continued = false
	}

	// A trailing continuation at the end of the input.
	if continued {
		return s.emit(startLine, content.String())
	}
	return false
}

// Line returns the logical line read by the last call to Scan.
func (s *lineScanner) Line() *line {
	return &s.cur
}

func (s *lineScanner) emit(lineNum int, content string) bool {
	tokens := strings.Fields(content)
	if len(tokens) == 0 {
		return false
	}

	s.cur = line{
		num:     lineNum,
		keyword: tokens[0],
		key:     strings.ToLower(tokens[0]),
		values:  tokens[1:],
	}
	return true
}

// Remove everything from the first '#' to the end of the line.
func stripComment(physical string) string {
	if idx := strings.IndexByte(physical, '#'); idx != -1 {
		return physical[:idx]
	}
	return physical
}
