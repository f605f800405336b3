package jsonl

import (
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// FirstN returns up to n records from the start of the source, in file
// order.
func FirstN(r io.Reader, n int) ([]string, error) {
	jr := NewReader(r)
	lines := make([]string, 0, n)
	for len(lines) < n {
		line, err := jr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// LastN returns up to n records from the end of the source, newest
// first. Blank lines are not records, so they are skipped here just as
// the forward Reader skips them.
func LastN(src io.ReadSeeker, n int) ([]string, error) {
	r, err := NewReverseLineReader(src)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, n)
	for len(lines) < n {
		line, err := r.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines, nil
}

// Tail returns up to n records from the end of the source in file
// order, the way tail prints them.
func Tail(src io.ReadSeeker, n int) ([]string, error) {
	lines, err := LastN(src, n)
	if err != nil {
		return nil, err
	}
	slices.Reverse(lines)
	return lines, nil
}
