// Package linediff estimates how much of one text file is absent from
// another by comparing their sets of lines. It is a cheap proxy for "how
// much of the old file survives", not an alignment-based diff.
package linediff

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/norareidy/i-need-a-reference/internal/apperr"
)

// ErrInvalidText is returned for a line that is not valid UTF-8.
var ErrInvalidText = errors.New("line is not valid UTF-8 text")

// ReadLines returns the lines of path without their "\n" or "\r\n"
// terminators. Lines may be of any length.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.IO("opening", path, err)
	}
	defer f.Close()

	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, apperr.IO("reading", path, err)
		}
		if line == "" && err != nil {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if !utf8.ValidString(line) {
			return nil, apperr.IO(fmt.Sprintf("decoding line %d of", len(lines)+1), path, ErrInvalidText)
		}
		lines = append(lines, line)

		if err != nil {
			break
		}
	}
	return lines, nil
}

// Percent returns the share of a's distinct lines that do not appear in b,
// measured against len(a) + len(b)/2 and capped at 100. Duplicate lines
// count once in the numerator but every time in the denominator. The
// weighting is asymmetric, so Percent(a, b) and Percent(b, a) differ in
// general. Two empty inputs give 0.
func Percent(a, b []string) float64 {
	total := len(a) + len(b)/2
	if total == 0 {
		return 0
	}

	inB := make(map[string]struct{}, len(b))
	for _, line := range b {
		inB[line] = struct{}{}
	}

	unique := make(map[string]struct{})
	for _, line := range a {
		if _, ok := inB[line]; !ok {
			unique[line] = struct{}{}
		}
	}

	percent := float64(len(unique)) / float64(total) * 100
	if percent >= 100 {
		return 100
	}
	return percent
}

// CompareFiles reads both files and returns Percent of their lines.
func CompareFiles(pathA, pathB string) (float64, error) {
	a, err := ReadLines(pathA)
	if err != nil {
		return 0, err
	}
	b, err := ReadLines(pathB)
	if err != nil {
		return 0, err
	}
	return Percent(a, b), nil
}
