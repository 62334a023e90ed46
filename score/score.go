// Package score parses Rosetta scorefiles into per-term value distributions
// and compares the distributions of two scored ensembles.
package score

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Table holds the columns of a scorefile, one distribution per score term.
// Terms preserves the header's column order. Each term named in the numeric
// set given to Read lives in Numeric; every other term (decoy descriptions,
// ids) stays as text in Text. Row order is append order is decoy order.
type Table struct {
	Terms   []string
	Numeric map[string][]float64
	Text    map[string][]string
}

// Len returns the number of scored rows in the table.
func (t *Table) Len() int {
	if len(t.Terms) == 0 {
		return 0
	}
	term := t.Terms[0]
	if vs, ok := t.Numeric[term]; ok {
		return len(vs)
	}
	return len(t.Text[term])
}

// ReadOpts control where the header line sits and what token marks a scored
// row. Both the header and every data row must start with the marker.
type ReadOpts struct {
	Header int
	Marker string
}

// DefaultOpts match the scorefiles written by Rosetta's relax and score
// protocols.
var DefaultOpts = ReadOpts{Header: 0, Marker: "SCORE: "}

// ColumnCountError is returned when a scored row does not have exactly one
// field per term in the header. A miscounted row cannot be repaired: letting
// it through would shift values into the wrong distributions and silently
// corrupt every statistic computed downstream.
type ColumnCountError struct {
	Line      string
	Got, Want int
}

func (e ColumnCountError) Error() string {
	return fmt.Sprintf("scorefile row has %d columns, want %d: %q",
		e.Got, e.Want, e.Line)
}

// Read parses a scorefile with the default header position and row marker.
// Terms listed in numeric are converted to float64; all others are kept as
// text.
func Read(r io.Reader, numeric []string) (*Table, error) {
	return ReadWith(r, numeric, DefaultOpts)
}

// ReadWith is Read with explicit ReadOpts.
func ReadWith(r io.Reader, numeric []string, opts ReadOpts) (*Table, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("error reading scorefile: %s", err)
	}
	if opts.Header >= len(lines) {
		return nil, fmt.Errorf("scorefile has %d lines; no header at line %d",
			len(lines), opts.Header)
	}

	isNumeric := make(map[string]bool, len(numeric))
	for _, term := range numeric {
		isNumeric[term] = true
	}

	table := &Table{
		Terms:   strings.Fields(strings.TrimPrefix(lines[opts.Header], opts.Marker)),
		Numeric: make(map[string][]float64),
		Text:    make(map[string][]string),
	}

	for _, line := range lines[opts.Header+1:] {
		if !strings.HasPrefix(line, opts.Marker) {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, opts.Marker))
		if len(fields) != len(table.Terms) {
			return nil, ColumnCountError{
				Line: line,
				Got:  len(fields),
				Want: len(table.Terms),
			}
		}
		for i, field := range fields {
			term := table.Terms[i]
			if isNumeric[term] {
				v, err := strconv.ParseFloat(field, 64)
				if err != nil {
					return nil, fmt.Errorf(
						"term '%s' is numeric but has value %q: %s",
						term, field, err)
				}
				table.Numeric[term] = append(table.Numeric[term], v)
			} else {
				table.Text[term] = append(table.Text[term], field)
			}
		}
	}
	return table, nil
}

func readLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0, 100)
	buf := bufio.NewReader(r)
	for {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if len(line) > 0 || err != io.EOF {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
	}
	return lines, nil
}
