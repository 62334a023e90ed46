// Package pssm parses the ASCII position-specific scoring matrix written by
// PSIBLAST.
//
// The matrix format is not versioned and its column layout has drifted
// across PSIBLAST releases, so parsing is driven by the shape of the file
// rather than by fixed positions: the one line listing amino acids per
// column is found by field count, and data lines are the lines with the
// maximum field count. Anything else is ignored.
package pssm

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/TuftsBCB/seq"
)

// AlphabetSize is the number of amino acid types expected in the matrix.
// It is used only as a sanity check on the header line; it does not drive
// the parse.
const AlphabetSize = 20

// The header line is missing the position, query, information content and
// relative weight fields of a data line.
const headerShift = -4

// A Position is one row of the matrix: the scores for a single position of
// the query sequence.
type Position struct {
	// Pos is the 1-indexed sequence position, PSIBLAST's convention.
	Pos int

	// Query is the query residue at this position.
	Query seq.Residue

	// LogLikelihood maps each amino acid to its log-likelihood score.
	LogLikelihood map[string]int

	// Frequency maps each amino acid to its approximate frequency,
	// normalized to [0, 1]. The frequencies at a position sum to roughly 1;
	// PSIBLAST only prints whole percents.
	Frequency map[string]float64

	// Information is the information content of the position.
	Information float64

	// Extra is the last numeric field of a data line. Its meaning is
	// undocumented and varies with the PSIBLAST version; it is preserved
	// without interpretation.
	Extra float64
}

// A PSSM maps 1-indexed sequence positions to their matrix rows. Alphabet
// records the amino acid column order of the header line.
type PSSM struct {
	Alphabet  []string
	Positions map[int]Position
}

// AmbiguousHeaderError is returned when the number of candidate header
// lines is not exactly one. Without a unique header there is no safe way to
// attribute columns to amino acids.
type AmbiguousHeaderError struct {
	// Candidates is the number of lines with the header field count.
	Candidates int

	// Fields is the field count a header line must have.
	Fields int
}

func (e AmbiguousHeaderError) Error() string {
	return fmt.Sprintf(
		"found %d candidate pssm header lines with %d fields; need exactly 1",
		e.Candidates, e.Fields)
}

// Fields can be separated by spaces optionally followed by a '-' sign, or
// in some cases by just a '-' sign. The separator is inspected after the
// split so that the sign can be restored to the field it belongs to.
var separator = regexp.MustCompile(` +-?|-`)

// Read parses an ASCII PSSM.
//
// Lines whose field count does not match a data line are silently skipped;
// stray formatting artifacts are common and harmless. Failures to identify
// the header line, or a header that does not list each amino acid in
// exactly two columns, are fatal.
func Read(r io.Reader) (*PSSM, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("error reading pssm: %s", err)
	}

	split := make([][]string, len(lines))
	most := 0
	for i, line := range lines {
		split[i] = splitFields(line)
		if len(split[i]) > most {
			most = len(split[i])
		}
	}

	aaLine, err := findHeader(split, most)
	if err != nil {
		return nil, err
	}
	colToAA, err := headerColumns(aaLine)
	if err != nil {
		return nil, err
	}
	numAA := len(colToAA) / 2

	pssm := &PSSM{
		Alphabet:  colToAA[:numAA],
		Positions: make(map[int]Position),
	}
	for _, fields := range split {
		// Data lines have the maximum field count; everything else is
		// banner text, the header, or trailing statistics.
		if len(fields) != most {
			continue
		}
		p, err := parsePosition(fields, colToAA, numAA)
		if err != nil {
			return nil, err
		}
		pssm.Positions[p.Pos] = p
	}
	return pssm, nil
}

// findHeader returns the unique line with (most + headerShift) fields.
func findHeader(split [][]string, most int) ([]string, error) {
	want := most + headerShift
	var header []string
	count := 0
	for _, fields := range split {
		if len(fields) == want {
			header = fields
			count++
		}
	}
	if count != 1 {
		return nil, AmbiguousHeaderError{Candidates: count, Fields: want}
	}
	return header, nil
}

// headerColumns builds the column-index to amino-acid mapping from the
// header line and runs the format sanity checks: the header lists each
// amino acid twice (log-likelihood and frequency blocks) in the same order,
// and the distinct count must match the expected alphabet size.
func headerColumns(aaLine []string) ([]string, error) {
	colToAA := make([]string, len(aaLine))
	for i, field := range aaLine {
		colToAA[i] = strings.TrimSpace(field)
	}

	numAA := len(colToAA) / 2
	if numAA*2 != len(colToAA) {
		return nil, fmt.Errorf(
			"pssm header has %d columns; amino acids must appear in pairs",
			len(colToAA))
	}
	if numAA != AlphabetSize {
		return nil, fmt.Errorf("pssm header names %d amino acids, want %d",
			numAA, AlphabetSize)
	}
	for i := 0; i < numAA; i++ {
		if colToAA[i] != colToAA[i+numAA] {
			return nil, fmt.Errorf(
				"pssm header column %d is '%s' but column %d is '%s'; "+
					"the two blocks must list the same amino acids",
				i, colToAA[i], i+numAA, colToAA[i+numAA])
		}
	}
	return colToAA, nil
}

func parsePosition(fields, colToAA []string, numAA int) (Position, error) {
	p := Position{
		LogLikelihood: make(map[string]int, numAA),
		Frequency:     make(map[string]float64, numAA),
	}

	pos, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return p, fmt.Errorf("bad pssm position %q: %s", fields[0], err)
	}
	p.Pos = pos

	query := strings.TrimSpace(fields[1])
	if len(query) != 1 {
		return p, fmt.Errorf("bad pssm query residue %q at position %d",
			fields[1], pos)
	}
	p.Query = seq.Residue(query[0])

	for i, field := range fields[2 : 2+numAA] {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return p, fmt.Errorf(
				"bad log-likelihood %q at position %d: %s", field, pos, err)
		}
		p.LogLikelihood[colToAA[i]] = v
	}
	for i, field := range fields[2+numAA : 2+2*numAA] {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return p, fmt.Errorf(
				"bad frequency %q at position %d: %s", field, pos, err)
		}
		p.Frequency[colToAA[i]] = v / 100
	}

	info, err := strconv.ParseFloat(strings.TrimSpace(fields[len(fields)-2]), 64)
	if err != nil {
		return p, fmt.Errorf(
			"bad information content %q at position %d: %s",
			fields[len(fields)-2], pos, err)
	}
	p.Information = info

	extra, err := strconv.ParseFloat(strings.TrimSpace(fields[len(fields)-1]), 64)
	if err != nil {
		return p, fmt.Errorf("bad trailing field %q at position %d: %s",
			fields[len(fields)-1], pos, err)
	}
	p.Extra = extra

	return p, nil
}

// splitFields tokenizes a matrix line. The separator pattern captures an
// optional trailing '-', which is re-attached to the following field so
// that negative numbers survive even when no space precedes the sign.
func splitFields(line string) []string {
	seps := separator.FindAllStringIndex(line, -1)
	fields := make([]string, 0, len(seps)+1)
	last := 0
	var sign byte

	emit := func(dat string) {
		if sign == '-' {
			dat = "-" + dat
		}
		fields = append(fields, dat)
	}

	for _, m := range seps {
		dat := line[last:m[0]]
		if !(last == 0 && dat == "") {
			// A leading separator produces a dummy empty field; drop it.
			emit(dat)
		}
		sign = line[m[1]-1]
		last = m[1]
	}
	if dat := line[last:]; dat != "" || len(seps) > 0 {
		emit(dat)
	}
	return fields
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
