package pdb

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TuftsBCB/io/fasta"
	"github.com/TuftsBCB/seq"
)

// FastaEntry returns the chain sequence as a FASTA entry under the given
// header.
func (c *Chain) FastaEntry(header string) fasta.Entry {
	s := c.Seq(header)
	residues := make([]byte, len(s.Residues))
	for i, r := range s.Residues {
		residues[i] = byte(r)
	}
	return fasta.Entry{Header: s.Name, Sequence: residues}
}

// WriteFasta writes the chain sequence as a single unwrapped FASTA record:
// a '>' header line followed by the residue string on one line, with no
// trailing newline. The byte-exact layout matters; it is what the
// sequence-search tool is fed.
func (c *Chain) WriteFasta(w io.Writer, header string) error {
	_, err := io.WriteString(w, c.FastaEntry(header).StringCols(0))
	return err
}

// WriteNumberingMap writes the chain numbering as tab-separated rows of
// (original label, 0-indexed position, residue letter), newline-joined with
// no trailing newline.
func (c *Chain) WriteNumberingMap(w io.Writer) error {
	rows := make([]string, len(c.Labels))
	for i, label := range c.Labels {
		rows[i] = fmt.Sprintf("%s\t%d\t%c", label, i, c.Sequence[i])
	}
	_, err := io.WriteString(w, strings.Join(rows, "\n"))
	return err
}

// ReadNumberingMap reads a numbering map written by WriteNumberingMap back
// into label-to-position form, for runs that start from preprocessed files
// rather than the structure itself.
func ReadNumberingMap(r io.Reader) (map[string]int, error) {
	m := make(map[string]int)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed numbering map row: %q", line)
		}
		pos, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("malformed numbering map position %q: %s",
				fields[1], err)
		}
		m[fields[0]] = pos
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// ReadFastaSequences reads the sequences of a FASTA file. It exists for
// sequence-only runs, where there is no structure to extract a sequence
// from.
func ReadFastaSequences(r io.Reader) ([]seq.Sequence, error) {
	entries, err := fasta.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	sequences := make([]seq.Sequence, len(entries))
	for i, entry := range entries {
		residues := make([]seq.Residue, len(entry.Sequence))
		for j, b := range entry.Sequence {
			residues[j] = seq.Residue(b)
		}
		sequences[i] = seq.Sequence{Name: entry.Header, Residues: residues}
	}
	return sequences, nil
}
