// Package pdb extracts protein sequences and residue numbering maps from
// the coordinate records of PDB files.
//
// Only ATOM records are read. The extracted numbering map ties the original
// residue-position labels (which may carry insertion codes and need not be
// contiguous) to 0-indexed sequence positions; it is the positional ground
// truth every downstream parser depends on, since the modeled region of a
// structure rarely starts at residue one.
package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/TuftsBCB/seq"
)

// AminoThreeToOne is a map from three letter amino acids to their
// corresponding single letter representation.
var AminoThreeToOne = map[string]seq.Residue{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// AminoOneToThree is the reverse of AminoThreeToOne. It is created in
// this package's 'init' function.
var AminoOneToThree = map[seq.Residue]string{}

func init() {
	for k, v := range AminoThreeToOne {
		AminoOneToThree[v] = k
	}
}

// UnknownResidueError is returned when an ATOM record names a residue type
// outside the amino-acid vocabulary. Skipping the record would silently
// shift the numbering map, so this is fatal.
type UnknownResidueError struct {
	Residue string
	Chain   byte
	Label   string
}

func (e UnknownResidueError) Error() string {
	return fmt.Sprintf("unknown residue type '%s' at chain %c position %s",
		e.Residue, e.Chain, e.Label)
}

// Entry represents the coordinate contents of a single PDB file: a file
// path and the protein chains found in its ATOM records.
type Entry struct {
	Path   string
	Chains []*Chain
}

// Chain is one protein chain of an Entry. Sequence holds one residue letter
// per structural residue in document order. Labels holds the original
// residue-position label of each residue, insertion codes included, in the
// same order; Labels[i] names the residue at Sequence[i].
type Chain struct {
	Ident    byte
	Sequence []seq.Residue
	Labels   []string
}

// Open reads a PDB entry from a file. If the file name ends with ".gz",
// gzip decompression is used.
func Open(fileName string) (*Entry, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	if path.Ext(fileName) == ".gz" {
		reader, err = gzip.NewReader(reader)
		if err != nil {
			return nil, err
		}
	}

	entry, err := Read(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading PDB file '%s': %s", fileName, err)
	}
	entry.Path = fileName
	return entry, nil
}

// Read parses the ATOM records of a PDB entry. Within a record, fixed byte
// offsets give the residue type (columns 18-20), the chain identifier
// (column 22) and the residue-position label (columns 23-27, insertion code
// included). Consecutive ATOM records sharing an identical raw label belong
// to one residue; only the first contributes a sequence character.
func Read(r io.Reader) (*Entry, error) {
	entry := &Entry{Chains: make([]*Chain, 0, 1)}

	breader := bufio.NewReaderSize(r, 1000)
	for {
		// 'isPrefix' is ignored; no sane PDB file has lines longer than
		// the 1000 byte buffer.
		line, _, err := breader.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if len(line) < 4 || string(line[0:4]) != "ATOM" {
			continue
		}
		if len(line) < 27 {
			return nil, fmt.Errorf("short ATOM record: %q", string(line))
		}
		if err := entry.parseAtom(line); err != nil {
			return nil, err
		}
	}
	return entry, nil
}

func (e *Entry) parseAtom(line []byte) error {
	chain := e.getOrMakeChain(line[21])
	label := strings.TrimSpace(string(line[22:27]))

	// Another atom of the residue we have already recorded.
	if n := len(chain.Labels); n > 0 && chain.Labels[n-1] == label {
		return nil
	}

	if !validLabel(label) {
		return fmt.Errorf(
			"malformed residue label %q at chain %c: want digits with an "+
				"optional insertion letter", label, chain.Ident)
	}

	residue := strings.TrimSpace(string(line[17:20]))
	letter, ok := AminoThreeToOne[residue]
	if !ok {
		return UnknownResidueError{Residue: residue,
			Chain: chain.Ident, Label: label}
	}

	chain.Sequence = append(chain.Sequence, letter)
	chain.Labels = append(chain.Labels, label)
	return nil
}

// validLabel reports whether a residue-position label is digits optionally
// followed by a single insertion letter. Anything else (negative residue
// numbers included) has no defined numbering upstream, so the parse fails
// rather than guessing.
func validLabel(label string) bool {
	if len(label) == 0 {
		return false
	}
	digits := label
	if last := label[len(label)-1]; last < '0' || last > '9' {
		if last < 'A' || last > 'Z' {
			return false
		}
		digits = label[:len(label)-1]
	}
	if len(digits) == 0 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

func (e *Entry) getOrMakeChain(ident byte) *Chain {
	for _, chain := range e.Chains {
		if chain.Ident == ident {
			return chain
		}
	}
	chain := &Chain{
		Ident:    ident,
		Sequence: make([]seq.Residue, 0, 100),
		Labels:   make([]string, 0, 100),
	}
	e.Chains = append(e.Chains, chain)
	return chain
}

// Chain looks for the chain with identifier ident and returns it. 'nil' is
// returned if the chain could not be found.
func (e *Entry) Chain(ident byte) *Chain {
	for _, chain := range e.Chains {
		if chain.Ident == ident {
			return chain
		}
	}
	return nil
}

// OneChain returns a single chain in the PDB entry. If there is more than
// one chain, OneChain will panic. This is convenient when you expect a PDB
// file to have only a single chain, but don't know the name.
func (e *Entry) OneChain() *Chain {
	if len(e.Chains) != 1 {
		panic(fmt.Sprintf("OneChain can only be called on PDB entries with "+
			"ONE chain. But the '%s' PDB entry has %d chains.",
			e.Path, len(e.Chains)))
	}
	return e.Chains[0]
}

// Seq returns the chain sequence as a named sequence value.
func (c *Chain) Seq(name string) seq.Sequence {
	residues := make([]seq.Residue, len(c.Sequence))
	copy(residues, c.Sequence)
	return seq.Sequence{Name: name, Residues: residues}
}

// NumberingMap returns the map from original residue-position label to
// 0-indexed sequence position. It is a bijection onto the contiguous range
// [0, len(Sequence)).
func (c *Chain) NumberingMap() map[string]int {
	m := make(map[string]int, len(c.Labels))
	for i, label := range c.Labels {
		m[label] = i
	}
	return m
}
