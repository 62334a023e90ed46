package util

import (
	"strings"

	"github.com/CapraLab/VIPUR/pdb"
	"github.com/CapraLab/VIPUR/pssm"
	"github.com/CapraLab/VIPUR/score"
)

// PDBOpen reads a PDB entry or dies.
func PDBOpen(path string) *pdb.Entry {
	entry, err := pdb.Open(path)
	Assert(err, "Could not read PDB file '%s'", path)
	return entry
}

// PDBChain returns the named chain of a PDB entry or dies.
func PDBChain(entry *pdb.Entry, ident byte) *pdb.Chain {
	chain := entry.Chain(ident)
	if chain == nil {
		Fatalf("PDB file '%s' has no chain %c.", entry.Path, ident)
	}
	return chain
}

// PSSMRead parses an ASCII PSSM file or dies.
func PSSMRead(path string) *pssm.PSSM {
	f := OpenFile(path)
	defer f.Close()

	p, err := pssm.Read(f)
	Assert(err, "Could not parse PSSM '%s'", path)
	return p
}

// ScoreRead parses a scorefile or dies. The given terms are read as
// numeric distributions.
func ScoreRead(path string, numeric []string) *score.Table {
	f := OpenFile(path)
	defer f.Close()

	table, err := score.Read(f, numeric)
	Assert(err, "Could not parse scorefile '%s'", path)
	return table
}

// NumberingMapRead reloads a numbering map file or dies.
func NumberingMapRead(path string) map[string]int {
	f := OpenFile(path)
	defer f.Close()

	m, err := pdb.ReadNumberingMap(f)
	Assert(err, "Could not parse numbering map '%s'", path)
	return m
}

// RootName strips a known extension from a file path, giving the base name
// that derived files are named after.
func RootName(path, ext string) string {
	return strings.TrimSuffix(path, ext)
}
