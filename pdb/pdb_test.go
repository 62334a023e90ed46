package pdb

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// atomLine builds a minimal fixed-width ATOM record: the residue type in
// columns 18-20, chain in column 22, residue number in columns 23-26 and
// insertion code in column 27.
func atomLine(serial int, res3 string, chain byte, num string, icode byte) string {
	return fmt.Sprintf("ATOM  %5d  CA  %3s %c%4s%c   "+
		"0.000   0.000   0.000  1.00  0.00",
		serial, res3, chain, num, icode)
}

func testEntry(t *testing.T, lines ...string) *Entry {
	entry, err := Read(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("%s", err)
	}
	return entry
}

func TestReadChains(t *testing.T) {
	entry := testEntry(t,
		"HEADER    HYDROLASE",
		atomLine(1, "MET", 'A', "10", ' '),
		atomLine(2, "MET", 'A', "10", ' '), // second atom, same residue
		atomLine(3, "LYS", 'A', "11", ' '),
		atomLine(4, "GLY", 'B', "5", ' '),
		"TER",
	)

	chain := entry.Chain('A')
	if chain == nil {
		t.Fatal("no chain A")
	}
	if len(chain.Sequence) != 2 {
		t.Fatalf("chain A has %d residues, want 2", len(chain.Sequence))
	}
	if got := string([]byte{byte(chain.Sequence[0]), byte(chain.Sequence[1])}); got != "MK" {
		t.Errorf("chain A sequence is %q, want MK", got)
	}

	m := chain.NumberingMap()
	if len(m) != 2 || m["10"] != 0 || m["11"] != 1 {
		t.Errorf("chain A numbering map is %v, want {10:0 11:1}", m)
	}

	if b := entry.Chain('B'); b == nil || len(b.Sequence) != 1 {
		t.Errorf("chain B parsed wrong: %+v", b)
	}
}

func TestReadInsertionCode(t *testing.T) {
	entry := testEntry(t,
		atomLine(1, "ALA", 'A', "100", ' '),
		atomLine(2, "GLY", 'A', "100", 'A'),
		atomLine(3, "SER", 'A', "101", ' '),
	)

	chain := entry.OneChain()
	if len(chain.Sequence) != 3 {
		t.Fatalf("chain has %d residues, want 3", len(chain.Sequence))
	}
	m := chain.NumberingMap()
	if m["100"] != 0 || m["100A"] != 1 || m["101"] != 2 {
		t.Errorf("numbering map is %v, want {100:0 100A:1 101:2}", m)
	}
}

func TestReadUnknownResidue(t *testing.T) {
	_, err := Read(strings.NewReader(atomLine(1, " DG", 'A', "1", ' ')))
	var uerr UnknownResidueError
	if !errors.As(err, &uerr) {
		t.Fatalf("got error %v, want UnknownResidueError", err)
	}
	if uerr.Residue != "DG" {
		t.Errorf("error names residue %q, want DG", uerr.Residue)
	}
}

func TestReadMalformedLabel(t *testing.T) {
	// Negative residue numbers have no defined numbering upstream.
	if _, err := Read(strings.NewReader(
		atomLine(1, "ALA", 'A', "  -1", ' '))); err == nil {
		t.Fatal("expected an error for a negative residue label")
	}
}

func TestFastaEntry(t *testing.T) {
	entry := testEntry(t,
		atomLine(1, "MET", 'A', "10", ' '),
		atomLine(2, "LYS", 'A', "11", ' '),
	)
	chain := entry.Chain('A')

	s := chain.Seq("1abc_chain_A")
	if s.Name != "1abc_chain_A" || len(s.Residues) != 2 {
		t.Fatalf("chain sequence is %+v", s)
	}

	fe := chain.FastaEntry("1abc_chain_A")
	if fe.Header != "1abc_chain_A" || string(fe.Sequence) != "MK" {
		t.Fatalf("fasta entry is %+v", fe)
	}
	want := ">1abc_chain_A\nMK"
	if got := fe.StringCols(0); got != want {
		t.Errorf("unwrapped fasta entry is %q, want %q", got, want)
	}
}

func TestWriteFasta(t *testing.T) {
	entry := testEntry(t,
		atomLine(1, "MET", 'A', "10", ' '),
		atomLine(2, "LYS", 'A', "11", ' '),
	)

	buf := new(bytes.Buffer)
	if err := entry.Chain('A').WriteFasta(buf, "1abc_chain_A"); err != nil {
		t.Fatalf("%s", err)
	}
	want := ">1abc_chain_A\nMK"
	if buf.String() != want {
		t.Errorf("fasta output is %q, want %q", buf.String(), want)
	}
}

func TestWriteNumberingMap(t *testing.T) {
	entry := testEntry(t,
		atomLine(1, "MET", 'A', "10", ' '),
		atomLine(2, "LYS", 'A', "11", ' '),
		atomLine(3, "ALA", 'A', "11", 'B'),
	)

	buf := new(bytes.Buffer)
	if err := entry.Chain('A').WriteNumberingMap(buf); err != nil {
		t.Fatalf("%s", err)
	}
	want := "10\t0\tM\n11\t1\tK\n11B\t2\tA"
	if buf.String() != want {
		t.Errorf("numbering map output is %q, want %q", buf.String(), want)
	}

	m, err := ReadNumberingMap(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(m) != 3 || m["10"] != 0 || m["11"] != 1 || m["11B"] != 2 {
		t.Errorf("reloaded numbering map is %v", m)
	}
}

func TestReadFastaSequences(t *testing.T) {
	in := ">prot1\nMKV\nLA\n>prot2\nGG\n"
	sequences, err := ReadFastaSequences(strings.NewReader(in))
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(sequences) != 2 {
		t.Fatalf("got %d sequences, want 2", len(sequences))
	}
	if sequences[0].Name != "prot1" || len(sequences[0].Residues) != 5 {
		t.Errorf("first sequence parsed wrong: %+v", sequences[0])
	}
	if string(sequences[1].Residues[0]) != "G" {
		t.Errorf("second sequence parsed wrong: %+v", sequences[1])
	}
}

func TestReadFastaSequencesNoHeader(t *testing.T) {
	if _, err := ReadFastaSequences(strings.NewReader("MKV\n")); err == nil {
		t.Fatal("expected an error for sequence data before any header")
	}
}
