package rosetta

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CapraLab/VIPUR/pdb"
	"github.com/TuftsBCB/seq"
)

// A Variant is a single point substitution written the way variant lists
// spell them: native residue letter, residue-position label (insertion code
// included, if any), mutant residue letter. "A123T" substitutes threonine
// for the alanine at position 123.
type Variant struct {
	Native   byte
	Position string
	Mutant   byte
}

// ParseVariant parses a variant string.
func ParseVariant(s string) (Variant, error) {
	if len(s) < 3 {
		return Variant{}, fmt.Errorf("variant '%s' is too short", s)
	}
	v := Variant{
		Native:   s[0],
		Position: s[1 : len(s)-1],
		Mutant:   s[len(s)-1],
	}
	if !isResidueLetter(v.Native) || !isResidueLetter(v.Mutant) {
		return Variant{}, fmt.Errorf(
			"variant '%s' must start and end with amino acid letters", s)
	}
	return v, nil
}

func isResidueLetter(b byte) bool {
	_, ok := pdb.AminoOneToThree[seq.Residue(b)]
	return ok
}

func (v Variant) String() string {
	return fmt.Sprintf("%c%s%c", v.Native, v.Position, v.Mutant)
}

// WriteMutFile writes ddg_monomer's mut file for the given variants. The
// numbering map (as extracted by the pdb package) converts each variant's
// residue-position label into 1-indexed pose numbering, which is what the
// protocol reads. A variant at a position missing from the map is an error:
// it means the variant does not fall in the modeled region.
//
// The format is a total count followed by, per variant, a group size line
// and a "native pose-position mutant" line. No trailing newline.
func WriteMutFile(w io.Writer, variants []Variant, numbering map[string]int) error {
	lines := make([]string, 0, 1+2*len(variants))
	lines = append(lines, "total "+strconv.Itoa(len(variants)))
	for _, v := range variants {
		pos, ok := numbering[v.Position]
		if !ok {
			return fmt.Errorf(
				"variant %s: position '%s' is not in the numbering map",
				v, v.Position)
		}
		lines = append(lines, "1",
			fmt.Sprintf("%c %d %c", v.Native, pos+1, v.Mutant))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}
