// vipur-pssm parses a PSIBLAST ASCII PSSM and writes a tab-separated
// feature table with one row per sequence position: the query residue, the
// information content, the version-dependent trailing field, and the
// log-likelihood and frequency of every amino acid.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/CapraLab/VIPUR/cmd/util"
)

func init() {
	util.FlagParse("in-pssm [out-tsv]", "")
	util.AssertLeastNArg(1)
}

func main() {
	p := util.PSSMRead(util.Arg(0))

	var out io.Writer = os.Stdout
	if util.NArg() > 1 {
		f := util.CreateFile(util.Arg(1))
		defer f.Close()
		out = f
	}

	fmt.Fprintf(out, "position\tquery\tinformation\textra")
	for _, aa := range p.Alphabet {
		fmt.Fprintf(out, "\tll_%s", aa)
	}
	for _, aa := range p.Alphabet {
		fmt.Fprintf(out, "\tfreq_%s", aa)
	}
	fmt.Fprintln(out)

	positions := make([]int, 0, len(p.Positions))
	for pos := range p.Positions {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	for _, pos := range positions {
		entry := p.Positions[pos]
		fmt.Fprintf(out, "%d\t%c\t%g\t%g",
			entry.Pos, entry.Query, entry.Information, entry.Extra)
		for _, aa := range p.Alphabet {
			fmt.Fprintf(out, "\t%d", entry.LogLikelihood[aa])
		}
		for _, aa := range p.Alphabet {
			fmt.Fprintf(out, "\t%g", entry.Frequency[aa])
		}
		fmt.Fprintln(out)
	}
}
