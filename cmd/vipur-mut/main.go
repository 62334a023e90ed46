// vipur-mut writes the mut file ddg_monomer reads, converting variant
// position labels to 1-indexed pose numbering with a numbering map written
// by vipur-seq.
package main

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/CapraLab/VIPUR/apps/rosetta"
	"github.com/CapraLab/VIPUR/cmd/util"
)

var (
	flagVariantFile = false
)

func init() {
	flag.BoolVar(&flagVariantFile, "variant-file", flagVariantFile,
		"When set, the variant argument names a file listing one variant\n"+
			"per line instead of a comma-separated list.")

	util.FlagParse("numbering-map variant[,variant...] [out-mut-file]",
		"Variants are written as native letter, position label, mutant\n"+
			"letter, e.g. A123T.")
	util.AssertLeastNArg(2)
}

func main() {
	numbering := util.NumberingMapRead(util.Arg(0))

	var specs []string
	if flagVariantFile {
		f := util.OpenFile(util.Arg(1))
		for _, line := range util.ReadLines(f) {
			if len(line) > 0 {
				specs = append(specs, line)
			}
		}
		f.Close()
	} else {
		specs = strings.Split(util.Arg(1), ",")
	}
	if len(specs) == 0 {
		util.Warnf("No variants in '%s'.", util.Arg(1))
		util.Usage()
	}

	variants := make([]rosetta.Variant, len(specs))
	for i, spec := range specs {
		v, err := rosetta.ParseVariant(spec)
		util.Assert(err, "Bad variant '%s'", spec)
		variants[i] = v
	}

	var out io.Writer = os.Stdout
	if util.NArg() > 2 {
		f := util.CreateFile(util.Arg(2))
		defer f.Close()
		out = f
	}

	util.Assert(rosetta.WriteMutFile(out, variants, numbering),
		"Error writing mut file")
}
