// vipur-psiblast runs PSIBLAST on a query sequence file and prints the
// path of the ASCII PSSM it produced. An empty result is distinguished from
// a crashed search by inspecting the search report.
package main

import (
	"fmt"

	"github.com/CapraLab/VIPUR/apps/psiblast"
	"github.com/CapraLab/VIPUR/cmd/util"
)

func init() {
	util.FlagUse("psiblast", "verbose")
	util.FlagParse("in-fasta", "")
	util.AssertNArg(1)
}

func main() {
	query := util.Arg(0)

	pssmPath, outPath, err := util.FlagPsiblast.Run(query)
	util.Assert(err, "Error running psiblast on '%s'", query)

	hasHits, err := psiblast.CheckOutput(pssmPath, outPath)
	util.Assert(err, "Error checking psiblast output for '%s'", query)
	if !hasHits {
		util.Fatalf("psiblast found no hits for '%s'; the PSSM is empty.",
			query)
	}

	fmt.Println(pssmPath)
}
