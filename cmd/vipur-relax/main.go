// vipur-relax samples a scored ensemble around a structure: Rosetta relax
// generates the decoys, and the score protocol rescores them against the
// input structure so that every compared term (gdtmm included) is present
// in the scorefile. The scorefile path is printed on success.
package main

import (
	"fmt"

	"github.com/CapraLab/VIPUR/cmd/util"
)

func init() {
	util.FlagUse("rosetta", "verbose")
	util.FlagParse("in-pdb", "")
	util.AssertNArg(1)
}

func main() {
	pdbFile := util.Arg(0)

	silentFile, err := util.FlagRelax.Run(pdbFile)
	util.Assert(err, "Error relaxing '%s'", pdbFile)

	scoreFile, err := util.FlagRescore.Run(silentFile, pdbFile)
	util.Assert(err, "Error rescoring '%s'", silentFile)

	fmt.Println(scoreFile)
}
