// vipur-ddg runs Rosetta ddg_monomer on a structure with a mut file (as
// written by vipur-mut) and prints the parsed predictions, one
// tab-separated row per variant.
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/CapraLab/VIPUR/apps/rosetta"
	"github.com/CapraLab/VIPUR/cmd/util"
	"github.com/CapraLab/VIPUR/score"
)

var (
	flagExec    = "ddg_monomer"
	flagKeep    = false
	flagVerbose = false
)

func init() {
	flag.StringVar(&flagExec, "ddg-monomer", flagExec,
		"The Rosetta ddg_monomer executable.")
	flag.BoolVar(&flagKeep, "keep-trajectories", flagKeep,
		"When set, the wt_traj/mutant_traj files are not removed.")
	flag.BoolVar(&flagVerbose, "verbose", flagVerbose,
		"When set, ddg_monomer output is echoed.")

	util.FlagParse("in-pdb mut-file", "")
	util.AssertNArg(2)
}

func main() {
	conf := rosetta.DDGMonomerDefault
	conf.Exec = flagExec
	conf.Cleanup = false
	conf.Verbose = flagVerbose

	outPath, err := conf.Run(util.Arg(0), util.Arg(1))
	util.Assert(err, "Error running ddg_monomer on '%s'", util.Arg(0))

	f := util.OpenFile(outPath)
	defer f.Close()

	ddg, err := score.ReadDDG(f)
	util.Assert(err, "Error parsing predictions '%s'", outPath)

	for _, key := range ddg.Keys {
		fmt.Printf("%s\t%s\n", key, strings.Join(ddg.Rows[key], "\t"))
	}

	// The predictions are already printed; a leftover trajectory file is
	// not worth dying over.
	if !flagKeep {
		util.Warning(rosetta.CleanupTrajectories("."),
			"Could not remove trajectory files")
	}
}
