// vipur-score compares the score distributions of a variant ensemble
// against a native ensemble, producing one feature per score term and
// quartile: the normalized rank of the variant's quartile value on the
// native distribution.
package main

import (
	"fmt"
	"sort"

	"github.com/CapraLab/VIPUR/cmd/util"
	"github.com/CapraLab/VIPUR/score"
)

func init() {
	util.FlagUse("terms")
	util.FlagParse("variant-scorefile native-scorefile", "")
	util.AssertNArg(2)
}

func main() {
	variant := util.ScoreRead(util.Arg(0), util.FlagTerms)
	native := util.ScoreRead(util.Arg(1), util.FlagTerms)

	features, err := score.Compare(
		variant, native, util.FlagTerms, score.DefaultQuantiles)
	util.Assert(err, "Error comparing '%s' against '%s'",
		util.Arg(0), util.Arg(1))

	names := make([]string, 0, len(features))
	for name := range features {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s\t%f\n", name, features[name])
	}
}
