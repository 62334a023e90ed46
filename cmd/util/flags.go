package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"github.com/CapraLab/VIPUR/apps/psiblast"
	"github.com/CapraLab/VIPUR/apps/rosetta"
	"github.com/CapraLab/VIPUR/score"
)

var (
	FlagChain   byte = 'A'
	FlagVerbose      = false

	FlagPsiblast = psiblast.Default
	FlagRelax    = rosetta.RelaxDefault
	FlagRescore  = rosetta.RescoreDefault

	flagChain = "A"
	flagTerms = strings.Join(score.DefaultTerms, ",")
	FlagTerms = score.DefaultTerms
)

func init() {
	log.SetFlags(0)
}

type commonFlag struct {
	set, init func()
	use       bool
}

var commonFlags = map[string]*commonFlag{
	"chain": {
		set: func() {
			flag.StringVar(&flagChain, "chain", flagChain,
				"The PDB chain to operate on.")
		},
		init: func() {
			if len(flagChain) != 1 {
				Fatalf("Chain identifiers are single characters; got '%s'.",
					flagChain)
			}
			FlagChain = flagChain[0]
		},
	},
	"verbose": {
		set: func() {
			flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
				"When set, external tool output is echoed.")
		},
		init: func() {
			FlagPsiblast.Verbose = FlagVerbose
			FlagRelax.Verbose = FlagVerbose
			FlagRescore.Verbose = FlagVerbose
		},
	},
	"psiblast": {
		set: func() {
			flag.StringVar(&FlagPsiblast.Exec, "psiblast",
				FlagPsiblast.Exec, "The psiblast executable.")
			flag.StringVar(&FlagPsiblast.Database, "psiblast-db",
				FlagPsiblast.Database,
				"The sequence database psiblast searches.")
			flag.IntVar(&FlagPsiblast.Iterations, "psiblast-iters",
				FlagPsiblast.Iterations,
				"The number of psiblast iterations.")
		},
	},
	"rosetta": {
		set: func() {
			flag.StringVar(&FlagRelax.Exec, "relax",
				FlagRelax.Exec, "The Rosetta relax executable.")
			flag.StringVar(&FlagRescore.Exec, "rescore",
				FlagRescore.Exec, "The Rosetta score executable.")
			flag.IntVar(&FlagRelax.NStruct, "nstruct",
				FlagRelax.NStruct, "The number of relax decoys to sample.")
		},
	},
	"terms": {
		set: func() {
			flag.StringVar(&flagTerms, "terms", flagTerms,
				"Comma-separated scorefile terms to compare.")
		},
		init: func() {
			FlagTerms = strings.Split(flagTerms, ",")
		},
	},
}

func FlagUse(names ...string) {
	for _, name := range names {
		commonFlags[name].use = true
	}
}

// Usage just calls `flag.Usage`. It's included here to avoid
// an extra import to `flag` just to call Usage.
func Usage() {
	flag.Usage()
}

// Arg just calls `flag.Arg`. It's included here to avoid
// an extra import to `flag` just to call Arg.
func Arg(i int) string {
	return flag.Arg(i)
}

// NArg just calls `flag.NArg`. It's included here to avoid
// an extra import to `flag` just to call NArg.
func NArg() int {
	return flag.NArg()
}

func FlagParse(positional string, desc string) {
	for _, fl := range commonFlags {
		if fl.use {
			fl.set()
		}
	}

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()

	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}
