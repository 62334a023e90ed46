// vipur-seq extracts the protein sequence of one chain from a PDB file's
// coordinate records and writes it in FASTA format, along with the
// numbering map tying the original residue labels to 0-indexed sequence
// positions.
package main

import (
	"flag"
	"fmt"

	"github.com/CapraLab/VIPUR/cmd/util"
)

var (
	flagNoNumberingMap = false
)

func init() {
	flag.BoolVar(&flagNoNumberingMap, "no-numbering-map", flagNoNumberingMap,
		"When set, the numbering map file is not written.")

	util.FlagUse("chain")
	util.FlagParse("in-pdb [out-fasta]",
		"The numbering map is written next to the output FASTA file.")
	util.AssertLeastNArg(1)
}

func main() {
	pdbFile := util.Arg(0)
	root := util.RootName(pdbFile, ".pdb")

	outFasta := root + ".fa"
	if util.NArg() > 1 {
		outFasta = util.Arg(1)
	}

	entry := util.PDBOpen(pdbFile)
	chain := util.PDBChain(entry, util.FlagChain)

	header := fmt.Sprintf("%s_chain_%c", root, util.FlagChain)
	fasta := util.CreateFile(outFasta)
	util.Assert(chain.WriteFasta(fasta, header),
		"Error writing FASTA '%s'", outFasta)
	util.Assert(fasta.Close())

	if !flagNoNumberingMap {
		outMap := root + ".numbering_map"
		nmap := util.CreateFile(outMap)
		util.Assert(chain.WriteNumberingMap(nmap),
			"Error writing numbering map '%s'", outMap)
		util.Assert(nmap.Close())
	}
}
