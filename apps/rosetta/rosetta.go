// Package rosetta provides wrappers for the Rosetta protocols the pipeline
// leans on: relax (sampling an ensemble around a structure), score
// (rescoring a silent file so all compared terms are present), and
// ddg_monomer (point-mutation stability estimates).
//
// Each wrapper prepares the protocol's inputs and hands back the path of
// the one output file worth parsing; the score and ddg outputs are parsed
// by the score package.
package rosetta

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/CapraLab/VIPUR/opts"
)

// RelaxConfig specifies the relax executable and its sampling parameters.
type RelaxConfig struct {
	Exec    string
	NStruct int

	// When true, the relax stdout and stderr will be mapped to the current
	// processes' stdout and stderr, and the command is echoed.
	Verbose bool
}

// RelaxDefault samples the 50-decoy ensembles the comparison features were
// designed around.
var RelaxDefault = RelaxConfig{
	Exec:    "relax",
	NStruct: 50,
}

// Options returns the relax option table. The silent and score outputs are
// derived from the input's base filename when the command is built.
func (conf RelaxConfig) Options() opts.Table {
	return opts.Table{
		"nstruct":          opts.Literal(strconv.Itoa(conf.NStruct)),
		"relax:thorough":   opts.Literal(""),
		"evaluation:gdtmm": opts.Literal("true"),
		"out:file:silent": opts.Basename(func(root string) string {
			return root + ".relax.silent"
		}),
		"out:file:scorefile": opts.Basename(func(root string) string {
			return root + ".relax.sc"
		}),
	}
}

// Run executes relax on the given PDB file and blocks until it exits. The
// structure is passed as its own native so that gdtmm terms are computed.
// It returns the path of the silent file holding the sampled ensemble.
func (conf RelaxConfig) Run(pdbFile string) (string, error) {
	root := strings.TrimSuffix(pdbFile, ".pdb")

	table := conf.Options()
	table["s"] = opts.Literal(pdbFile)
	table["native"] = opts.Literal(pdbFile)
	resolved := table.Resolve(root)

	c := opts.Command(conf.Exec, nil, resolved)
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "\n%s\n", c)
		c.Cmd.Stdout = os.Stdout
		c.Cmd.Stderr = os.Stderr
	}
	if err := c.Run(); err != nil {
		return "", fmt.Errorf("relax failed on '%s': %s", pdbFile, err)
	}
	return resolved["out:file:silent"], nil
}

// RescoreConfig specifies the score executable.
type RescoreConfig struct {
	Exec    string
	Verbose bool
}

// RescoreDefault rescores with the plain score protocol.
var RescoreDefault = RescoreConfig{
	Exec: "score",
}

// Options returns the score option table.
func (conf RescoreConfig) Options() opts.Table {
	return opts.Table{
		"in:file:fullatom": opts.Literal(""),
		"out:file:scorefile": opts.Basename(func(root string) string {
			return root + ".sc"
		}),
	}
}

// Run rescores the decoys of a silent file against a native structure and
// returns the path of the scorefile it wrote. Rosetta appends to an
// existing scorefile, so any stale one is removed first.
func (conf RescoreConfig) Run(silentFile, nativeFile string) (string, error) {
	root := strings.TrimSuffix(silentFile, ".silent")

	table := conf.Options()
	table["in:file:silent"] = opts.Literal(silentFile)
	table["in:file:native"] = opts.Literal(nativeFile)
	resolved := table.Resolve(root)

	if _, err := os.Stat(resolved["out:file:scorefile"]); err == nil {
		if err := os.Remove(resolved["out:file:scorefile"]); err != nil {
			return "", fmt.Errorf("could not remove stale scorefile '%s': %s",
				resolved["out:file:scorefile"], err)
		}
	}

	c := opts.Command(conf.Exec, nil, resolved)
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "\n%s\n", c)
		c.Cmd.Stdout = os.Stdout
		c.Cmd.Stderr = os.Stderr
	}
	if err := c.Run(); err != nil {
		return "", fmt.Errorf("score failed on '%s': %s", silentFile, err)
	}
	return resolved["out:file:scorefile"], nil
}

// DDGMonomerConfig specifies the ddg_monomer executable and its protocol
// parameters.
type DDGMonomerConfig struct {
	Exec       string
	Iterations int
	WeightFile string

	// ddg_monomer litters the working directory with trajectory files.
	// When Cleanup is true they are removed after the run.
	Cleanup bool
	Verbose bool
}

// DDGMonomerDefault runs the soft-repulsive local-optimization protocol.
var DDGMonomerDefault = DDGMonomerConfig{
	Exec:       "ddg_monomer",
	Iterations: 50,
	WeightFile: "soft_rep_design",
	Cleanup:    true,
}

// DDGOut is the prediction file ddg_monomer writes. The name is hardcoded
// by the protocol.
const DDGOut = "ddg_predictions.out"

// Options returns the ddg_monomer option table.
func (conf DDGMonomerConfig) Options() opts.Table {
	return opts.Table{
		"ddg::iterations":     opts.Literal(strconv.Itoa(conf.Iterations)),
		"ddg::weight_file":    opts.Literal(conf.WeightFile),
		"ddg::local_opt_only": opts.Literal(""),
		"ddg::dump_pdbs":      opts.Literal("false"),
	}
}

// Run executes ddg_monomer on a PDB file with the given mut file and blocks
// until it exits. The protocol appends to its hardcoded prediction file, so
// a stale one is removed first. It returns the prediction file path.
func (conf DDGMonomerConfig) Run(pdbFile, mutFile string) (string, error) {
	root := strings.TrimSuffix(pdbFile, ".pdb")

	if _, err := os.Stat(DDGOut); err == nil {
		if err := os.Remove(DDGOut); err != nil {
			return "", fmt.Errorf(
				"could not remove stale predictions '%s': %s", DDGOut, err)
		}
	}

	table := conf.Options()
	table["in:file:s"] = opts.Literal(pdbFile)
	table["ddg::mut_file"] = opts.Literal(mutFile)
	resolved := table.Resolve(root)

	c := opts.Command(conf.Exec, nil, resolved)
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "\n%s\n", c)
		c.Cmd.Stdout = os.Stdout
		c.Cmd.Stderr = os.Stderr
	}
	if err := c.Run(); err != nil {
		return "", fmt.Errorf("ddg_monomer failed on '%s': %s", pdbFile, err)
	}

	if conf.Cleanup {
		if err := CleanupTrajectories("."); err != nil {
			return "", err
		}
	}
	return DDGOut, nil
}

// CleanupTrajectories removes the wt_traj and mutant_traj* files
// ddg_monomer leaves in the given directory.
func CleanupTrajectories(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not list '%s' for cleanup: %s", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if name == "wt_traj" || strings.HasPrefix(name, "mutant_traj") {
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				return fmt.Errorf("could not remove '%s': %s", name, err)
			}
		}
	}
	return nil
}
