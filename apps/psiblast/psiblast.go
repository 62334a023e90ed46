// Package psiblast provides a convenient wrapper for running PSIBLAST and
// checking what it left behind.
//
// Only the options the pipeline needs are exposed. The interesting output
// is the ASCII PSSM; everything else PSIBLAST writes is kept only so that
// an empty PSSM can be told apart from a crashed search.
package psiblast

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/CapraLab/VIPUR/opts"
)

// Config specifies the location of the psiblast executable and the search
// parameters passed to it.
type Config struct {
	Exec       string
	Database   string
	Iterations int
	EValue     float64
	Threads    int

	// When true, the psiblast stdout and stderr will be mapped to the
	// current processes' stdout and stderr, and the command is echoed.
	Verbose bool
}

// Default runs two iterations against the non-redundant database, the
// settings the downstream feature set was trained with.
var Default = Config{
	Exec:       "psiblast",
	Database:   "nr",
	Iterations: 2,
	EValue:     1.0,
	Threads:    runtime.NumCPU(),
}

// Options returns the psiblast option table. The output files are derived
// from the query's base filename once the command is built: the checkpoint
// report goes to root + ".pb" and the ASCII PSSM to root + ".pssm".
func (conf Config) Options() opts.Table {
	return opts.Table{
		"db":             opts.Literal(conf.Database),
		"num_iterations": opts.Literal(strconv.Itoa(conf.Iterations)),
		"evalue": opts.Literal(
			strconv.FormatFloat(conf.EValue, 'g', -1, 64)),
		"num_threads":                opts.Literal(strconv.Itoa(conf.Threads)),
		"save_pssm_after_last_round": opts.Literal(""),
		"out": opts.Basename(func(root string) string {
			return root + ".pb"
		}),
		"out_ascii_pssm": opts.Basename(func(root string) string {
			return root + ".pssm"
		}),
	}
}

// Run executes PSIBLAST on the given query sequence file (FASTA, as written
// by the pdb package) and blocks until it exits. It returns the paths of
// the ASCII PSSM and of the search report.
func (conf Config) Run(query string) (pssmPath, outPath string, err error) {
	root := strings.TrimSuffix(query, ".fa")

	table := conf.Options()
	table["query"] = opts.Literal(query)
	resolved := table.Resolve(root)

	c := opts.Command(conf.Exec, nil, resolved)
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "\n%s\n", c)
		c.Cmd.Stdout = os.Stdout
		c.Cmd.Stderr = os.Stderr
	}
	if err := c.Run(); err != nil {
		return "", "", fmt.Errorf("psiblast failed on '%s': %s", query, err)
	}
	return resolved["out_ascii_pssm"], resolved["out"], nil
}

// FailurePhrase is the report phrase that distinguishes a search that ran
// and found nothing from a search that crashed.
const FailurePhrase = "No hits found"

// MissingOutputError is returned when the PSSM is empty or absent and the
// search report does not claim an empty result.
type MissingOutputError struct {
	PSSMPath   string
	OutputPath string
	Phrase     string
}

func (e MissingOutputError) Error() string {
	return fmt.Sprintf(
		"psiblast produced no usable output: pssm '%s' is empty or missing "+
			"and report '%s' does not contain %q",
		e.PSSMPath, e.OutputPath, e.Phrase)
}

// CheckOutput inspects a finished run. A non-empty PSSM means the search
// found hits. An empty or missing PSSM is still a successful run if the
// report contains FailurePhrase; otherwise the run is treated as crashed
// and a MissingOutputError is returned.
func CheckOutput(pssmPath, outPath string) (hasHits bool, err error) {
	return CheckOutputPhrase(pssmPath, outPath, FailurePhrase)
}

// CheckOutputPhrase is CheckOutput with an explicit failure phrase. The
// phrase is matched case-insensitively.
func CheckOutputPhrase(pssmPath, outPath, phrase string) (bool, error) {
	if data, err := os.ReadFile(pssmPath); err == nil {
		if len(bytes.TrimSpace(data)) > 0 {
			return true, nil
		}
	}

	report, err := os.ReadFile(outPath)
	if err != nil {
		return false, MissingOutputError{
			PSSMPath: pssmPath, OutputPath: outPath, Phrase: phrase}
	}
	if strings.Contains(
		strings.ToLower(string(report)), strings.ToLower(phrase)) {
		// The search ran fine; there just were no hits.
		return false, nil
	}
	return false, MissingOutputError{
		PSSMPath: pssmPath, OutputPath: outPath, Phrase: phrase}
}
