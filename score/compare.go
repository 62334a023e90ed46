package score

import (
	"fmt"

	"github.com/CapraLab/VIPUR/quantile"
)

// A NamedQuantile pairs a quantile with the label used to build feature
// names.
type NamedQuantile struct {
	Label string
	Q     float64
}

// DefaultQuantiles are the three quartiles compared by the pipeline.
var DefaultQuantiles = []NamedQuantile{
	{"Q1", 0.25},
	{"Q2", 0.5},
	{"Q3", 0.75},
}

// DefaultTerms are the scorefile columns compared between the variant and
// native ensembles.
var DefaultTerms = []string{
	"total_score",
	"fa_atr",
	"fa_rep",
	"fa_sol",
	"fa_intra_rep",
	"fa_dun",
	"fa_pair",
	"hbond_sr_bb",
	"hbond_lr_bb",
	"hbond_bb_sc",
	"hbond_sc",
	"pro_close",
	"rama",
	"omega",
	"p_aa_pp",
	"ref",
	"rms",
	"gdtmm1_1",
	"gdtmm2_2",
	"gdtmm3_3",
	"gdtmm4_3",
	"gdtmm7_4",
}

// A Comparison maps feature names of the form "quantile_<term><label>" to
// normalized ranks in [0, 1].
type Comparison map[string]float64

// Compare places each named quantile of the variant's distribution onto the
// native distribution: the value at quantile q of variant[term] is looked up
// as a normalized rank on native[term]. A variant quantile value outside the
// native range clamps to 0 or 1. The result answers, per term, how far the
// variant ensemble has drifted from the reference ensemble.
//
// Every requested term must be a non-empty numeric column of both tables.
func Compare(variant, native *Table, terms []string,
	quantiles []NamedQuantile) (Comparison, error) {

	features := make(Comparison, len(terms)*len(quantiles))
	for _, term := range terms {
		vdist, ok := variant.Numeric[term]
		if !ok {
			return nil, fmt.Errorf(
				"term '%s' is not a numeric column of the variant table", term)
		}
		ndist, ok := native.Numeric[term]
		if !ok {
			return nil, fmt.Errorf(
				"term '%s' is not a numeric column of the native table", term)
		}
		if len(vdist) == 0 || len(ndist) == 0 {
			return nil, fmt.Errorf("term '%s' has an empty distribution", term)
		}
		for _, nq := range quantiles {
			v := quantile.Value(nq.Q, vdist)
			features["quantile_"+term+nq.Label] = quantile.Rank(v, ndist)
		}
	}
	return features, nil
}
