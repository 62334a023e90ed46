package pssm

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// A trimmed-down PSIBLAST ASCII matrix: banner line, amino-acid header
// listed twice, two data rows, trailing statistics.
var testPSSM = `
Last position-specific scoring matrix computed, weighted observed percentages rounded down, information per position, and relative weight of gapless real matches to pseudocounts
           A  R  N  D  C  Q  E  G  H  I  L  K  M  F  P  S  T  W  Y  V   A   R   N   D   C   Q   E   G   H   I   L   K   M   F   P   S   T   W   Y   V
    1 M   -1 -1 -2 -3 -1  0 -2 -3 -2  1  2 -1  6  0 -2 -1 -1 -1 -1  1    0   0   0   0   0   0   0   0   0   0   6   0  87   0   0   0   0   0   0   7  0.91 0.08
    2 K   -1  2  0 -1 -3  1  1 -2 -1 -3 -2  5 -1 -3 -1  0 -1 -3 -2 -2    0   6   0   0   0   4   8   0   0   0   0  74   0   0   0   4   0   0   0   4  0.68 0.11

                      K         Lambda
Standard Ungapped    0.1397     0.3194
`

func TestRead(t *testing.T) {
	p, err := Read(strings.NewReader(testPSSM))
	if err != nil {
		t.Fatalf("%s", err)
	}

	if len(p.Positions) != 2 {
		t.Fatalf("parsed %d positions, want 2", len(p.Positions))
	}
	if len(p.Alphabet) != AlphabetSize {
		t.Fatalf("alphabet has %d letters, want %d",
			len(p.Alphabet), AlphabetSize)
	}
	if p.Alphabet[0] != "A" || p.Alphabet[19] != "V" {
		t.Errorf("alphabet order is wrong: %v", p.Alphabet)
	}

	pos1 := p.Positions[1]
	if pos1.Query != 'M' {
		t.Errorf("position 1 query = %c, want M", pos1.Query)
	}
	if pos1.LogLikelihood["M"] != 6 {
		t.Errorf("position 1 log-likelihood for M = %d, want 6",
			pos1.LogLikelihood["M"])
	}
	if pos1.LogLikelihood["D"] != -3 {
		t.Errorf("position 1 log-likelihood for D = %d, want -3",
			pos1.LogLikelihood["D"])
	}
	if pos1.Frequency["M"] != 0.87 {
		t.Errorf("position 1 frequency for M = %v, want 0.87",
			pos1.Frequency["M"])
	}
	if pos1.Information != 0.91 {
		t.Errorf("position 1 information = %v, want 0.91", pos1.Information)
	}
	if pos1.Extra != 0.08 {
		t.Errorf("position 1 extra field = %v, want 0.08", pos1.Extra)
	}

	pos2 := p.Positions[2]
	if pos2.Query != 'K' || pos2.LogLikelihood["K"] != 5 {
		t.Errorf("position 2 parsed wrong: query %c, K score %d",
			pos2.Query, pos2.LogLikelihood["K"])
	}

	for pos, entry := range p.Positions {
		sum := 0.0
		for _, f := range entry.Frequency {
			sum += f
		}
		if math.Abs(sum-1) > 0.02 {
			t.Errorf("frequencies at position %d sum to %v", pos, sum)
		}
	}
}

func TestReadAmbiguousHeader(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(testPSSM), "\n")
	// Repeat the amino-acid header so two lines tie for the header field
	// count.
	doubled := strings.Join(append([]string{lines[1]}, lines...), "\n")

	_, err := Read(strings.NewReader(doubled))
	var aerr AmbiguousHeaderError
	if !errors.As(err, &aerr) {
		t.Fatalf("got error %v, want AmbiguousHeaderError", err)
	}
	if aerr.Candidates != 2 {
		t.Fatalf("error reports %d candidates, want 2", aerr.Candidates)
	}
}

func TestReadNoHeader(t *testing.T) {
	// Data rows only: no line has (max fields - 4) fields.
	lines := strings.Split(strings.TrimSpace(testPSSM), "\n")
	_, err := Read(strings.NewReader(lines[2] + "\n" + lines[3]))
	var aerr AmbiguousHeaderError
	if !errors.As(err, &aerr) {
		t.Fatalf("got error %v, want AmbiguousHeaderError", err)
	}
	if aerr.Candidates != 0 {
		t.Fatalf("error reports %d candidates, want 0", aerr.Candidates)
	}
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		// The sign is restored even when no space precedes it.
		{"  1 K  -1-2 3", []string{"1", "K", "-1", "-2", "3"}},
		{"-5 7", []string{"-5", "7"}},
		{"", nil},
		{"   A  R", []string{"A", "R"}},
	}
	for _, test := range tests {
		got := splitFields(test.line)
		if len(got) != len(test.want) {
			t.Errorf("splitFields(%q) = %v, want %v", test.line, got, test.want)
			continue
		}
		for i := range got {
			if got[i] != test.want[i] {
				t.Errorf("splitFields(%q)[%d] = %q, want %q",
					test.line, i, got[i], test.want[i])
			}
		}
	}
}
