package rosetta

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
	}{
		{"A123T", Variant{'A', "123", 'T'}},
		{"C44Y", Variant{'C', "44", 'Y'}},
		{"G100AW", Variant{'G', "100A", 'W'}}, // insertion code
	}
	for _, test := range tests {
		got, err := ParseVariant(test.in)
		if err != nil {
			t.Fatalf("ParseVariant(%q): %s", test.in, err)
		}
		if got != test.want {
			t.Errorf("ParseVariant(%q) = %+v, want %+v", test.in, got, test.want)
		}
		if got.String() != test.in {
			t.Errorf("String() = %q, want %q", got.String(), test.in)
		}
	}

	// 'B' and 'X' are A-Z but name no amino acid.
	for _, bad := range []string{"", "AT", "a123T", "A123t", "X123A", "A123B"} {
		if _, err := ParseVariant(bad); err == nil {
			t.Errorf("ParseVariant(%q) should have failed", bad)
		}
	}
}

func TestWriteMutFile(t *testing.T) {
	numbering := map[string]int{"10": 0, "11": 1, "12": 2}
	variants := []Variant{
		{'M', "10", 'V'},
		{'K', "12", 'R'},
	}

	buf := new(bytes.Buffer)
	if err := WriteMutFile(buf, variants, numbering); err != nil {
		t.Fatalf("%s", err)
	}
	want := "total 2\n1\nM 1 V\n1\nK 3 R"
	if buf.String() != want {
		t.Errorf("mut file is %q, want %q", buf.String(), want)
	}
}

func TestWriteMutFileUnknownPosition(t *testing.T) {
	buf := new(bytes.Buffer)
	err := WriteMutFile(buf, []Variant{{'M', "99", 'V'}},
		map[string]int{"10": 0})
	if err == nil {
		t.Fatal("expected an error for a position outside the modeled region")
	}
}

func TestCleanupTrajectories(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"wt_traj", "mutant_traj_A123T", "native.pdb"} {
		err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0666)
		if err != nil {
			t.Fatalf("%s", err)
		}
	}

	if err := CleanupTrajectories(dir); err != nil {
		t.Fatalf("%s", err)
	}
	for _, name := range []string{"wt_traj", "mutant_traj_A123T"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("'%s' should have been removed", name)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "native.pdb")); err != nil {
		t.Errorf("'native.pdb' should have survived: %s", err)
	}
}

func TestRelaxOptions(t *testing.T) {
	resolved := RelaxDefault.Options().Resolve("1abc")
	if resolved["out:file:silent"] != "1abc.relax.silent" {
		t.Errorf("silent output resolved to %q", resolved["out:file:silent"])
	}
	if resolved["out:file:scorefile"] != "1abc.relax.sc" {
		t.Errorf("scorefile resolved to %q", resolved["out:file:scorefile"])
	}
	if resolved["nstruct"] != "50" {
		t.Errorf("nstruct resolved to %q", resolved["nstruct"])
	}
}

func TestRescoreOptions(t *testing.T) {
	resolved := RescoreDefault.Options().Resolve("1abc.relax")
	if resolved["out:file:scorefile"] != "1abc.relax.sc" {
		t.Errorf("scorefile resolved to %q", resolved["out:file:scorefile"])
	}
}
