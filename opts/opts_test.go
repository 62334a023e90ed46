package opts

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	table := Table{
		"query":          Literal("1abc.fa"),
		"out_ascii_pssm": Basename(func(root string) string { return root + ".pssm" }),
	}
	resolved := table.Resolve("1abc")
	if resolved["query"] != "1abc.fa" {
		t.Errorf("query resolved to %q", resolved["query"])
	}
	if resolved["out_ascii_pssm"] != "1abc.pssm" {
		t.Errorf("out_ascii_pssm resolved to %q", resolved["out_ascii_pssm"])
	}
}

func TestArgs(t *testing.T) {
	args := Args(map[string]string{
		"db":                         "nr",
		"save_pssm_after_last_round": "",
		"num_iterations":             "2",
	})
	got := strings.Join(args, " ")
	want := "-db nr -num_iterations 2 -save_pssm_after_last_round"
	if got != want {
		t.Errorf("Args = %q, want %q", got, want)
	}
}

func TestCommand(t *testing.T) {
	c := Command("psiblast", nil, map[string]string{"db": "nr"})
	if len(c.Cmd.Args) != 3 {
		t.Fatalf("command argv is %v", c.Cmd.Args)
	}
	if c.Cmd.Args[1] != "-db" || c.Cmd.Args[2] != "nr" {
		t.Errorf("command argv is %v", c.Cmd.Args)
	}
}
