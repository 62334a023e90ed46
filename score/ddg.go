package score

import (
	"fmt"
	"io"
	"strings"
)

// DDGPrefix marks the rows of ddg_monomer's prediction output.
const DDGPrefix = "ddG:"

// A DDG holds the rows of a ddg_predictions.out file. Each row is keyed by
// its first field (the header row by "description", prediction rows by the
// decoy description); Keys preserves file order.
type DDG struct {
	Keys []string
	Rows map[string][]string
}

// ReadDDG parses ddg_monomer's prediction output. Blank lines are skipped;
// every other line must start with DDGPrefix.
func ReadDDG(r io.Reader) (*DDG, error) {
	return ReadDDGPrefix(r, DDGPrefix)
}

// ReadDDGPrefix is ReadDDG with an explicit row prefix.
func ReadDDGPrefix(r io.Reader, prefix string) (*DDG, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("error reading ddg predictions: %s", err)
	}

	ddg := &DDG{Rows: make(map[string][]string)}
	for _, line := range lines {
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		if !strings.HasPrefix(line, prefix) {
			return nil, fmt.Errorf(
				"ddg prediction row does not start with %q: %q", prefix, line)
		}
		fields := strings.Fields(strings.TrimPrefix(line, prefix))
		if len(fields) == 0 {
			continue
		}
		key := fields[0]
		if _, ok := ddg.Rows[key]; !ok {
			ddg.Keys = append(ddg.Keys, key)
		}
		ddg.Rows[key] = fields[1:]
	}
	return ddg, nil
}
