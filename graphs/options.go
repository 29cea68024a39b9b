package graphs

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrOutOfBudget is returned by KFWLWithOptions when k exceeds the
// configured MaxK, rather than letting an unbounded caller-chosen k run
// the enumeration in enumerateTuples out to n^k tuples.
var ErrOutOfBudget = errors.New("graphs: k-FWL tuple arity exceeds configured budget")

// Options bounds the refinement passes in this package.
type Options struct {
	// MaxK caps the tuple arity KFWLWithOptions will run. Zero means
	// unbounded.
	MaxK int `yaml:"max_k"`
}

// LoadOptionsFromFile reads refinement budget configuration from a YAML
// file, the same role a search.Options file plays for a search budget.
func LoadOptionsFromFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// KFWLWithOptions runs KFWL after checking k against opts.MaxK.
func KFWLWithOptions(g AdjacencyGraph, k int, opts Options) (Certificate, error) {
	if opts.MaxK > 0 && k > opts.MaxK {
		return Certificate{}, ErrOutOfBudget
	}
	return KFWL(g, k), nil
}
