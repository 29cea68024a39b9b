package search

import (
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Options bounds a single FindSolution call and tags it for correlation
// with trace output and EventHandler callbacks across concurrently running
// searches.
type Options struct {
	// SessionID identifies one FindSolution invocation. Left as the zero
	// UUID, a value never produced by NewOptions, until set.
	SessionID uuid.UUID `yaml:"-"`

	// MaxExpansions caps the number of node expansions FindSolution will
	// perform before giving up with Result{Status: OutOfBudget}. Zero means
	// unbounded.
	MaxExpansions int `yaml:"max_expansions"`
}

// NewOptions returns Options with a freshly generated SessionID and no
// expansion cap.
func NewOptions() Options {
	return Options{SessionID: uuid.New()}
}

// LoadOptionsFromFile reads search budget configuration (currently just
// MaxExpansions) from a YAML file and stamps it with a fresh SessionID,
// the same role hyperpb's compiler options play for its own compile-time
// knobs, but expressed as an on-disk config file instead of functional
// options, since a search budget is the kind of thing an operator tunes
// between runs rather than a caller sets in code.
func LoadOptionsFromFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	opts := NewOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}
