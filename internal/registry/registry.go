package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidEntry wraps every construction-time validation failure.
var ErrInvalidEntry = errors.New("invalid chart entry")

// Registry maps each ChartID to its ChartEntry. It is built once and never
// mutated; lookups hand out copies.
type Registry struct {
	entries [chartCount]ChartEntry
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the registry of compiled-in charts. The data is static, so
// a validation failure here is a programming error and panics.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = New()
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultReg
}

// New validates the compiled-in charts and returns a fresh registry.
func New() (*Registry, error) {
	return build(builtinEntries())
}

func build(entries []ChartEntry) (*Registry, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	reg := &Registry{}
	var seen [chartCount]bool
	for i, e := range entries {
		if err := v.Struct(e); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%s): %s", ErrInvalidEntry, i, e.Title, describe(err))
		}
		if err := checkShape(e); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidEntry, e.ID, err)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("%w: %s registered twice", ErrInvalidEntry, e.ID)
		}
		seen[e.ID] = true
		reg.entries[e.ID] = e.clone()
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: %s has no entry", ErrInvalidEntry, ChartID(i))
		}
	}
	return reg, nil
}

// checkShape enforces the rules struct tags cannot express.
func checkShape(e ChartEntry) error {
	for _, r := range e.Records {
		if len(r.Values) != len(e.Series) {
			return fmt.Errorf("record %q has %d values for %d series", r.Label, len(r.Values), len(e.Series))
		}
	}
	switch e.Kind {
	case GroupedBar:
		if len(e.Series) < 2 {
			return fmt.Errorf("grouped bar needs at least 2 series, got %d", len(e.Series))
		}
	case Pie:
		if e.Total(0) <= 0 {
			return errors.New("pie values sum to zero")
		}
	case Area:
		for i := 1; i < len(e.Records); i++ {
			if e.Records[i].X <= e.Records[i-1].X {
				return fmt.Errorf("area points out of order at %q", e.Records[i].Label)
			}
		}
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// Lookup returns a copy of the entry for id. It reports false only for ids
// outside the closed set.
func (r *Registry) Lookup(id ChartID) (ChartEntry, bool) {
	if !id.Valid() {
		return ChartEntry{}, false
	}
	return r.entries[id].clone(), true
}

// MustLookup is Lookup for ids already known to be valid.
func (r *Registry) MustLookup(id ChartID) ChartEntry {
	e, ok := r.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("registry: %s", id))
	}
	return e
}

// Entries returns copies of all entries in tab order.
func (r *Registry) Entries() []ChartEntry {
	out := make([]ChartEntry, 0, chartCount)
	for _, e := range r.entries {
		out = append(out, e.clone())
	}
	return out
}

// Len is the number of charts; always five.
func (r *Registry) Len() int { return chartCount }
