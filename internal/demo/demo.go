// Package demo holds the demo registry: the fixed list of demos, which of
// them are open, and dispatch of checkbox and render calls.
package demo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jask/demohost/internal/ui"
)

// Demo is a self-contained window. Name must be non-empty, stable and
// unique within a registry because it is the persisted key of the demo's
// open state.
type Demo interface {
	Name() string
	// Render draws the demo. It may set *open to false to close itself.
	Render(ctx *ui.Context, open *bool)
}

// ValidateNames reports empty and duplicate demo names.
func ValidateNames(demos []Demo) error {
	var errs []error
	seen := make(map[string]int, len(demos))
	for i, d := range demos {
		name := d.Name()
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("demo %d (%T) has an empty name", i, d))
			continue
		}
		if prev, ok := seen[name]; ok {
			errs = append(errs, fmt.Errorf("duplicate demo name %q at positions %d and %d", name, prev, i))
			continue
		}
		seen[name] = i
	}
	return errors.Join(errs...)
}
