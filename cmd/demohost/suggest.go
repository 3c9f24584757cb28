package main

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/demohost/internal/demo"
)

// resolveOpen checks requested demo names against the registered ones.
func resolveOpen(reg *demo.Registry, requested []string) ([]string, error) {
	out := make([]string, 0, len(requested))
	for _, name := range requested {
		if d, ok := reg.Lookup(name); ok {
			out = append(out, d.Name())
			continue
		}
		if s := suggest(name, reg.Names()); s != "" {
			return nil, fmt.Errorf("unknown demo %q, did you mean %q?", name, s)
		}
		return nil, fmt.Errorf("unknown demo %q", name)
	}
	return out, nil
}

// suggest returns the candidate closest to name, or "" when none is close.
func suggest(name string, candidates []string) string {
	needle := strings.ToLower(strings.TrimSpace(name))
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(needle)/3) {
		return ""
	}
	return best
}
