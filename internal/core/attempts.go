// Package core holds the small types shared by the solver, the gacha roller
// and the command line.
package core

import (
	"fmt"
	"strings"
)

// Attempts selects how many times an operation runs.
type Attempts string

const (
	AttemptsNone Attempts = "none" // Skip the operation
	AttemptsOne  Attempts = "one"  // Run it once
	AttemptsAll  Attempts = "all"  // Run it as many times as the server allows
)

// ParseAttempts parses a case-insensitive attempts name.
func ParseAttempts(s string) (Attempts, error) {
	switch a := Attempts(strings.ToLower(strings.TrimSpace(s))); a {
	case AttemptsNone, AttemptsOne, AttemptsAll:
		return a, nil
	default:
		return "", fmt.Errorf("invalid attempts %q (want none, one or all)", s)
	}
}

// Count returns how many runs to make when available runs remain.
func (a Attempts) Count(available int) int {
	switch a {
	case AttemptsOne:
		return min(1, available)
	case AttemptsAll:
		return available
	default:
		return 0
	}
}

// String implements pflag.Value.
func (a Attempts) String() string {
	return string(a)
}

// Set implements pflag.Value.
func (a *Attempts) Set(s string) error {
	parsed, err := ParseAttempts(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Type implements pflag.Value.
func (a *Attempts) Type() string {
	return "attempts"
}
