// Package version compares the dotted version strings carried by the
// application and by theme documents.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type parsed [3]int

// parse accepts one to three numeric components with an optional "v" prefix.
// Missing components count as zero, so "1.0" equals "1.0.0".
func parse(s string) (parsed, error) {
	var v parsed

	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) == 0 || len(parts) > len(v) {
		return v, fmt.Errorf("invalid version %q", s)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return v, fmt.Errorf("invalid version %q", s)
		}
		v[i] = n
	}
	return v, nil
}

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range lo.Zip2(av[:], bv[:]) {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}

// Newer reports whether a is strictly newer than b. Unreadable versions are never newer.
func Newer(a, b string) bool {
	c, err := Compare(a, b)
	return err == nil && c > 0
}
