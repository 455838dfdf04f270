// Package input validates and produces engine input: custom arrays typed by
// a user, random arrays, and graph documents in YAML or JSON.
//
// Engines assume pre-validated input, so every check lives here and every
// failure wraps domain.ErrInvalidInput.
package input

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/aretw0/algotrace/pkg/domain"
)

const (
	// MinLength and MaxLength bound a custom or random array.
	MinLength = 2
	MaxLength = 200

	// MinValue and MaxValue bound random array values.
	MinValue = 5
	MaxValue = 104
)

// ParseArray parses comma or whitespace separated integers, e.g. "5, 3, 8".
func ParseArray(raw string) ([]int, error) {
	s, err := Sanitize(raw)
	if err != nil {
		return nil, err
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ';'
	})

	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid number", domain.ErrInvalidInput, f)
		}
		values = append(values, v)
	}

	if err := ValidateArray(values); err != nil {
		return nil, err
	}
	return values, nil
}

// ValidateArray enforces the MinLength..MaxLength bound.
func ValidateArray(values []int) error {
	if len(values) < MinLength || len(values) > MaxLength {
		return fmt.Errorf("%w: please enter between %d and %d numbers, got %d",
			domain.ErrInvalidInput, MinLength, MaxLength, len(values))
	}
	return nil
}

// RandomArray returns size values drawn from [MinValue, MaxValue].
// size is clamped to MinLength..MaxLength.
func RandomArray(size int, rng *rand.Rand) []int {
	size = max(MinLength, min(size, MaxLength))
	out := make([]int, size)
	for i := range out {
		out[i] = MinValue + rng.Intn(MaxValue-MinValue+1)
	}
	return out
}
