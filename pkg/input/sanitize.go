package input

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/algotrace/pkg/domain"
)

// DefaultMaxTextSize bounds raw text handed to the parsers (arrays, scripts).
const DefaultMaxTextSize = 4096

// EnvMaxTextSize overrides DefaultMaxTextSize when set to a positive integer.
const EnvMaxTextSize = "ALGOTRACE_MAX_INPUT_SIZE"

// Sanitize rejects oversized or non UTF-8 text and strips control
// characters other than tab, newline and carriage return.
func Sanitize(raw string) (string, error) {
	if limit := maxTextSize(); len(raw) > limit {
		return "", fmt.Errorf("%w: input is %d bytes, limit is %d", domain.ErrInvalidInput, len(raw), limit)
	}
	if !utf8.ValidString(raw) {
		return "", fmt.Errorf("%w: input is not valid UTF-8", domain.ErrInvalidInput)
	}
	if strings.IndexFunc(raw, unsafeControl) < 0 {
		return raw, nil
	}
	return strings.Map(func(r rune) rune {
		if unsafeControl(r) {
			return -1
		}
		return r
	}, raw), nil
}

func unsafeControl(r rune) bool {
	return unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r'
}

func maxTextSize() int {
	if v := os.Getenv(EnvMaxTextSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxTextSize
}
