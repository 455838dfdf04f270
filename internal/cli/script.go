package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/input"
	"github.com/aretw0/algotrace/pkg/linear"
)

// ApplyScript runs comma separated session commands such as
// "push 5, push 3, pop, seek 1, push 9". seek moves the cursor so the next
// operation branches off an earlier step. It stops at the first error.
func ApplyScript(s *linear.Session, raw string) error {
	script, err := input.Sanitize(raw)
	if err != nil {
		return err
	}
	for _, cmd := range strings.Split(script, ",") {
		fields := strings.Fields(cmd)
		if len(fields) == 0 {
			continue
		}

		if strings.EqualFold(fields[0], "seek") {
			n, err := argument(fields)
			if err != nil {
				return err
			}
			if err := s.Seek(n); err != nil {
				return err
			}
			continue
		}

		op, err := linear.ParseOp(fields[0])
		if err != nil {
			return err
		}
		if op == linear.OpPop {
			if len(fields) > 1 {
				return fmt.Errorf("%w: %q takes no value", domain.ErrInvalidInput, strings.TrimSpace(cmd))
			}
			if _, err := s.Pop(); err != nil {
				return err
			}
			continue
		}

		v, err := argument(fields)
		if err != nil {
			return err
		}
		if _, err := s.Push(v); err != nil {
			return err
		}
	}
	return nil
}

func argument(fields []string) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q wants exactly one number", domain.ErrInvalidInput, strings.Join(fields, " "))
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid number", domain.ErrInvalidInput, fields[1])
	}
	return n, nil
}
