package decision

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/signalworks/intent-engine/src/agentic/types"
)

// ErrMalformedCondition is returned when a condition string cannot be
// parsed. Parsing happens once at rule construction; a condition that does
// not parse fails the whole rule set instead of being silently skipped at
// evaluation time.
var ErrMalformedCondition = errors.New("malformed condition")

// Operator is a comparison operator in a rule condition.
type Operator string

const (
	OpGE Operator = ">="
	OpGT Operator = ">"
	OpLT Operator = "<"
	OpEQ Operator = "=="
)

// Condition compares one numeric signal field against a threshold.
type Condition struct {
	Field     string
	Op        Operator
	Threshold float64
}

var fieldNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ParseCondition parses "field op number", e.g. "signal_strength >= 8".
func ParseCondition(expr string) (Condition, error) {
	// ">=" must be tried before ">".
	for _, op := range []Operator{OpGE, OpEQ, OpGT, OpLT} {
		idx := strings.Index(expr, string(op))
		if idx < 0 {
			continue
		}
		field := strings.TrimSpace(expr[:idx])
		rest := strings.TrimSpace(expr[idx+len(op):])
		if !fieldNameRe.MatchString(field) || rest == "" {
			return Condition{}, fmt.Errorf("%w: %q", ErrMalformedCondition, expr)
		}
		threshold, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return Condition{}, fmt.Errorf("%w: %q: bad threshold %q", ErrMalformedCondition, expr, rest)
		}
		return Condition{Field: field, Op: op, Threshold: threshold}, nil
	}
	return Condition{}, fmt.Errorf("%w: %q: no operator", ErrMalformedCondition, expr)
}

// Holds reports whether the condition is satisfied by the signal. A field
// the signal does not carry evaluates as zero.
func (c Condition) Holds(s *types.Signal) bool {
	v, _ := s.Field(c.Field)
	switch c.Op {
	case OpGE:
		return v >= c.Threshold
	case OpGT:
		return v > c.Threshold
	case OpLT:
		return v < c.Threshold
	case OpEQ:
		return v == c.Threshold
	}
	return false
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %g", c.Field, c.Op, c.Threshold)
}
