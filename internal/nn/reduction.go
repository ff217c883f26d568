package nn

import (
	"fmt"
	"strings"
)

// Reduction selects how a loss collapses per-example values.
type Reduction int

// Supported reductions. The zero value is ReductionMean.
const (
	// ReductionMean divides the weighted sum by the number of loss elements.
	ReductionMean Reduction = iota
	// ReductionSum returns the weighted sum.
	ReductionSum
	// ReductionNone returns the weighted per-example tensor unchanged in shape.
	ReductionNone
)

// ReductionAuto is the default policy, an alias of ReductionMean.
const ReductionAuto = ReductionMean

// String returns the canonical identifier used in config files.
func (r Reduction) String() string {
	switch r {
	case ReductionMean:
		return "mean"
	case ReductionSum:
		return "sum"
	case ReductionNone:
		return "none"
	default:
		return fmt.Sprintf("Reduction(%d)", int(r))
	}
}

// ParseReduction parses a reduction identifier, case-insensitively.
// "auto" and "sum_over_batch_size" are accepted as synonyms of "mean".
func ParseReduction(s string) (Reduction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mean", "auto", "sum_over_batch_size":
		return ReductionMean, nil
	case "sum":
		return ReductionSum, nil
	case "none":
		return ReductionNone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownReduction, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Reduction) MarshalText() ([]byte, error) {
	switch r {
	case ReductionMean, ReductionSum, ReductionNone:
		return []byte(r.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownReduction, int(r))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reduction) UnmarshalText(text []byte) error {
	parsed, err := ParseReduction(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
