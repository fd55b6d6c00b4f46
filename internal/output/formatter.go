// Package output renders a CalculationBreakdown for the CLI. Formatters are
// presentation only; they never recompute dollar figures.
package output

import (
	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
)

// Formatter renders a calculation breakdown.
type Formatter interface {
	Name() string
	Format(bd *domain.CalculationBreakdown) ([]byte, error)
}

// NewFormatter returns the formatter for a name, defaulting to console.
func NewFormatter(name string) Formatter {
	switch name {
	case "json":
		return JSONFormatter{}
	default:
		return ConsoleFormatter{}
	}
}
