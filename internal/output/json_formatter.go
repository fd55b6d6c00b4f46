package output

import (
	"encoding/json"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
)

// JSONFormatter serializes the breakdown as pretty-printed JSON. This is the
// shape persistence collaborators store alongside the input hash.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(bd *domain.CalculationBreakdown) ([]byte, error) {
	return json.MarshalIndent(bd, "", "  ")
}
