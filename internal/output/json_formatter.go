package output

import (
	"encoding/json"

	"github.com/Peter-Metz/TSP-cost/internal/domain"
)

// JSONFormatter serializes the policy impact as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(impact *domain.PolicyImpact) ([]byte, error) {
	return json.MarshalIndent(impact, "", "  ")
}
