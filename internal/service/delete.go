package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/errs"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/validation"
)

// deleteTarget checks a delete payload against entity and returns the id
// held under idKey. Every key must be a property of entity.
func deleteTarget(payload map[string]any, entity any, idKey string) (int64, error) {
	if len(payload) == 0 {
		return 0, errs.NewBadRequestError("No identifier provided.")
	}

	for key := range payload {
		if !validation.IsPropertyOf(key, entity) {
			return 0, errs.NewBadRequestError("Invalid property provided: " + key + ".")
		}
	}

	raw, ok := payload[idKey]
	if !ok {
		return 0, errs.NewBadRequestError("No identifier provided.")
	}

	// float64(math.MaxInt64) rounds up to 2^63, which no longer fits an int64.
	id := toNumber(raw)
	if !validation.IsValidID(id) || id >= math.MaxInt64 {
		return 0, errs.NewBadRequestError("Invalid identifier provided.")
	}

	return int64(id), nil
}

// toNumber converts a decoded JSON value to a number: numbers as-is,
// numeric strings parsed, blank strings and null to 0, booleans to 1 or 0.
// Anything else is NaN.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}
