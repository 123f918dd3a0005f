package pagination

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/pokedex/internal/pokedex"
)

// Sort orders.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	sortPartsMax = 2
)

// ErrInvalidSortField is returned for fields the sorter does not know.
var ErrInvalidSortField = errors.New("invalid sort field")

// SummarySorter sorts list rows by id, name or primary type.
type SummarySorter struct {
	validFields map[string]bool
}

// NewSummarySorter returns a sorter accepting id, name and type.
func NewSummarySorter() *SummarySorter {
	return &SummarySorter{
		validFields: map[string]bool{
			"id":   true,
			"name": true,
			"type": true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *SummarySorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields in a stable order.
func (s *SummarySorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// Sort returns a sorted copy of rows. Ties keep load order. An invalid
// field returns rows unchanged.
func (s *SummarySorter) Sort(rows []pokedex.Summary, field, order string) []pokedex.Summary {
	if !s.IsValidField(field) {
		return rows
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b pokedex.Summary) int {
		if order == SortOrderDesc {
			a, b = b, a
		}
		switch field {
		case "id":
			return a.ID - b.ID
		case "name":
			return strings.Compare(a.Name, b.Name)
		case "type":
			return strings.Compare(primaryType(a), primaryType(b))
		default:
			return 0
		}
	})
	return sorted
}

func primaryType(s pokedex.Summary) string {
	if len(s.Types) == 0 {
		return ""
	}
	return s.Types[0]
}

// ParseSortExpression parses "field" or "field:order". The order defaults
// to ascending.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSortExpression(expr string) (field, order string, err error) {
	if strings.TrimSpace(expr) == "" {
		return "", "", errors.New("empty sort expression")
	}

	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return "", "", fmt.Errorf("invalid format: too many colons in %q", expr)
	}

	field = strings.ToLower(strings.TrimSpace(parts[0]))
	if field == "" {
		return "", "", errors.New("empty sort expression")
	}

	order = SortOrderAsc
	if len(parts) == sortPartsMax {
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("invalid sort order: %q (must be asc or desc)", order)
	}

	return field, order, nil
}
