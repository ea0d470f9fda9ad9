package resolve

import (
	"sort"

	"github.com/amanshaikhx1/Auto-Dashboard/domain/core"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/table"
)

// DefaultThreshold is the minimum confidence an automatic mapping needs.
const DefaultThreshold = 0.5

// Resolver turns per-column candidate lists into a single conflict-free
// assignment: each catalog field held by at most one column and each column
// mapped to at most one field. Greedy assignment by descending confidence is
// sufficient for this accuracy class; the walk is strictly sequential because
// acceptance order matters.
type Resolver struct {
	threshold float64
}

// New creates a resolver with the given acceptance threshold.
func New(threshold float64) *Resolver {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Resolver{threshold: threshold}
}

// proposal is one (column, field) pairing under consideration.
type proposal struct {
	columnIdx  int
	fieldID    core.FieldID
	confidence float64
}

// Resolve produces one ColumnMapping per input column, in column order.
// Zero columns or all-empty candidate lists yield a valid all-unmapped
// result, never an error.
func (r *Resolver) Resolve(columns []string, candidates [][]table.CandidateMatch) []table.ColumnMapping {
	mappings := make([]table.ColumnMapping, len(columns))
	for i, col := range columns {
		mappings[i] = table.ColumnMapping{SourceColumn: col}
	}

	var proposals []proposal
	for i := range columns {
		if i >= len(candidates) {
			break
		}
		for _, cand := range candidates[i] {
			if cand.Confidence >= r.threshold {
				proposals = append(proposals, proposal{
					columnIdx:  i,
					fieldID:    cand.FieldID,
					confidence: cand.Confidence,
				})
			} else if cand.Confidence > mappings[i].Confidence {
				// Best rejected candidate, kept for observability
				mappings[i].Confidence = cand.Confidence
			}
		}
	}

	// Descending confidence; equal confidences resolve in original column
	// order (stable sort over a column-ordered slice).
	sort.SliceStable(proposals, func(a, b int) bool {
		return proposals[a].confidence > proposals[b].confidence
	})

	columnTaken := make(map[int]bool)
	fieldTaken := make(map[core.FieldID]bool)
	for _, p := range proposals {
		if columnTaken[p.columnIdx] || fieldTaken[p.fieldID] {
			// Conflict: losing proposals surface as unmapped state, not errors
			if !columnTaken[p.columnIdx] && p.confidence > mappings[p.columnIdx].Confidence {
				mappings[p.columnIdx].Confidence = p.confidence
			}
			continue
		}
		columnTaken[p.columnIdx] = true
		fieldTaken[p.fieldID] = true
		mappings[p.columnIdx] = table.ColumnMapping{
			SourceColumn:  columns[p.columnIdx],
			BusinessField: p.fieldID,
			Mapped:        true,
			Confidence:    p.confidence,
		}
	}

	return mappings
}

// Override forces a column onto a field, bypassing scoring. It always
// succeeds: any prior holder of the field becomes unmapped, and an empty
// fieldID unmaps the column. Bijectivity over the mapped subset is preserved.
// The input slice is not modified.
func (r *Resolver) Override(mappings []table.ColumnMapping, column string, fieldID core.FieldID) []table.ColumnMapping {
	out := make([]table.ColumnMapping, len(mappings))
	copy(out, mappings)

	for i := range out {
		if out[i].SourceColumn == column {
			continue
		}
		if fieldID != "" && out[i].Mapped && out[i].BusinessField == fieldID {
			out[i] = table.ColumnMapping{SourceColumn: out[i].SourceColumn}
		}
	}

	for i := range out {
		if out[i].SourceColumn != column {
			continue
		}
		if fieldID == "" {
			out[i] = table.ColumnMapping{SourceColumn: column}
		} else {
			out[i] = table.ColumnMapping{
				SourceColumn:  column,
				BusinessField: fieldID,
				Mapped:        true,
				Confidence:    1.0, // explicit user decision
			}
		}
	}

	return out
}
