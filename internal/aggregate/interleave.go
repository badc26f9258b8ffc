package aggregate

import (
	"strings"

	"turkeybowl/internal/models"
)

// Interleave reorders a merged roster's stat columns so that every base stat
// present as both PROJ_ and ACTUAL_ appears as the adjacent pair
// (ACTUAL_<name>, PROJ_<name>), placed where the first of the two originally
// appeared. Columns without a counterpart keep their relative order. Values
// are untouched; this only affects review output.
func Interleave(mr *models.MergedRoster) {
	have := make(map[string]bool, len(mr.Columns))
	for _, col := range mr.Columns {
		have[col] = true
	}

	ordered := make([]string, 0, len(mr.Columns))
	placed := make(map[string]bool, len(mr.Columns))
	for _, col := range mr.Columns {
		if placed[col] {
			continue
		}
		base := baseStatName(col)
		actual, projected := "ACTUAL_"+base, "PROJ_"+base
		if have[actual] && have[projected] {
			ordered = append(ordered, actual, projected)
			placed[actual], placed[projected] = true, true
			continue
		}
		ordered = append(ordered, col)
		placed[col] = true
	}
	mr.Columns = ordered
}

func baseStatName(col string) string {
	col = strings.TrimPrefix(col, "PROJ_")
	return strings.TrimPrefix(col, "ACTUAL_")
}
