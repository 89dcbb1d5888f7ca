package numbering

import (
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/julianstephens/studyplan/internal/models"
)

// SequenceKey addresses a single plan row for sequence lookups.
type SequenceKey struct {
	PlanDate   string
	BlockIndex int
	ContentID  string
}

// Lookup maps plan rows to their per-content sequence number.
type Lookup map[SequenceKey]int

// For returns the sequence number of a plan, or 0 when it has none.
func (l Lookup) For(p models.Plan) int {
	return l[SequenceKey{PlanDate: p.PlanDate, BlockIndex: p.BlockIndex, ContentID: p.ContentID}]
}

// Sequence counts, per content item, how many distinct sessions have occurred
// up to each row in chronological order. Within a content item rows are
// ordered by (PlanDate, BlockIndex) and every distinct PlanNumber takes the
// next sequence value starting at 1; rows sharing a PlanNumber share a value.
//
// The result is display-only and recomputed on every call. Placeholder rows
// without a ContentID are skipped.
func Sequence(plans []models.Plan) Lookup {
	groups := make(map[string][]models.Plan)
	for _, p := range plans {
		if p.IsPlaceholder() {
			continue
		}
		groups[p.ContentID] = append(groups[p.ContentID], p)
	}

	lookup := make(Lookup, len(plans))
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].PlanDate != group[j].PlanDate {
				return group[i].PlanDate < group[j].PlanDate
			}
			return group[i].BlockIndex < group[j].BlockIndex
		})

		seen := orderedmap.New[int, int]()
		for _, p := range group {
			seq, ok := seen.Get(p.PlanNumber)
			if !ok {
				seq = seen.Len() + 1
				seen.Set(p.PlanNumber, seq)
			}
			lookup[SequenceKey{PlanDate: p.PlanDate, BlockIndex: p.BlockIndex, ContentID: p.ContentID}] = seq
		}
	}

	return lookup
}

// Ordinal renders a sequence number as an English ordinal ("1st", "2nd", ...).
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
