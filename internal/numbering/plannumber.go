package numbering

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/julianstephens/studyplan/internal/logger"
	"github.com/julianstephens/studyplan/internal/models"
)

// sessionKey identifies one logical study session: blocks on the same date
// covering the same content range belong together.
type sessionKey struct {
	PlanDate  string
	ContentID string
	StartUnit int
	EndUnit   int
}

func keyOf(p models.Plan) sessionKey {
	return sessionKey{
		PlanDate:  p.PlanDate,
		ContentID: p.ContentID,
		StartUnit: p.PlannedStartUnit,
		EndUnit:   p.PlannedEndUnit,
	}
}

// AssignPlanNumbers returns a copy of plans with PlanNumber set. Plans are
// visited in the given order; each new session key takes the next number
// starting at 1, and repeated keys reuse the number of their first record.
// The input must be in flatten order: reordering it changes the numbers.
func AssignPlanNumbers(plans []models.Plan) []models.Plan {
	registry := orderedmap.New[sessionKey, int]()
	next := 1

	out := make([]models.Plan, len(plans))
	for i, p := range plans {
		key := keyOf(p)
		number, ok := registry.Get(key)
		if !ok {
			number = next
			registry.Set(key, number)
			next++
		}
		p.PlanNumber = number
		out[i] = p
	}

	logger.Debug("Assigned plan numbers", "plans", len(plans), "sessions", registry.Len())
	return out
}
