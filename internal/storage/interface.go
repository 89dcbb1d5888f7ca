package storage

import (
	"errors"

	"github.com/julianstephens/studyplan/internal/models"
)

// ErrNotFound is returned when a plan group does not exist.
var ErrNotFound = errors.New("plan group not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Plan groups

	// SavePlanGroup replaces every plan of the group in a single transaction.
	// An empty ID is assigned a new UUID. The stored group is returned with
	// its ID and timestamps filled in.
	SavePlanGroup(group models.PlanGroup) (models.PlanGroup, error)
	// GetPlanGroup returns the group with its plans in emitted order.
	GetPlanGroup(id string) (models.PlanGroup, error)
	ListPlanGroups() ([]models.PlanGroupSummary, error)
	DeletePlanGroup(id string) error

	// Utils
	GetConfigPath() string
}
