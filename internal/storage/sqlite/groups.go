package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/studyplan/internal/logger"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/storage"
)

func bind(int) string { return "?" }

func (s *Store) SavePlanGroup(group models.PlanGroup) (models.PlanGroup, error) {
	if group.ID != "" {
		if err := storage.ValidateGroupID(group.ID); err != nil {
			return models.PlanGroup{}, err
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.PlanGroup{}, err
	}
	defer tx.Rollback()

	var createdAt string
	if group.ID != "" {
		err = tx.QueryRow("SELECT created_at FROM plan_groups WHERE id = ?", group.ID).Scan(&createdAt)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return models.PlanGroup{}, fmt.Errorf("failed to check existing plan group: %w", err)
		}
	}
	group = storage.PrepareGroup(group, createdAt)

	_, err = tx.Exec(`
		INSERT INTO plan_groups (id, name, period_start, period_end, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			period_start = excluded.period_start,
			period_end = excluded.period_end,
			updated_at = excluded.updated_at`,
		group.ID, group.Name, group.PeriodStart, group.PeriodEnd, group.CreatedAt, group.UpdatedAt,
	)
	if err != nil {
		return models.PlanGroup{}, fmt.Errorf("failed to save plan group: %w", err)
	}

	// Replace, never merge: a regenerated group must not keep stale rows
	if _, err := tx.Exec("DELETE FROM plans WHERE group_id = ?", group.ID); err != nil {
		return models.PlanGroup{}, fmt.Errorf("failed to clear plans: %w", err)
	}

	stmt, err := tx.Prepare(storage.InsertPlanSQL(bind))
	if err != nil {
		return models.PlanGroup{}, err
	}
	defer stmt.Close()

	for i, p := range group.Plans {
		if _, err := stmt.Exec(storage.PlanArgs(group.ID, i, p)...); err != nil {
			return models.PlanGroup{}, fmt.Errorf("failed to insert plan %d (%s): %w", i, p.PlanDate, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.PlanGroup{}, err
	}

	logger.Debug("Saved plan group", "id", group.ID, "plans", len(group.Plans))
	return group, nil
}

func (s *Store) GetPlanGroup(id string) (models.PlanGroup, error) {
	var group models.PlanGroup
	err := s.db.QueryRow(
		"SELECT id, name, period_start, period_end, created_at, updated_at FROM plan_groups WHERE id = ?", id,
	).Scan(&group.ID, &group.Name, &group.PeriodStart, &group.PeriodEnd, &group.CreatedAt, &group.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PlanGroup{}, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return models.PlanGroup{}, err
	}

	rows, err := s.db.Query(storage.SelectPlansSQL(bind), id)
	if err != nil {
		return models.PlanGroup{}, err
	}
	defer rows.Close()

	group.Plans = []models.Plan{}
	for rows.Next() {
		p, err := storage.ScanPlan(rows)
		if err != nil {
			return models.PlanGroup{}, err
		}
		group.Plans = append(group.Plans, p)
	}
	if err := rows.Err(); err != nil {
		return models.PlanGroup{}, err
	}

	return group, nil
}

func (s *Store) ListPlanGroups() ([]models.PlanGroupSummary, error) {
	rows, err := s.db.Query(`
		SELECT g.id, g.name, g.period_start, g.period_end, g.updated_at, COUNT(p.position)
		FROM plan_groups g
		LEFT JOIN plans p ON p.group_id = g.id
		GROUP BY g.id, g.name, g.period_start, g.period_end, g.updated_at
		ORDER BY g.updated_at DESC, g.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.PlanGroupSummary{}
	for rows.Next() {
		var sum models.PlanGroupSummary
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.PeriodStart, &sum.PeriodEnd, &sum.UpdatedAt, &sum.PlanCount); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

func (s *Store) DeletePlanGroup(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM plans WHERE group_id = ?", id); err != nil {
		return err
	}
	res, err := tx.Exec("DELETE FROM plan_groups WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}

	return tx.Commit()
}
