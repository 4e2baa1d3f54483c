package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fittrackapp/fittrack/internal/model"
)

var (
	ErrProgressEntryNotFound = errors.New("progress entry not found")
)

// ProgressRepository is the persistence side of the progress ledger. ForGoal
// returns every entry attached to a goal; callers derive ordering and metrics
// from the full set.
type ProgressRepository interface {
	Create(entry *model.ProgressEntry) error
	ByID(id string) (*model.ProgressEntry, error)
	ForGoal(goalID string) ([]model.ProgressEntry, error)
	ForGoals(goalIDs []string) (map[string][]model.ProgressEntry, error)
	Update(entry *model.ProgressEntry) error
	Delete(id string) error
}

type progressRepository struct {
	db *sqlx.DB
}

func NewProgressRepository(db *sqlx.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(entry *model.ProgressEntry) error {
	query := `INSERT INTO progress_entries (id, goal_id, value, date, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		entry.ID,
		entry.GoalID,
		entry.Value,
		entry.Date,
		entry.CreatedAt,
	)

	return err
}

func (r *progressRepository) ByID(id string) (*model.ProgressEntry, error) {
	entry := &model.ProgressEntry{}
	query := `SELECT * FROM progress_entries WHERE id = $1`

	err := r.db.Get(entry, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrProgressEntryNotFound
	}

	return entry, err
}

func (r *progressRepository) ForGoal(goalID string) ([]model.ProgressEntry, error) {
	entries := []model.ProgressEntry{}
	query := `SELECT * FROM progress_entries WHERE goal_id = $1 ORDER BY date ASC, created_at ASC`

	err := r.db.Select(&entries, query, goalID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// ForGoals loads entries for a set of goals in one round trip, keyed by goal.
// Goals with no entries simply have no key in the result.
func (r *progressRepository) ForGoals(goalIDs []string) (map[string][]model.ProgressEntry, error) {
	byGoal := make(map[string][]model.ProgressEntry)
	if len(goalIDs) == 0 {
		return byGoal, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM progress_entries WHERE goal_id IN (?) ORDER BY date ASC, created_at ASC`, goalIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	entries := []model.ProgressEntry{}
	err = r.db.Select(&entries, query, args...)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		byGoal[entry.GoalID] = append(byGoal[entry.GoalID], entry)
	}

	return byGoal, nil
}

func (r *progressRepository) Update(entry *model.ProgressEntry) error {
	query := `UPDATE progress_entries
	          SET value = $1, date = $2
	          WHERE id = $3`

	result, err := r.db.Exec(query, entry.Value, entry.Date, entry.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrProgressEntryNotFound
	}

	return nil
}

func (r *progressRepository) Delete(id string) error {
	query := `DELETE FROM progress_entries WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrProgressEntryNotFound
	}

	return nil
}
