package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/db"
)

// IHistoryRepository reads the append-only activity history
type IHistoryRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.HistoryEntry, error)
}

// HistoryRepository handles read access to the history table
type HistoryRepository struct {
	db db.DBTX
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(conn db.DBTX) *HistoryRepository {
	return &HistoryRepository{db: conn}
}

// ListByStudent lists a student's history newest first
func (r *HistoryRepository) ListByStudent(ctx context.Context, studentID string) ([]models.HistoryEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.title, h.action, h.timestamp
		FROM history h
		JOIN units u ON h.unit_id = u.id
		WHERE h.student_id = $1
		ORDER BY h.timestamp DESC
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying history: %w", err)
	}
	defer rows.Close()

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.Title, &e.Action, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("error scanning history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
