package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/brandresponse/brandintel/internal/export"
	"github.com/brandresponse/brandintel/internal/model"
)

// ArchivedSession is one row of the archive listing.
type ArchivedSession struct {
	ID            string
	BusinessName  string
	Industry      string
	RecordCount   int
	VariableCount int
	StartedAt     time.Time
	CompletedAt   time.Time
}

// SaveSession archives a session's final report document. Saving the same
// session twice replaces the earlier archive row.
func (s *SQLiteStorage) SaveSession(ctx context.Context, session *model.Session) error {
	if session == nil {
		return fmt.Errorf("session must not be nil")
	}

	doc, err := export.JSON(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session %s: %w", session.ID, err)
	}

	var businessName, industry string
	if session.Context != nil {
		businessName = session.Context.BusinessName
		industry = session.Context.Industry
	}
	var recordCount int
	if session.Records != nil {
		recordCount = session.Records.Len()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, business_name, industry, record_count, variable_count, started_at, completed_at, report_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			business_name = excluded.business_name,
			industry = excluded.industry,
			record_count = excluded.record_count,
			variable_count = excluded.variable_count,
			completed_at = excluded.completed_at,
			report_json = excluded.report_json`,
		session.ID, businessName, industry, recordCount, len(session.Recommendations),
		session.StartedAt.UTC(), time.Now().UTC(), string(doc))
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	return nil
}

// ListSessions returns archived sessions, most recent first.
func (s *SQLiteStorage) ListSessions(ctx context.Context) ([]ArchivedSession, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, business_name, industry, record_count, variable_count, started_at, completed_at
		FROM sessions
		ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []ArchivedSession
	for rows.Next() {
		var a ArchivedSession
		if err := rows.Scan(&a.ID, &a.BusinessName, &a.Industry, &a.RecordCount,
			&a.VariableCount, &a.StartedAt, &a.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	return sessions, nil
}

// GetSession loads an archived session's report document by ID.
func (s *SQLiteStorage) GetSession(ctx context.Context, id string) (*export.Document, error) {
	if id == "" {
		return nil, fmt.Errorf("id must not be empty")
	}

	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT report_json FROM sessions WHERE id = ?`, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	var doc export.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &doc, nil
}
