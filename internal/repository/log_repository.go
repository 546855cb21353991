package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/supportclint/call-logs-backend/internal/models"
)

// LogRepository reads the append-only log tables. One fixed query per entity
// type; caller input only ever appears as a bind parameter, never in the
// statement text.
type LogRepository struct {
	pool *pgxpool.Pool
}

func NewLogRepository(pool *pgxpool.Pool) *LogRepository {
	return &LogRepository{pool: pool}
}

func (r *LogRepository) CallLogsByUser(ctx context.Context, userID string) ([]models.CallLog, error) {
	const query = `
		SELECT id, user_id, date, from_number, to_number, duration, status, cost, direction, call_type
		FROM call_logs WHERE user_id = $1 ORDER BY date DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.CallLog, 0)
	for rows.Next() {
		var l models.CallLog
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Date, &l.From, &l.To,
			&l.Duration, &l.Status, &l.Cost, &l.Direction, &l.CallType,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *LogRepository) ErrorLogsByUser(ctx context.Context, userID string) ([]models.ErrorLog, error) {
	const query = `
		SELECT id, user_id, date, code, message
		FROM error_logs WHERE user_id = $1 ORDER BY date DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.ErrorLog, 0)
	for rows.Next() {
		var l models.ErrorLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Date, &l.Code, &l.Message); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *LogRepository) MessageLogsByUser(ctx context.Context, userID string) ([]models.MessageLog, error) {
	const query = `
		SELECT id, user_id, date, direction, from_number, to_number, body, status
		FROM message_logs WHERE user_id = $1 ORDER BY date DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.MessageLog, 0)
	for rows.Next() {
		var l models.MessageLog
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Date, &l.Direction, &l.From, &l.To, &l.Body, &l.Status,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *LogRepository) CallRecordingsByUser(ctx context.Context, userID string) ([]models.CallRecording, error) {
	const query = `
		SELECT id, user_id, call_sid, date, duration, url
		FROM call_recordings WHERE user_id = $1 ORDER BY date DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recordings := make([]models.CallRecording, 0)
	for rows.Next() {
		var rec models.CallRecording
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.CallSID, &rec.Date, &rec.Duration, &rec.URL,
		); err != nil {
			return nil, err
		}
		recordings = append(recordings, rec)
	}
	return recordings, rows.Err()
}
