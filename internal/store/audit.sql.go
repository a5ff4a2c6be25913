package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertCallAudit = `-- name: InsertCallAudit :one
INSERT INTO chimp.call_audit (api, version, method, account_id, request_id, request_hash, outcome, duration_ms)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING event_id
`

type InsertCallAuditParams struct {
	Api         string      `json:"api"`
	Version     string      `json:"version"`
	Method      string      `json:"method"`
	AccountID   pgtype.Text `json:"account_id"`
	RequestID   pgtype.Text `json:"request_id"`
	RequestHash string      `json:"request_hash"`
	Outcome     string      `json:"outcome"`
	DurationMs  int64       `json:"duration_ms"`
}

func (q *Queries) InsertCallAudit(ctx context.Context, arg InsertCallAuditParams) (int64, error) {
	row := q.db.QueryRow(ctx, insertCallAudit,
		arg.Api,
		arg.Version,
		arg.Method,
		arg.AccountID,
		arg.RequestID,
		arg.RequestHash,
		arg.Outcome,
		arg.DurationMs,
	)
	var event_id int64
	err := row.Scan(&event_id)
	return event_id, err
}

const listCallAudit = `-- name: ListCallAudit :many
SELECT event_id, ts, api, version, method, account_id, request_id, request_hash, outcome, duration_ms
FROM chimp.call_audit
WHERE ($2::text IS NULL OR account_id = $2)
ORDER BY event_id DESC
LIMIT $1
`

type ListCallAuditParams struct {
	Limit     int32       `json:"limit"`
	AccountID pgtype.Text `json:"account_id"`
}

func (q *Queries) ListCallAudit(ctx context.Context, arg ListCallAuditParams) ([]ChimpCallAudit, error) {
	rows, err := q.db.Query(ctx, listCallAudit, arg.Limit, arg.AccountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ChimpCallAudit
	for rows.Next() {
		var i ChimpCallAudit
		if err := rows.Scan(
			&i.EventID,
			&i.Ts,
			&i.Api,
			&i.Version,
			&i.Method,
			&i.AccountID,
			&i.RequestID,
			&i.RequestHash,
			&i.Outcome,
			&i.DurationMs,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
