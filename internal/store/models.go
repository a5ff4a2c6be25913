package store

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type ChimpAccount struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	AccountName string             `json:"account_name"`
	LoginEmail  string             `json:"login_email"`
	Dc          string             `json:"dc"`
	ApiKey      string             `json:"api_key"`
	ApiEndpoint string             `json:"api_endpoint"`
	LoginUrl    string             `json:"login_url"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type ChimpCallAudit struct {
	EventID     int64              `json:"event_id"`
	Ts          pgtype.Timestamptz `json:"ts"`
	Api         string             `json:"api"`
	Version     string             `json:"version"`
	Method      string             `json:"method"`
	AccountID   pgtype.Text        `json:"account_id"`
	RequestID   pgtype.Text        `json:"request_id"`
	RequestHash string             `json:"request_hash"`
	Outcome     string             `json:"outcome"`
	DurationMs  int64              `json:"duration_ms"`
}
