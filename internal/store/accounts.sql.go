package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const upsertAccount = `-- name: UpsertAccount :one
INSERT INTO chimp.accounts (id, user_id, account_name, login_email, dc, api_key, api_endpoint, login_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id) DO UPDATE SET
    account_name = EXCLUDED.account_name,
    login_email  = EXCLUDED.login_email,
    dc           = EXCLUDED.dc,
    api_key      = EXCLUDED.api_key,
    api_endpoint = EXCLUDED.api_endpoint,
    login_url    = EXCLUDED.login_url,
    updated_at   = now()
RETURNING id, user_id, account_name, login_email, dc, api_key, api_endpoint, login_url, created_at, updated_at
`

type UpsertAccountParams struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	AccountName string `json:"account_name"`
	LoginEmail  string `json:"login_email"`
	Dc          string `json:"dc"`
	ApiKey      string `json:"api_key"`
	ApiEndpoint string `json:"api_endpoint"`
	LoginUrl    string `json:"login_url"`
}

func (q *Queries) UpsertAccount(ctx context.Context, arg UpsertAccountParams) (ChimpAccount, error) {
	row := q.db.QueryRow(ctx, upsertAccount,
		arg.ID,
		arg.UserID,
		arg.AccountName,
		arg.LoginEmail,
		arg.Dc,
		arg.ApiKey,
		arg.ApiEndpoint,
		arg.LoginUrl,
	)
	var i ChimpAccount
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.AccountName,
		&i.LoginEmail,
		&i.Dc,
		&i.ApiKey,
		&i.ApiEndpoint,
		&i.LoginUrl,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getAccount = `-- name: GetAccount :one
SELECT id, user_id, account_name, login_email, dc, api_key, api_endpoint, login_url, created_at, updated_at
FROM chimp.accounts WHERE id = $1
`

func (q *Queries) GetAccount(ctx context.Context, id string) (ChimpAccount, error) {
	row := q.db.QueryRow(ctx, getAccount, id)
	var i ChimpAccount
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.AccountName,
		&i.LoginEmail,
		&i.Dc,
		&i.ApiKey,
		&i.ApiEndpoint,
		&i.LoginUrl,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listAccounts = `-- name: ListAccounts :many
SELECT id, user_id, account_name, login_email, dc, api_key, api_endpoint, login_url, created_at, updated_at
FROM chimp.accounts
WHERE ($2::timestamptz IS NULL OR created_at < $2)
ORDER BY created_at DESC
LIMIT $1
`

type ListAccountsParams struct {
	Limit  int32              `json:"limit"`
	Cursor pgtype.Timestamptz `json:"cursor"`
}

func (q *Queries) ListAccounts(ctx context.Context, arg ListAccountsParams) ([]ChimpAccount, error) {
	rows, err := q.db.Query(ctx, listAccounts, arg.Limit, arg.Cursor)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ChimpAccount
	for rows.Next() {
		var i ChimpAccount
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.AccountName,
			&i.LoginEmail,
			&i.Dc,
			&i.ApiKey,
			&i.ApiEndpoint,
			&i.LoginUrl,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const deleteAccount = `-- name: DeleteAccount :execrows
DELETE FROM chimp.accounts WHERE id = $1
`

func (q *Queries) DeleteAccount(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteAccount, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
