package core

import "time"

// Account is a MailChimp account authorized through OAuth.
type Account struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	AccountName string    `json:"account_name"`
	LoginEmail  string    `json:"login_email"`
	DC          string    `json:"dc"`
	APIKey      string    `json:"api_key,omitempty"`
	APIEndpoint string    `json:"api_endpoint"`
	LoginURL    string    `json:"login_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Redacted returns a copy safe to hand to API consumers.
func (a Account) Redacted() Account {
	if a.APIKey != "" {
		a.APIKey = RedactKey(a.APIKey)
	}
	return a
}

// RedactKey keeps the last four characters of the key body plus the datacenter.
func RedactKey(key string) string {
	body, dc := key, ""
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '-' {
			body, dc = key[:i], key[i:]
			break
		}
	}
	if len(body) <= 4 {
		return "****" + dc
	}
	return "****" + body[len(body)-4:] + dc
}
