package oauth

import "encoding/json"

type EventType string

const (
	EventReceivedCode        EventType = "receivedCode"
	EventReceivedAccessToken EventType = "receivedAccessToken"
	EventReceivedMetadata    EventType = "receivedMetadata"
	EventAuthed              EventType = "authed"
	EventError               EventType = "error"
)

// Metadata is the account description MailChimp returns for an access token.
type Metadata struct {
	DC          string      `json:"dc"`
	Role        string      `json:"role"`
	AccountName string      `json:"accountname"`
	UserID      json.Number `json:"user_id"`
	Login       Login       `json:"login"`
	LoginURL    string      `json:"login_url"`
	APIEndpoint string      `json:"api_endpoint"`

	Raw json.RawMessage `json:"-"`
}

type Login struct {
	LoginID    json.Number `json:"login_id"`
	LoginName  string      `json:"login_name"`
	LoginEmail string      `json:"login_email"`
}

// Result accumulates what the flow learned so far. Params is the query of
// the redirect that carried the code.
type Result struct {
	Params      map[string]string `json:"params"`
	AccessToken string            `json:"access_token,omitempty"`
	Metadata    *Metadata         `json:"metadata,omitempty"`
	APIKey      string            `json:"api_key,omitempty"`
}

type Event struct {
	Type   EventType
	Result Result
	// Err is set on EventError only.
	Err *FlowError
}

// FlowError is reported through EventError and returned by the flow steps.
// Params carries whatever the failing step received.
type FlowError struct {
	Message string
	Params  map[string]string
	Err     error
}

func (e *FlowError) Error() string {
	if e.Err != nil {
		return e.Message + " " + e.Err.Error()
	}
	return e.Message
}

func (e *FlowError) Unwrap() error { return e.Err }

const (
	msgNotGet        = "Received something other than a GET request."
	msgNoCode        = "Received a request without a code."
	msgBadState      = "Received a request with an unknown state."
	msgCodeRequired  = "Code is required in Params"
	msgTokenRequired = "accessToken is required in Params"
	msgUnreachable   = "Unable to connect to the MailChimp OAuth service."
	msgTokenJSON     = "Error parsing JSON answer from the MailChimp getAccessToken API."
	msgMetadataJSON  = "Error parsing JSON answer from the MailChimp getMetadata API."
	msgNoToken       = "Answer from MailChimp API does not contain an access token."
	msgNoDatacenter  = "Answer from MailChimp API does not contain a datacenter pointer."
)
