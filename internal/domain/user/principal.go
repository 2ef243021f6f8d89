package user

// Principal is the authenticated caller resolved from a bearer token.
type Principal struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email,omitempty"`
	AppID  string   `json:"app_id,omitempty"`
	Roles  []string `json:"roles,omitempty"`
}
