package models

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
}

func (u User) IsZero() bool {
	return u == User{}
}

type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterCredentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUser carries only the profile fields being changed.
type UpdateUser struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// AuthPayload is what /auth/login and /auth/register return and what the
// keychain slot persists between runs.
type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
