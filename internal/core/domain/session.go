package domain

// Session identifies the signed-in user and carries the bearer credential
// issued by the identity provider. It is passed explicitly to every call
// that reaches the backend.
type Session struct {
	UserID string
	Token  string
}

// Valid reports whether the session can be used for authenticated calls.
func (s Session) Valid() bool {
	return s.UserID != "" && s.Token != ""
}
