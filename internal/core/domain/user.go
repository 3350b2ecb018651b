package domain

import "time"

const (
	RoleAdmin     = "ADMIN"
	RoleProfessor = "PROFESSOR"
)

// TokenStorageKey names the field under which the backend access token is
// persisted in a session record.
const TokenStorageKey = "token"

// User is the record the backend returns on login.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// Credentials is the login form's transient identifier/secret pair.
type Credentials struct {
	Identifier string
	Secret     string
}

// Clear zeroes the secret once it has been sent.
func (c *Credentials) Clear() {
	c.Identifier = ""
	c.Secret = ""
}

// Session is the explicit session context handed to every screen that needs
// to know who is browsing.
type Session struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

// AnonymousSession is the session of a visitor without a valid cookie.
func AnonymousSession() Session {
	return Session{}
}

// Role returns the user's role or "" for anonymous sessions.
func (s Session) Role() string {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// SessionRecord is what a session store keeps per session id.
type SessionRecord struct {
	Token     string    `json:"token" bson:"token"`
	User      User      `json:"user" bson:"user"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Session converts a stored record into the session context object.
func (r *SessionRecord) Session() Session {
	u := r.User
	return Session{Authenticated: true, User: &u}
}
