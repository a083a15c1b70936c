package client

import "github.com/google/uuid"

// SessionID parses the session token of a Login. Guests send "none" or
// anything else that is not a UUID, and get ok == false.
func (p Login) SessionID() (id uuid.UUID, ok bool) {
	id, err := uuid.Parse(p.Session)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithSession sets the session token of a Login to id.
func (p Login) WithSession(id uuid.UUID) Login {
	p.Session = id.String()
	return p
}
