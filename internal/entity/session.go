package entity

import "time"

// VisitorSession is the per-browser state the pages render from.
// Unlocked never goes back to false for the life of the session.
type VisitorSession struct {
	ID              string
	Unlocked        bool
	Email           string
	AdminAuthorized bool
	CreatedAt       time.Time
	LastSeen        time.Time
}

func (s *VisitorSession) Unlock(email string) {
	s.Unlocked = true
	s.Email = email
}

func (s *VisitorSession) GrantAdmin() {
	s.AdminAuthorized = true
}

func (s *VisitorSession) RevokeAdmin() {
	s.AdminAuthorized = false
}
