package auth

import "github.com/solutions-kit/os-tracker/internal/domain"

// Session is the ambient authorization context passed with every core
// operation. It is transient and never persisted: the role comes from the
// role selector, the actor is the identity recorded in history entries.
type Session struct {
	Role  domain.Role
	Actor string
}

// Anonymous is the session for callers that never selected a role.
var Anonymous = Session{Role: domain.RoleUnset}

// AdminSession builds an administrator session acting as the given user.
func AdminSession(actor string) Session {
	if actor == "" {
		actor = domain.DefaultResponsible
	}
	return Session{Role: domain.RoleAdmin, Actor: actor}
}

// ViewerSession builds a read-only session.
func ViewerSession() Session {
	return Session{Role: domain.RoleViewer}
}

// ActorName returns the identity to record in audit entries.
func (s Session) ActorName() string {
	if s.Actor == "" {
		return domain.DefaultResponsible
	}
	return s.Actor
}
