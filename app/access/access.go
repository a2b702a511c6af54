// Package access decides, per request, whether the acting identity may
// perform a given operation. Decisions are pure: handlers call
// Authorize before doing any work and translate a Deny into a
// redirect, never into an error page.
package access

// Action enumerates the operations guarded by access control.
type Action int

const (
	ViewPosts Action = iota
	ViewPost
	Comment
	CreatePost
	EditPost
	DeletePost
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow grants the action.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny refuses the action with a caller-facing reason.
func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Authorize maps an identity and an action to a decision. Viewing is
// open to everyone, commenting requires authentication and post
// mutations are reserved for the admin.
func Authorize(identity Identity, action Action) Decision {
	switch action {
	case ViewPosts, ViewPost:
		return Allow()
	case Comment:
		if identity.Authenticated() {
			return Allow()
		}
		return Deny("Log in to Comment")
	case CreatePost, EditPost, DeletePost:
		if identity.Authenticated() && identity.IsAdmin() {
			return Allow()
		}
		return Deny("admin only")
	default:
		return Deny("unknown action")
	}
}
