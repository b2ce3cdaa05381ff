package entity

// Role represents an authorization role carried by an account and by
// session token claims. Roles are assigned at registration (or by the
// seed tool) and are immutable through the API.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Capability names an operation class a caller may be granted.
type Capability string

const (
	// CapReviewSubmissions gates listing every KYC submission and
	// changing its status.
	CapReviewSubmissions Capability = "kyc:review"
)

// Can reports whether the role grants the capability. All protected
// routes share this single check instead of per-route role string
// comparisons.
func (r Role) Can(c Capability) bool {
	switch c {
	case CapReviewSubmissions:
		return r == RoleAdmin
	default:
		return false
	}
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
