package models

// GuestStatus is the RSVP state of a guest
type GuestStatus string

const (
	GuestStatusNoResponse GuestStatus = "no-response"
	GuestStatusAccepted   GuestStatus = "accepted"
	GuestStatusDeclined   GuestStatus = "declined"
)

// Role is the per-user role attribute kept in the profile
type Role string

const (
	RoleSuperUser Role = "super-user"
	RoleGuest     Role = "guest"
)

// IsValid checks if the GuestStatus is valid
func (s GuestStatus) IsValid() bool {
	switch s {
	case GuestStatusNoResponse, GuestStatusAccepted, GuestStatusDeclined:
		return true
	}
	return false
}

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperUser, RoleGuest:
		return true
	}
	return false
}

// CanModify reports whether the role may create, update or delete guests and tables
func (r Role) CanModify() bool {
	return r == RoleSuperUser
}
