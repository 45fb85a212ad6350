package domain

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

// Actor is the caller on whose behalf a core operation runs.
type Actor struct {
	ClientID uint64
	Role     Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccessClient reports whether the actor may read or act for the client.
func (a Actor) CanAccessClient(clientID uint64) bool {
	return a.IsAdmin() || (a.Role == RoleClient && a.ClientID == clientID)
}
