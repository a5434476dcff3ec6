package entities

import "time"

// Role is a tagged enum checked explicitly at each operation's entry.
// Authorization rules are plain equality checks against owner ids; there is no
// per-role behavioral dispatch.

type Role string

const (
	RoleRider    Role = "rider"
	RoleWorkshop Role = "workshop"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleRider, RoleWorkshop, RoleAdmin:
		return true
	}
	return false
}

// UserProfile is the internal projection of an external authenticated
// principal, auto-provisioned on first sight.
//
// Storage model (DynamoDB):
//   - PK: id (equals the external principal id, which guarantees
//     provision-once semantics with a conditional put)
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
