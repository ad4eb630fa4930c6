package domain

import "github.com/google/uuid"

type PartyRole string

const (
	RoleClient PartyRole = "client"
	RoleWalker PartyRole = "walker"
)

func (r PartyRole) Valid() bool {
	return r == RoleClient || r == RoleWalker
}

// Order is the read-only snapshot of a walk engagement resolved from the
// order-record collaborator: the two authorized parties and the declared
// origin used to seed the default geofence.
type Order struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	WalkerID  uuid.UUID `json:"walker_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Status    string    `json:"status"`
}

// IsParty reports whether userID is one of the order's two participants.
func (o *Order) IsParty(userID uuid.UUID) bool {
	return o.ClientID == userID || o.WalkerID == userID
}
