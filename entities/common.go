package entities

import (
	"time"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

// Ownable is implemented by entities that belong to a single account.
// Mutations on an Ownable must be performed by its owner.
type Ownable interface {
	OwnerID() uint
}

func IsOwner(resource Ownable, userID uint) bool {
	return resource.OwnerID() == userID
}
