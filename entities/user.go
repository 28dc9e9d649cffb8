package entities

type User struct {
	ID           uint    `gorm:"primaryKey" json:"user_id"`
	Username     string  `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string  `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	ProfileImage *string `json:"profile_image,omitempty"`

	Recipes   []*Recipe   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Ratings   []*Rating   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Comments  []*Comment  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Favorites []*Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func (u *User) OwnerID() uint { return u.ID }
