package model

import "time"

// DefaultAreaName is the area every new account starts with.
const (
	DefaultAreaName  = "Work"
	DefaultAreaColor = "bg-blue-500"
)

type Area struct {
	ID        int       `db:"id" json:"id" gorm:"primaryKey"`
	Name      string    `db:"name" json:"name" gorm:"not null"`
	Color     string    `db:"color" json:"color" gorm:"not null"`
	UserID    int       `db:"user_id" json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (a *Area) OwnerID() int { return a.UserID }
