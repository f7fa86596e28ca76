package model

import "time"

type Note struct {
	ID        int       `db:"id" json:"id" gorm:"primaryKey"`
	Title     string    `db:"title" json:"title" gorm:"not null"`
	Content   *string   `db:"content" json:"content"`
	AreaID    *int      `db:"area_id" json:"area_id" gorm:"index"`
	UserID    int       `db:"user_id" json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (n *Note) OwnerID() int { return n.UserID }
