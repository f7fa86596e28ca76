package model

import "time"

type Task struct {
	ID          int       `db:"id" json:"id" gorm:"primaryKey"`
	Title       string    `db:"title" json:"title" gorm:"not null"`
	Description *string   `db:"description" json:"description"`
	DueDate     *string   `db:"due_date" json:"due_date"`
	Completed   bool      `db:"completed" json:"completed" gorm:"not null"`
	Priority    Priority  `db:"priority" json:"priority" gorm:"type:varchar(10);not null;default:Medium"`
	AreaID      *int      `db:"area_id" json:"area_id" gorm:"index"`
	UserID      int       `db:"user_id" json:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

func (t *Task) OwnerID() int { return t.UserID }
