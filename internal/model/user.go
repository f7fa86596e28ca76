package model

import "time"

// User 帳號資料，Email 全域唯一且一律以小寫儲存
type User struct {
	ID             int       `db:"id" json:"id" gorm:"primaryKey"`
	Email          string    `db:"email" json:"email" gorm:"uniqueIndex;not null"`
	FullName       string    `db:"full_name" json:"full_name" gorm:"not null"`
	HashedPassword string    `db:"hashed_password" json:"-" gorm:"not null"`
	LastLogin      time.Time `db:"last_login" json:"last_login"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
