package model

import "time"

// User 用户（归属于账号模块，这里只消费 ID 与 Nickname）
type User struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Nickname  string `gorm:"type:varchar(64);not null"`
	Email     string `gorm:"type:varchar(128);uniqueIndex"`
	Password  string `gorm:"type:varchar(128)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
