package model

import "time"

// Comment 评论（写入在评论模块，这里只读取并渲染）
type Comment struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Comments  string `gorm:"type:text;not null"`
	UserID    string `gorm:"type:varchar(36);index:idx_comment_user"`
	User      *User  `gorm:"foreignKey:UserID"`
	PostID    string `gorm:"type:varchar(36);index:idx_comment_post"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Comment) TableName() string { return "comments" }
