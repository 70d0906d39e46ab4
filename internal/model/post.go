package model

import "time"

// Post 帖子主体
type Post struct {
	ID      string `gorm:"primaryKey;type:varchar(36)"`
	Title   string `gorm:"type:varchar(255);not null"`
	Content string `gorm:"type:text;not null"`
	// Like 是纯计数器，点赞不去重（见 service.LikePost）
	Like      int64      `gorm:"not null;default:0"`
	UserID    string     `gorm:"type:varchar(36);index:idx_post_user"`
	User      *User      `gorm:"foreignKey:UserID"`
	Hashtags  []*Hashtag `gorm:"many2many:post_hashtags"`
	Comments  []*Comment `gorm:"foreignKey:PostID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Post) TableName() string { return "posts" }
