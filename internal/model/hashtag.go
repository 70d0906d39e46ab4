package model

import "time"

// Hashtag 标签，全局去重（小写、不含 # 前缀）
type Hashtag struct {
	ID      string `gorm:"primaryKey;type:varchar(36)"`
	Hashtag string `gorm:"type:varchar(64);uniqueIndex:ux_hashtag_text;not null"`
	// 标签只增不删，由 find-or-create 保证唯一
	Posts     []*Post `gorm:"many2many:post_hashtags"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Hashtag) TableName() string { return "hashtags" }
