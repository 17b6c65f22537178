package domain

import "time"

// Follow is a directed edge: FromUserID subscribes to ToUserID.
// Self-follows are rejected in the service; duplicate edges are
// rejected by the unique index.
type Follow struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	FromUserID int64     `json:"from_user_id" gorm:"not null;index;uniqueIndex:idx_follow_pair"`
	ToUserID   int64     `json:"to_user_id" gorm:"not null;uniqueIndex:idx_follow_pair"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	ToUser *User `json:"to_user,omitempty" gorm:"foreignKey:ToUserID"`
}

func (Follow) TableName() string { return "follows" }
