package models

import "time"

// The models below are the platform entities whose lifecycle events feed
// the point engine. Their own CRUD lives in other areas of the system;
// here they only exist as referenceable rows for transactions and seeds.

type Community struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Community) TableName() string {
	return "communities"
}

type Post struct {
	ID          uint      `gorm:"primaryKey"`
	CommunityID uint      `gorm:"not null;index"`
	AuthorID    uint      `gorm:"not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Body        string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Post) TableName() string {
	return "posts"
}

type Comment struct {
	ID        uint      `gorm:"primaryKey"`
	PostID    uint      `gorm:"not null;index"`
	AuthorID  uint      `gorm:"not null;index"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Comment) TableName() string {
	return "comments"
}

type Course struct {
	ID          uint      `gorm:"primaryKey"`
	CommunityID uint      `gorm:"not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Course) TableName() string {
	return "courses"
}

type Lesson struct {
	ID        uint      `gorm:"primaryKey"`
	CourseID  uint      `gorm:"not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Lesson) TableName() string {
	return "lessons"
}
