package models

import "time"

// CourseLevelRequirement gates a course behind a minimum member level.
// A course without a row is unrestricted.
type CourseLevelRequirement struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CommunityID  uint      `gorm:"not null;index" json:"community_id"`
	CourseID     uint      `gorm:"uniqueIndex;not null" json:"course_id"`
	MinimumLevel int       `gorm:"not null" json:"minimum_level"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CourseLevelRequirement) TableName() string {
	return "course_level_requirements"
}
