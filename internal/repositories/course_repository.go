package repositories

import (
	"github.com/commforge/community_backend/internal/models"
	"github.com/commforge/community_backend/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// GetRequirement returns the level requirement of a course, or nil when the
// course is unrestricted.
func (r *CourseRepository) GetRequirement(courseID uint) (*models.CourseLevelRequirement, error) {
	var req models.CourseLevelRequirement
	result := r.db.Where("course_id = ?", courseID).First(&req)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get course requirement")
	}

	return &req, nil
}

// SetRequirement creates or replaces the minimum-level gate of a course.
func (r *CourseRepository) SetRequirement(req *models.CourseLevelRequirement) error {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"community_id", "minimum_level", "updated_at"}),
	}).Create(req)

	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to set course requirement")
	}
	return nil
}
