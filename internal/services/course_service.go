package services

import (
	"fmt"

	"github.com/commforge/community_backend/internal/models"
	"github.com/commforge/community_backend/pkg/errors"
)

// CourseAccessService manages the minimum-level gate on courses. A course
// without a requirement record is open to everyone.
type CourseAccessService struct {
	courses CourseStore
	members MemberPointsStore
}

func NewCourseAccessService(courses CourseStore, members MemberPointsStore) *CourseAccessService {
	return &CourseAccessService{
		courses: courses,
		members: members,
	}
}

// SetRequirement creates or replaces the minimum level needed to open a
// course.
func (s *CourseAccessService) SetRequirement(communityID, courseID uint, minimumLevel int) (*models.CourseLevelRequirement, error) {
	if minimumLevel < 1 || minimumLevel > models.MaxLevel {
		return nil, errors.New(errors.ErrCodeInvalidLevel,
			fmt.Sprintf("minimum level must be between 1 and %d", models.MaxLevel))
	}

	req := &models.CourseLevelRequirement{
		CommunityID:  communityID,
		CourseID:     courseID,
		MinimumLevel: minimumLevel,
	}
	if err := s.courses.SetRequirement(req); err != nil {
		return nil, err
	}
	return req, nil
}

// GetRequirement returns the course's gate, or nil when unrestricted.
func (s *CourseAccessService) GetRequirement(courseID uint) (*models.CourseLevelRequirement, error) {
	return s.courses.GetRequirement(courseID)
}

// CheckAccess reports whether the member's current level opens the course.
// Members without point state count as level 1.
func (s *CourseAccessService) CheckAccess(communityID, userID, courseID uint) (bool, error) {
	req, err := s.courses.GetRequirement(courseID)
	if err != nil {
		return false, err
	}
	if req == nil {
		return true, nil
	}

	level := 1
	mp, err := s.members.GetByCommunityAndUser(communityID, userID)
	if err != nil {
		return false, err
	}
	if mp != nil {
		level = mp.CurrentLevel
	}

	return level >= req.MinimumLevel, nil
}
