package services

import "github.com/commforge/community_backend/internal/models"

// Store contracts consumed by the services. The gorm implementations live
// in internal/repositories; tests substitute in-memory fakes.

type LevelConfigStore interface {
	GetByCommunity(communityID uint) (*models.LevelConfiguration, error)
	Save(cfg *models.LevelConfiguration) error
}

type MemberPointsStore interface {
	GetByCommunityAndUser(communityID, userID uint) (*models.MemberPoints, error)
	// Mutate loads the aggregate for the pair, applies fn to it, and
	// persists the result, all while holding the write serialization for
	// that pair, so concurrent read-modify-write cycles cannot lose
	// updates. With createIfMissing the zero aggregate is built when no
	// row exists; otherwise absence returns (nil, nil) and fn never runs.
	// fn's first return controls whether the mutated aggregate is written
	// back; an fn error aborts without persisting.
	Mutate(communityID, userID uint, createIfMissing bool, fn func(*models.MemberPoints) (bool, error)) (*models.MemberPoints, error)
	ListByCommunity(communityID uint) ([]models.MemberPoints, error)
}

type CourseStore interface {
	GetRequirement(courseID uint) (*models.CourseLevelRequirement, error)
	SetRequirement(req *models.CourseLevelRequirement) error
}
