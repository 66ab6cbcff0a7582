package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type discriminators
const (
	TypePointsAwarded   = "PointsAwarded"
	TypePointsDeducted  = "PointsDeducted"
	TypeMemberLeveledUp = "MemberLeveledUp"
)

// Event is a domain event produced by the gamification aggregates.
type Event interface {
	EventType() string
}

// Base carries the fields shared by every gamification event.
type Base struct {
	EventID     string    `json:"event_id"`
	CommunityID uint      `json:"community_id"`
	UserID      uint      `json:"user_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func newBase(communityID, userID uint) Base {
	return Base{
		EventID:     uuid.NewString(),
		CommunityID: communityID,
		UserID:      userID,
		OccurredAt:  time.Now().UTC(),
	}
}

// PointsAwarded fires after points are added to a member's total.
type PointsAwarded struct {
	Base
	Points    int    `json:"points"`
	NewTotal  int    `json:"new_total"`
	Source    string `json:"source"`
	SourceRef string `json:"source_ref"`
}

func (PointsAwarded) EventType() string { return TypePointsAwarded }

// PointsDeducted fires after points are removed from a member's total.
type PointsDeducted struct {
	Base
	Points    int    `json:"points"`
	NewTotal  int    `json:"new_total"`
	Source    string `json:"source"`
	SourceRef string `json:"source_ref"`
}

func (PointsDeducted) EventType() string { return TypePointsDeducted }

// MemberLeveledUp fires when a member's level ratchets upward. Levels never
// move down, so there is no counterpart event.
type MemberLeveledUp struct {
	Base
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	LevelName string `json:"level_name"`
}

func (MemberLeveledUp) EventType() string { return TypeMemberLeveledUp }

// NewPointsAwarded builds a PointsAwarded event.
func NewPointsAwarded(communityID, userID uint, points, newTotal int, source, sourceRef string) PointsAwarded {
	return PointsAwarded{
		Base:      newBase(communityID, userID),
		Points:    points,
		NewTotal:  newTotal,
		Source:    source,
		SourceRef: sourceRef,
	}
}

// NewPointsDeducted builds a PointsDeducted event.
func NewPointsDeducted(communityID, userID uint, points, newTotal int, source, sourceRef string) PointsDeducted {
	return PointsDeducted{
		Base:      newBase(communityID, userID),
		Points:    points,
		NewTotal:  newTotal,
		Source:    source,
		SourceRef: sourceRef,
	}
}

// NewMemberLeveledUp builds a MemberLeveledUp event.
func NewMemberLeveledUp(communityID, userID uint, oldLevel, newLevel int, levelName string) MemberLeveledUp {
	return MemberLeveledUp{
		Base:      newBase(communityID, userID),
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		LevelName: levelName,
	}
}
