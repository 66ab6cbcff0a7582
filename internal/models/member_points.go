package models

import (
	"fmt"
	"time"

	"github.com/commforge/community_backend/internal/events"
	"github.com/commforge/community_backend/pkg/errors"
)

// PointTransaction is one immutable entry of a member's point history.
// Positive for awards, negative for deductions.
type PointTransaction struct {
	ID             uint        `gorm:"primaryKey" json:"-"`
	MemberPointsID uint        `gorm:"not null;index" json:"-"`
	Points         int         `gorm:"not null" json:"points"`
	Source         PointSource `gorm:"type:varchar(50);not null;index" json:"source"`
	SourceID       string      `gorm:"type:varchar(64);not null" json:"source_id"`
	CreatedAt      time.Time   `gorm:"autoCreateTime;index" json:"created_at"`
}

func (PointTransaction) TableName() string {
	return "point_transactions"
}

// MemberPoints is the aggregate root for one member's engagement state in
// one community. It is the only writer of TotalPoints and CurrentLevel and
// the only producer of gamification events.
//
// CurrentLevel ratchets: it never decreases over the lifetime of the
// aggregate, no matter how points or thresholds change afterwards.
type MemberPoints struct {
	ID           uint               `gorm:"primaryKey" json:"id"`
	CommunityID  uint               `gorm:"not null;uniqueIndex:idx_member_points_pair" json:"community_id"`
	UserID       uint               `gorm:"not null;uniqueIndex:idx_member_points_pair" json:"user_id"`
	TotalPoints  int                `gorm:"not null;default:0" json:"total_points"`
	CurrentLevel int                `gorm:"not null;default:1" json:"current_level"`
	Transactions []PointTransaction `gorm:"foreignKey:MemberPointsID;constraint:OnDelete:CASCADE" json:"transactions,omitempty"`
	CreatedAt    time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MemberPoints) TableName() string {
	return "member_points"
}

// NewMemberPoints returns the zero state for a (community, user) pair:
// no points, level 1, empty history.
func NewMemberPoints(communityID, userID uint) *MemberPoints {
	return &MemberPoints{
		CommunityID:  communityID,
		UserID:       userID,
		TotalPoints:  0,
		CurrentLevel: 1,
	}
}

// AwardPoints applies one engagement action: it adds the source's fixed
// point value, appends a transaction, and raises the level if the new
// total clears a higher threshold. The returned events describe exactly
// what changed and must be published by the caller after persisting.
//
// A repeated LESSON_COMPLETED for the same source id is rejected without
// recording anything.
func (m *MemberPoints) AwardPoints(source PointSource, sourceID string, cfg *LevelConfiguration) ([]events.Event, error) {
	if !source.Valid() {
		return nil, errors.New(errors.ErrCodeUnknownPointSource,
			fmt.Sprintf("unknown point source %q", source))
	}

	if source == SourceLessonCompleted {
		for _, tx := range m.Transactions {
			if tx.Source == SourceLessonCompleted && tx.SourceID == sourceID {
				return nil, errors.New(errors.ErrCodeDuplicateCompletion,
					fmt.Sprintf("lesson %s already completed", sourceID))
			}
		}
	}

	now := time.Now().UTC()
	points := source.Points()
	m.TotalPoints += points
	m.Transactions = append(m.Transactions, PointTransaction{
		MemberPointsID: m.ID,
		Points:         points,
		Source:         source,
		SourceID:       sourceID,
		CreatedAt:      now,
	})

	evts := []events.Event{
		events.NewPointsAwarded(m.CommunityID, m.UserID, points, m.TotalPoints, source.String(), sourceID),
	}
	evts = append(evts, m.ratchetLevel(cfg)...)

	m.UpdatedAt = now
	return evts, nil
}

// DeductPoints removes the source's point value from the total, floored at
// zero. The level is deliberately not recalculated: the ratchet means a
// deduction can never lower a member's level.
func (m *MemberPoints) DeductPoints(source PointSource, sourceID string) ([]events.Event, error) {
	if !source.Valid() {
		return nil, errors.New(errors.ErrCodeUnknownPointSource,
			fmt.Sprintf("unknown point source %q", source))
	}

	now := time.Now().UTC()
	points := source.Points()
	m.TotalPoints -= points
	if m.TotalPoints < 0 {
		m.TotalPoints = 0
	}
	m.Transactions = append(m.Transactions, PointTransaction{
		MemberPointsID: m.ID,
		Points:         -points,
		Source:         source,
		SourceID:       sourceID,
		CreatedAt:      now,
	})

	m.UpdatedAt = now
	return []events.Event{
		events.NewPointsDeducted(m.CommunityID, m.UserID, points, m.TotalPoints, source.String(), sourceID),
	}, nil
}

// RecalculateLevel re-evaluates the level against the current total without
// touching points or history. Used after an admin changes the threshold
// table so members whose totals now clear a lowered threshold level up
// retroactively. The ratchet still holds: a raised threshold never lowers
// anyone.
func (m *MemberPoints) RecalculateLevel(cfg *LevelConfiguration) []events.Event {
	evts := m.ratchetLevel(cfg)
	if len(evts) > 0 {
		m.UpdatedAt = time.Now().UTC()
	}
	return evts
}

// ratchetLevel raises CurrentLevel to the level implied by TotalPoints if
// that is strictly higher. Never lowers it.
func (m *MemberPoints) ratchetLevel(cfg *LevelConfiguration) []events.Event {
	computed := cfg.LevelForPoints(m.TotalPoints)
	if computed <= m.CurrentLevel {
		return nil
	}
	oldLevel := m.CurrentLevel
	m.CurrentLevel = computed
	name, _ := cfg.NameForLevel(computed)
	return []events.Event{
		events.NewMemberLeveledUp(m.CommunityID, m.UserID, oldLevel, computed, name),
	}
}
