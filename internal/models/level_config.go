package models

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/commforge/community_backend/internal/security"
	"github.com/commforge/community_backend/pkg/errors"
)

const (
	// LevelCount is the fixed size of every level table.
	LevelCount = 9
	// MaxLevel is the highest reachable level.
	MaxLevel = 9
	// MaxLevelNameLength bounds a level name after sanitization, counted
	// in characters, not bytes, to match the varchar(30) column.
	MaxLevelNameLength = 30
)

// LevelDefinition is one row of a community's level table.
type LevelDefinition struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ConfigID  uint   `gorm:"not null;index" json:"-"`
	Level     int    `gorm:"not null" json:"level"`
	Name      string `gorm:"type:varchar(30);not null" json:"name"`
	Threshold int    `gorm:"not null" json:"threshold"`
}

func (LevelDefinition) TableName() string {
	return "level_definitions"
}

// LevelConfiguration holds the 9-level threshold table of one community.
// The table is only ever replaced wholesale; ReplaceLevels validates the
// complete new set before committing it, so a stored configuration is
// always internally consistent.
type LevelConfiguration struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	CommunityID uint              `gorm:"uniqueIndex;not null" json:"community_id"`
	Levels      []LevelDefinition `gorm:"foreignKey:ConfigID;constraint:OnDelete:CASCADE" json:"levels"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LevelConfiguration) TableName() string {
	return "level_configurations"
}

// DefaultLevelConfiguration returns a new configuration with the standard
// level table every community starts from.
func DefaultLevelConfiguration(communityID uint) *LevelConfiguration {
	return &LevelConfiguration{
		CommunityID: communityID,
		Levels: []LevelDefinition{
			{Level: 1, Name: "Student", Threshold: 0},
			{Level: 2, Name: "Contributor", Threshold: 10},
			{Level: 3, Name: "Builder", Threshold: 30},
			{Level: 4, Name: "Mentor", Threshold: 70},
			{Level: 5, Name: "Expert", Threshold: 120},
			{Level: 6, Name: "Leader", Threshold: 180},
			{Level: 7, Name: "Veteran", Threshold: 240},
			{Level: 8, Name: "Legend", Threshold: 300},
			{Level: 9, Name: "Icon", Threshold: 360},
		},
	}
}

// LevelForPoints returns the highest level whose threshold is covered by
// the given point total. Level 1 has threshold 0, so the result is always
// at least 1 for non-negative points.
func (c *LevelConfiguration) LevelForPoints(points int) int {
	level := 1
	for _, def := range c.Levels {
		if points >= def.Threshold && def.Level > level {
			level = def.Level
		}
	}
	return level
}

// ThresholdForLevel returns the point threshold of the given level.
func (c *LevelConfiguration) ThresholdForLevel(level int) (int, error) {
	for _, def := range c.Levels {
		if def.Level == level {
			return def.Threshold, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidLevel, fmt.Sprintf("level %d is not defined", level))
}

// NameForLevel returns the display name of the given level.
func (c *LevelConfiguration) NameForLevel(level int) (string, error) {
	for _, def := range c.Levels {
		if def.Level == level {
			return def.Name, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidLevel, fmt.Sprintf("level %d is not defined", level))
}

// PointsToNextLevel returns how many points are missing to reach the next
// level, floored at 0. The second return is false when currentLevel is
// already the maximum.
func (c *LevelConfiguration) PointsToNextLevel(currentLevel, totalPoints int) (int, bool) {
	if currentLevel >= MaxLevel {
		return 0, false
	}
	threshold, err := c.ThresholdForLevel(currentLevel + 1)
	if err != nil {
		return 0, false
	}
	remaining := threshold - totalPoints
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// ReplaceLevels validates a full 9-entry replacement table and commits it
// atomically. On any validation failure the stored table is left untouched.
func (c *LevelConfiguration) ReplaceLevels(newLevels []LevelDefinition) error {
	if len(newLevels) != LevelCount {
		return errors.New(errors.ErrCodeInvalidThreshold,
			fmt.Sprintf("level table must contain exactly %d levels, got %d", LevelCount, len(newLevels)))
	}

	// Work on a sorted copy; input order is not assumed.
	candidate := make([]LevelDefinition, len(newLevels))
	copy(candidate, newLevels)
	sort.Slice(candidate, func(i, j int) bool {
		return candidate[i].Level < candidate[j].Level
	})

	seenNames := make(map[string]bool, LevelCount)
	for i := range candidate {
		if candidate[i].Level != i+1 {
			return errors.New(errors.ErrCodeInvalidThreshold,
				fmt.Sprintf("levels must be numbered 1 through %d without gaps", LevelCount))
		}

		name := security.SanitizeLevelName(candidate[i].Name)
		if name == "" {
			return errors.New(errors.ErrCodeInvalidLevelName,
				fmt.Sprintf("level %d name is empty after sanitization", candidate[i].Level))
		}
		if utf8.RuneCountInString(name) > MaxLevelNameLength {
			return errors.New(errors.ErrCodeInvalidLevelName,
				fmt.Sprintf("level %d name exceeds %d characters", candidate[i].Level, MaxLevelNameLength))
		}
		if seenNames[name] {
			return errors.New(errors.ErrCodeInvalidLevelName,
				fmt.Sprintf("duplicate level name %q", name))
		}
		seenNames[name] = true
		candidate[i].Name = name
	}

	if candidate[0].Threshold != 0 {
		return errors.New(errors.ErrCodeInvalidThreshold, "level 1 threshold must be 0")
	}
	for i := 1; i < len(candidate); i++ {
		if candidate[i].Threshold <= candidate[i-1].Threshold {
			return errors.New(errors.ErrCodeInvalidThreshold,
				fmt.Sprintf("level %d threshold must be greater than level %d threshold",
					candidate[i].Level, candidate[i-1].Level))
		}
	}

	for i := range candidate {
		candidate[i].ConfigID = c.ID
	}
	c.Levels = candidate
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// Thresholds returns the threshold column ordered by level, used to detect
// whether a replacement actually changed the table.
func (c *LevelConfiguration) Thresholds() []int {
	out := make([]int, 0, len(c.Levels))
	defs := make([]LevelDefinition, len(c.Levels))
	copy(defs, c.Levels)
	sort.Slice(defs, func(i, j int) bool { return defs[i].Level < defs[j].Level })
	for _, def := range defs {
		out = append(out, def.Threshold)
	}
	return out
}
