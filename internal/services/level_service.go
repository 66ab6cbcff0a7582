package services

import (
	"github.com/commforge/community_backend/internal/events"
	"github.com/commforge/community_backend/internal/models"
	"github.com/commforge/community_backend/pkg/logger"
)

// LevelService owns the admin side of the level system: replacing a
// community's threshold table and answering level queries.
type LevelService struct {
	configs   LevelConfigStore
	members   MemberPointsStore
	publisher events.Publisher
}

func NewLevelService(configs LevelConfigStore, members MemberPointsStore, publisher events.Publisher) *LevelService {
	return &LevelService{
		configs:   configs,
		members:   members,
		publisher: publisher,
	}
}

// MemberLevelSummary answers "where does this member stand".
type MemberLevelSummary struct {
	CommunityID  uint   `json:"community_id"`
	UserID       uint   `json:"user_id"`
	TotalPoints  int    `json:"total_points"`
	Level        int    `json:"level"`
	LevelName    string `json:"level_name"`
	PointsToNext int    `json:"points_to_next"`
	AtMaxLevel   bool   `json:"at_max_level"`
}

// LevelDistribution is one level row enriched with the share of community
// members currently at that level.
type LevelDistribution struct {
	Level         int     `json:"level"`
	Name          string  `json:"name"`
	Threshold     int     `json:"threshold"`
	MemberPercent float64 `json:"member_percent"`
}

// UpdateLevelConfig replaces a community's 9-level table. Validation
// failures propagate unchanged and leave the stored table untouched. When
// the threshold column actually changed, every member of the community is
// re-leveled against the new table; each member's persist+publish succeeds
// or fails on its own, and one failure never stops the sweep.
func (s *LevelService) UpdateLevelConfig(communityID uint, updates []models.LevelDefinition) (*models.LevelConfiguration, error) {
	cfg, err := s.configs.GetByCommunity(communityID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = models.DefaultLevelConfiguration(communityID)
	}

	before := cfg.Thresholds()
	if err := cfg.ReplaceLevels(updates); err != nil {
		return nil, err
	}
	if err := s.configs.Save(cfg); err != nil {
		return nil, err
	}

	if !equalThresholds(before, cfg.Thresholds()) {
		s.recalculateCommunity(cfg)
	}

	return cfg, nil
}

// recalculateCommunity sweeps every member aggregate and lets the ratchet
// raise whoever now clears a lowered threshold. Non-atomic across members:
// a failed member keeps its previously persisted state and the sweep moves
// on.
func (s *LevelService) recalculateCommunity(cfg *models.LevelConfiguration) {
	members, err := s.members.ListByCommunity(cfg.CommunityID)
	if err != nil {
		logger.Error("failed to list members for level recalculation",
			"community_id", cfg.CommunityID, "error", err)
		return
	}

	var raised, failed int
	for i := range members {
		userID := members[i].UserID
		var evts []events.Event
		_, err := s.members.Mutate(cfg.CommunityID, userID, false, func(mp *models.MemberPoints) (bool, error) {
			evts = mp.RecalculateLevel(cfg)
			return len(evts) > 0, nil
		})
		if err != nil {
			failed++
			logger.Error("failed to persist recalculated level",
				"community_id", cfg.CommunityID, "user_id", userID, "error", err)
			continue
		}
		if len(evts) == 0 {
			continue
		}
		raised++
		if err := s.publisher.PublishAll(evts); err != nil {
			logger.Error("failed to publish level-up events",
				"community_id", cfg.CommunityID, "user_id", userID, "error", err)
		}
	}

	logger.Info("community level recalculation finished",
		"community_id", cfg.CommunityID,
		"members", len(members), "raised", raised, "failed", failed)
}

// GetConfig returns the community's level configuration, falling back to
// the default table for communities that never customized theirs. The
// fallback is not persisted by a read.
func (s *LevelService) GetConfig(communityID uint) (*models.LevelConfiguration, error) {
	cfg, err := s.configs.GetByCommunity(communityID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = models.DefaultLevelConfiguration(communityID)
	}
	return cfg, nil
}

// GetMemberLevel summarizes a member's standing. A member without point
// state is reported at the zero state (level 1, 0 points).
func (s *LevelService) GetMemberLevel(communityID, userID uint) (*MemberLevelSummary, error) {
	cfg, err := s.GetConfig(communityID)
	if err != nil {
		return nil, err
	}

	mp, err := s.members.GetByCommunityAndUser(communityID, userID)
	if err != nil {
		return nil, err
	}
	if mp == nil {
		mp = models.NewMemberPoints(communityID, userID)
	}

	name, err := cfg.NameForLevel(mp.CurrentLevel)
	if err != nil {
		return nil, err
	}
	toNext, hasNext := cfg.PointsToNextLevel(mp.CurrentLevel, mp.TotalPoints)

	return &MemberLevelSummary{
		CommunityID:  communityID,
		UserID:       userID,
		TotalPoints:  mp.TotalPoints,
		Level:        mp.CurrentLevel,
		LevelName:    name,
		PointsToNext: toNext,
		AtMaxLevel:   !hasNext,
	}, nil
}

// ListLevelDistribution returns the level table with the percentage of
// community members currently sitting at each level.
func (s *LevelService) ListLevelDistribution(communityID uint) ([]LevelDistribution, error) {
	cfg, err := s.GetConfig(communityID)
	if err != nil {
		return nil, err
	}

	members, err := s.members.ListByCommunity(communityID)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int, models.LevelCount)
	for _, mp := range members {
		counts[mp.CurrentLevel]++
	}

	out := make([]LevelDistribution, 0, len(cfg.Levels))
	for _, def := range cfg.Levels {
		var pct float64
		if len(members) > 0 {
			pct = float64(counts[def.Level]) / float64(len(members)) * 100
		}
		out = append(out, LevelDistribution{
			Level:         def.Level,
			Name:          def.Name,
			Threshold:     def.Threshold,
			MemberPercent: pct,
		})
	}
	return out, nil
}

func equalThresholds(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
