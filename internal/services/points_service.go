package services

import (
	"github.com/commforge/community_backend/internal/events"
	"github.com/commforge/community_backend/internal/models"
	"github.com/commforge/community_backend/pkg/logger"
)

// PointsService orchestrates awards and deductions around the MemberPoints
// aggregate: load or lazily create state, apply the operation, persist,
// then publish the events the aggregate produced.
type PointsService struct {
	configs   LevelConfigStore
	members   MemberPointsStore
	publisher events.Publisher
}

func NewPointsService(configs LevelConfigStore, members MemberPointsStore, publisher events.Publisher) *PointsService {
	return &PointsService{
		configs:   configs,
		members:   members,
		publisher: publisher,
	}
}

// AwardPoints applies one engagement action for a member. The level
// configuration and the member aggregate are both created on first need.
// The aggregate is read, mutated, and persisted under the store's write
// serialization, so concurrent awards for the same member cannot overwrite
// each other.
func (s *PointsService) AwardPoints(communityID, userID uint, source models.PointSource, sourceID string) (*models.MemberPoints, error) {
	cfg, err := s.loadOrCreateConfig(communityID)
	if err != nil {
		return nil, err
	}

	var evts []events.Event
	mp, err := s.members.Mutate(communityID, userID, true, func(mp *models.MemberPoints) (bool, error) {
		var err error
		evts, err = mp.AwardPoints(source, sourceID, cfg)
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}
	s.publish(evts)

	return mp, nil
}

// DeductPoints reverses one engagement action. A member without any point
// state has nothing to deduct, so that case is a no-op rather than an
// error.
func (s *PointsService) DeductPoints(communityID, userID uint, source models.PointSource, sourceID string) (*models.MemberPoints, error) {
	var evts []events.Event
	mp, err := s.members.Mutate(communityID, userID, false, func(mp *models.MemberPoints) (bool, error) {
		var err error
		evts, err = mp.DeductPoints(source, sourceID)
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}
	if mp == nil {
		return nil, nil
	}
	s.publish(evts)

	return mp, nil
}

// loadOrCreateConfig returns the community's level configuration, creating
// and persisting the default table on first need.
func (s *PointsService) loadOrCreateConfig(communityID uint) (*models.LevelConfiguration, error) {
	cfg, err := s.configs.GetByCommunity(communityID)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		return cfg, nil
	}

	cfg = models.DefaultLevelConfiguration(communityID)
	if err := s.configs.Save(cfg); err != nil {
		return nil, err
	}
	logger.Info("created default level configuration", "community_id", communityID)
	return cfg, nil
}

// publish fans events out after the mutation is committed. Publication
// failures are operational: they are logged and never surfaced to the
// caller, and they never re-trigger the point mutation.
func (s *PointsService) publish(evts []events.Event) {
	if len(evts) == 0 {
		return
	}
	if err := s.publisher.PublishAll(evts); err != nil {
		logger.Error("failed to publish gamification events", "error", err, "count", len(evts))
	}
}
