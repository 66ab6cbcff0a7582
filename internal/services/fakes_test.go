package services

import (
	"os"
	"sort"
	"sync"
	"testing"

	"github.com/commforge/community_backend/internal/events"
	"github.com/commforge/community_backend/internal/models"
	"github.com/commforge/community_backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("error", "test")
	os.Exit(m.Run())
}

type fakeConfigStore struct {
	configs map[uint]*models.LevelConfiguration
	getErr  error
	saveErr error
	saves   int
	nextID  uint
}

func newFakeConfigStore() *fakeConfigStore {
	return &fakeConfigStore{configs: make(map[uint]*models.LevelConfiguration)}
}

func (f *fakeConfigStore) GetByCommunity(communityID uint) (*models.LevelConfiguration, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.configs[communityID], nil
}

func (f *fakeConfigStore) Save(cfg *models.LevelConfiguration) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	if cfg.ID == 0 {
		f.nextID++
		cfg.ID = f.nextID
	}
	f.configs[cfg.CommunityID] = cfg
	return nil
}

type fakeMemberStore struct {
	mu      sync.Mutex
	members map[[2]uint]*models.MemberPoints
	saveErr func(mp *models.MemberPoints) error
	saves   int
	nextID  uint
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{members: make(map[[2]uint]*models.MemberPoints)}
}

func (f *fakeMemberStore) GetByCommunityAndUser(communityID, userID uint) (*models.MemberPoints, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.members[[2]uint{communityID, userID}], nil
}

// Save seeds state directly; the services themselves go through Mutate.
func (f *fakeMemberStore) Save(mp *models.MemberPoints) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if mp.ID == 0 {
		f.nextID++
		mp.ID = f.nextID
	}
	f.members[[2]uint{mp.CommunityID, mp.UserID}] = mp
	return nil
}

// Mutate mirrors the repository contract: the stored aggregate is copied,
// fn applied, and the copy committed only on success, all under one lock.
func (f *fakeMemberStore) Mutate(communityID, userID uint, createIfMissing bool, fn func(*models.MemberPoints) (bool, error)) (*models.MemberPoints, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := [2]uint{communityID, userID}
	stored := f.members[key]

	var work models.MemberPoints
	if stored == nil {
		if !createIfMissing {
			return nil, nil
		}
		work = *models.NewMemberPoints(communityID, userID)
	} else {
		work = *stored
		work.Transactions = append([]models.PointTransaction(nil), stored.Transactions...)
	}

	persist, err := fn(&work)
	if err != nil {
		return nil, err
	}
	if !persist {
		return &work, nil
	}
	if f.saveErr != nil {
		if err := f.saveErr(&work); err != nil {
			return nil, err
		}
	}
	f.saves++
	if work.ID == 0 {
		f.nextID++
		work.ID = f.nextID
	}
	f.members[key] = &work
	return &work, nil
}

func (f *fakeMemberStore) ListByCommunity(communityID uint) ([]models.MemberPoints, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.MemberPoints
	for key, mp := range f.members {
		if key[0] == communityID {
			out = append(out, *mp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

type fakeCourseStore struct {
	requirements map[uint]*models.CourseLevelRequirement
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{requirements: make(map[uint]*models.CourseLevelRequirement)}
}

func (f *fakeCourseStore) GetRequirement(courseID uint) (*models.CourseLevelRequirement, error) {
	return f.requirements[courseID], nil
}

func (f *fakeCourseStore) SetRequirement(req *models.CourseLevelRequirement) error {
	f.requirements[req.CourseID] = req
	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []events.Event
	err       error
}

func (f *fakePublisher) PublishAll(evts []events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, evts...)
	return nil
}

func (f *fakePublisher) countType(eventType string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, evt := range f.published {
		if evt.EventType() == eventType {
			n++
		}
	}
	return n
}
