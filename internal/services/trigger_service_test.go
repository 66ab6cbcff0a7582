package services

import "testing"

func newTriggerFixture() (*TriggerService, *fakeMemberStore, *fakePublisher) {
	configs := newFakeConfigStore()
	members := newFakeMemberStore()
	publisher := &fakePublisher{}
	points := NewPointsService(configs, members, publisher)
	return NewTriggerService(points), members, publisher
}

func TestTriggerAwards(t *testing.T) {
	tests := []struct {
		name       string
		fire       func(s *TriggerService) error
		wantPoints int
	}{
		{"post created", func(s *TriggerService) error { return s.PostCreated(1, 10, 5) }, 2},
		{"comment created", func(s *TriggerService) error { return s.CommentCreated(1, 10, 5) }, 1},
		{"post liked", func(s *TriggerService) error { return s.PostLiked(1, 10, 5) }, 1},
		{"comment liked", func(s *TriggerService) error { return s.CommentLiked(1, 10, 5) }, 1},
		{"lesson completed", func(s *TriggerService) error { return s.LessonCompleted(1, 10, 5) }, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, members, _ := newTriggerFixture()
			if err := tt.fire(svc); err != nil {
				t.Fatalf("trigger error = %v", err)
			}
			mp := members.members[[2]uint{1, 10}]
			if mp == nil {
				t.Fatal("no member state after trigger")
			}
			if mp.TotalPoints != tt.wantPoints {
				t.Errorf("TotalPoints = %d, want %d", mp.TotalPoints, tt.wantPoints)
			}
		})
	}
}

func TestTriggerUnlikeReversal(t *testing.T) {
	svc, members, _ := newTriggerFixture()

	if err := svc.PostLiked(1, 10, 5); err != nil {
		t.Fatalf("PostLiked() error = %v", err)
	}
	if err := svc.PostUnliked(1, 10, 5); err != nil {
		t.Fatalf("PostUnliked() error = %v", err)
	}

	mp := members.members[[2]uint{1, 10}]
	if mp.TotalPoints != 0 {
		t.Errorf("TotalPoints = %d, want 0 after like/unlike", mp.TotalPoints)
	}
	if len(mp.Transactions) != 2 {
		t.Errorf("len(Transactions) = %d, want 2", len(mp.Transactions))
	}
}

func TestTriggerUnlike_NoStateIsNoOp(t *testing.T) {
	svc, members, publisher := newTriggerFixture()

	if err := svc.CommentUnliked(1, 10, 5); err != nil {
		t.Fatalf("CommentUnliked() error = %v, want nil", err)
	}
	if len(members.members) != 0 {
		t.Error("no-op unlike created member state")
	}
	if len(publisher.published) != 0 {
		t.Error("no-op unlike published events")
	}
}

func TestTriggerDuplicateLessonSwallowed(t *testing.T) {
	svc, members, _ := newTriggerFixture()

	if err := svc.LessonCompleted(1, 10, 5); err != nil {
		t.Fatalf("first completion error = %v", err)
	}
	// The triggering event was already processed; the repeat is idempotent.
	if err := svc.LessonCompleted(1, 10, 5); err != nil {
		t.Fatalf("repeat completion error = %v, want nil", err)
	}

	mp := members.members[[2]uint{1, 10}]
	if mp.TotalPoints != 5 {
		t.Errorf("TotalPoints = %d, want 5", mp.TotalPoints)
	}
}
