package models

import "testing"

func TestPointSourceValues(t *testing.T) {
	tests := []struct {
		source PointSource
		want   int
	}{
		{SourcePostCreated, 2},
		{SourceCommentCreated, 1},
		{SourcePostLiked, 1},
		{SourceCommentLiked, 1},
		{SourceLessonCompleted, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.source), func(t *testing.T) {
			if got := tt.source.Points(); got != tt.want {
				t.Errorf("%s.Points() = %d, want %d", tt.source, got, tt.want)
			}
			if !tt.source.Valid() {
				t.Errorf("%s.Valid() = false, want true", tt.source)
			}
		})
	}
}

func TestPointSource_Unknown(t *testing.T) {
	unknown := PointSource("PROFILE_UPDATED")
	if unknown.Valid() {
		t.Error("Valid() = true for source outside the catalog")
	}
	if unknown.Points() != 0 {
		t.Errorf("Points() = %d for unknown source, want 0", unknown.Points())
	}
}

func TestAllPointSources_MatchesCatalog(t *testing.T) {
	all := AllPointSources()
	if len(all) != len(sourcePoints) {
		t.Fatalf("AllPointSources() has %d entries, catalog has %d", len(all), len(sourcePoints))
	}
	seen := make(map[PointSource]bool, len(all))
	for _, s := range all {
		if !s.Valid() {
			t.Errorf("%s listed but not in catalog", s)
		}
		if seen[s] {
			t.Errorf("%s listed twice", s)
		}
		seen[s] = true
	}
}
