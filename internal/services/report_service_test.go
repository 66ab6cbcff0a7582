package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportLeaderboard(t *testing.T) {
	configs := newFakeConfigStore()
	members := newFakeMemberStore()
	seedMember(t, members, 1, 10, 40, 3)
	seedMember(t, members, 1, 11, 5, 1)

	levels := NewLevelService(configs, members, &fakePublisher{})
	svc := NewReportService(members, levels)

	buf, err := svc.ExportLeaderboard(1)
	if err != nil {
		t.Fatalf("ExportLeaderboard() error = %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("exported workbook is not readable: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Leaderboard")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3 (header + 2 members)", len(rows))
	}

	if rows[0][0] != "Rank" || rows[0][4] != "Level Name" {
		t.Errorf("header row = %v", rows[0])
	}
	// Highest total first.
	if rows[1][1] != "10" || rows[1][2] != "40" || rows[1][4] != "Builder" {
		t.Errorf("first data row = %v, want user 10 / 40 points / Builder", rows[1])
	}
	if rows[2][1] != "11" || rows[2][4] != "Student" {
		t.Errorf("second data row = %v, want user 11 / Student", rows[2])
	}
}

func TestExportLeaderboard_EmptyCommunity(t *testing.T) {
	configs := newFakeConfigStore()
	members := newFakeMemberStore()
	levels := NewLevelService(configs, members, &fakePublisher{})
	svc := NewReportService(members, levels)

	buf, err := svc.ExportLeaderboard(1)
	if err != nil {
		t.Fatalf("ExportLeaderboard() error = %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("exported workbook is not readable: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Leaderboard")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("len(rows) = %d, want 1 (header only)", len(rows))
	}
}
