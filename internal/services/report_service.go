package services

import (
	"bytes"
	"fmt"

	"github.com/commforge/community_backend/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ReportService produces admin-facing exports of the gamification state.
type ReportService struct {
	members MemberPointsStore
	levels  *LevelService
}

func NewReportService(members MemberPointsStore, levels *LevelService) *ReportService {
	return &ReportService{
		members: members,
		levels:  levels,
	}
}

// ExportLeaderboard renders the community leaderboard as an Excel workbook:
// rank, user, total points, level and level name, highest totals first.
func (s *ReportService) ExportLeaderboard(communityID uint) (*bytes.Buffer, error) {
	cfg, err := s.levels.GetConfig(communityID)
	if err != nil {
		return nil, err
	}
	members, err := s.members.ListByCommunity(communityID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leaderboard"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to prepare workbook")
	}

	headers := []string{"Rank", "User ID", "Total Points", "Level", "Level Name"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to write header")
		}
	}

	for i, mp := range members {
		name, _ := cfg.NameForLevel(mp.CurrentLevel)
		row := i + 2
		values := []interface{}{i + 1, mp.UserID, mp.TotalPoints, mp.CurrentLevel, name}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeInternalError,
					fmt.Sprintf("failed to write row %d", row))
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to render workbook")
	}
	return buf, nil
}
