package handlers

import (
	"fmt"
	"net/http"

	"github.com/commforge/community_backend/internal/services"
	"github.com/commforge/community_backend/pkg/logger"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// ExportLeaderboard streams the community leaderboard as an xlsx download.
func (h *ReportHandler) ExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	communityID, ok := uintParam(w, r, "communityID")
	if !ok {
		return
	}

	buf, err := h.reports.ExportLeaderboard(communityID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="leaderboard-community-%d.xlsx"`, communityID))
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("failed to stream leaderboard export", "error", err)
	}
}
