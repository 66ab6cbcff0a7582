package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/commforge/community_backend/internal/middleware"
	"github.com/commforge/community_backend/internal/models"
	"github.com/commforge/community_backend/internal/services"
	"github.com/commforge/community_backend/pkg/errors"
	"github.com/commforge/community_backend/pkg/logger"
)

type LevelHandler struct {
	levels   *services.LevelService
	validate *validator.Validate
}

func NewLevelHandler(levels *services.LevelService, validate *validator.Validate) *LevelHandler {
	return &LevelHandler{levels: levels, validate: validate}
}

type levelEntry struct {
	Level     int    `json:"level" validate:"min=1,max=9"`
	Name      string `json:"name" validate:"required"`
	Threshold int    `json:"threshold" validate:"min=0"`
}

type updateLevelsRequest struct {
	Levels []levelEntry `json:"levels" validate:"required,dive"`
}

// UpdateLevels replaces the community's full 9-level table.
func (h *LevelHandler) UpdateLevels(w http.ResponseWriter, r *http.Request) {
	communityID, ok := uintParam(w, r, "communityID")
	if !ok {
		return
	}

	var req updateLevelsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	updates := make([]models.LevelDefinition, 0, len(req.Levels))
	for _, entry := range req.Levels {
		updates = append(updates, models.LevelDefinition{
			Level:     entry.Level,
			Name:      entry.Name,
			Threshold: entry.Threshold,
		})
	}

	cfg, err := h.levels.UpdateLevelConfig(communityID, updates)
	if err != nil {
		writeError(w, err)
		return
	}

	if claims := middleware.ClaimsFrom(r.Context()); claims != nil {
		logger.Info("level configuration replaced",
			"community_id", communityID,
			"admin_id", claims.UserID,
		)
	}

	writeJSON(w, http.StatusOK, cfg)
}

// ListLevels returns the level table with member-distribution percentages.
func (h *LevelHandler) ListLevels(w http.ResponseWriter, r *http.Request) {
	communityID, ok := uintParam(w, r, "communityID")
	if !ok {
		return
	}

	distribution, err := h.levels.ListLevelDistribution(communityID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, distribution)
}

// GetMemberLevel answers where one member stands in the community.
func (h *LevelHandler) GetMemberLevel(w http.ResponseWriter, r *http.Request) {
	communityID, ok := uintParam(w, r, "communityID")
	if !ok {
		return
	}
	userID, ok := uintParam(w, r, "userID")
	if !ok {
		return
	}

	summary, err := h.levels.GetMemberLevel(communityID, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// uintParam parses a positive integer URL parameter, writing a validation
// error on failure.
func uintParam(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   errors.ErrCodeValidation,
			Message: name + " must be a positive integer",
		})
		return 0, false
	}
	return uint(value), true
}
