package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/commforge/community_backend/internal/services"
	"github.com/commforge/community_backend/pkg/errors"
)

type CourseHandler struct {
	access   *services.CourseAccessService
	validate *validator.Validate
}

func NewCourseHandler(access *services.CourseAccessService, validate *validator.Validate) *CourseHandler {
	return &CourseHandler{access: access, validate: validate}
}

type setRequirementRequest struct {
	CommunityID  uint `json:"community_id" validate:"required"`
	MinimumLevel int  `json:"minimum_level" validate:"required,min=1,max=9"`
}

// SetRequirement creates or replaces a course's minimum-level gate.
func (h *CourseHandler) SetRequirement(w http.ResponseWriter, r *http.Request) {
	courseID, ok := uintParam(w, r, "courseID")
	if !ok {
		return
	}

	var req setRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	requirement, err := h.access.SetRequirement(req.CommunityID, courseID, req.MinimumLevel)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requirement)
}

// GetRequirement returns the course's gate; an unrestricted course answers
// with minimum_level 0 and restricted=false.
func (h *CourseHandler) GetRequirement(w http.ResponseWriter, r *http.Request) {
	courseID, ok := uintParam(w, r, "courseID")
	if !ok {
		return
	}

	requirement, err := h.access.GetRequirement(courseID)
	if err != nil {
		writeError(w, err)
		return
	}

	if requirement == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"course_id":  courseID,
			"restricted": false,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"course_id":     requirement.CourseID,
		"community_id":  requirement.CommunityID,
		"minimum_level": requirement.MinimumLevel,
		"restricted":    true,
	})
}

// CheckAccess reports whether a member's level opens the course.
// Query params: community_id, user_id.
func (h *CourseHandler) CheckAccess(w http.ResponseWriter, r *http.Request) {
	courseID, ok := uintParam(w, r, "courseID")
	if !ok {
		return
	}

	communityID, ok := uintQuery(w, r, "community_id")
	if !ok {
		return
	}
	userID, ok := uintQuery(w, r, "user_id")
	if !ok {
		return
	}

	allowed, err := h.access.CheckAccess(communityID, userID, courseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"course_id": courseID,
		"user_id":   userID,
		"access":    allowed,
	})
}

func uintQuery(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := r.URL.Query().Get(name)
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
