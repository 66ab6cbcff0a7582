package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/commforge/community_backend/internal/services"
)

// TriggerHandler receives engagement notifications from the other bounded
// contexts (posts, comments, classroom) and forwards them 1:1 to the point
// engine.
type TriggerHandler struct {
	triggers *services.TriggerService
	validate *validator.Validate
}

func NewTriggerHandler(triggers *services.TriggerService, validate *validator.Validate) *TriggerHandler {
	return &TriggerHandler{triggers: triggers, validate: validate}
}

type triggerRequest struct {
	CommunityID uint `json:"community_id" validate:"required"`
	UserID      uint `json:"user_id" validate:"required"`
	EntityID    uint `json:"entity_id" validate:"required"`
}

func (h *TriggerHandler) decode(w http.ResponseWriter, r *http.Request) (*triggerRequest, bool) {
	var req triggerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, err)
		return nil, false
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return nil, false
	}
	return &req, true
}

func (h *TriggerHandler) handle(w http.ResponseWriter, r *http.Request, apply func(*triggerRequest) error) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	if err := apply(req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "processed"})
}

func (h *TriggerHandler) PostCreated(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(req *triggerRequest) error {
		return h.triggers.PostCreated(req.CommunityID, req.UserID, req.EntityID)
	})
}

func (h *TriggerHandler) CommentCreated(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(req *triggerRequest) error {
		return h.triggers.CommentCreated(req.CommunityID, req.UserID, req.EntityID)
	})
}

func (h *TriggerHandler) PostLiked(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(req *triggerRequest) error {
		return h.triggers.PostLiked(req.CommunityID, req.UserID, req.EntityID)
	})
}

func (h *TriggerHandler) PostUnliked(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(req *triggerRequest) error {
		return h.triggers.PostUnliked(req.CommunityID, req.UserID, req.EntityID)
	})
}

func (h *TriggerHandler) CommentLiked(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(req *triggerRequest) error {
		return h.triggers.CommentLiked(req.CommunityID, req.UserID, req.EntityID)
	})
}

func (h *TriggerHandler) CommentUnliked(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(req *triggerRequest) error {
		return h.triggers.CommentUnliked(req.CommunityID, req.UserID, req.EntityID)
	})
}

func (h *TriggerHandler) LessonCompleted(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(req *triggerRequest) error {
		return h.triggers.LessonCompleted(req.CommunityID, req.UserID, req.EntityID)
	})
}
