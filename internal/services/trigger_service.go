package services

import (
	"strconv"

	"github.com/commforge/community_backend/internal/models"
	"github.com/commforge/community_backend/pkg/errors"
	"github.com/commforge/community_backend/pkg/logger"
)

// TriggerService is the inbound edge of the point engine: each platform
// happening maps 1:1 onto an award or deduction with its fixed source.
type TriggerService struct {
	points *PointsService
}

func NewTriggerService(points *PointsService) *TriggerService {
	return &TriggerService{points: points}
}

func (s *TriggerService) PostCreated(communityID, authorID, postID uint) error {
	_, err := s.points.AwardPoints(communityID, authorID, models.SourcePostCreated, refID(postID))
	return err
}

func (s *TriggerService) CommentCreated(communityID, authorID, commentID uint) error {
	_, err := s.points.AwardPoints(communityID, authorID, models.SourceCommentCreated, refID(commentID))
	return err
}

// PostLiked awards the post's author, not the liker.
func (s *TriggerService) PostLiked(communityID, authorID, postID uint) error {
	_, err := s.points.AwardPoints(communityID, authorID, models.SourcePostLiked, refID(postID))
	return err
}

func (s *TriggerService) PostUnliked(communityID, authorID, postID uint) error {
	_, err := s.points.DeductPoints(communityID, authorID, models.SourcePostLiked, refID(postID))
	return err
}

func (s *TriggerService) CommentLiked(communityID, authorID, commentID uint) error {
	_, err := s.points.AwardPoints(communityID, authorID, models.SourceCommentLiked, refID(commentID))
	return err
}

func (s *TriggerService) CommentUnliked(communityID, authorID, commentID uint) error {
	_, err := s.points.DeductPoints(communityID, authorID, models.SourceCommentLiked, refID(commentID))
	return err
}

// LessonCompleted awards the completion bonus once per lesson. A repeat
// completion means the triggering event was already processed, so it is
// absorbed here as an idempotent no-op instead of bubbling up as a
// failure.
func (s *TriggerService) LessonCompleted(communityID, userID, lessonID uint) error {
	_, err := s.points.AwardPoints(communityID, userID, models.SourceLessonCompleted, refID(lessonID))
	if errors.Code(err) == errors.ErrCodeDuplicateCompletion {
		logger.Debug("duplicate lesson completion ignored",
			"community_id", communityID, "user_id", userID, "lesson_id", lessonID)
		return nil
	}
	return err
}

func refID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
