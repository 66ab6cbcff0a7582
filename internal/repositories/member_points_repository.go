package repositories

import (
	"github.com/commforge/community_backend/internal/models"
	"github.com/commforge/community_backend/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberPointsRepository struct {
	db *gorm.DB
}

func NewMemberPointsRepository(db *gorm.DB) *MemberPointsRepository {
	return &MemberPointsRepository{db: db}
}

// GetByCommunityAndUser loads a member's aggregate with its transaction
// history. Absence is not an error; awards create the aggregate lazily.
func (r *MemberPointsRepository) GetByCommunityAndUser(communityID, userID uint) (*models.MemberPoints, error) {
	var mp models.MemberPoints
	result := r.db.
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		First(&mp)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get member points")
	}

	return &mp, nil
}

// Mutate runs one read-modify-write cycle for a (community, user) pair
// inside a single transaction: the aggregate row is locked FOR UPDATE, its
// transaction history loaded, fn applied, and the result persisted before
// the lock is released. Concurrent mutations for the same pair serialize on
// the row lock, so no award or deduction can be lost to a stale read.
//
// With createIfMissing the zero aggregate is built when no row exists;
// otherwise absence returns (nil, nil) and fn never runs. fn's first return
// controls whether the aggregate is written back; an fn error rolls back.
func (r *MemberPointsRepository) Mutate(communityID, userID uint, createIfMissing bool, fn func(*models.MemberPoints) (bool, error)) (*models.MemberPoints, error) {
	var out *models.MemberPoints
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var mp models.MemberPoints
		result := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("community_id = ? AND user_id = ?", communityID, userID).
			First(&mp)

		if result.Error == gorm.ErrRecordNotFound {
			if !createIfMissing {
				return nil
			}
			mp = *models.NewMemberPoints(communityID, userID)
		} else if result.Error != nil {
			return result.Error
		} else {
			if err := tx.
				Where("member_points_id = ?", mp.ID).
				Order("created_at ASC, id ASC").
				Find(&mp.Transactions).Error; err != nil {
				return err
			}
		}

		persist, err := fn(&mp)
		if err != nil {
			return err
		}
		out = &mp
		if !persist {
			return nil
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&mp).Error
	})
	if err != nil {
		if errors.Code(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to update member points")
	}
	return out, nil
}

// ListByCommunity returns every member aggregate in a community, highest
// totals first.
func (r *MemberPointsRepository) ListByCommunity(communityID uint) ([]models.MemberPoints, error) {
	var members []models.MemberPoints
	result := r.db.
		Where("community_id = ?", communityID).
		Order("total_points DESC, user_id ASC").
		Find(&members)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list member points")
	}

	return members, nil
}
