package repositories

import (
	"github.com/commforge/community_backend/internal/models"
	"github.com/commforge/community_backend/pkg/errors"
	"gorm.io/gorm"
)

type LevelConfigRepository struct {
	db *gorm.DB
}

func NewLevelConfigRepository(db *gorm.DB) *LevelConfigRepository {
	return &LevelConfigRepository{db: db}
}

// GetByCommunity loads a community's level configuration with its level
// table. Absence is not an error: callers create the default lazily.
func (r *LevelConfigRepository) GetByCommunity(communityID uint) (*models.LevelConfiguration, error) {
	var cfg models.LevelConfiguration
	result := r.db.
		Preload("Levels", func(db *gorm.DB) *gorm.DB {
			return db.Order("level ASC")
		}).
		Where("community_id = ?", communityID).
		First(&cfg)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get level configuration")
	}

	return &cfg, nil
}

// Save persists the configuration and its full level table. The table is
// replaced wholesale so the stored rows always mirror one validated set.
func (r *LevelConfigRepository) Save(cfg *models.LevelConfiguration) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if cfg.ID != 0 {
			if err := tx.Where("config_id = ?", cfg.ID).Delete(&models.LevelDefinition{}).Error; err != nil {
				return err
			}
			for i := range cfg.Levels {
				cfg.Levels[i].ID = 0
				cfg.Levels[i].ConfigID = cfg.ID
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(cfg).Error
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to save level configuration")
	}
	return nil
}
