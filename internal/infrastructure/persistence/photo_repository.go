package persistence

import (
	"context"
	"errors"

	"github.com/rentdesk/backend/internal/domain/attachment"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/rentdesk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPhotoRepository implements PhotoRepository using GORM. Placement,
// primary swap and reorder lock the owner's non-deleted photo rows FOR
// UPDATE so concurrent mutations of one gallery serialize and the primary
// and display-order invariants hold at commit.
type GormPhotoRepository struct {
	db *gorm.DB
}

// NewGormPhotoRepository creates a new GormPhotoRepository
func NewGormPhotoRepository(db *gorm.DB) *GormPhotoRepository {
	return &GormPhotoRepository{db: db}
}

// FindByIDForAccount finds a photo by ID within an account
func (r *GormPhotoRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*attachment.Photo, error) {
	var model models.PhotoModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND id = ? AND deleted_at IS NULL", accountID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOwner lists an owner's photos ordered by display order
func (r *GormPhotoRepository) FindByOwner(ctx context.Context, accountID uuid.UUID, owner attachment.OwnerRef) ([]attachment.Photo, error) {
	var photoModels []models.PhotoModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND owner_kind = ? AND owner_id = ? AND deleted_at IS NULL",
			accountID, string(owner.Kind), owner.ID).
		Order("display_order ASC, created_at ASC").
		Find(&photoModels).Error; err != nil {
		return nil, err
	}

	photos := make([]attachment.Photo, len(photoModels))
	for i, model := range photoModels {
		photos[i] = *model.ToDomain()
	}
	return photos, nil
}

// CountByOwner counts an owner's non-deleted photos
func (r *GormPhotoRepository) CountByOwner(ctx context.Context, accountID uuid.UUID, owner attachment.OwnerRef) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PhotoModel{}).
		Where("account_id = ? AND owner_kind = ? AND owner_id = ? AND deleted_at IS NULL",
			accountID, string(owner.Kind), owner.ID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a photo
func (r *GormPhotoRepository) Save(ctx context.Context, photo *attachment.Photo) error {
	model := models.PhotoModelFromDomain(photo)
	return r.db.WithContext(ctx).Save(model).Error
}

// CreateWithPlacement inserts the photo with its placement derived from the
// owner's current photo set: the first photo becomes primary at order 0, any
// later photo is non-primary at max order + 1.
func (r *GormPhotoRepository) CreateWithPlacement(ctx context.Context, photo *attachment.Photo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		siblings, err := lockOwnerPhotos(tx, photo.AccountID, photo.Owner)
		if err != nil {
			return err
		}

		if len(siblings) == 0 {
			photo.IsPrimary = true
			photo.DisplayOrder = 0
		} else {
			maxOrder := 0
			for _, sibling := range siblings {
				if sibling.DisplayOrder > maxOrder {
					maxOrder = sibling.DisplayOrder
				}
			}
			photo.IsPrimary = false
			photo.DisplayOrder = maxOrder + 1
		}

		return tx.Create(models.PhotoModelFromDomain(photo)).Error
	})
}

// SwapPrimary clears the current primary (if any) and flags the target photo,
// atomically. Returns the updated target.
func (r *GormPhotoRepository) SwapPrimary(ctx context.Context, accountID uuid.UUID, owner attachment.OwnerRef, photoID uuid.UUID) (*attachment.Photo, error) {
	var target *attachment.Photo

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		siblings, err := lockOwnerPhotos(tx, accountID, owner)
		if err != nil {
			return err
		}

		var targetModel *models.PhotoModel
		var currentPrimary *models.PhotoModel
		for i := range siblings {
			if siblings[i].ID == photoID {
				targetModel = &siblings[i]
			}
			if siblings[i].IsPrimary {
				currentPrimary = &siblings[i]
			}
		}
		if targetModel == nil {
			return shared.NewNotFound("PHOTO_NOT_FOUND", "Photo not found")
		}

		if currentPrimary != nil && currentPrimary.ID != photoID {
			previous := currentPrimary.ToDomain()
			previous.ClearPrimary()
			if err := tx.Save(models.PhotoModelFromDomain(previous)).Error; err != nil {
				return err
			}
		}

		target = targetModel.ToDomain()
		if err := target.MakePrimary(); err != nil {
			return err
		}
		return tx.Save(models.PhotoModelFromDomain(target)).Error
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

// Reorder re-validates that orderedIDs is a permutation of the owner's
// current non-deleted photo set under lock, then rewrites display orders to
// match the given sequence. Primary flags are untouched.
func (r *GormPhotoRepository) Reorder(ctx context.Context, accountID uuid.UUID, owner attachment.OwnerRef, orderedIDs []uuid.UUID) ([]attachment.Photo, error) {
	var reordered []attachment.Photo

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		siblings, err := lockOwnerPhotos(tx, accountID, owner)
		if err != nil {
			return err
		}

		byID := make(map[uuid.UUID]*models.PhotoModel, len(siblings))
		for i := range siblings {
			byID[siblings[i].ID] = &siblings[i]
		}

		for _, id := range orderedIDs {
			if _, ok := byID[id]; !ok {
				return shared.NewNotFound("PHOTO_NOT_FOUND", "Photo not found")
			}
		}
		if len(orderedIDs) != len(siblings) {
			return shared.NewValidation("INCOMPLETE_PHOTO_LIST",
				"Reorder must include every photo of the owner exactly once")
		}

		// Every row is written, including ones already at their position.
		// A resubmit of the current order is a real write, not a no-op.
		reordered = make([]attachment.Photo, 0, len(orderedIDs))
		for position, id := range orderedIDs {
			photo := byID[id].ToDomain()
			if err := photo.SetDisplayOrder(position); err != nil {
				return err
			}
			if err := tx.Save(models.PhotoModelFromDomain(photo)).Error; err != nil {
				return err
			}
			reordered = append(reordered, *photo)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reordered, nil
}

// HardDelete removes the photo row. The remaining photos keep their display
// orders; gaps close on the next reorder. Blob cleanup happens before this
// call, best-effort, in the service layer.
func (r *GormPhotoRepository) HardDelete(ctx context.Context, accountID uuid.UUID, owner attachment.OwnerRef, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.PhotoModel{}, "account_id = ? AND owner_kind = ? AND owner_id = ? AND id = ?",
			accountID, string(owner.Kind), owner.ID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// lockOwnerPhotos loads an owner's non-deleted photo rows FOR UPDATE
func lockOwnerPhotos(tx *gorm.DB, accountID uuid.UUID, owner attachment.OwnerRef) ([]models.PhotoModel, error) {
	var photoModels []models.PhotoModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ? AND owner_kind = ? AND owner_id = ? AND deleted_at IS NULL",
			accountID, string(owner.Kind), owner.ID).
		Order("display_order ASC, created_at ASC").
		Find(&photoModels).Error; err != nil {
		return nil, err
	}
	return photoModels, nil
}

// Compile-time interface compliance check
var _ attachment.PhotoRepository = (*GormPhotoRepository)(nil)
