package product_controller

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

var errCollectionNotFound = errors.New("collection not found")

// resolveCollection accepts either a collection id or its slug.
func resolveCollection(ctx context.Context, ref string) (uuid.UUID, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}

	var collection models.Collection
	err := config.DB.WithContext(ctx).Select("id").Where("slug = ?", ref).First(&collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, errCollectionNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return collection.ID, nil
}
