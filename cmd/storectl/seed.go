package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/utils"
)

type seedProduct struct {
	name, description, category string
	price, cost                 float64
}

var seedCollections = map[string][]seedProduct{
	"Bridal": {
		{"Aurora Solitaire Ring", "Platinum band with a round brilliant diamond", "Rings", 1890, 940},
		{"Celeste Pearl Drops", "Freshwater pearl earrings on 18k gold hooks", "Earrings", 240, 85},
	},
	"Everyday Gold": {
		{"Fine Link Chain", "14k gold 45cm cable chain", "Necklaces", 310, 140},
		{"Signet Ring", "Polished 9k gold signet", "Rings", 420, 190},
		{"Hoop Earrings", "Small 14k gold hoops", "Earrings", 180, 70},
	},
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo collections and products into an empty store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			defer config.CloseDB()

			ctx, cancel := config.WithTimeout()
			defer cancel()

			var count int64
			if err := config.DB.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
				return fmt.Errorf("count products: %w", err)
			}
			if count > 0 {
				log.Warn().Str("op", "storectl.seed").Int64("products", count).Msg("store not empty, nothing seeded")
				return nil
			}

			created := 0
			err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				for name, products := range seedCollections {
					collection := models.Collection{Name: name, Slug: utils.Slugify(name)}
					if err := tx.Create(&collection).Error; err != nil {
						return fmt.Errorf("create collection %s: %w", name, err)
					}
					for _, p := range products {
						product := models.Product{
							Name:         p.name,
							Description:  p.description,
							Category:     p.category,
							Price:        p.price,
							CostPrice:    p.cost,
							CollectionID: &collection.ID,
						}
						if err := tx.Create(&product).Error; err != nil {
							return fmt.Errorf("create product %s: %w", p.name, err)
						}
						created++
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			log.Info().Str("op", "storectl.seed").Int("products", created).Msg("demo catalog seeded")
			return nil
		},
	}
}
