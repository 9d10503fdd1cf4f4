// internal/database/seed.go
package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/marketplace-backend/internal/models"
)

const demoPassword = "password"

type seedStore struct {
	owner string
	store models.Store
	items []models.Item
}

// SeedInitialData creates demo users, stores and items. Existing demo users
// are left untouched, so the seed can be run repeatedly.
func SeedInitialData(db *gorm.DB) error {
	logrus.Info("Seeding initial data...")

	users := []models.User{
		{Username: "demo", Email: "demo@marketplace.dev", FirstName: "Demo", LastName: "User"},
		{Username: "potter", Email: "potter@marketplace.dev", FirstName: "Pat", LastName: "Potter"},
		{Username: "weaver", Email: "weaver@marketplace.dev", FirstName: "Wren", LastName: "Weaver"},
	}

	ids := make(map[string]uint, len(users))
	for i := range users {
		user := users[i]

		var existing models.User
		if err := db.Where("username = ?", user.Username).First(&existing).Error; err == nil {
			ids[user.Username] = existing.ID
			continue
		}

		if err := user.SetPassword(demoPassword); err != nil {
			return fmt.Errorf("failed to set password for %s: %w", user.Username, err)
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.Username, err)
		}
		ids[user.Username] = user.ID

		logrus.WithField("username", user.Username).Info("Demo user created")
	}

	stores := []seedStore{
		{
			owner: "potter",
			store: models.Store{Name: "Clay Corner", Description: "Hand thrown stoneware", Location: "Portland, OR"},
			items: []models.Item{
				{Name: "Red Mug", Description: "12oz mug with a red glaze", Category: "kitchen", Price: 24},
				{Name: "Blue Mug", Description: "12oz mug with a blue glaze", Category: "kitchen", Price: 24},
				{Name: "Plate", Description: "Dinner plate", Category: "kitchen", Price: 32},
			},
		},
		{
			owner: "weaver",
			store: models.Store{Name: "Loom & Co", Description: "Woven goods", Location: "Asheville, NC"},
			items: []models.Item{
				{Name: "Wool Scarf", Description: "Merino scarf", Category: "apparel", Price: 55},
			},
		},
	}

	for _, s := range stores {
		var count int64
		db.Model(&models.Store{}).Where("owner_id = ? AND name = ?", ids[s.owner], s.store.Name).Count(&count)
		if count > 0 {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			store := s.store
			store.OwnerID = ids[s.owner]
			if err := tx.Create(&store).Error; err != nil {
				return err
			}
			for _, item := range s.items {
				item.StoreID = store.ID
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to seed store %s: %w", s.store.Name, err)
		}
	}

	logrus.Info("Initial data seeding completed")
	return nil
}
