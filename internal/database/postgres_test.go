// internal/database/postgres_test.go
package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/javajoker/marketplace-backend/internal/database"
	"github.com/javajoker/marketplace-backend/internal/models"
	"github.com/javajoker/marketplace-backend/internal/testutil"
)

func TestPostgresIntegration(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	ctx := context.Background()

	owner := models.User{Username: "potter", Email: "potter@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&owner).Error)
	store := models.Store{OwnerID: owner.ID, Name: "Clay Corner"}
	require.NoError(t, db.Create(&store).Error)
	for _, name := range []string{"Red Mug", "Blue Mug", "Plate", "100% Wool"} {
		require.NoError(t, db.Create(&models.Item{StoreID: store.ID, Name: name}).Error)
	}

	t.Run("ILIKE substring search", func(t *testing.T) {
		matcher := database.NewTextMatcher(database.DriverPostgres)

		var names []string
		require.NoError(t, db.Model(&models.Item{}).Where(matcher.ContainsFold("name", "MUG")).
			Order("id").Pluck("name", &names).Error)
		assert.Equal(t, []string{"Red Mug", "Blue Mug"}, names)

		names = nil
		require.NoError(t, db.Model(&models.Item{}).Where(matcher.ContainsFold("name", "%")).
			Pluck("name", &names).Error)
		assert.Equal(t, []string{"100% Wool"}, names)
	})

	t.Run("duplicate like is a unique violation", func(t *testing.T) {
		var item models.Item
		require.NoError(t, db.First(&item).Error)

		require.NoError(t, db.Create(&models.Like{UserID: owner.ID, ItemID: item.ID}).Error)
		err := db.Create(&models.Like{UserID: owner.ID, ItemID: item.ID}).Error
		assert.True(t, database.IsUniqueViolation(err), "got %v", err)
	})

	t.Run("row locks inside a transaction", func(t *testing.T) {
		err := database.WithTransaction(ctx, db, func(tx *gorm.DB) error {
			var locked models.Store
			if err := database.ForUpdate(tx).First(&locked, store.ID).Error; err != nil {
				return err
			}
			var shared models.Item
			return database.ForShare(tx).First(&shared).Error
		})
		assert.NoError(t, err)
	})

	t.Run("server version", func(t *testing.T) {
		var version string
		require.NoError(t, db.Raw("SHOW server_version").Scan(&version).Error)
		assert.NotEmpty(t, version)
	})
}
