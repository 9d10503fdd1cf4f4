// internal/database/dialect_test.go
package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/javajoker/marketplace-backend/internal/config"
	"github.com/javajoker/marketplace-backend/internal/models"
)

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%%", likePattern(""))
	assert.Equal(t, "%mug%", likePattern("mug"))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%snake\_case%`, likePattern("snake_case"))
	assert.Equal(t, `%back\\slash%`, likePattern(`back\slash`))
}

func TestASCIILower(t *testing.T) {
	assert.Equal(t, "red mug", asciiLower("RED Mug"))
	// Non-ASCII letters are left alone, matching SQLite's LOWER
	assert.Equal(t, "École", asciiLower("ÉCOLE"))
}

func TestNewTextMatcher(t *testing.T) {
	assert.IsType(t, postgresMatcher{}, NewTextMatcher(DriverPostgres))
	assert.IsType(t, sqliteMatcher{}, NewTextMatcher(DriverSQLite))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: likes.user_id, likes.item_id")))
}

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Initialize(config.DatabaseConfig{Driver: DriverSQLite, SQLitePath: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() { Close(db) })
	require.NoError(t, RunMigrations(db))
	return db
}

func TestSQLiteSchema(t *testing.T) {
	db := newSQLiteDB(t)

	owner := models.User{Username: "potter", Email: "potter@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&owner).Error)
	store := models.Store{OwnerID: owner.ID, Name: "Clay Corner"}
	require.NoError(t, db.Create(&store).Error)
	item := models.Item{StoreID: store.ID, Name: "Red Mug"}
	require.NoError(t, db.Create(&item).Error)

	t.Run("likes are unique per user and item", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Like{UserID: owner.ID, ItemID: item.ID}).Error)
		err := db.Create(&models.Like{UserID: owner.ID, ItemID: item.ID}).Error
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
		assert.True(t, IsUniqueViolation(err), "got %v", err)
	})

	t.Run("foreign keys are enforced", func(t *testing.T) {
		err := db.Create(&models.Item{StoreID: 4242, Name: "Orphan"}).Error
		assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
	})

	t.Run("text matcher", func(t *testing.T) {
		var names []string
		require.NoError(t, db.Model(&models.Item{}).
			Where(NewTextMatcher(DriverSQLite).ContainsFold("name", "MUG")).
			Pluck("name", &names).Error)
		assert.Equal(t, []string{"Red Mug"}, names)
	})
}

func TestWithTransaction(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
		if err := tx.Create(&models.User{Username: "rollback", Email: "r@example.com", PasswordHash: "x"}).Error; err != nil {
			return err
		}
		return errors.New("abort")
	})
	assert.EqualError(t, err, "abort")

	assert.Panics(t, func() {
		_ = WithTransaction(ctx, db, func(tx *gorm.DB) error {
			tx.Create(&models.User{Username: "panicky", Email: "p@example.com", PasswordHash: "x"})
			panic("boom")
		})
	})

	require.NoError(t, WithTransaction(ctx, db, func(tx *gorm.DB) error {
		return tx.Create(&models.User{Username: "kept", Email: "k@example.com", PasswordHash: "x"}).Error
	}))

	var usernames []string
	require.NoError(t, db.Model(&models.User{}).Pluck("username", &usernames).Error)
	assert.Equal(t, []string{"kept"}, usernames)
}

func TestSeedInitialDataIsRepeatable(t *testing.T) {
	db := newSQLiteDB(t)

	require.NoError(t, SeedInitialData(db))
	require.NoError(t, SeedInitialData(db))

	var users, stores, items int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Store{}).Count(&stores)
	db.Model(&models.Item{}).Count(&items)
	assert.EqualValues(t, 3, users)
	assert.EqualValues(t, 2, stores)
	assert.EqualValues(t, 4, items)
}
