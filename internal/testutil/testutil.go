// internal/testutil/testutil.go
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/javajoker/marketplace-backend/internal/config"
	"github.com/javajoker/marketplace-backend/internal/database"
	"github.com/javajoker/marketplace-backend/internal/models"
)

// TestDatabaseConfig describes a private in-memory SQLite database.
func TestDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:     database.DriverSQLite,
		SQLitePath: ":memory:",
		LogLevel:   "silent",
	}
}

// NewDB opens a fresh migrated database that is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Initialize(TestDatabaseConfig())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.RunMigrations(db))
	return db
}

func CreateUser(t testing.TB, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: username,
	}
	require.NoError(t, user.SetPassword("password"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateStore(t testing.TB, db *gorm.DB, ownerID uint, name string) *models.Store {
	t.Helper()

	store := &models.Store{OwnerID: ownerID, Name: name}
	require.NoError(t, db.Create(store).Error)
	return store
}

func CreateItem(t testing.TB, db *gorm.DB, storeID uint, name string) *models.Item {
	t.Helper()

	item := &models.Item{StoreID: storeID, Name: name, Price: 10}
	require.NoError(t, db.Create(item).Error)
	return item
}

func AddImage(t testing.TB, db *gorm.DB, itemID uint, url string) *models.ItemImage {
	t.Helper()

	image := &models.ItemImage{ItemID: itemID, URL: url}
	require.NoError(t, db.Create(image).Error)
	return image
}

func CreateLike(t testing.TB, db *gorm.DB, userID, itemID uint) *models.Like {
	t.Helper()

	like := &models.Like{UserID: userID, ItemID: itemID}
	require.NoError(t, db.Create(like).Error)
	return like
}

// Marketplace is a small fixture: an owner with one store and two items,
// plus a user who owns nothing.
type Marketplace struct {
	Owner    *models.User
	Stranger *models.User
	Store    *models.Store
	RedMug   *models.Item
	Plate    *models.Item
}

func NewMarketplace(t testing.TB, db *gorm.DB) *Marketplace {
	t.Helper()

	owner := CreateUser(t, db, "potter")
	stranger := CreateUser(t, db, "stranger")
	store := CreateStore(t, db, owner.ID, "Clay Corner")

	return &Marketplace{
		Owner:    owner,
		Stranger: stranger,
		Store:    store,
		RedMug:   CreateItem(t, db, store.ID, "Red Mug"),
		Plate:    CreateItem(t, db, store.ID, "Plate"),
	}
}
