// internal/services/search_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/javajoker/marketplace-backend/internal/database"
	"github.com/javajoker/marketplace-backend/internal/models"
	"github.com/javajoker/marketplace-backend/internal/testutil"
)

type SearchServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	db      *gorm.DB
	potter  *models.User
	service *SearchService
}

func (suite *SearchServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.db = testutil.NewDB(suite.T())
	suite.service = NewSearchService(suite.db, database.NewTextMatcher(database.DriverSQLite))

	suite.potter = testutil.CreateUser(suite.T(), suite.db, "potter")
	testutil.CreateUser(suite.T(), suite.db, "weaver")
	store := testutil.CreateStore(suite.T(), suite.db, suite.potter.ID, "Clay Corner")

	red := testutil.CreateItem(suite.T(), suite.db, store.ID, "Red Mug")
	testutil.CreateItem(suite.T(), suite.db, store.ID, "Blue Mug")
	testutil.CreateItem(suite.T(), suite.db, store.ID, "Plate")
	testutil.AddImage(suite.T(), suite.db, red.ID, "https://img.example.com/red.png")
}

func (suite *SearchServiceTestSuite) itemNames(results *SearchResults) []string {
	names := make([]string, 0, len(results.Items))
	for _, item := range results.Items {
		names = append(names, item.Name)
	}
	return names
}

func (suite *SearchServiceTestSuite) TestItemsBySubstring() {
	results, err := suite.service.Search(suite.ctx, "items", "mug")
	suite.Require().NoError(err)
	suite.Equal(SearchTypeItems, results.Type)
	suite.Equal([]string{"Red Mug", "Blue Mug"}, suite.itemNames(results))
	suite.Empty(results.Users)

	suite.Require().Len(results.Items[0].ItemImages, 1)
	suite.Equal("https://img.example.com/red.png", results.Items[0].ItemImages[0].URL)
}

func (suite *SearchServiceTestSuite) TestItemsIgnoreCase() {
	for _, query := range []string{"MUG", "mUg", "Mug"} {
		results, err := suite.service.Search(suite.ctx, "items", query)
		suite.Require().NoError(err)
		suite.Equal([]string{"Red Mug", "Blue Mug"}, suite.itemNames(results), query)
	}
}

func (suite *SearchServiceTestSuite) TestEmptyQueryMatchesEverything() {
	results, err := suite.service.Search(suite.ctx, "items", "")
	suite.Require().NoError(err)
	suite.Equal([]string{"Red Mug", "Blue Mug", "Plate"}, suite.itemNames(results))

	results, err = suite.service.Search(suite.ctx, "users", "")
	suite.Require().NoError(err)
	suite.Len(results.Users, 2)
}

func (suite *SearchServiceTestSuite) TestNoMatch() {
	results, err := suite.service.Search(suite.ctx, "items", "teapot")
	suite.Require().NoError(err)
	suite.Empty(results.Items)
	suite.Equal(0, results.Len())
	suite.NotNil(results.Results())
}

func (suite *SearchServiceTestSuite) TestUsersIncludeStores() {
	results, err := suite.service.Search(suite.ctx, "users", "POT")
	suite.Require().NoError(err)
	suite.Equal(SearchTypeUsers, results.Type)
	suite.Empty(results.Items)
	suite.Require().Len(results.Users, 1)

	user := results.Users[0]
	suite.Equal("potter", user.Username)
	suite.Empty(user.Email)
	suite.Empty(user.PasswordHash)
	suite.Require().Len(user.Stores, 1)
	suite.Equal("Clay Corner", user.Stores[0].Name)
}

func (suite *SearchServiceTestSuite) TestTypesDoNotMix() {
	// "potter" is a username, not an item name
	results, err := suite.service.Search(suite.ctx, "items", "potter")
	suite.Require().NoError(err)
	suite.Empty(results.Items)
	suite.Empty(results.Users)

	results, err = suite.service.Search(suite.ctx, "users", "mug")
	suite.Require().NoError(err)
	suite.Empty(results.Items)
	suite.Empty(results.Users)
}

func (suite *SearchServiceTestSuite) TestUnknownTypeReturnsEmpty() {
	for _, searchType := range []string{"", "stores", "ITEMS"} {
		results, err := suite.service.Search(suite.ctx, searchType, "mug")
		suite.Require().NoError(err)
		suite.Equal(SearchTypeUnknown, results.Type)
		suite.Equal(0, results.Len())
		suite.Equal([]interface{}{}, results.Results())
	}
}

func (suite *SearchServiceTestSuite) TestWildcardsMatchLiterally() {
	store := testutil.CreateStore(suite.T(), suite.db, suite.potter.ID, "Oddities")
	testutil.CreateItem(suite.T(), suite.db, store.ID, "100% Wool")
	testutil.CreateItem(suite.T(), suite.db, store.ID, "snake_case")
	testutil.CreateItem(suite.T(), suite.db, store.ID, `back\slash`)

	cases := map[string][]string{
		"%":  {"100% Wool"},
		"_":  {"snake_case"},
		`\`:  {`back\slash`},
		"0%": {"100% Wool"},
	}
	for query, want := range cases {
		results, err := suite.service.Search(suite.ctx, "items", query)
		suite.Require().NoError(err)
		suite.Equal(want, suite.itemNames(results), query)
	}
}

func TestSearchServiceSuite(t *testing.T) {
	suite.Run(t, new(SearchServiceTestSuite))
}
