// internal/services/search_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/marketplace-backend/internal/database"
	"github.com/javajoker/marketplace-backend/internal/models"
)

type SearchType string

const (
	SearchTypeItems   SearchType = "items"
	SearchTypeUsers   SearchType = "users"
	SearchTypeUnknown SearchType = ""
)

func ParseSearchType(s string) SearchType {
	switch SearchType(s) {
	case SearchTypeItems:
		return SearchTypeItems
	case SearchTypeUsers:
		return SearchTypeUsers
	default:
		return SearchTypeUnknown
	}
}

// SearchResults holds the matches of exactly one entity class.
type SearchResults struct {
	Type  SearchType
	Items []models.Item
	Users []models.User
}

// Results returns the matches as a list, empty (never nil) for an unknown type.
func (r *SearchResults) Results() interface{} {
	switch r.Type {
	case SearchTypeItems:
		if r.Items == nil {
			return []models.Item{}
		}
		return r.Items
	case SearchTypeUsers:
		if r.Users == nil {
			return []models.User{}
		}
		return r.Users
	default:
		return []interface{}{}
	}
}

func (r *SearchResults) Len() int {
	return len(r.Items) + len(r.Users)
}

type SearchService struct {
	db      *gorm.DB
	matcher database.TextMatcher
}

func NewSearchService(db *gorm.DB, matcher database.TextMatcher) *SearchService {
	return &SearchService{
		db:      db,
		matcher: matcher,
	}
}

// Search matches query as a case-insensitive substring of item names or
// usernames. An empty query matches everything; an unrecognized type matches
// nothing.
func (s *SearchService) Search(ctx context.Context, searchType, query string) (*SearchResults, error) {
	db := s.db.WithContext(ctx)

	switch t := ParseSearchType(searchType); t {
	case SearchTypeItems:
		var items []models.Item
		if err := db.Where(s.matcher.ContainsFold("name", query)).
			Preload("ItemImages", orderByID).
			Order("id").Find(&items).Error; err != nil {
			return nil, fmt.Errorf("failed to search items: %w", err)
		}
		return &SearchResults{Type: t, Items: items}, nil

	case SearchTypeUsers:
		var users []models.User
		if err := db.Select("id", "username", "first_name", "last_name", "created_at", "updated_at").
			Where(s.matcher.ContainsFold("username", query)).
			Preload("Stores", orderByID).
			Order("id").Find(&users).Error; err != nil {
			return nil, fmt.Errorf("failed to search users: %w", err)
		}
		return &SearchResults{Type: t, Users: users}, nil

	default:
		return &SearchResults{Type: SearchTypeUnknown}, nil
	}
}
