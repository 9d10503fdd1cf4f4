// internal/services/authorization_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/marketplace-backend/internal/database"
	"github.com/javajoker/marketplace-backend/internal/metrics"
	"github.com/javajoker/marketplace-backend/internal/models"
)

type Outcome int

const (
	OutcomeAuthorized Outcome = iota
	OutcomeNotFound
	OutcomeForbidden
	OutcomeIntegrityFault
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAuthorized:
		return "authorized"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeForbidden:
		return "forbidden"
	case OutcomeIntegrityFault:
		return "integrity_fault"
	default:
		return "unknown"
	}
}

// Decision is the result of walking the Item -> Store -> owner chain.
type Decision struct {
	Outcome Outcome
	Item    *models.Item
	Reason  string
}

// Err converts a non-authorized decision into its error kind.
func (d Decision) Err() error {
	switch d.Outcome {
	case OutcomeAuthorized:
		return nil
	case OutcomeNotFound:
		return NotFound("Item")
	case OutcomeForbidden:
		return Forbidden("Item", "not store owner")
	default:
		return IntegrityFault("Store", "%s", d.Reason)
	}
}

// DecideItemMutation decides whether userID may update or delete item.
// item and store are nil when their lookups found nothing.
func DecideItemMutation(item *models.Item, store *models.Store, userID uint) Decision {
	if item == nil {
		return Decision{Outcome: OutcomeNotFound}
	}

	if store == nil || store.ID != item.StoreID {
		return Decision{
			Outcome: OutcomeIntegrityFault,
			Item:    item,
			Reason:  fmt.Sprintf("item %d references missing store %d", item.ID, item.StoreID),
		}
	}

	if store.OwnerID != userID {
		return Decision{Outcome: OutcomeForbidden, Item: item}
	}

	return Decision{Outcome: OutcomeAuthorized, Item: item}
}

type AuthorizationService struct {
	db *gorm.DB
}

func NewAuthorizationService(db *gorm.DB) *AuthorizationService {
	return &AuthorizationService{
		db: db,
	}
}

// AuthorizeItemMutation loads the item and its store and returns the item if
// userID owns the store. Pass the transaction that will perform the mutation
// as tx: on PostgreSQL both rows stay locked until it ends. A nil tx runs the
// check on its own.
func (s *AuthorizationService) AuthorizeItemMutation(ctx context.Context, tx *gorm.DB, itemID, userID uint) (*models.Item, error) {
	if tx == nil {
		tx = s.db
	}
	tx = tx.WithContext(ctx)

	item, err := s.findItem(tx, itemID)
	if err != nil {
		return nil, err
	}

	var store *models.Store
	if item != nil {
		if store, err = s.findStore(tx, item.StoreID); err != nil {
			return nil, err
		}
	}

	decision := DecideItemMutation(item, store, userID)
	metrics.ItemAuthorizationDecisions.WithLabelValues(decision.Outcome.String()).Inc()

	if decision.Outcome == OutcomeIntegrityFault {
		logrus.WithContext(ctx).WithFields(logrus.Fields{
			"item_id":  item.ID,
			"store_id": item.StoreID,
			"user_id":  userID,
		}).Error("Ownership chain broken: item has no store")
	}

	if err := decision.Err(); err != nil {
		return nil, err
	}
	return decision.Item, nil
}

func (s *AuthorizationService) findItem(tx *gorm.DB, id uint) (*models.Item, error) {
	var item models.Item
	if err := database.ForUpdate(tx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	return &item, nil
}

func (s *AuthorizationService) findStore(tx *gorm.DB, id uint) (*models.Store, error) {
	var store models.Store
	if err := database.ForUpdate(tx).First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load store: %w", err)
	}
	return &store, nil
}
