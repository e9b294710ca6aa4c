// Package repos is the data-access layer: one repository per entity, no
// business logic. Every method takes an optional *gorm.DB transaction handle;
// nil falls back to the pooled connection, so services can group statements
// into one transaction when a use case needs it.
package repos

import (
	"errors"

	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/domain"
)

func orDB(tx, db *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}

// translateErr folds driver-level conditions into the shared error taxonomy
// so every lookup in the system has one not-found contract.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrConflict
	}
	return err
}
