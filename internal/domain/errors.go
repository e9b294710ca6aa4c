package domain

import "errors"

// Sentinel error kinds shared by repos, services and the HTTP layer.
// Repos translate driver-level conditions (gorm.ErrRecordNotFound,
// duplicate keys) into these so callers only ever branch on one taxonomy.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("resource conflict")
	ErrValidation = errors.New("validation failed")
	ErrStorage    = errors.New("storage unavailable")
)
