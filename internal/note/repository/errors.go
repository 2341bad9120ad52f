package repository

import "errors"

var (
	ErrFailedToLoad    = errors.New("failed to load notes")
	ErrFailedToSave    = errors.New("failed to save notes")
	ErrFailedToMigrate = errors.New("failed to prepare kv_store table")
)
