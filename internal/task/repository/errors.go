package repository

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")
)
