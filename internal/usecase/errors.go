package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrBatchTooLarge = errors.New("batch exceeds configured item limit")
)
