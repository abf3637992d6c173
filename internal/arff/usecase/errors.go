package usecase

import "errors"

var (
	ErrMissingFile      = errors.New("no file provided")
	ErrInvalidExtension = errors.New("file name does not end in .arff")
	ErrEmptyDocument    = errors.New("no data rows found")
	ErrTooLarge         = errors.New("file exceeds upload limit")
)
