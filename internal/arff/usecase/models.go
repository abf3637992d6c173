package usecase

import (
	"io"
	"strings"
)

const arffExtension = ".arff"

// Upload is a file handed over by a caller.
type Upload struct {
	Filename string
	Content  io.Reader
}

// Limits bound the work done for one preview.
type Limits struct {
	Width    int
	MaxRows  int
	MaxBytes int64 // 0 means unlimited
}

// HasARFFExtension reports whether name ends in ".arff", ignoring case.
func HasARFFExtension(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), arffExtension)
}
