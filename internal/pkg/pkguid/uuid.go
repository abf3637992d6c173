package pkguid

import "github.com/google/uuid"

// UUID produces version 7 UUID strings. They sort by creation time, which
// keeps correlation IDs in log order.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

// Generate panics only if the system random source fails.
func (*UUID) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
