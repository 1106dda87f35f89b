package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/Piiquante/internal/domain/contract"
)

// Generator issues time-ordered (version 7) UUIDs, which keep freshly created
// documents close together in the _id index.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new UUID.
func (g *Generator) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
