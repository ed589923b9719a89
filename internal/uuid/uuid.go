// Package uuid hands out ids for stored documents behind an interface so
// tests can pin them
package uuid

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid . Generator

import (
	"github.com/google/uuid"
)

// Generator creates new document ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator creates random (v4) ids
type GoogleUUIDGenerator struct{}

// New returns a new random id
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
