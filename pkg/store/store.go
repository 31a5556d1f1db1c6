// Package store persists saved birth records.
//
// A record holds only the validated birth moment and the calculation
// configuration, never derived charts; those are recomputed on demand.
// Implementations for different backends:
//   - memory: in-memory storage for development/testing
//   - file: file-based storage for CLI applications
//   - redis: Redis-backed storage for multi-instance deployments
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/maheshsubedi/grahas/pkg/chart"
	apperrors "github.com/maheshsubedi/grahas/pkg/errors"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
)

// Record is one saved birth record: the input needed to recompute any chart,
// plus the frame it should be computed in.
type Record struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Moment      chart.BirthMoment `json:"moment"`
	Ayanamsa    string            `json:"ayanamsa"`
	HouseSystem string            `json:"house_system"`
	CreatedAt   time.Time         `json:"created_at"`
}

// New creates a record with a fresh identifier. The birth moment is assumed
// already validated by chart.NewBirthMoment; the name is validated here.
func New(name string, moment chart.BirthMoment, ayanamsa, houseSystem string) (*Record, error) {
	if err := apperrors.ValidateRecordName(name); err != nil {
		return nil, err
	}

	return &Record{
		ID:          uuid.NewString(),
		Name:        name,
		Moment:      moment,
		Ayanamsa:    ayanamsa,
		HouseSystem: houseSystem,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Store is the interface for birth-record storage backends.
type Store interface {
	// Get retrieves a record by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*Record, error)

	// Save stores a record, overwriting any record with the same ID.
	Save(ctx context.Context, record *Record) error

	// List returns all records ordered by creation time.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes a record. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}
