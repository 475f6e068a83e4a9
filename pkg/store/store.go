// Package store persists chart documents for the gallery.
//
// A Document bundles the task intervals with the render options used to
// produce a chart, so a stored chart re-renders identically. Two backends
// are provided:
//   - file: JSON files in a config directory, for the CLI
//   - mongo: MongoDB, for multi-instance gallery deployments
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/ganttring/pkg/chart"
	"github.com/matzehuels/ganttring/pkg/errors"
	"github.com/matzehuels/ganttring/pkg/pipeline"
)

// Document is a stored chart definition.
type Document struct {
	ID        string           `json:"id" bson:"_id"`
	Name      string           `json:"name" bson:"name"`
	Intervals []chart.Interval `json:"intervals" bson:"intervals"`
	Options   pipeline.Options `json:"options" bson:"options"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" bson:"updated_at"`
}

// NewDocument creates a document with a fresh ID and timestamps.
func NewDocument(name string, intervals []chart.Interval, opts pipeline.Options) *Document {
	now := time.Now().UTC()
	return &Document{
		ID:        uuid.NewString(),
		Name:      name,
		Intervals: intervals,
		Options:   opts,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store is the interface for chart document storage backends.
type Store interface {
	// Get retrieves a document by ID. Returns an ErrCodeChartNotFound
	// error when the document does not exist.
	Get(ctx context.Context, id string) (*Document, error)

	// Put stores a document, replacing any existing one with the same ID.
	Put(ctx context.Context, doc *Document) error

	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all documents, newest first.
	List(ctx context.Context) ([]*Document, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NotFound builds the canonical missing-document error.
func NotFound(id string) error {
	return errors.New(errors.ErrCodeChartNotFound, "chart %s not found", id)
}
