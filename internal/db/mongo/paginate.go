package db

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest selects a zero-based page of a given size
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) validate() error {
	if p.Page < 0 {
		return fmt.Errorf("%w: page must not be negative", ErrInvalidCriteria)
	}
	if p.Size < 1 || p.Size > MaxPageSize {
		return fmt.Errorf("%w: size must be between 1 and %d", ErrInvalidCriteria, MaxPageSize)
	}
	return nil
}

// skip is the number of documents before the page. It saturates at
// math.MaxInt64 so that a page far past the end stays past the end.
func (p PageRequest) skip() int64 {
	if p.Size > 0 && int64(p.Page) > math.MaxInt64/int64(p.Size) {
		return math.MaxInt64
	}
	return int64(p.Page) * int64(p.Size)
}

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// Sort orders a listing by one field. The zero value means newest first.
type Sort struct {
	Field     string
	Direction SortDirection
}

// Page is one page of a listing together with the size of the whole listing
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"total_elements"`
	PageIndex     int   `json:"page"`
	PageSize      int   `json:"size"`
	TotalPages    int   `json:"total_pages"`
}

func newPage[T any](content []T, total int64, p PageRequest) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if p.Size > 0 {
		totalPages = int((total + int64(p.Size) - 1) / int64(p.Size))
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		PageIndex:     p.Page,
		PageSize:      p.Size,
		TotalPages:    totalPages,
	}
}

// sortable lists the fields a collection may be sorted by and the field
// used when the caller does not choose one.
type sortable struct {
	fallback string
	fields   map[string]bool
}

func newSortable(fallback string, fields ...string) sortable {
	s := sortable{fallback: fallback, fields: map[string]bool{fallback: true}}
	for _, f := range fields {
		s.fields[f] = true
	}
	return s
}

var (
	jobSorts         = newSortable("created_at", "updated_at", "salary_min", "salary_max", "title", "deadline")
	applicationSorts = newSortable("applied_at", "updated_at", "status")
	userSorts        = newSortable("created_at", "updated_at", "name", "email")
	profileSorts     = newSortable("created_at", "updated_at", "full_name")
	messageSorts     = newSortable("created_at")
)

// order builds the $sort document for s. The record key breaks ties in the
// same direction so equal values never swap places between pages.
func (a sortable) order(s Sort) (bson.D, error) {
	field := s.Field
	if field == "" {
		field = a.fallback
	}
	if !a.fields[field] {
		return nil, fmt.Errorf("%w: cannot sort by %q", ErrInvalidCriteria, field)
	}

	direction := -1
	switch s.Direction {
	case "", SortDesc:
	case SortAsc:
		direction = 1
	default:
		return nil, fmt.Errorf("%w: unknown sort direction %q", ErrInvalidCriteria, s.Direction)
	}

	return bson.D{{Key: field, Value: direction}, {Key: "_id", Value: direction}}, nil
}

type facetResult[T any] struct {
	Data     []T `bson:"data"`
	Metadata []struct {
		Total int64 `bson:"total"`
	} `bson:"metadata"`
}

// aggregatePage runs stages followed by a sort and a facet that returns the
// requested slice and the total count of the same matched set, so both come
// from one query.
func aggregatePage[T any](ctx context.Context, coll *mongo.Collection, stages mongo.Pipeline, order bson.D, p PageRequest) (Page[T], error) {
	if err := p.validate(); err != nil {
		return Page[T]{}, err
	}

	pipeline := make(mongo.Pipeline, 0, len(stages)+2)
	pipeline = append(pipeline, stages...)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: order}},
		bson.D{{Key: "$facet", Value: bson.D{
			{Key: "data", Value: bson.A{
				bson.D{{Key: "$skip", Value: p.skip()}},
				bson.D{{Key: "$limit", Value: int64(p.Size)}},
			}},
			{Key: "metadata", Value: bson.A{
				bson.D{{Key: "$count", Value: "total"}},
			}},
		}}},
	)

	cursor, err := coll.Aggregate(ctx, pipeline, options.Aggregate().SetAllowDiskUse(true))
	if err != nil {
		return Page[T]{}, fmt.Errorf("aggregate %s: %w", coll.Name(), err)
	}

	var results []facetResult[T]
	if err := cursor.All(ctx, &results); err != nil {
		return Page[T]{}, fmt.Errorf("decode %s page: %w", coll.Name(), err)
	}

	var (
		content []T
		total   int64
	)
	if len(results) > 0 {
		content = results[0].Data
		if len(results[0].Metadata) > 0 {
			total = results[0].Metadata[0].Total
		}
	}

	return newPage(content, total, p), nil
}

// findPage pages a plain filter. The count and the find use the same filter
// value.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.D, order bson.D, p PageRequest) (Page[T], error) {
	if err := p.validate(); err != nil {
		return Page[T]{}, err
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return Page[T]{}, fmt.Errorf("count %s: %w", coll.Name(), err)
	}

	opts := options.Find().
		SetSort(order).
		SetSkip(p.skip()).
		SetLimit(int64(p.Size))
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return Page[T]{}, fmt.Errorf("find %s: %w", coll.Name(), err)
	}

	var content []T
	if err := cursor.All(ctx, &content); err != nil {
		return Page[T]{}, fmt.Errorf("decode %s page: %w", coll.Name(), err)
	}

	return newPage(content, total, p), nil
}
