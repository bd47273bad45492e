package api

import (
	"fmt"
	"strings"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/aalug/go-gin-job-board/pkg/validation"
)

// idURI binds the :id path parameter
type idURI struct {
	ID string `uri:"id" binding:"required"`
}

// conversationURI binds a participant and the other side of a conversation
type conversationURI struct {
	ID        string `uri:"id" binding:"required"`
	PartnerID string `uri:"partner_id" binding:"required"`
}

type pageQuery struct {
	Page int `form:"page" binding:"min=0"`
	Size int `form:"size" binding:"omitempty,min=1,max=100"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// pageRequest turns the page query parameters into a db.PageRequest.
// A missing size means the default page size.
func pageRequest(page, size int) db.PageRequest {
	if size == 0 {
		size = db.DefaultPageSize
	}
	return db.PageRequest{Page: page, Size: size}
}

func sortBy(field, direction string) db.Sort {
	return db.Sort{
		Field:     field,
		Direction: db.SortDirection(strings.ToUpper(direction)),
	}
}

// validateIDs checks that every value is a record ID
func validateIDs(ids ...string) error {
	for _, id := range ids {
		if err := validation.ValidateID(id); err != nil {
			return err
		}
	}
	return nil
}

// optionalEnum converts a non-empty query value to a pointer to an enum
// value, checking it against allowed
func optionalEnum[T ~string](value string, allowed ...T) (*T, error) {
	if value == "" {
		return nil, nil
	}
	v := T(strings.ToUpper(value))
	if err := validation.ValidateOneOf(v, allowed...); err != nil {
		return nil, fmt.Errorf("%w: %v", db.ErrInvalidCriteria, err)
	}
	return &v, nil
}
