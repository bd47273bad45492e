package db

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestPageRequestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		page    PageRequest
		wantErr bool
	}{
		{name: "FirstPage", page: PageRequest{Page: 0, Size: 10}},
		{name: "MaxSize", page: PageRequest{Page: 3, Size: MaxPageSize}},
		{name: "HugePage", page: PageRequest{Page: math.MaxInt64 / 50, Size: MaxPageSize}},
		{name: "NegativePage", page: PageRequest{Page: -1, Size: 10}, wantErr: true},
		{name: "ZeroSize", page: PageRequest{Page: 0, Size: 0}, wantErr: true},
		{name: "SizeTooLarge", page: PageRequest{Page: 0, Size: MaxPageSize + 1}, wantErr: true},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			err := tc.page.validate()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidCriteria)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPageRequestSkip(t *testing.T) {
	require.Equal(t, int64(0), PageRequest{Page: 0, Size: 20}.skip())
	require.Equal(t, int64(60), PageRequest{Page: 3, Size: 20}.skip())
	require.Equal(t, int64(math.MaxInt64), PageRequest{Page: math.MaxInt64 / 50, Size: MaxPageSize}.skip())
	require.Equal(t, int64(math.MaxInt64), PageRequest{Page: math.MaxInt64, Size: 2}.skip())
	require.Equal(t, int64(math.MaxInt64-1), PageRequest{Page: math.MaxInt64 / 2, Size: 2}.skip())
}

func TestNewPage(t *testing.T) {
	page := newPage[Job](nil, 0, PageRequest{Page: 0, Size: 10})
	require.NotNil(t, page.Content)
	require.Empty(t, page.Content)
	require.Zero(t, page.TotalPages)

	page = newPage([]Job{{ID: "a"}}, 21, PageRequest{Page: 2, Size: 10})
	require.Len(t, page.Content, 1)
	require.Equal(t, int64(21), page.TotalElements)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, 2, page.PageIndex)
	require.Equal(t, 10, page.PageSize)
}

func TestSortableOrder(t *testing.T) {
	order, err := jobSorts.order(Sort{})
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}, order)

	order, err = jobSorts.order(Sort{Field: "salary_min", Direction: SortAsc})
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "salary_min", Value: 1}, {Key: "_id", Value: 1}}, order)

	order, err = applicationSorts.order(Sort{})
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "applied_at", Value: -1}, {Key: "_id", Value: -1}}, order)

	_, err = jobSorts.order(Sort{Field: "password"})
	require.ErrorIs(t, err, ErrInvalidCriteria)

	_, err = jobSorts.order(Sort{Field: "title", Direction: "SIDEWAYS"})
	require.ErrorIs(t, err, ErrInvalidCriteria)
}
