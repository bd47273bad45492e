package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestErrorStatus(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{name: "Not Found", err: fmt.Errorf("update job: %w", db.ErrNotFound), code: http.StatusNotFound},
		{name: "Invalid Criteria", err: fmt.Errorf("%w: bad size", db.ErrInvalidCriteria), code: http.StatusBadRequest},
		{name: "Deadline Exceeded", err: fmt.Errorf("search jobs: %w", context.DeadlineExceeded), code: http.StatusGatewayTimeout},
		{name: "Other", err: errors.New("connection reset"), code: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.code, errorStatus(tc.err))
		})
	}
}

func TestTimeoutMiddleware(t *testing.T) {
	router := gin.New()
	router.ContextWithFallback = true
	router.Use(timeoutMiddleware(50 * time.Millisecond))

	var deadline time.Time
	var ok bool
	router.GET("/", func(ctx *gin.Context) {
		deadline, ok = ctx.Deadline()
		ctx.Status(http.StatusNoContent)
	})

	recorder := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
}

func TestOptionalEnum(t *testing.T) {
	status, err := optionalEnum("", db.JobStatusOpen, db.JobStatusClosed)
	require.NoError(t, err)
	require.Nil(t, status)

	status, err = optionalEnum("closed", db.JobStatusOpen, db.JobStatusClosed)
	require.NoError(t, err)
	require.Equal(t, db.JobStatusClosed, *status)

	_, err = optionalEnum("ARCHIVED", db.JobStatusOpen, db.JobStatusClosed)
	require.ErrorIs(t, err, db.ErrInvalidCriteria)
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t, nil, nil, nil)
	recorder := httptest.NewRecorder()

	req, err := http.NewRequest(http.MethodGet, "/metrics", nil)
	require.NoError(t, err)

	server.router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "go_goroutines")
}
