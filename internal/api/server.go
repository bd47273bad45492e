package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/aalug/go-gin-job-board/internal/config"
	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/aalug/go-gin-job-board/internal/esearch"
	"github.com/aalug/go-gin-job-board/internal/service"
	"github.com/aalug/go-gin-job-board/internal/worker"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const baseUrl = "/api/v1"

// Server serves HTTP requests for the job board
type Server struct {
	config          config.Config
	service         *service.Service
	esClient        esearch.ESearchClient
	taskDistributor worker.TaskDistributor
	router          *gin.Engine
}

// NewServer creates a new HTTP server and setups routing
func NewServer(
	config config.Config,
	store db.Store,
	client esearch.ESearchClient,
	taskDistributor worker.TaskDistributor,
) (*Server, error) {
	server := &Server{
		config:          config,
		service:         service.New(store),
		esClient:        client,
		taskDistributor: taskDistributor,
	}

	server.setupRouter()

	return server, nil
}

// setupRouter sets up the HTTP routing
func (server *Server) setupRouter() {
	router := gin.Default()
	// handlers pass the gin context on, so it must carry the request deadline
	router.ContextWithFallback = true

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))
	router.Use(metricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routerV1 := router.Group(baseUrl)
	routerV1.Use(timeoutMiddleware(server.config.QueryTimeout))

	// === jobs ===
	routerV1.GET("/jobs", server.listJobs)
	routerV1.GET("/jobs/search", server.searchJobs)
	routerV1.GET("/jobs/:id", server.getJob)
	routerV1.PATCH("/jobs/:id/status", server.updateJobStatus)
	routerV1.GET("/jobs/:id/applications", server.listApplicantsForJob)
	routerV1.GET("/companies/:id/jobs", server.listJobsByCompany)

	// === chat ===
	routerV1.GET("/users/:id/conversations", server.listConversations)
	routerV1.PATCH("/users/:id/conversations/:partner_id/read", server.markConversationRead)
	routerV1.GET("/users/:id/chat/:partner_id", server.listChatHistory)
	routerV1.POST("/users/:id/chat/:partner_id", server.sendMessage)

	// === job applications ===
	routerV1.GET("/users/:id/applications", server.listApplicationsForJobSeeker)
	routerV1.GET("/users/:id/applications/stats", server.getApplicationStats)
	routerV1.PATCH("/applications/:id/status", server.updateApplicationStatus)

	// === stats ===
	routerV1.GET("/stats", server.getSystemStats)

	// === users ===
	routerV1.GET("/users/search", server.searchUsers)
	routerV1.PATCH("/users/:id/status", server.updateUserStatus)
	routerV1.GET("/profiles/search", server.searchProfiles)

	server.router = router
}

// Start runs the HTTP server on a given address
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func errorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}

// errorStatus maps an error returned by the service to a response code
func errorStatus(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrInvalidCriteria):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
