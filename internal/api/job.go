package api

import (
	"net/http"
	"time"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/aalug/go-gin-job-board/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

type listJobsRequest struct {
	Keyword       string   `form:"keyword"`
	LocationCity  string   `form:"location_city"`
	CategoryName  string   `form:"category_name"`
	MinSalary     *float64 `form:"min_salary" binding:"omitempty,min=0"`
	MaxSalary     *float64 `form:"max_salary" binding:"omitempty,min=0"`
	MinExperience *int     `form:"min_experience" binding:"omitempty,min=0"`
	JobType       string   `form:"job_type"`
	Status        string   `form:"status"`
	Page          int      `form:"page" binding:"min=0"`
	Size          int      `form:"size" binding:"omitempty,min=1,max=100"`
	SortBy        string   `form:"sort_by"`
	SortDir       string   `form:"sort_dir"`
}

// @Schemes
// @Summary List jobs
// @Description Filter, sort and page through jobs. Every filter is optional.
// @Tags jobs
// @Param keyword query string false "Matches title and description, case insensitive"
// @Param location_city query string false "Matches the city of the job location"
// @Param category_name query string false "Matches the name of the job category"
// @Param min_salary query number false "Jobs paying at least this much"
// @Param max_salary query number false "Jobs paying at most this much"
// @Param min_experience query integer false "Experience of the candidate in years"
// @Param job_type query string false "FULL_TIME, PART_TIME, CONTRACT, INTERNSHIP or FREELANCE"
// @Param status query string false "OPEN, CLOSED or DRAFT"
// @Param page query integer false "Page number, starting at 0"
// @Param size query integer false "Page size, 20 by default"
// @Produce json
// @Success 200 {object} db.Page[service.JobDetails]
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /jobs [get]
// listJobs handles filtering and listing jobs
func (server *Server) listJobs(ctx *gin.Context) {
	var request listJobsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	jobType, err := optionalEnum(request.JobType,
		db.JobTypeFullTime, db.JobTypePartTime, db.JobTypeContract, db.JobTypeInternship, db.JobTypeFreelance)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	status, err := optionalEnum(request.Status, db.JobStatusOpen, db.JobStatusClosed, db.JobStatusDraft)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	criteria := db.JobSearchCriteria{
		Keyword:       request.Keyword,
		LocationCity:  request.LocationCity,
		CategoryName:  request.CategoryName,
		MinSalary:     request.MinSalary,
		MaxSalary:     request.MaxSalary,
		MinExperience: request.MinExperience,
		JobType:       jobType,
		Status:        status,
	}

	jobs, err := server.service.SearchJobs(
		ctx,
		criteria,
		sortBy(request.SortBy, request.SortDir),
		pageRequest(request.Page, request.Size),
	)
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, jobs)
}

// @Schemes
// @Summary Get job
// @Description Get the job with its company, location and category
// @Tags jobs
// @Param id path string true "Job ID"
// @Produce json
// @Success 200 {object} service.JobDetails
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /jobs/{id} [get]
func (server *Server) getJob(ctx *gin.Context) {
	var request idURI
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := validateIDs(request.ID); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	job, err := server.service.GetJob(ctx, request.ID)
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// @Schemes
// @Summary Update job status
// @Description Set the status of a job. The search index follows asynchronously.
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @param UpdateStatusRequest body updateStatusRequest true "New status"
// @Success 200 {object} db.Job
// @Failure 400 {object} ErrorResponse "Invalid ID or status"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /jobs/{id}/status [patch]
func (server *Server) updateJobStatus(ctx *gin.Context) {
	var uri idURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := validateIDs(uri.ID); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var request updateStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	status, err := optionalEnum(request.Status, db.JobStatusOpen, db.JobStatusClosed, db.JobStatusDraft)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	job, err := server.service.UpdateJobStatus(ctx, uri.ID, *status)
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	// the status is stored, a failed enqueue only delays the search index
	opts := []asynq.Option{
		asynq.MaxRetry(10),
		asynq.ProcessIn(time.Second),
		asynq.Queue(worker.QueueCritical),
	}
	err = server.taskDistributor.DistributeTaskIndexJob(ctx, &worker.PayloadIndexJob{JobID: job.ID}, opts...)
	if err != nil {
		log.Error().Err(err).Str("job_id", job.ID).Msg("cannot distribute index job task")
	}

	ctx.JSON(http.StatusOK, job)
}

type listJobsByCompanyRequest struct {
	Page    int    `form:"page" binding:"min=0"`
	Size    int    `form:"size" binding:"omitempty,min=1,max=100"`
	SortBy  string `form:"sort_by"`
	SortDir string `form:"sort_dir"`
}

// @Schemes
// @Summary List jobs by company
// @Description List the jobs of one company
// @Tags jobs
// @Param id path string true "Company ID"
// @Param page query integer false "Page number, starting at 0"
// @Param size query integer false "Page size, 20 by default"
// @Produce json
// @Success 200 {object} db.Page[service.JobDetails]
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /companies/{id}/jobs [get]
func (server *Server) listJobsByCompany(ctx *gin.Context) {
	var uri idURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := validateIDs(uri.ID); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var request listJobsByCompanyRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	jobs, err := server.service.ListJobsByCompany(
		ctx,
		uri.ID,
		sortBy(request.SortBy, request.SortDir),
		pageRequest(request.Page, request.Size),
	)
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, jobs)
}

type searchJobsRequest struct {
	Search string `form:"search" binding:"required"`
	Page   int    `form:"page" binding:"min=0"`
	Size   int    `form:"size" binding:"omitempty,min=1,max=100"`
}

// @Schemes
// @Summary Search jobs
// @Description Full text search over open jobs with elasticsearch.
// @Tags jobs
// @Param search query string true "Search query"
// @Param page query integer false "Page number, starting at 0"
// @Param size query integer false "Page size, 20 by default"
// @Produce json
// @Success 200 {object} db.Page[esearch.JobDocument]
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /jobs/search [get]
// searchJobs handles searching for jobs with elasticsearch.
func (server *Server) searchJobs(ctx *gin.Context) {
	var request searchJobsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	jobs, err := server.esClient.SearchJobs(ctx, request.Search, pageRequest(request.Page, request.Size))
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, jobs)
}
