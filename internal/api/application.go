package api

import (
	"net/http"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/gin-gonic/gin"
)

var applicationStatuses = []db.ApplicationStatus{
	db.ApplicationStatusPending,
	db.ApplicationStatusInterviewing,
	db.ApplicationStatusOffered,
	db.ApplicationStatusRejected,
	db.ApplicationStatusCancelled,
}

type listApplicationsRequest struct {
	Status  string `form:"status"`
	Page    int    `form:"page" binding:"min=0"`
	Size    int    `form:"size" binding:"omitempty,min=1,max=100"`
	SortBy  string `form:"sort_by"`
	SortDir string `form:"sort_dir"`
}

// @Schemes
// @Summary List applications of a job seeker
// @Description List the applications of a job seeker with the job and company of each
// @Tags job applications
// @Param id path string true "Job seeker ID"
// @Param status query string false "Only applications with this status"
// @Param page query integer false "Page number, starting at 0"
// @Param size query integer false "Page size, 20 by default"
// @Produce json
// @Success 200 {object} db.Page[service.ApplicationDetails]
// @Failure 400 {object} ErrorResponse "Invalid ID or query"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /users/{id}/applications [get]
func (server *Server) listApplicationsForJobSeeker(ctx *gin.Context) {
	var uri idURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := validateIDs(uri.ID); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var request listApplicationsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	status, err := optionalEnum(request.Status, applicationStatuses...)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	applications, err := server.service.ListApplicationsForJobSeeker(
		ctx,
		uri.ID,
		status,
		sortBy(request.SortBy, request.SortDir),
		pageRequest(request.Page, request.Size),
	)
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// @Schemes
// @Summary List applicants for a job
// @Description List the applications for a job with the user who applied
// @Tags job applications
// @Param id path string true "Job ID"
// @Param status query string false "Only applications with this status"
// @Produce json
// @Success 200 {object} db.Page[service.ApplicantDetails]
// @Failure 400 {object} ErrorResponse "Invalid ID or query"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /jobs/{id}/applications [get]
func (server *Server) listApplicantsForJob(ctx *gin.Context) {
	var uri idURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := validateIDs(uri.ID); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var request listApplicationsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	status, err := optionalEnum(request.Status, applicationStatuses...)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	applicants, err := server.service.ListApplicantsForJob(
		ctx,
		uri.ID,
		status,
		sortBy(request.SortBy, request.SortDir),
		pageRequest(request.Page, request.Size),
	)
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, applicants)
}

// @Schemes
// @Summary Application stats
// @Description Count the applications of a job seeker per status
// @Tags job applications
// @Param id path string true "Job seeker ID"
// @Produce json
// @Success 200 {object} db.ApplicationStats
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /users/{id}/applications/stats [get]
func (server *Server) getApplicationStats(ctx *gin.Context) {
	var uri idURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := validateIDs(uri.ID); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	stats, err := server.service.GetApplicationStats(ctx, uri.ID)
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// @Schemes
// @Summary System stats
// @Description Count the users, jobs and companies of the board
// @Tags stats
// @Produce json
// @Success 200 {object} db.SystemStats
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /stats [get]
func (server *Server) getSystemStats(ctx *gin.Context) {
	stats, err := server.service.GetSystemStats(ctx)
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// @Schemes
// @Summary Update application status
// @Description Move an application to another status
// @Tags job applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @param UpdateStatusRequest body updateStatusRequest true "New status"
// @Success 200 {object} db.Application
// @Failure 400 {object} ErrorResponse "Invalid ID or status"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /applications/{id}/status [patch]
func (server *Server) updateApplicationStatus(ctx *gin.Context) {
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
	status, err := optionalEnum(request.Status, applicationStatuses...)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	application, err := server.service.UpdateApplicationStatus(ctx, uri.ID, *status)
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, application)
}
