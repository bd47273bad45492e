package api

import (
	"net/http"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/gin-gonic/gin"
)

type searchUsersRequest struct {
	Keyword string `form:"keyword"`
	Role    string `form:"role"`
	Status  string `form:"status"`
	Page    int    `form:"page" binding:"min=0"`
	Size    int    `form:"size" binding:"omitempty,min=1,max=100"`
	SortBy  string `form:"sort_by"`
	SortDir string `form:"sort_dir"`
}

// @Schemes
// @Summary Search users
// @Description Search users by name or email, optionally by role and status
// @Tags users
// @Param keyword query string false "Matches name and email, case insensitive"
// @Param role query string false "Exact role"
// @Param status query string false "ACTIVE, INACTIVE or BANNED"
// @Produce json
// @Success 200 {object} db.Page[db.User]
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /users/search [get]
func (server *Server) searchUsers(ctx *gin.Context) {
	var request searchUsersRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	status, err := optionalEnum(request.Status, db.UserStatusActive, db.UserStatusInactive, db.UserStatusBanned)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	params := db.SearchUsersParams{
		Keyword: request.Keyword,
		Role:    request.Role,
		Status:  status,
	}

	users, err := server.service.SearchUsers(
		ctx,
		params,
		sortBy(request.SortBy, request.SortDir),
		pageRequest(request.Page, request.Size),
	)
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// @Schemes
// @Summary Update user status
// @Description Activate, deactivate or ban a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @param UpdateStatusRequest body updateStatusRequest true "New status"
// @Success 200 {object} db.User
// @Failure 400 {object} ErrorResponse "Invalid ID or status"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /users/{id}/status [patch]
func (server *Server) updateUserStatus(ctx *gin.Context) {
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
	status, err := optionalEnum(request.Status, db.UserStatusActive, db.UserStatusInactive, db.UserStatusBanned)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	user, err := server.service.UpdateUserStatus(ctx, uri.ID, *status)
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

type searchProfilesRequest struct {
	Keyword string `form:"keyword"`
	Page    int    `form:"page" binding:"min=0"`
	Size    int    `form:"size" binding:"omitempty,min=1,max=100"`
	SortBy  string `form:"sort_by"`
	SortDir string `form:"sort_dir"`
}

// @Schemes
// @Summary Search job seeker profiles
// @Description Search profiles by full name or professional title
// @Tags users
// @Param keyword query string false "Matches full name and professional title, case insensitive"
// @Produce json
// @Success 200 {object} db.Page[db.JobSeekerProfile]
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /profiles/search [get]
func (server *Server) searchProfiles(ctx *gin.Context) {
	var request searchProfilesRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	profiles, err := server.service.SearchProfiles(
		ctx,
		request.Keyword,
		sortBy(request.SortBy, request.SortDir),
		pageRequest(request.Page, request.Size),
	)
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, profiles)
}
