package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/eventra/internal/app/models/dto"
	"github.com/emre/eventra/internal/app/services"
	"github.com/emre/eventra/internal/middleware"
)

// VolunteerController handles volunteer profile operations
type VolunteerController struct {
	service services.VolunteerService
	logger  zerolog.Logger
}

// NewVolunteerController creates a new VolunteerController
func NewVolunteerController(service services.VolunteerService, logger zerolog.Logger) *VolunteerController {
	return &VolunteerController{
		service: service,
		logger:  logger,
	}
}

// CreateProfile completes the caller's volunteer profile
// @Summary Create the volunteer profile
// @Tags volunteers
// @Param request body dto.CreateVolunteerRequest true "Profile information"
// @Success 201 {object} dto.APIResponse
// @Failure 409 {object} dto.ErrorResponse "Profile already exists"
// @Router /volunteers [post]
func (c *VolunteerController) CreateProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	profile, err := c.service.CreateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(profile))
}

// GetProfile returns a volunteer profile by user ID
// @Summary Get a volunteer profile
// @Tags volunteers
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse
// @Router /volunteers/{userId} [get]
func (c *VolunteerController) GetProfile(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	profile, err := c.service.GetProfileByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateProfile applies a merge-patch to the caller's profile
// @Summary Update the volunteer profile
// @Tags volunteers
// @Param request body dto.UpdateVolunteerRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Router /volunteers [patch]
func (c *VolunteerController) UpdateProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	profile, err := c.service.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// DeleteProfile removes the caller's volunteer profile
// @Summary Delete the volunteer profile
// @Tags volunteers
// @Success 200 {object} dto.APIResponse
// @Router /volunteers [delete]
func (c *VolunteerController) DeleteProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteProfile(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Profile deleted"))
}
