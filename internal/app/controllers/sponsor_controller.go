package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/eventra/internal/app/models/dto"
	"github.com/emre/eventra/internal/app/services"
	"github.com/emre/eventra/internal/middleware"
)

// SponsorController handles sponsor profile operations
type SponsorController struct {
	service services.SponsorService
	logger  zerolog.Logger
}

// NewSponsorController creates a new SponsorController
func NewSponsorController(service services.SponsorService, logger zerolog.Logger) *SponsorController {
	return &SponsorController{
		service: service,
		logger:  logger,
	}
}

// CreateProfile completes the caller's sponsor profile
// @Summary Create the sponsor profile
// @Tags sponsors
// @Param request body dto.CreateSponsorRequest true "Profile information"
// @Success 201 {object} dto.APIResponse
// @Failure 409 {object} dto.ErrorResponse "Profile already exists"
// @Router /sponsors [post]
func (c *SponsorController) CreateProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateSponsorRequest
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

// GetProfile returns a sponsor profile by user ID
// @Summary Get a sponsor profile
// @Tags sponsors
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse
// @Router /sponsors/{userId} [get]
func (c *SponsorController) GetProfile(ctx *gin.Context) {
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
// @Summary Update the sponsor profile
// @Tags sponsors
// @Param request body dto.UpdateSponsorRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Router /sponsors [patch]
func (c *SponsorController) UpdateProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSponsorRequest
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

// DeleteProfile removes the caller's sponsor profile
// @Summary Delete the sponsor profile
// @Tags sponsors
// @Success 200 {object} dto.APIResponse
// @Router /sponsors [delete]
func (c *SponsorController) DeleteProfile(ctx *gin.Context) {
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
