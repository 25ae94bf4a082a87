package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/eventra/internal/app/models/dto"
	"github.com/emre/eventra/internal/app/services"
	"github.com/emre/eventra/internal/middleware"
)

// EventManagerController handles event manager profile operations
type EventManagerController struct {
	service services.EventManagerService
	logger  zerolog.Logger
}

// NewEventManagerController creates a new EventManagerController
func NewEventManagerController(service services.EventManagerService, logger zerolog.Logger) *EventManagerController {
	return &EventManagerController{
		service: service,
		logger:  logger,
	}
}

func callerID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return 0, false
	}
	return userID, true
}

// CreateProfile completes the caller's event manager profile
// @Summary Create the event manager profile
// @Tags event-managers
// @Param request body dto.CreateEventManagerRequest true "Profile information"
// @Success 201 {object} dto.APIResponse
// @Failure 409 {object} dto.ErrorResponse "Profile already exists"
// @Router /event-managers [post]
func (c *EventManagerController) CreateProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateEventManagerRequest
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

// GetProfile returns an event manager profile by user ID
// @Summary Get an event manager profile
// @Tags event-managers
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse
// @Router /event-managers/{userId} [get]
func (c *EventManagerController) GetProfile(ctx *gin.Context) {
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
// @Summary Update the event manager profile
// @Tags event-managers
// @Param request body dto.UpdateEventManagerRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Router /event-managers [patch]
func (c *EventManagerController) UpdateProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEventManagerRequest
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

// DeleteProfile removes the caller's event manager profile
// @Summary Delete the event manager profile
// @Tags event-managers
// @Success 200 {object} dto.APIResponse
// @Router /event-managers [delete]
func (c *EventManagerController) DeleteProfile(ctx *gin.Context) {
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

// UploadProfilePicture stores a new profile picture for the caller
// @Summary Upload a profile picture
// @Tags event-managers
// @Accept multipart/form-data
// @Param file formData file true "Image file"
// @Success 200 {object} dto.APIResponse{data=dto.ProfilePictureResponse}
// @Router /event-managers/profile-picture [post]
func (c *EventManagerController) UploadProfilePicture(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A file upload is required").WithField("file")))
		return
	}

	path, err := c.service.UploadProfilePicture(ctx.Request.Context(), userID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ProfilePictureResponse{
		ProfilePicture: path,
		FileURL:        path,
	}))
}
