package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/eventra/internal/app/models/dto"
	"github.com/emre/eventra/internal/app/services"
	"github.com/emre/eventra/internal/middleware"
)

// EventController handles event management operations
type EventController struct {
	eventService services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// CreateEvent creates an event owned by the caller
// @Summary Create an event
// @Tags events
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 201 {object} dto.APIResponse
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create event payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	event, err := c.eventService.CreateEvent(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event))
}

// ListEvents returns all events
// @Summary List events
// @Tags events
// @Success 200 {object} dto.APIResponse
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, err := c.eventService.ListEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// ListMyEvents returns the events owned by the caller
// @Summary List the caller's events
// @Tags events
// @Success 200 {object} dto.APIResponse
// @Router /events/mine [get]
func (c *EventController) ListMyEvents(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	events, err := c.eventService.ListMyEvents(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// GetEvent returns a single event with its volunteer team
// @Summary Get an event
// @Tags events
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.GetEventByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// UpdateEvent applies a merge-patch to an owned event
// @Summary Update an event
// @Tags events
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Caller does not own the event"
// @Router /events/{id} [patch]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	event, err := c.eventService.UpdateEvent(ctx.Request.Context(), userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// DeleteEvent removes an owned event
// @Summary Delete an event
// @Tags events
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Event deleted"))
}

// AssignVolunteer adds a volunteer to an owned event's team
// @Summary Assign a volunteer to an event
// @Tags events
// @Param id path int true "Event ID"
// @Param request body dto.AssignVolunteerRequest true "Volunteer to assign"
// @Success 200 {object} dto.APIResponse
// @Failure 409 {object} dto.ErrorResponse "Volunteer already on the team"
// @Router /events/{id}/volunteers [post]
func (c *EventController) AssignVolunteer(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	event, err := c.eventService.AssignVolunteer(ctx.Request.Context(), userID, id, req.VolunteerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// RemoveVolunteer removes a volunteer from an owned event's team
// @Summary Remove a volunteer from an event
// @Tags events
// @Param id path int true "Event ID"
// @Param volunteerId path int true "Volunteer ID"
// @Success 200 {object} dto.APIResponse
// @Router /events/{id}/volunteers/{volunteerId} [delete]
func (c *EventController) RemoveVolunteer(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	volunteerID, ok := parseIDParam(ctx, "volunteerId")
	if !ok {
		return
	}

	if err := c.eventService.RemoveVolunteer(ctx.Request.Context(), userID, id, volunteerID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Volunteer removed from event"))
}
