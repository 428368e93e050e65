package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"github.com/LeakhenaSok/StudioFlow/internal/repository"
	"github.com/LeakhenaSok/StudioFlow/internal/util"
	"github.com/gin-gonic/gin"
)

type CalendarEventController struct {
	*baseController
}

const (
	ErrEventIdRequired = "event ID is required"
	ErrInvalidDate     = "date must be a valid date in YYYY-MM-DD format"
)

// GetEvents returns the shared calendar. Every authenticated caller sees
// every event; mutation is what stays restricted.
func (ec CalendarEventController) GetEvents(ctx *gin.Context) {
	type Request struct {
		ProjectID string               `form:"projectId"`
		From      string               `form:"from"`
		To        string               `form:"to"`
		Types     []constant.EventType `form:"type" binding:"omitempty,dive,oneof=meeting photoshoot design deadline other"`
	}
	var query Request

	if err := ctx.ShouldBindQuery(&query); err != nil {
		ec.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	filter := repository.CalendarEventFilter{
		ProjectID: query.ProjectID,
		Types:     query.Types,
	}

	if query.From != "" {
		from, err := time.Parse(time.DateOnly, query.From)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid from date", util.GenerateErrorMessages(errors.New(ErrInvalidDate), "from"), nil)
			return
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := time.Parse(time.DateOnly, query.To)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid to date", util.GenerateErrorMessages(errors.New(ErrInvalidDate), "to"), nil)
			return
		}
		filter.To = &to
	}

	events, err := ec.app.Repository.CalendarEvent.List(ctx, nil, filter)
	if err != nil {
		ec.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list events", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"events": events,
	})
}

func (ec CalendarEventController) CreateEvent(ctx *gin.Context) {
	type Request struct {
		Title       string             `json:"title" form:"title" binding:"required,strNotEmpty,cmax=100"`
		Description string             `json:"description" form:"description"`
		Date        string             `json:"date" form:"date" binding:"required"`
		Time        string             `json:"time" form:"time" binding:"required,cmax=8"`
		EventType   constant.EventType `json:"eventType" form:"eventType" binding:"required,oneof=meeting photoshoot design deadline other"`
		ProjectID   *string            `json:"projectId" form:"projectId"`
	}
	var body Request

	authUser, err := ec.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		ec.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	date, err := time.Parse(time.DateOnly, body.Date)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid date", util.GenerateErrorMessages(errors.New(ErrInvalidDate), "date"), nil)
		return
	}

	event := model.CalendarEvent{
		Title:       body.Title,
		Description: body.Description,
		Date:        date,
		Time:        body.Time,
		EventType:   body.EventType,
		CreatedByID: authUser.ID,
		ProjectID:   body.ProjectID,
	}

	created, err := ec.app.Repository.CalendarEvent.Create(ctx, nil, &event)
	if err != nil {
		ec.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to create event", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"event": created,
	})
}

func (ec CalendarEventController) UpdateEvent(ctx *gin.Context) {
	type Request struct {
		Title       *string             `json:"title" form:"title" binding:"omitempty,strNotEmpty,cmax=100"`
		Description *string             `json:"description" form:"description"`
		Date        *string             `json:"date" form:"date"`
		Time        *string             `json:"time" form:"time" binding:"omitempty,cmax=8"`
		EventType   *constant.EventType `json:"eventType" form:"eventType" binding:"omitempty,oneof=meeting photoshoot design deadline other"`
		ProjectID   *string             `json:"projectId" form:"projectId"`
	}
	var body Request

	authUser, err := ec.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	eventId := ctx.Param("eventId")
	if eventId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Event id is required", util.GenerateErrorMessages(errors.New(ErrEventIdRequired), "eventId"), nil)
		return
	}

	event, err := ec.app.Repository.CalendarEvent.GetById(ctx, nil, eventId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Event not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if !ec.app.Policy.CanMutateEvent(ctx, event.CreatedByID, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only the event creator or an admin may update this event", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		ec.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	patch := repository.CalendarEventUpdate{
		Title:       body.Title,
		Description: body.Description,
		Time:        body.Time,
		EventType:   body.EventType,
		ProjectID:   body.ProjectID,
	}

	if body.Date != nil {
		date, err := time.Parse(time.DateOnly, *body.Date)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid date", util.GenerateErrorMessages(errors.New(ErrInvalidDate), "date"), nil)
			return
		}
		patch.Date = &date
	}

	if err := ec.app.Repository.CalendarEvent.Update(ctx, nil, eventId, patch); err != nil {
		ec.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to update event", util.GenerateErrorMessages(err), nil)
		return
	}

	updated, err := ec.app.Repository.CalendarEvent.GetById(ctx, nil, eventId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Event not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"event": updated,
	})
}

func (ec CalendarEventController) DeleteEvent(ctx *gin.Context) {
	authUser, err := ec.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	eventId := ctx.Param("eventId")
	if eventId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Event id is required", util.GenerateErrorMessages(errors.New(ErrEventIdRequired), "eventId"), nil)
		return
	}

	event, err := ec.app.Repository.CalendarEvent.GetById(ctx, nil, eventId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Event not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if !ec.app.Policy.CanMutateEvent(ctx, event.CreatedByID, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only the event creator or an admin may delete this event", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	if err := ec.app.Repository.CalendarEvent.Delete(ctx, nil, eventId); err != nil {
		ec.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to delete event", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
