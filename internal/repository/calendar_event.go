package repository

import (
	"context"
	"time"

	constant "github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"gorm.io/gorm"
)

type CalendarEventRepository struct {
	*baseRepository
}

type CalendarEventFilter struct {
	ProjectID string
	From      *time.Time
	To        *time.Time
	Types     []constant.EventType
}

// List returns events for the shared calendar. Visibility is global by
// policy, so there is no caller filter here.
func (ce CalendarEventRepository) List(ctx context.Context, tx *gorm.DB, filter CalendarEventFilter) ([]model.CalendarEvent, error) {
	ce.logger.Debug("List calendar events")

	db := ce.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.CalendarEvent{}).Preload("CreatedBy")

	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	if len(filter.Types) > 0 {
		query = query.Where("event_type IN (?)", filter.Types)
	}

	var events []model.CalendarEvent
	if err := query.Order("date ASC, time ASC").Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (ce *CalendarEventRepository) Create(ctx context.Context, tx *gorm.DB, event *model.CalendarEvent) (*model.CalendarEvent, error) {
	ce.logger.Debugf("Create calendar event: %s \n", event.Title)

	db := ce.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.CalendarEvent{}).Create(event).Error; err != nil {
		return nil, err
	}

	return event, nil
}

func (ce CalendarEventRepository) GetById(ctx context.Context, tx *gorm.DB, eventID string) (*model.CalendarEvent, error) {
	ce.logger.Debugf("Get calendar event by id: %s \n", eventID)

	db := ce.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var event model.CalendarEvent
	if err := db.WithContext(ctx).Model(&model.CalendarEvent{}).
		Where(&model.CalendarEvent{BaseModel: model.BaseModel{ID: eventID}}).
		First(&event).Error; err != nil {
		return nil, err
	}

	return &event, nil
}

type CalendarEventUpdate struct {
	Title       *string
	Description *string
	Date        *time.Time
	Time        *string
	EventType   *constant.EventType
	ProjectID   *string
}

func (ce *CalendarEventRepository) Update(ctx context.Context, tx *gorm.DB, eventID string, patch CalendarEventUpdate) error {
	ce.logger.Debugf("Update calendar event: %s \n", eventID)

	db := ce.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	fields := map[string]any{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}
	if patch.Time != nil {
		fields["time"] = *patch.Time
	}
	if patch.EventType != nil {
		fields["event_type"] = *patch.EventType
	}
	if patch.ProjectID != nil {
		fields["project_id"] = *patch.ProjectID
	}

	if len(fields) == 0 {
		return nil
	}

	result := db.WithContext(ctx).Model(&model.CalendarEvent{}).
		Where("id = ?", eventID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (ce *CalendarEventRepository) Delete(ctx context.Context, tx *gorm.DB, eventID string) error {
	ce.logger.Debugf("Delete calendar event: %s \n", eventID)

	db := ce.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", eventID).Delete(&model.CalendarEvent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
