package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"careerlog-backend/apperr"
	"careerlog-backend/models"
)

// AlertStore is the persistence surface the alert service needs, satisfied by
// repository.AlertRepository.
type AlertStore interface {
	Create(ctx context.Context, alert *models.Alert) error
	Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Alert, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Update(ctx context.Context, id bson.ObjectID, userID string, fields bson.M) (int64, time.Time, error)
	Delete(ctx context.Context, id bson.ObjectID, userID string) (int64, error)
}

// AlertService handles business logic for scheduled reminders.
type AlertService struct {
	alerts AlertStore
}

// NewAlertService creates a new alert service.
func NewAlertService(alerts AlertStore) *AlertService {
	return &AlertService{alerts: alerts}
}

// CreateAlertRequest is the payload for creating an alert.
type CreateAlertRequest struct {
	ScheduledAlert time.Time `json:"scheduledAlert" binding:"required"`
	SmsOrEmail     string    `json:"smsOrEmail" binding:"required,oneof=sms email"`
	Message        string    `json:"message" binding:"required"`
}

// UpdateAlertRequest is a partial alert update; nil fields are left
// unchanged.
type UpdateAlertRequest struct {
	ScheduledAlert *time.Time `json:"scheduledAlert"`
	SmsOrEmail     *string    `json:"smsOrEmail" binding:"omitempty,oneof=sms email"`
	Message        *string    `json:"message"`
}

// CreateAlertResult is returned from Create.
type CreateAlertResult struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AlertListResult is one page of alerts with pagination metadata.
type AlertListResult struct {
	Items []models.Alert  `json:"items"`
	Meta  models.PageMeta `json:"meta"`
}

// Create stores a new alert owned by the caller. LastAlertAt starts nil.
func (s *AlertService) Create(ctx context.Context, userID string, req CreateAlertRequest) (*CreateAlertResult, error) {
	now := time.Now().UTC()
	alert := &models.Alert{
		UserID:         userID,
		ScheduledAlert: req.ScheduledAlert,
		SmsOrEmail:     req.SmsOrEmail,
		Message:        req.Message,
		LastAlertAt:    nil,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}

	return &CreateAlertResult{ID: alert.ID.Hex(), CreatedAt: now, UpdatedAt: now}, nil
}

// List returns one owner-scoped page of alerts.
func (s *AlertService) List(ctx context.Context, userID string, params ListParams) (*AlertListResult, error) {
	if err := validateSort(params.SortBy, alertFilterFields); err != nil {
		return nil, err
	}

	filter, err := parseFilters(params.Filters, userID, alertFilterFields)
	if err != nil {
		return nil, err
	}

	items, err := s.alerts.Find(ctx, filter, params.sortDoc(), params.skip(), int64(params.PageSize))
	if err != nil {
		return nil, err
	}

	total, err := s.alerts.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &AlertListResult{
		Items: items,
		Meta:  models.NewPageMeta(params.Page, params.PageSize, total),
	}, nil
}

// Update applies a partial update scoped to (id, owner) and returns the new
// updatedAt.
func (s *AlertService) Update(ctx context.Context, userID, id string, req UpdateAlertRequest) (time.Time, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return time.Time{}, apperr.NotFound("Invalid alert id")
	}

	fields := alertUpdateFields(req)
	if len(fields) == 0 {
		return time.Time{}, apperr.Validation("No fields provided for update")
	}

	matched, updatedAt, err := s.alerts.Update(ctx, objectID, userID, fields)
	if err != nil {
		return time.Time{}, err
	}
	if matched == 0 {
		return time.Time{}, apperr.NotFound("Alert not found")
	}

	return updatedAt, nil
}

// Delete removes an alert scoped to (id, owner).
func (s *AlertService) Delete(ctx context.Context, userID, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Invalid alert id")
	}

	deleted, err := s.alerts.Delete(ctx, objectID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperr.NotFound("Alert not found")
	}

	return nil
}

func alertUpdateFields(req UpdateAlertRequest) bson.M {
	fields := bson.M{}
	if req.ScheduledAlert != nil {
		fields["scheduledAlert"] = *req.ScheduledAlert
	}
	if req.SmsOrEmail != nil {
		fields["smsOrEmail"] = *req.SmsOrEmail
	}
	if req.Message != nil {
		fields["message"] = *req.Message
	}
	return fields
}
