package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"turftrack/internal/dto"
	"turftrack/internal/entities"
	apperrors "turftrack/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEquipmentRepo struct {
	equipment    *entities.Equipment
	findErr      error
	updatedHours *float64
	updateErr    error
}

func (s *stubEquipmentRepo) GetEquipmentList(ctx context.Context, userID uint64, filter dto.EquipmentFilterDTO) ([]entities.Equipment, error) {
	if s.equipment == nil {
		return nil, nil
	}
	return []entities.Equipment{*s.equipment}, nil
}

func (s *stubEquipmentRepo) FindEquipment(ctx context.Context, userID uint64, id uint64) (*entities.Equipment, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.equipment, nil
}

func (s *stubEquipmentRepo) CreateEquipment(ctx context.Context, userID uint64, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	return nil, errors.New("not implemented")
}

func (s *stubEquipmentRepo) UpdateEquipment(ctx context.Context, userID uint64, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	return nil, errors.New("not implemented")
}

func (s *stubEquipmentRepo) DeleteEquipment(ctx context.Context, userID uint64, id uint64) error {
	return errors.New("not implemented")
}

func (s *stubEquipmentRepo) UpdateCurrentHours(ctx context.Context, id uint64, hours float64) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updatedHours = &hours
	return nil
}

type stubMaintenanceRepo struct {
	created   *entities.MaintenanceLog
	createErr error
}

func (s *stubMaintenanceRepo) GetMaintenanceLogs(ctx context.Context, userID uint64, filter dto.MaintenanceLogFilterDTO) ([]entities.MaintenanceLog, error) {
	return nil, nil
}

func (s *stubMaintenanceRepo) GetLogsForEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceLog, error) {
	return nil, nil
}

func (s *stubMaintenanceRepo) CreateMaintenanceLog(ctx context.Context, userID uint64, date time.Time, payload dto.CreateMaintenanceLogDTO) (*entities.MaintenanceLog, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	log := &entities.MaintenanceLog{
		ID:             1,
		UserID:         userID,
		EquipmentID:    payload.EquipmentID,
		Date:           date,
		Type:           payload.Type,
		Description:    payload.Description,
		Cost:           payload.Cost,
		HoursAtService: payload.HoursAtService,
		PerformedBy:    payload.PerformedBy,
	}
	s.created = log
	return log, nil
}

func (s *stubMaintenanceRepo) DeleteMaintenanceLog(ctx context.Context, userID uint64, id uint64) error {
	return nil
}

func newMaintenanceFixture(currentHours float64) (*MaintenanceService, *stubEquipmentRepo, *stubMaintenanceRepo) {
	equipmentRepo := &stubEquipmentRepo{
		equipment: &entities.Equipment{ID: 7, UserID: 1, Name: "Fairway Master 5000", CurrentHours: currentHours},
	}
	maintenanceRepo := &stubMaintenanceRepo{}
	svc := NewMaintenanceService(maintenanceRepo, equipmentRepo, zap.NewNop())
	return svc, equipmentRepo, maintenanceRepo
}

func logPayload(hours null.Float64) dto.CreateMaintenanceLogDTO {
	return dto.CreateMaintenanceLogDTO{
		EquipmentID:    7,
		Date:           "2024-03-01",
		Type:           "Routine",
		Description:    "Oil change",
		Cost:           85.50,
		HoursAtService: hours,
	}
}

func TestCreateMaintenanceLog_RaisesHoursWhenServiceReadingIsHigher(t *testing.T) {
	svc, equipmentRepo, maintenanceRepo := newMaintenanceFixture(450)

	log, err := svc.CreateMaintenanceLog(context.Background(), 1, logPayload(null.Float64From(500)))

	require.NoError(t, err)
	require.NotNil(t, log)
	assert.NotNil(t, maintenanceRepo.created)
	require.NotNil(t, equipmentRepo.updatedHours)
	assert.Equal(t, float64(500), *equipmentRepo.updatedHours)
}

func TestCreateMaintenanceLog_NeverLowersHours(t *testing.T) {
	svc, equipmentRepo, _ := newMaintenanceFixture(500)

	_, err := svc.CreateMaintenanceLog(context.Background(), 1, logPayload(null.Float64From(480)))

	require.NoError(t, err)
	assert.Nil(t, equipmentRepo.updatedHours, "a lower reading must not touch current hours")
}

func TestCreateMaintenanceLog_EqualHoursLeaveEquipmentAlone(t *testing.T) {
	svc, equipmentRepo, _ := newMaintenanceFixture(500)

	_, err := svc.CreateMaintenanceLog(context.Background(), 1, logPayload(null.Float64From(500)))

	require.NoError(t, err)
	assert.Nil(t, equipmentRepo.updatedHours)
}

func TestCreateMaintenanceLog_NoHoursProvided(t *testing.T) {
	svc, equipmentRepo, maintenanceRepo := newMaintenanceFixture(450)

	log, err := svc.CreateMaintenanceLog(context.Background(), 1, logPayload(null.Float64{}))

	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.NotNil(t, maintenanceRepo.created)
	assert.Nil(t, equipmentRepo.updatedHours)
}

func TestCreateMaintenanceLog_HoursUpdateFailureDoesNotFailTheLog(t *testing.T) {
	svc, equipmentRepo, maintenanceRepo := newMaintenanceFixture(450)
	equipmentRepo.updateErr = errors.New("connection reset")

	log, err := svc.CreateMaintenanceLog(context.Background(), 1, logPayload(null.Float64From(500)))

	require.NoError(t, err, "the log write already succeeded")
	assert.NotNil(t, log)
	assert.NotNil(t, maintenanceRepo.created)
}

func TestCreateMaintenanceLog_RejectsUnknownEquipment(t *testing.T) {
	svc, equipmentRepo, maintenanceRepo := newMaintenanceFixture(450)
	equipmentRepo.findErr = apperrors.ErrNotFound

	_, err := svc.CreateMaintenanceLog(context.Background(), 1, logPayload(null.Float64From(500)))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, maintenanceRepo.created, "no log may be written for foreign equipment")
}

func TestCreateMaintenanceLog_RejectsMalformedDate(t *testing.T) {
	svc, _, maintenanceRepo := newMaintenanceFixture(450)

	payload := logPayload(null.Float64From(500))
	payload.Date = "03/01/2024"

	_, err := svc.CreateMaintenanceLog(context.Background(), 1, payload)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Nil(t, maintenanceRepo.created)
}
