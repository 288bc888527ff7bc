package services

import (
	"context"
	"net/http"
	"time"

	"turftrack/internal/dto"
	"turftrack/internal/entities"
	"turftrack/internal/repositories"
	apperrors "turftrack/pkg/errors"

	"go.uber.org/zap"
)

type MaintenanceService struct {
	maintenanceRepository repositories.MaintenanceRepositoryInterface
	equipmentRepository   repositories.EquipmentRepositoryInterface
	logger                *zap.Logger
}

func NewMaintenanceService(
	maintenanceRepository repositories.MaintenanceRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepository: maintenanceRepository,
		equipmentRepository:   equipmentRepository,
		logger:                logger,
	}
}

func (s *MaintenanceService) GetMaintenanceLogs(ctx context.Context, userID uint64, filter dto.MaintenanceLogFilterDTO) ([]entities.MaintenanceLog, error) {
	return s.maintenanceRepository.GetMaintenanceLogs(ctx, userID, filter)
}

// CreateMaintenanceLog records a service event and, as a side effect, keeps
// the equipment's current hours consistent with the reading taken at
// service time. The ratchet only ever raises the stored hours; the log write
// and the hours write are two separate statements, a crash in between leaves
// the log recorded and the hours stale.
func (s *MaintenanceService) CreateMaintenanceLog(ctx context.Context, userID uint64, payload dto.CreateMaintenanceLogDTO) (*entities.MaintenanceLog, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, userID, payload.EquipmentID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "date must be formatted YYYY-MM-DD", err, nil)
	}

	log, err := s.maintenanceRepository.CreateMaintenanceLog(ctx, userID, date, payload)
	if err != nil {
		s.logger.Error("failed to create maintenance log", zap.Uint64("equipmentId", payload.EquipmentID), zap.Error(err))
		return nil, err
	}

	if payload.HoursAtService.Valid && payload.HoursAtService.Float64 > equipment.CurrentHours {
		if err := s.equipmentRepository.UpdateCurrentHours(ctx, equipment.ID, payload.HoursAtService.Float64); err != nil {
			s.logger.Error("hours auto-update failed",
				zap.Uint64("equipmentId", equipment.ID),
				zap.Float64("hoursAtService", payload.HoursAtService.Float64),
				zap.Error(err),
			)
		} else {
			s.logger.Info("equipment hours updated from service record",
				zap.Uint64("equipmentId", equipment.ID),
				zap.Float64("from", equipment.CurrentHours),
				zap.Float64("to", payload.HoursAtService.Float64),
			)
		}
	}

	return log, nil
}

func (s *MaintenanceService) DeleteMaintenanceLog(ctx context.Context, userID uint64, id uint64) error {
	return s.maintenanceRepository.DeleteMaintenanceLog(ctx, userID, id)
}
