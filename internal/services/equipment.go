package services

import (
	"context"

	"turftrack/internal/dto"
	"turftrack/internal/entities"
	"turftrack/internal/repositories"

	"go.uber.org/zap"
)

type EquipmentService struct {
	equipmentRepository   repositories.EquipmentRepositoryInterface
	maintenanceRepository repositories.MaintenanceRepositoryInterface
	logger                *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	maintenanceRepository repositories.MaintenanceRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository:   equipmentRepository,
		maintenanceRepository: maintenanceRepository,
		logger:                logger,
	}
}

func (s *EquipmentService) GetEquipmentList(ctx context.Context, userID uint64, filter dto.EquipmentFilterDTO) ([]entities.Equipment, error) {
	return s.equipmentRepository.GetEquipmentList(ctx, userID, filter)
}

// FindEquipment returns one machine with its service history, newest first.
func (s *EquipmentService) FindEquipment(ctx context.Context, userID uint64, id uint64) (*dto.EquipmentDTO, error) {
	item, err := s.equipmentRepository.FindEquipment(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	logs, err := s.maintenanceRepository.GetMaintenanceLogs(ctx, userID, dto.MaintenanceLogFilterDTO{EquipmentID: id})
	if err != nil {
		return nil, err
	}

	return &dto.EquipmentDTO{Equipment: *item, Logs: logs}, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, userID uint64, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	item, err := s.equipmentRepository.CreateEquipment(ctx, userID, payload)
	if err != nil {
		s.logger.Error("failed to create equipment", zap.Error(err))
		return nil, err
	}
	s.logger.Info("equipment created", zap.Uint64("equipmentId", item.ID), zap.Uint64("userId", userID))
	return item, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, userID uint64, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	return s.equipmentRepository.UpdateEquipment(ctx, userID, id, payload)
}

// DeleteEquipment cascades to the machine's maintenance logs and any
// marketplace listing.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, userID uint64, id uint64) error {
	return s.equipmentRepository.DeleteEquipment(ctx, userID, id)
}
