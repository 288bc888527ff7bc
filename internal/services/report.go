package services

import (
	"context"

	"turftrack/internal/dto"
	"turftrack/internal/repositories"

	"go.uber.org/zap"
)

type ReportService struct {
	maintenanceRepository repositories.MaintenanceRepositoryInterface
	equipmentRepository   repositories.EquipmentRepositoryInterface
	logger                *zap.Logger
}

func NewReportService(
	maintenanceRepository repositories.MaintenanceRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		maintenanceRepository: maintenanceRepository,
		equipmentRepository:   equipmentRepository,
		logger:                logger,
	}
}

// GetMaintenanceReport joins the caller's maintenance logs with their
// equipment for export. Logs whose machine was deleted out from under them
// cannot occur, deletion cascades.
func (s *ReportService) GetMaintenanceReport(ctx context.Context, userID uint64, filter dto.ReportFilterDTO) ([]dto.MaintenanceReportRowDTO, error) {
	equipment, err := s.equipmentRepository.GetEquipmentList(ctx, userID, dto.EquipmentFilterDTO{})
	if err != nil {
		s.logger.Error("failed to load equipment for report", zap.Uint64("userId", userID), zap.Error(err))
		return nil, err
	}
	names := make(map[uint64]int, len(equipment))
	for i, item := range equipment {
		names[item.ID] = i
	}

	logs, err := s.maintenanceRepository.GetMaintenanceLogs(ctx, userID, dto.MaintenanceLogFilterDTO{EquipmentID: filter.EquipmentID})
	if err != nil {
		s.logger.Error("failed to load maintenance logs for report", zap.Uint64("userId", userID), zap.Error(err))
		return nil, err
	}

	rows := make([]dto.MaintenanceReportRowDTO, 0, len(logs))
	for _, log := range logs {
		if filter.DateFrom != nil && log.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && log.Date.After(*filter.DateTo) {
			continue
		}

		row := dto.MaintenanceReportRowDTO{
			Date:           log.Date,
			Type:           log.Type,
			Description:    log.Description,
			Cost:           log.Cost,
			HoursAtService: log.HoursAtService,
			PerformedBy:    log.PerformedBy,
		}
		if i, ok := names[log.EquipmentID]; ok {
			row.EquipmentName = equipment[i].Name
			row.EquipmentMake = equipment[i].Make
			row.EquipmentModel = equipment[i].Model
		}
		rows = append(rows, row)
	}
	return rows, nil
}
