package repositories

import (
	"context"
	"time"

	"turftrack/internal/dto"
	"turftrack/internal/entities"
	apperrors "turftrack/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const maintenanceFields = "id, user_id, equipment_id, date, type, description, cost, hours_at_service, performed_by, created_at"

type MaintenanceRepositoryInterface interface {
	GetMaintenanceLogs(ctx context.Context, userID uint64, filter dto.MaintenanceLogFilterDTO) ([]entities.MaintenanceLog, error)
	GetLogsForEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceLog, error)
	CreateMaintenanceLog(ctx context.Context, userID uint64, date time.Time, payload dto.CreateMaintenanceLogDTO) (*entities.MaintenanceLog, error)
	DeleteMaintenanceLog(ctx context.Context, userID uint64, id uint64) error
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
}

func NewMaintenanceRepository(storage *pgxpool.Pool) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage}
}

func (r *MaintenanceRepository) GetMaintenanceLogs(ctx context.Context, userID uint64, filter dto.MaintenanceLogFilterDTO) ([]entities.MaintenanceLog, error) {
	spec := NewSpecification().
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC", "created_at DESC")
	if filter.EquipmentID != 0 {
		spec = spec.Where(sq.Eq{"equipment_id": filter.EquipmentID})
	}

	query, args, err := spec.Apply(psql.Select(maintenanceFields).From("maintenance_logs")).ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryLogs(ctx, query, args...)
}

// GetLogsForEquipment is the public service-history view used on listing
// detail pages; it is not owner-scoped.
func (r *MaintenanceRepository) GetLogsForEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceLog, error) {
	query := `SELECT ` + maintenanceFields + ` FROM maintenance_logs WHERE equipment_id = $1 ORDER BY date DESC, created_at DESC`
	return r.queryLogs(ctx, query, equipmentID)
}

func (r *MaintenanceRepository) CreateMaintenanceLog(ctx context.Context, userID uint64, date time.Time, payload dto.CreateMaintenanceLogDTO) (*entities.MaintenanceLog, error) {
	query := `
		INSERT INTO maintenance_logs (user_id, equipment_id, date, type, description, cost, hours_at_service, performed_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + maintenanceFields

	return scanMaintenanceLog(r.storage.QueryRow(ctx, query,
		userID,
		payload.EquipmentID,
		date,
		payload.Type,
		payload.Description,
		payload.Cost,
		payload.HoursAtService,
		payload.PerformedBy,
	))
}

func (r *MaintenanceRepository) DeleteMaintenanceLog(ctx context.Context, userID uint64, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM maintenance_logs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MaintenanceRepository) queryLogs(ctx context.Context, query string, args ...any) ([]entities.MaintenanceLog, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []entities.MaintenanceLog
	for rows.Next() {
		log, err := scanMaintenanceLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *log)
	}
	return logs, rows.Err()
}

func scanMaintenanceLog(row pgx.Row) (*entities.MaintenanceLog, error) {
	var log entities.MaintenanceLog
	err := row.Scan(
		&log.ID,
		&log.UserID,
		&log.EquipmentID,
		&log.Date,
		&log.Type,
		&log.Description,
		&log.Cost,
		&log.HoursAtService,
		&log.PerformedBy,
		&log.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &log, nil
}
