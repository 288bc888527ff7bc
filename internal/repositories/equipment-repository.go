package repositories

import (
	"context"
	"errors"

	"turftrack/internal/dto"
	"turftrack/internal/entities"
	apperrors "turftrack/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentFields = "id, user_id, name, make, model, year, serial_number, current_hours, status, notes, image_url, created_at"

type EquipmentRepositoryInterface interface {
	GetEquipmentList(ctx context.Context, userID uint64, filter dto.EquipmentFilterDTO) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, userID uint64, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, userID uint64, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, userID uint64, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, userID uint64, id uint64) error
	UpdateCurrentHours(ctx context.Context, id uint64, hours float64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func (r *EquipmentRepository) GetEquipmentList(ctx context.Context, userID uint64, filter dto.EquipmentFilterDTO) ([]entities.Equipment, error) {
	spec := NewSpecification().
		Where(sq.Eq{"user_id": userID}).
		Search(filter.Search, "name", "make", "model").
		OrderBy("created_at DESC")
	if filter.Status != "" {
		spec = spec.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := spec.Apply(psql.Select(equipmentFields).From("equipment")).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.Equipment
	for rows.Next() {
		item, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, userID uint64, id uint64) (*entities.Equipment, error) {
	query := `SELECT ` + equipmentFields + ` FROM equipment WHERE id = $1 AND user_id = $2`
	item, err := scanEquipment(r.storage.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, userID uint64, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	status := payload.Status
	if status == "" {
		status = entities.EquipmentStatusActive
	}

	query := `
		INSERT INTO equipment (user_id, name, make, model, year, serial_number, current_hours, status, notes, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + equipmentFields

	item, err := scanEquipment(r.storage.QueryRow(ctx, query,
		userID,
		payload.Name,
		payload.Make,
		payload.Model,
		payload.Year,
		payload.SerialNumber,
		payload.CurrentHours,
		status,
		payload.Notes,
		payload.ImageURL,
	))
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, userID uint64, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	builder := psql.Update("equipment").
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + equipmentFields)

	set := 0
	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
		set++
	}
	if payload.Make != nil {
		builder = builder.Set("make", *payload.Make)
		set++
	}
	if payload.Model != nil {
		builder = builder.Set("model", *payload.Model)
		set++
	}
	if payload.Year != nil {
		builder = builder.Set("year", *payload.Year)
		set++
	}
	if payload.SerialNumber.Valid {
		builder = builder.Set("serial_number", payload.SerialNumber)
		set++
	}
	if payload.CurrentHours != nil {
		builder = builder.Set("current_hours", *payload.CurrentHours)
		set++
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
		set++
	}
	if payload.Notes.Valid {
		builder = builder.Set("notes", payload.Notes)
		set++
	}
	if payload.ImageURL.Valid {
		builder = builder.Set("image_url", payload.ImageURL)
		set++
	}
	if set == 0 {
		return r.FindEquipment(ctx, userID, id)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanEquipment(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// DeleteEquipment removes the equipment together with its maintenance logs
// and marketplace listings in one transaction.
func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, userID uint64, id uint64) error {
	return WithTx(ctx, r.storage, func(tx querier) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM messages WHERE listing_id IN (SELECT id FROM marketplace_listings WHERE equipment_id = $1 AND seller_id = $2)`,
			id, userID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM marketplace_listings WHERE equipment_id = $1 AND seller_id = $2`, id, userID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM maintenance_logs WHERE equipment_id = $1 AND user_id = $2`, id, userID); err != nil {
			return err
		}

		result, err := tx.Exec(ctx, `DELETE FROM equipment WHERE id = $1 AND user_id = $2`, id, userID)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

// UpdateCurrentHours is the hours ratchet write. The guard against lowering
// the value lives in the maintenance service; this is a plain single-row
// update, last write wins.
func (r *EquipmentRepository) UpdateCurrentHours(ctx context.Context, id uint64, hours float64) error {
	result, err := r.storage.Exec(ctx, `UPDATE equipment SET current_hours = $1 WHERE id = $2`, hours, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var item entities.Equipment
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Make,
		&item.Model,
		&item.Year,
		&item.SerialNumber,
		&item.CurrentHours,
		&item.Status,
		&item.Notes,
		&item.ImageURL,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
