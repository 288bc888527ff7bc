package repositories

import (
	"context"
	"errors"

	"turftrack/internal/dto"
	"turftrack/internal/entities"
	apperrors "turftrack/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listingFields = "l.id, l.equipment_id, l.seller_id, l.seller_name, l.price, l.description, l.contact_info, l.location, l.latitude, l.longitude, l.status, l.created_at"
const listingEquipmentFields = "e.id, e.user_id, e.name, e.make, e.model, e.year, e.serial_number, e.current_hours, e.status, e.notes, e.image_url, e.created_at"

type ListingRepositoryInterface interface {
	GetActiveListings(ctx context.Context) ([]dto.ListingWithEquipmentDTO, error)
	FindListing(ctx context.Context, id uint64) (*dto.ListingWithEquipmentDTO, error)
	FindActiveListingForEquipment(ctx context.Context, equipmentID uint64) (*entities.Listing, error)
	GetSellerListings(ctx context.Context, sellerID uint64) ([]dto.ListingWithEquipmentDTO, error)
	CreateListing(ctx context.Context, sellerID uint64, sellerName string, payload dto.CreateListingDTO) (*entities.Listing, error)
	UpdateListingStatus(ctx context.Context, sellerID uint64, id uint64, status string) (*entities.Listing, error)
	DeleteListing(ctx context.Context, sellerID uint64, id uint64) error
}

type ListingRepository struct {
	storage *pgxpool.Pool
}

func NewListingRepository(storage *pgxpool.Pool) ListingRepositoryInterface {
	return &ListingRepository{storage: storage}
}

// GetActiveListings returns every active listing joined with its equipment,
// newest first. Search/distance/radius are applied by the service on top of
// this set.
func (r *ListingRepository) GetActiveListings(ctx context.Context) ([]dto.ListingWithEquipmentDTO, error) {
	spec := NewSpecification().
		Where(sq.Eq{"l.status": entities.ListingStatusActive}).
		OrderBy("l.created_at DESC")

	return r.queryJoined(ctx, spec)
}

func (r *ListingRepository) GetSellerListings(ctx context.Context, sellerID uint64) ([]dto.ListingWithEquipmentDTO, error) {
	spec := NewSpecification().
		Where(sq.Eq{"l.seller_id": sellerID}).
		OrderBy("l.created_at DESC")

	return r.queryJoined(ctx, spec)
}

func (r *ListingRepository) FindListing(ctx context.Context, id uint64) (*dto.ListingWithEquipmentDTO, error) {
	spec := NewSpecification().Where(sq.Eq{"l.id": id})

	items, err := r.queryJoined(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &items[0], nil
}

func (r *ListingRepository) FindActiveListingForEquipment(ctx context.Context, equipmentID uint64) (*entities.Listing, error) {
	query := `
		SELECT ` + bareListingFields + `
		FROM marketplace_listings
		WHERE equipment_id = $1 AND status = $2
		LIMIT 1`

	listing, err := scanListing(r.storage.QueryRow(ctx, query, equipmentID, entities.ListingStatusActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (r *ListingRepository) CreateListing(ctx context.Context, sellerID uint64, sellerName string, payload dto.CreateListingDTO) (*entities.Listing, error) {
	query := `
		INSERT INTO marketplace_listings (equipment_id, seller_id, seller_name, price, description, contact_info, location, latitude, longitude, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + bareListingFields

	listing, err := scanListing(r.storage.QueryRow(ctx, query,
		payload.EquipmentID,
		sellerID,
		sellerName,
		payload.Price,
		payload.Description,
		payload.ContactInfo,
		payload.Location,
		payload.Latitude,
		payload.Longitude,
		entities.ListingStatusActive,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrDuplicateListing
		}
		return nil, err
	}
	return listing, nil
}

func (r *ListingRepository) UpdateListingStatus(ctx context.Context, sellerID uint64, id uint64, status string) (*entities.Listing, error) {
	query := `
		UPDATE marketplace_listings SET status = $1
		WHERE id = $2 AND seller_id = $3
		RETURNING ` + bareListingFields

	listing, err := scanListing(r.storage.QueryRow(ctx, query, status, id, sellerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (r *ListingRepository) DeleteListing(ctx context.Context, sellerID uint64, id uint64) error {
	return WithTx(ctx, r.storage, func(tx querier) error {
		if _, err := tx.Exec(ctx, `DELETE FROM messages WHERE listing_id = $1`, id); err != nil {
			return err
		}
		result, err := tx.Exec(ctx, `DELETE FROM marketplace_listings WHERE id = $1 AND seller_id = $2`, id, sellerID)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

const bareListingFields = "id, equipment_id, seller_id, seller_name, price, description, contact_info, location, latitude, longitude, status, created_at"

func (r *ListingRepository) queryJoined(ctx context.Context, spec Specification) ([]dto.ListingWithEquipmentDTO, error) {
	builder := psql.
		Select(listingFields + ", " + listingEquipmentFields).
		From("marketplace_listings l").
		Join("equipment e ON e.id = l.equipment_id")

	query, args, err := spec.Apply(builder).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []dto.ListingWithEquipmentDTO
	for rows.Next() {
		var item dto.ListingWithEquipmentDTO
		err := rows.Scan(
			&item.ID,
			&item.EquipmentID,
			&item.SellerID,
			&item.SellerName,
			&item.Price,
			&item.Description,
			&item.ContactInfo,
			&item.Location,
			&item.Latitude,
			&item.Longitude,
			&item.Status,
			&item.CreatedAt,

			&item.Equipment.ID,
			&item.Equipment.UserID,
			&item.Equipment.Name,
			&item.Equipment.Make,
			&item.Equipment.Model,
			&item.Equipment.Year,
			&item.Equipment.SerialNumber,
			&item.Equipment.CurrentHours,
			&item.Equipment.Status,
			&item.Equipment.Notes,
			&item.Equipment.ImageURL,
			&item.Equipment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanListing(row pgx.Row) (*entities.Listing, error) {
	var listing entities.Listing
	err := row.Scan(
		&listing.ID,
		&listing.EquipmentID,
		&listing.SellerID,
		&listing.SellerName,
		&listing.Price,
		&listing.Description,
		&listing.ContactInfo,
		&listing.Location,
		&listing.Latitude,
		&listing.Longitude,
		&listing.Status,
		&listing.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}
