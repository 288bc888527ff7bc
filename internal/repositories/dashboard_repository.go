package repositories

import (
	"context"

	"turftrack/internal/dto"
	"turftrack/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardRepositoryInterface interface {
	GetStats(ctx context.Context, userID uint64) (*dto.DashboardStatsDTO, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

func (r *DashboardRepository) GetStats(ctx context.Context, userID uint64) (*dto.DashboardStatsDTO, error) {
	var stats dto.DashboardStatsDTO

	equipmentQuery, args, err := psql.
		Select(
			"count(*)",
			"count(*) FILTER (WHERE status = 'active')",
			"count(*) FILTER (WHERE status = 'maintenance')",
			"count(*) FILTER (WHERE status = 'retired')",
			"COALESCE(sum(current_hours), 0)",
		).
		From("equipment").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	err = r.storage.QueryRow(ctx, equipmentQuery, args...).Scan(
		&stats.TotalEquipment,
		&stats.ActiveEquipment,
		&stats.InMaintenance,
		&stats.Retired,
		&stats.TotalFleetHours,
	)
	if err != nil {
		return nil, err
	}

	spendQuery, args, err := psql.
		Select(
			"count(*)",
			"COALESCE(sum(cost), 0)",
			"COALESCE(sum(cost) FILTER (WHERE date >= now() - interval '30 days'), 0)",
		).
		From("maintenance_logs").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	err = r.storage.QueryRow(ctx, spendQuery, args...).Scan(
		&stats.MaintenanceEntries,
		&stats.TotalSpend,
		&stats.SpendLast30Days,
	)
	if err != nil {
		return nil, err
	}

	listingQuery, args, err := psql.
		Select("count(*)").
		From("marketplace_listings").
		Where(sq.Eq{"seller_id": userID, "status": entities.ListingStatusActive}).
		ToSql()
	if err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, listingQuery, args...).Scan(&stats.ActiveListings); err != nil {
		return nil, err
	}

	return &stats, nil
}
