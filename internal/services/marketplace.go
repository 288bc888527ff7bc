package services

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"turftrack/internal/dto"
	"turftrack/internal/entities"
	"turftrack/internal/repositories"
	apperrors "turftrack/pkg/errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type MarketplaceService struct {
	listingRepository     repositories.ListingRepositoryInterface
	equipmentRepository   repositories.EquipmentRepositoryInterface
	maintenanceRepository repositories.MaintenanceRepositoryInterface
	userRepository        repositories.UserRepositoryInterface
	logger                *zap.Logger
}

func NewMarketplaceService(
	listingRepository repositories.ListingRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	maintenanceRepository repositories.MaintenanceRepositoryInterface,
	userRepository repositories.UserRepositoryInterface,
	logger *zap.Logger,
) *MarketplaceService {
	return &MarketplaceService{
		listingRepository:     listingRepository,
		equipmentRepository:   equipmentRepository,
		maintenanceRepository: maintenanceRepository,
		userRepository:        userRepository,
		logger:                logger,
	}
}

// BrowseListings is the marketplace browse endpoint: active listings run
// through the search/distance/radius pipeline.
func (s *MarketplaceService) BrowseListings(ctx context.Context, query dto.BrowseQueryDTO) ([]dto.ListingWithEquipmentDTO, error) {
	items, err := s.listingRepository.GetActiveListings(ctx)
	if err != nil {
		s.logger.Error("failed to load active listings", zap.Error(err))
		return nil, err
	}
	return FilterListings(items, query), nil
}

// FilterListings applies the browse pipeline to listings already joined with
// their equipment, assumed newest-first:
//
//  1. case-insensitive substring filter over equipment name/make/model and
//     listing location;
//  2. distance annotation when both the origin and the listing have
//     coordinates; otherwise distance stays null, never zero;
//  3. radius filter, only when an origin and max distance are given; listings
//     without a known distance always pass;
//  4. ordering: ascending by distance when the radius filter ran, unknown
//     distances last; otherwise the incoming newest-first order is kept.
func FilterListings(items []dto.ListingWithEquipmentDTO, query dto.BrowseQueryDTO) []dto.ListingWithEquipmentDTO {
	hasOrigin := query.Lat.Valid && query.Lng.Valid

	filtered := make([]dto.ListingWithEquipmentDTO, 0, len(items))
	for _, item := range items {
		if !matchesSearch(item, query.Search) {
			continue
		}

		item.Distance = null.Float64{}
		if hasOrigin && item.HasCoordinates() {
			item.Distance = null.Float64From(HaversineMiles(
				query.Lat.Float64, query.Lng.Float64,
				item.Latitude.Float64, item.Longitude.Float64,
			))
		}
		filtered = append(filtered, item)
	}

	radiusActive := hasOrigin && query.MaxDistance.Valid
	if !radiusActive {
		return filtered
	}

	within := filtered[:0]
	for _, item := range filtered {
		// unknown distance means "include by default", never excluded by radius
		if !item.Distance.Valid || item.Distance.Float64 <= query.MaxDistance.Float64 {
			within = append(within, item)
		}
	}

	sort.SliceStable(within, func(i, j int) bool {
		a, b := within[i].Distance, within[j].Distance
		if !a.Valid {
			return false
		}
		if !b.Valid {
			return true
		}
		return a.Float64 < b.Float64
	})

	return within
}

func matchesSearch(item dto.ListingWithEquipmentDTO, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range []string{item.Equipment.Name, item.Equipment.Make, item.Equipment.Model, item.Location} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// GetListing returns one listing with its equipment and the equipment's
// public service history.
func (s *MarketplaceService) GetListing(ctx context.Context, id uint64) (*dto.ListingDetailDTO, error) {
	item, err := s.listingRepository.FindListing(ctx, id)
	if err != nil {
		return nil, err
	}

	logs, err := s.maintenanceRepository.GetLogsForEquipment(ctx, item.EquipmentID)
	if err != nil {
		s.logger.Error("failed to load service history for listing", zap.Uint64("listingId", id), zap.Error(err))
		return nil, err
	}

	return &dto.ListingDetailDTO{
		Listing:         item.Listing,
		Equipment:       item.Equipment,
		MaintenanceLogs: logs,
	}, nil
}

// CreateListing posts the caller's equipment for sale. The caller must own
// the equipment and it must not already have an active listing.
func (s *MarketplaceService) CreateListing(ctx context.Context, sellerID uint64, payload dto.CreateListingDTO) (*entities.Listing, error) {
	if _, err := s.equipmentRepository.FindEquipment(ctx, sellerID, payload.EquipmentID); err != nil {
		return nil, err
	}

	if _, err := s.listingRepository.FindActiveListingForEquipment(ctx, payload.EquipmentID); err == nil {
		return nil, apperrors.ErrDuplicateListing
	} else if err != apperrors.ErrNotFound {
		return nil, err
	}

	seller, err := s.userRepository.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	listing, err := s.listingRepository.CreateListing(ctx, sellerID, seller.FullName(), payload)
	if err != nil {
		s.logger.Error("failed to create listing", zap.Uint64("equipmentId", payload.EquipmentID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("listing created",
		zap.Uint64("listingId", listing.ID),
		zap.Uint64("equipmentId", listing.EquipmentID),
		zap.Uint64("sellerId", sellerID),
	)
	return listing, nil
}

func (s *MarketplaceService) GetSellerListings(ctx context.Context, sellerID uint64) ([]dto.ListingWithEquipmentDTO, error) {
	return s.listingRepository.GetSellerListings(ctx, sellerID)
}

func (s *MarketplaceService) UpdateListingStatus(ctx context.Context, sellerID uint64, id uint64, status string) (*entities.Listing, error) {
	switch status {
	case entities.ListingStatusSold, entities.ListingStatusRemoved:
	default:
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "status must be 'sold' or 'removed'", nil, nil)
	}
	return s.listingRepository.UpdateListingStatus(ctx, sellerID, id, status)
}

func (s *MarketplaceService) RemoveListing(ctx context.Context, sellerID uint64, id uint64) error {
	return s.listingRepository.DeleteListing(ctx, sellerID, id)
}
