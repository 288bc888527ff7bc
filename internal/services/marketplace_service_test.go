package services

import (
	"context"
	"testing"

	"turftrack/internal/dto"
	"turftrack/internal/entities"
	apperrors "turftrack/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubListingRepo struct {
	activeForEquipment *entities.Listing
	created            *entities.Listing
}

func (s *stubListingRepo) GetActiveListings(ctx context.Context) ([]dto.ListingWithEquipmentDTO, error) {
	return nil, nil
}

func (s *stubListingRepo) FindListing(ctx context.Context, id uint64) (*dto.ListingWithEquipmentDTO, error) {
	return nil, apperrors.ErrNotFound
}

func (s *stubListingRepo) FindActiveListingForEquipment(ctx context.Context, equipmentID uint64) (*entities.Listing, error) {
	if s.activeForEquipment == nil {
		return nil, apperrors.ErrNotFound
	}
	return s.activeForEquipment, nil
}

func (s *stubListingRepo) GetSellerListings(ctx context.Context, sellerID uint64) ([]dto.ListingWithEquipmentDTO, error) {
	return nil, nil
}

func (s *stubListingRepo) CreateListing(ctx context.Context, sellerID uint64, sellerName string, payload dto.CreateListingDTO) (*entities.Listing, error) {
	listing := &entities.Listing{
		ID:          99,
		EquipmentID: payload.EquipmentID,
		SellerID:    sellerID,
		SellerName:  sellerName,
		Price:       payload.Price,
		Status:      entities.ListingStatusActive,
	}
	s.created = listing
	return listing, nil
}

func (s *stubListingRepo) UpdateListingStatus(ctx context.Context, sellerID uint64, id uint64, status string) (*entities.Listing, error) {
	return &entities.Listing{ID: id, SellerID: sellerID, Status: status}, nil
}

func (s *stubListingRepo) DeleteListing(ctx context.Context, sellerID uint64, id uint64) error {
	return nil
}

type stubUserRepo struct {
	user *entities.User
}

func (s *stubUserRepo) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	return nil, apperrors.ErrEmailTaken
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, apperrors.ErrNotFound
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, apperrors.ErrNotFound
	}
	return s.user, nil
}

func newMarketplaceFixture() (*MarketplaceService, *stubListingRepo, *stubEquipmentRepo) {
	listingRepo := &stubListingRepo{}
	equipmentRepo := &stubEquipmentRepo{
		equipment: &entities.Equipment{ID: 7, UserID: 1, Name: "Fairway Master 5000"},
	}
	userRepo := &stubUserRepo{user: &entities.User{ID: 1, FirstName: "Demo", LastName: "Greenskeeper"}}
	svc := NewMarketplaceService(listingRepo, equipmentRepo, &stubMaintenanceRepo{}, userRepo, zap.NewNop())
	return svc, listingRepo, equipmentRepo
}

func createListingPayload() dto.CreateListingDTO {
	return dto.CreateListingDTO{
		EquipmentID: 7,
		Price:       12500,
		Description: "Well maintained fairway mower",
		ContactInfo: "demo@turftrack.local",
		Location:    "Augusta, GA",
	}
}

func TestCreateListing_StampsSellerName(t *testing.T) {
	svc, listingRepo, _ := newMarketplaceFixture()

	listing, err := svc.CreateListing(context.Background(), 1, createListingPayload())

	require.NoError(t, err)
	assert.Equal(t, "Demo Greenskeeper", listing.SellerName)
	assert.NotNil(t, listingRepo.created)
}

func TestCreateListing_RejectsSecondActiveListing(t *testing.T) {
	svc, listingRepo, _ := newMarketplaceFixture()
	listingRepo.activeForEquipment = &entities.Listing{ID: 5, EquipmentID: 7, Status: entities.ListingStatusActive}

	_, err := svc.CreateListing(context.Background(), 1, createListingPayload())

	assert.ErrorIs(t, err, apperrors.ErrDuplicateListing)
	assert.Nil(t, listingRepo.created)
}

func TestCreateListing_RejectsForeignEquipment(t *testing.T) {
	svc, listingRepo, equipmentRepo := newMarketplaceFixture()
	equipmentRepo.findErr = apperrors.ErrNotFound

	_, err := svc.CreateListing(context.Background(), 1, createListingPayload())

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, listingRepo.created)
}

func TestUpdateListingStatus_OnlySoldOrRemoved(t *testing.T) {
	svc, _, _ := newMarketplaceFixture()

	_, err := svc.UpdateListingStatus(context.Background(), 1, 5, "active")
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)

	sold, err := svc.UpdateListingStatus(context.Background(), 1, 5, entities.ListingStatusSold)
	require.NoError(t, err)
	assert.Equal(t, entities.ListingStatusSold, sold.Status)
}
