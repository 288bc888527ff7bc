package services

import (
	"testing"

	"turftrack/internal/dto"
	"turftrack/internal/entities"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The browse fixtures are anchored around Augusta, GA. Charlotte is roughly
// 130 miles away, Orlando roughly 300.
const (
	augustaLat = 33.47
	augustaLng = -82.01
)

func makeListing(id uint64, name, make_, model, location string, lat, lng null.Float64) dto.ListingWithEquipmentDTO {
	return dto.ListingWithEquipmentDTO{
		Listing: entities.Listing{
			ID:        id,
			Location:  location,
			Latitude:  lat,
			Longitude: lng,
			Status:    entities.ListingStatusActive,
		},
		Equipment: entities.Equipment{
			Name:  name,
			Make:  make_,
			Model: model,
		},
	}
}

func browseFixtures() []dto.ListingWithEquipmentDTO {
	return []dto.ListingWithEquipmentDTO{
		makeListing(1, "Fairway Master 5000", "Toro", "Reelmaster 5010-H", "Augusta, GA",
			null.Float64From(33.50), null.Float64From(-82.05)),
		makeListing(2, "Utility Tractor", "John Deere", "4066R", "Charlotte, NC",
			null.Float64From(35.23), null.Float64From(-80.84)),
		makeListing(3, "Beverage Cart #2", "Club Car", "Carryall 500", "Orlando, FL",
			null.Float64From(28.54), null.Float64From(-81.38)),
		makeListing(4, "Greens Roller", "Salsco", "HP11", "Somewhere",
			null.Float64{}, null.Float64{}),
	}
}

func TestFilterListings_NoQueryReturnsAllInOriginalOrder(t *testing.T) {
	items := browseFixtures()

	got := FilterListings(items, dto.BrowseQueryDTO{})

	require.Len(t, got, 4)
	for i, item := range got {
		assert.Equal(t, items[i].ID, item.ID)
		assert.False(t, item.Distance.Valid, "distance must stay null without an origin")
	}
}

func TestFilterListings_SearchMatchesNameMakeModelAndLocation(t *testing.T) {
	items := browseFixtures()

	byMake := FilterListings(items, dto.BrowseQueryDTO{Search: "toro"})
	require.Len(t, byMake, 1)
	assert.Equal(t, uint64(1), byMake[0].ID)

	byModel := FilterListings(items, dto.BrowseQueryDTO{Search: "4066"})
	require.Len(t, byModel, 1)
	assert.Equal(t, uint64(2), byModel[0].ID)

	byLocation := FilterListings(items, dto.BrowseQueryDTO{Search: "orlando"})
	require.Len(t, byLocation, 1)
	assert.Equal(t, uint64(3), byLocation[0].ID)

	noMatch := FilterListings(items, dto.BrowseQueryDTO{Search: "jacobsen"})
	assert.Empty(t, noMatch)
}

func TestFilterListings_AnnotatesDistanceWithOrigin(t *testing.T) {
	got := FilterListings(browseFixtures(), dto.BrowseQueryDTO{
		Lat: null.Float64From(augustaLat),
		Lng: null.Float64From(augustaLng),
	})

	require.Len(t, got, 4)
	byID := make(map[uint64]dto.ListingWithEquipmentDTO)
	for _, item := range got {
		byID[item.ID] = item
	}

	require.True(t, byID[1].Distance.Valid)
	assert.Less(t, byID[1].Distance.Float64, 10.0)
	require.True(t, byID[2].Distance.Valid)
	assert.InDelta(t, 140, byID[2].Distance.Float64, 25)
	assert.False(t, byID[4].Distance.Valid, "listing without coordinates gets no distance")
}

func TestFilterListings_RadiusFilterExcludesFarListings(t *testing.T) {
	got := FilterListings(browseFixtures(), dto.BrowseQueryDTO{
		Lat:         null.Float64From(augustaLat),
		Lng:         null.Float64From(augustaLng),
		MaxDistance: null.Float64From(50),
	})

	ids := make([]uint64, 0, len(got))
	for _, item := range got {
		ids = append(ids, item.ID)
	}
	// Nearby listing plus the coordinate-less one; Charlotte and Orlando are
	// outside 50 miles.
	assert.ElementsMatch(t, []uint64{1, 4}, ids)
}

func TestBrowseListings_NoCoordinatesNeverExcluded(t *testing.T) {
	// Even a tiny radius keeps listings whose distance is unknown.
	got := FilterListings(browseFixtures(), dto.BrowseQueryDTO{
		Lat:         null.Float64From(augustaLat),
		Lng:         null.Float64From(augustaLng),
		MaxDistance: null.Float64From(0.0001),
	})

	require.Len(t, got, 1)
	assert.Equal(t, uint64(4), got[0].ID)
	assert.False(t, got[0].Distance.Valid)
}

func TestFilterListings_SortsByDistanceUnknownLast(t *testing.T) {
	got := FilterListings(browseFixtures(), dto.BrowseQueryDTO{
		Lat:         null.Float64From(augustaLat),
		Lng:         null.Float64From(augustaLng),
		MaxDistance: null.Float64From(500),
	})

	require.Len(t, got, 4)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(2), got[1].ID)
	assert.Equal(t, uint64(3), got[2].ID)
	assert.Equal(t, uint64(4), got[3].ID, "unknown distance sorts last")

	for i := 1; i < 3; i++ {
		assert.LessOrEqual(t, got[i-1].Distance.Float64, got[i].Distance.Float64)
	}
}

func TestFilterListings_RadiusKeepsNearDropsFar(t *testing.T) {
	// Origin in Phoenix; one listing at the origin, one roughly 80 miles out.
	items := []dto.ListingWithEquipmentDTO{
		makeListing(1, "On-site Mower", "Toro", "Greensmaster", "Phoenix, AZ",
			null.Float64From(33.45), null.Float64From(-112.07)),
		makeListing(2, "Distant Mower", "Toro", "Greensmaster", "Casa Grande, AZ",
			null.Float64From(33.45), null.Float64From(-110.67)),
	}

	got := FilterListings(items, dto.BrowseQueryDTO{
		Lat:         null.Float64From(33.45),
		Lng:         null.Float64From(-112.07),
		MaxDistance: null.Float64From(50),
	})

	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, float64(0), got[0].Distance.Float64)
}

func TestFilterListings_RadiusWithoutOriginIsIgnored(t *testing.T) {
	items := browseFixtures()

	got := FilterListings(items, dto.BrowseQueryDTO{MaxDistance: null.Float64From(10)})

	require.Len(t, got, 4, "max_distance without lat/lng must not filter")
	for i, item := range got {
		assert.Equal(t, items[i].ID, item.ID, "original order preserved")
	}
}
