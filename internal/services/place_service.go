package services

import (
	"context"
	"sync"

	"tripweaver/internal/providers/gplaces"
)

type PlacesClient interface {
	SearchAttractions(ctx context.Context, destination string) ([]gplaces.Place, error)
	SearchRestaurants(ctx context.Context, destination string) ([]gplaces.Place, error)
	SearchCulturalSites(ctx context.Context, destination string) ([]gplaces.Place, error)
}

type PlaceServiceInterface interface {
	SearchPointsOfInterest(ctx context.Context, destination string) ([]gplaces.Place, error)
}

type PlaceService struct {
	places PlacesClient
}

func NewPlaceService(places PlacesClient) PlaceServiceInterface {
	return &PlaceService{places: places}
}

const (
	poiPerCategory = 10
	poiTotalCap    = 20
)

// SearchPointsOfInterest fans out three category lookups concurrently,
// joins them, and deduplicates by exact name. A duplicate name keeps its
// first position in the list but takes the last-seen record.
func (s *PlaceService) SearchPointsOfInterest(ctx context.Context, destination string) ([]gplaces.Place, error) {
	var (
		wg          sync.WaitGroup
		attractions []gplaces.Place
		restaurants []gplaces.Place
		cultural    []gplaces.Place
		errA        error
		errR        error
		errC        error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		attractions, errA = s.places.SearchAttractions(ctx, destination)
	}()
	go func() {
		defer wg.Done()
		restaurants, errR = s.places.SearchRestaurants(ctx, destination)
	}()
	go func() {
		defer wg.Done()
		cultural, errC = s.places.SearchCulturalSites(ctx, destination)
	}()
	wg.Wait()

	for _, err := range []error{errA, errR, errC} {
		if err != nil {
			return nil, err
		}
	}

	all := make([]gplaces.Place, 0, 3*poiPerCategory)
	all = append(all, truncatePlaces(attractions, poiPerCategory)...)
	all = append(all, truncatePlaces(restaurants, poiPerCategory)...)
	all = append(all, truncatePlaces(cultural, poiPerCategory)...)

	return dedupeByName(all, poiTotalCap), nil
}

func truncatePlaces(places []gplaces.Place, n int) []gplaces.Place {
	if len(places) > n {
		return places[:n]
	}
	return places
}

// dedupeByName is last-write-wins: a repeated name overwrites the earlier
// record in place rather than appending.
func dedupeByName(places []gplaces.Place, limit int) []gplaces.Place {
	index := make(map[string]int, len(places))
	unique := make([]gplaces.Place, 0, len(places))

	for _, p := range places {
		if at, seen := index[p.Name]; seen {
			unique[at] = p
			continue
		}
		index[p.Name] = len(unique)
		unique = append(unique, p)
	}

	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}
