package search

import (
	"sort"
	"strings"

	"stay_directory/internal/domain"
)

// Result pairs a property with its computed distance when the search
// was driven by a geolocation point; DistanceKM is nil otherwise.
type Result struct {
	Property   domain.Property
	DistanceKM *float64
}

// Search applies exactly one criterion to the catalog, first satisfied
// branch wins: location, then region, then area keyword, then tag.
// Criteria are never combined. Matching is byte-wise substring
// containment with no case folding or normalization.
func Search(catalog []domain.Property, c domain.SearchCriteria) []Result {
	if c.Location != nil {
		return byDistance(catalog, *c.Location)
	}

	out := make([]Result, 0, len(catalog))
	for _, p := range catalog {
		if matches(p, c) {
			out = append(out, Result{Property: p})
		}
	}
	return out
}

// byDistance attaches a distance to every property and sorts nearest
// first. Nothing is filtered out.
func byDistance(catalog []domain.Property, from domain.GeoPoint) []Result {
	out := make([]Result, 0, len(catalog))
	for _, p := range catalog {
		d := Distance(from.Latitude, from.Longitude, p.Latitude, p.Longitude)
		out = append(out, Result{Property: p, DistanceKM: &d})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].DistanceKM < *out[j].DistanceKM
	})
	return out
}

func matches(p domain.Property, c domain.SearchCriteria) bool {
	if c.Region != "" {
		region, ok := RegionByName(c.Region)
		if !ok {
			return false
		}
		for _, pref := range region.Prefectures {
			if strings.Contains(p.Address, pref) {
				return true
			}
		}
		return false
	}
	if c.Area != "" {
		return strings.Contains(p.Address, c.Area) || strings.Contains(p.Name, c.Area)
	}
	if c.Tag != "" {
		for _, t := range p.Tags {
			if t == c.Tag {
				return true
			}
		}
		return false
	}
	return true
}
