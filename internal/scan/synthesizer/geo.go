package synthesizer

import (
	"aegis-srv/internal/model"
	"aegis-srv/internal/sampling"
)

const geoJitter = 3

type baseLocation struct {
	lat, lng float64
	label    string
}

var platformLocations = map[model.Platform]baseLocation{
	model.PlatformYouTube:   {37.77, -122.42, "US"},
	model.PlatformInstagram: {40.71, -74.00, "US"},
	model.PlatformFacebook:  {-23.55, -46.63, "BR"},
	model.PlatformX:         {51.50, -0.12, "UK"},
	model.PlatformTelegram:  {19.07, 72.88, "IN"},
	model.PlatformTikTok:    {35.68, 139.65, "JP"},
	model.PlatformTwitch:    {48.85, 2.35, "FR"},
}

var unknownLocation = baseLocation{0, 0, "Unknown"}

// geo groups matched entities by platform in first-appearance order.
func (s *Synthesizer) geo(matched []model.Entity) []model.GeoSpreadPoint {
	var order []model.Platform
	counts := map[model.Platform]int{}
	for _, e := range matched {
		if _, ok := counts[e.Platform]; !ok {
			order = append(order, e.Platform)
		}
		counts[e.Platform]++
	}

	out := make([]model.GeoSpreadPoint, 0, len(order))
	for _, p := range order {
		base, ok := platformLocations[p]
		if !ok {
			base = unknownLocation
		}
		lat, lng := s.sampler.JitterCoordinate(base.lat, base.lng, geoJitter)
		out = append(out, model.GeoSpreadPoint{
			Platform: p,
			Location: base.label,
			Lat:      lat,
			Lng:      lng,
			Severity: sampling.GeoSeverity(counts[p]),
			Count:    counts[p],
		})
	}
	return out
}
