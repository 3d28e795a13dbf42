package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"emsinet_landing_backend/platform/config"
	"emsinet_landing_backend/platform/logger"
	"emsinet_landing_backend/platform/textutil"

	"golang.org/x/time/rate"
)

const (
	minQueryLength     = 2
	maxUpstreamResults = 10
	maxSuggestions     = 8
)

// Service region bounding box.
const (
	regionMinLat = 10.7
	regionMaxLat = 15.0
	regionMinLon = -87.7
	regionMaxLon = -83.0
)

// InServiceRegion reports whether the coordinates fall inside the
// serviceable bounding box.
func InServiceRegion(lat, lon float64) bool {
	return lat >= regionMinLat && lat <= regionMaxLat &&
		lon >= regionMinLon && lon <= regionMaxLon
}

// Resolver translates free text and coordinates into normalized locations
// using the Nominatim geocoding collaborator.
type Resolver struct {
	client      *http.Client
	limiter     *rate.Limiter
	baseURL     string
	countryCode string
	countryName string
	userAgent   string
	log         *logger.Logger
}

// NewResolver creates a resolver bound to one country.
func NewResolver(cfg config.GeocodingConfig, log *logger.Logger) *Resolver {
	return &Resolver{
		client: &http.Client{Timeout: config.APITimeout},
		// Nominatim usage policy allows at most one request per second
		limiter:     rate.NewLimiter(1, 1),
		baseURL:     strings.TrimRight(cfg.GetNominatimBaseURL(), "/"),
		countryCode: strings.ToLower(cfg.GetGeocodeCountryCode()),
		countryName: cfg.GetGeocodeCountryName(),
		userAgent:   cfg.GetGeocodeUserAgent(),
		log:         log,
	}
}

// Search resolves free text into a ranked candidate list. Queries shorter
// than two characters return an empty list without touching the network.
// Collaborator failures also yield an empty list; they are logged and never
// propagated (an empty suggestion dropdown, not an error page). The only
// error returned is context cancellation.
func (r *Resolver) Search(ctx context.Context, query string) ([]ResolvedLocation, error) {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < minQueryLength {
		return []ResolvedLocation{}, nil
	}

	corrected := CorrectQuery(trimmed)

	attempts := []string{corrected}
	if corrected != trimmed {
		attempts = append(attempts, trimmed)
	}
	attempts = append(attempts, trimmed+", "+r.countryName)

	for _, attempt := range attempts {
		places, err := r.forward(ctx, attempt)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			r.log.UpstreamError("nominatim", "search", err)
			return []ResolvedLocation{}, nil
		}
		if results := r.collectCandidates(places); len(results) > 0 {
			return results, nil
		}
	}

	return []ResolvedLocation{}, nil
}

// Reverse resolves coordinates into an address. It never fails outright: when
// the geocoder is unreachable or has no answer, the result carries the
// literal coordinate pair as its address and the Degraded flag set.
func (r *Resolver) Reverse(ctx context.Context, lat, lon float64) (ResolvedLocation, error) {
	degraded := ResolvedLocation{
		Address:   formatCoordinates(lat, lon),
		Latitude:  lat,
		Longitude: lon,
		Degraded:  true,
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("zoom", "18")
	params.Set("addressdetails", "1")
	params.Set("accept-language", "es")

	var place nominatimPlace
	if err := r.get(ctx, "/reverse", params, &place); err != nil {
		if ctx.Err() != nil {
			return degraded, ctx.Err()
		}
		r.log.UpstreamError("nominatim", "reverse", err)
		return degraded, nil
	}

	if place.Error != "" {
		r.log.Warn("reverse geocode returned no place", "lat", lat, "lon", lon, "detail", place.Error)
		return degraded, nil
	}

	address := joinAddress(place.Address)
	if address == "" {
		address = place.DisplayName
	}
	if address == "" {
		address = formatCoordinates(lat, lon)
	}

	return ResolvedLocation{
		Address:   address,
		Latitude:  lat,
		Longitude: lon,
		Details:   buildDetails(place),
	}, nil
}

func (r *Resolver) forward(ctx context.Context, text string) ([]nominatimPlace, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(maxUpstreamResults))
	params.Set("countrycodes", r.countryCode)
	params.Set("accept-language", "es")

	var places []nominatimPlace
	if err := r.get(ctx, "/search", params, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// collectCandidates keeps only in-country places (defense in depth beyond the
// countrycodes parameter) and maps them for presentation, capped at
// maxSuggestions.
func (r *Resolver) collectCandidates(places []nominatimPlace) []ResolvedLocation {
	results := make([]ResolvedLocation, 0, len(places))
	for _, place := range places {
		if !r.inCountry(place.Address) {
			continue
		}

		address := joinAddress(place.Address)
		if address == "" {
			address = place.DisplayName
		}
		if address == "" {
			address = formatCoordinates(float64(place.Lat), float64(place.Lon))
		}

		results = append(results, ResolvedLocation{
			Address:   address,
			Latitude:  float64(place.Lat),
			Longitude: float64(place.Lon),
			Details:   buildDetails(place),
		})
		if len(results) == maxSuggestions {
			break
		}
	}
	return results
}

func (r *Resolver) inCountry(address nominatimAddress) bool {
	if address.CountryCode != "" {
		return strings.EqualFold(address.CountryCode, r.countryCode)
	}
	return textutil.EqualFold(address.Country, r.countryName)
}

func (r *Resolver) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}

	reqURL := fmt.Sprintf("%s%s?%s", r.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// joinAddress concatenates the address fields present, most specific first.
func joinAddress(address nominatimAddress) string {
	parts := make([]string, 0, 6)
	if address.Road != "" {
		parts = append(parts, address.Road)
	}
	if address.HouseNumber != "" {
		parts = append(parts, address.HouseNumber)
	}
	if district := pickDistrict(address); district != "" {
		parts = append(parts, district)
	}
	if city := pickCity(address); city != "" {
		parts = append(parts, city)
	}
	if address.State != "" {
		parts = append(parts, address.State)
	}
	if address.Country != "" {
		parts = append(parts, address.Country)
	}
	return strings.Join(parts, ", ")
}

func pickDistrict(address nominatimAddress) string {
	if address.Neighbourhood != "" {
		return address.Neighbourhood
	}
	return address.Suburb
}

func pickCity(address nominatimAddress) string {
	if address.City != "" {
		return address.City
	}
	if address.Town != "" {
		return address.Town
	}
	if address.Village != "" {
		return address.Village
	}
	return address.Municipality
}

func pickName(place nominatimPlace) string {
	if place.Address.Amenity != "" {
		return place.Address.Amenity
	}
	if place.Address.Shop != "" {
		return place.Address.Shop
	}
	if place.Address.Building != "" {
		return place.Address.Building
	}
	return place.Name
}

func buildDetails(place nominatimPlace) *LocationDetails {
	details := LocationDetails{
		Name:        pickName(place),
		Street:      place.Address.Road,
		HouseNumber: place.Address.HouseNumber,
		District:    pickDistrict(place.Address),
		City:        pickCity(place.Address),
		State:       place.Address.State,
		Country:     place.Address.Country,
	}
	if details == (LocationDetails{}) {
		return nil
	}
	return &details
}

func formatCoordinates(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + ", " + strconv.FormatFloat(lon, 'f', -1, 64)
}
