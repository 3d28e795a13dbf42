package geocode

import (
	"strconv"
	"strings"
)

// SearchRequest represents the query parameters from the frontend.
type SearchRequest struct {
	Query string `form:"q" binding:"required"`
}

// ReverseRequest represents the coordinates to reverse-resolve.
type ReverseRequest struct {
	Lat float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lon float64 `form:"lon" binding:"required,min=-180,max=180"`
}

// SearchResponse wraps a ranked candidate list.
type SearchResponse struct {
	Items []ResolvedLocation `json:"items"`
	Total int                `json:"total"`
}

// LocationDetails is the structured address breakdown of a resolved location.
type LocationDetails struct {
	Name        string `json:"name,omitempty"`
	Street      string `json:"street,omitempty"`
	HouseNumber string `json:"houseNumber,omitempty"`
	District    string `json:"district,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
}

// ResolvedLocation is the normalized output handed to the presentation layer.
// Degraded marks results where the geocoder failed and only the literal
// coordinates could be returned; callers surface it as a soft warning.
type ResolvedLocation struct {
	Address   string           `json:"address"`
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Details   *LocationDetails `json:"details,omitempty"`
	Degraded  bool             `json:"degraded,omitempty"`
}

// coordinate decodes a latitude/longitude value from either a JSON number or
// a JSON string; Nominatim serializes coordinates as strings.
type coordinate float64

func (c *coordinate) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*c = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	*c = coordinate(parsed)
	return nil
}

type nominatimAddress struct {
	Amenity       string `json:"amenity"`
	Shop          string `json:"shop"`
	Building      string `json:"building"`
	Road          string `json:"road"`
	HouseNumber   string `json:"house_number"`
	Neighbourhood string `json:"neighbourhood"`
	Suburb        string `json:"suburb"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	Municipality  string `json:"municipality"`
	State         string `json:"state"`
	Country       string `json:"country"`
	CountryCode   string `json:"country_code"`
}

// nominatimPlace mirrors the relevant parts of the OSM search payload.
type nominatimPlace struct {
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name"`
	Lat         coordinate       `json:"lat"`
	Lon         coordinate       `json:"lon"`
	Address     nominatimAddress `json:"address"`
	// Error is set by the reverse endpoint when no place exists at the coordinates.
	Error string `json:"error"`
}
