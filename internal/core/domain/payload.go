package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexString decodes a JSON string or number into its textual form.
// The backend emits prices and ratings as either.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}

// Address is a hotel address. The backend sends either a plain string or a structured object.
type Address struct {
	Lines       []string `json:"lines,omitempty"`
	CityName    string   `json:"cityName,omitempty"`
	CountryCode string   `json:"countryCode,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Address) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var line string
		if err := json.Unmarshal(data, &line); err != nil {
			return err
		}
		*a = Address{Lines: []string{line}}
		return nil
	}
	type plain Address
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Address(p)
	return nil
}

func (a Address) String() string {
	parts := make([]string, 0, len(a.Lines)+2)
	for _, l := range a.Lines {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	if a.CityName != "" {
		parts = append(parts, a.CityName)
	}
	if a.CountryCode != "" {
		parts = append(parts, a.CountryCode)
	}
	return strings.Join(parts, ", ")
}

// Price is an offer price as the backend reports it.
type Price struct {
	Total    FlexString `json:"total"`
	Currency string     `json:"currency"`
}

// HotelInfo describes the property of a raw hotel offer.
type HotelInfo struct {
	Name      string     `json:"name"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	Address   Address    `json:"address"`
	Rating    FlexString `json:"rating,omitempty"`
}

// RoomOffer is one bookable offer for a hotel.
type RoomOffer struct {
	Price Price `json:"price"`
}

// HotelOfferEntry groups a hotel with its bookable offers.
type HotelOfferEntry struct {
	Hotel    HotelInfo   `json:"hotel"`
	Offers   []RoomOffer `json:"offers"`
	MapsLink string      `json:"mapsLink,omitempty"`
}

// MapPoint is the map position the backend attaches to a hotel.
type MapPoint struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Link string  `json:"link,omitempty"`
}

// RawHotel is a hotel offer exactly as the backend returns it.
type RawHotel struct {
	HotelID string            `json:"hotelId"`
	Offers  []HotelOfferEntry `json:"offers"`
	Map     *MapPoint         `json:"map,omitempty"`
}

// HotelOffer is a validated hotel offer ready for display.
type HotelOffer struct {
	HotelID  string
	Name     string
	Address  string
	Rating   string
	Total    string
	Currency string
	Location *Coordinates
	MapsLink string
}

// NormalizeHotels keeps the offers that carry a name, a total price and a currency.
// The remaining offers are counted as skipped.
func NormalizeHotels(raw []RawHotel) (offers []HotelOffer, skipped int) {
	offers = make([]HotelOffer, 0, len(raw))
	for i := range raw {
		offer, ok := normalizeHotel(&raw[i])
		if !ok {
			skipped++
			continue
		}
		offers = append(offers, offer)
	}
	return offers, skipped
}

func normalizeHotel(h *RawHotel) (HotelOffer, bool) {
	if len(h.Offers) == 0 || len(h.Offers[0].Offers) == 0 {
		return HotelOffer{}, false
	}
	entry := h.Offers[0]
	price := entry.Offers[0].Price
	name := strings.TrimSpace(entry.Hotel.Name)
	if name == "" || price.Total == "" || price.Currency == "" {
		return HotelOffer{}, false
	}

	offer := HotelOffer{
		HotelID:  h.HotelID,
		Name:     name,
		Address:  entry.Hotel.Address.String(),
		Rating:   string(entry.Hotel.Rating),
		Total:    string(price.Total),
		Currency: price.Currency,
		MapsLink: entry.MapsLink,
	}
	switch {
	case entry.Hotel.Latitude != nil && entry.Hotel.Longitude != nil:
		offer.Location = &Coordinates{Lat: *entry.Hotel.Latitude, Lng: *entry.Hotel.Longitude}
	case h.Map != nil:
		offer.Location = &Coordinates{Lat: h.Map.Lat, Lng: h.Map.Lng}
	}
	if offer.MapsLink == "" && h.Map != nil {
		offer.MapsLink = h.Map.Link
	}
	return offer, true
}

// FlightSegment is a single leg of a flight itinerary.
type FlightSegment struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Departure   string `json:"departure,omitempty"`
	Arrival     string `json:"arrival,omitempty"`
	Airline     string `json:"airline,omitempty"`
}

// Flight is a simplified flight offer.
type Flight struct {
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Departure   string          `json:"departure"`
	Arrival     string          `json:"arrival"`
	Duration    string          `json:"duration,omitempty"`
	Price       FlexString      `json:"price,omitempty"`
	Currency    string          `json:"currency,omitempty"`
	Airline     string          `json:"airline,omitempty"`
	Segments    []FlightSegment `json:"segments,omitempty"`
	Stopovers   []string        `json:"stopovers,omitempty"`
	// Polyline is the encoded route overview, when the backend provides one.
	Polyline string `json:"polyline,omitempty"`
}

// Direct reports whether the flight has no stopover.
func (f *Flight) Direct() bool {
	return len(f.Stopovers) == 0
}

// RouteKm returns the length of the route overview. ok is false when the flight has
// no usable polyline.
func (f *Flight) RouteKm() (km float64, ok bool) {
	if f.Polyline == "" {
		return 0, false
	}
	points, err := DecodePolyline(f.Polyline)
	if err != nil || len(points) < 2 {
		return 0, false
	}
	return PathKm(points), true
}

// PartitionFlights splits flights into those landing at destination and alternatives
// landing at other nearby airports.
func PartitionFlights(flights []Flight, destination string) (direct, alternatives []Flight) {
	for i := range flights {
		if strings.EqualFold(flights[i].Destination, destination) {
			direct = append(direct, flights[i])
		} else {
			alternatives = append(alternatives, flights[i])
		}
	}
	return direct, alternatives
}

// FormatDuration renders an ISO-8601 duration such as PT2H35M as "2h 35m".
// Unrecognized input is returned unchanged.
func FormatDuration(iso string) string {
	rest, ok := strings.CutPrefix(iso, "PT")
	if !ok || rest == "" {
		return iso
	}
	var out []string
	num := 0
	digits := false
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
			num = num*10 + int(r-'0')
			digits = true
		case (r == 'H' || r == 'M' || r == 'S') && digits:
			out = append(out, strconv.Itoa(num)+strings.ToLower(string(r)))
			num, digits = 0, false
		default:
			return iso
		}
	}
	if digits {
		return iso
	}
	return strings.Join(out, " ")
}

// Airport is a nearby airport returned by the backend.
type Airport struct {
	IATA string  `json:"iata"`
	Name string  `json:"name,omitempty"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Coordinates returns the airport position.
func (a Airport) Coordinates() Coordinates {
	return Coordinates{Lat: a.Lat, Lng: a.Lng}
}

// Location is a keyword search suggestion.
type Location struct {
	Name     string  `json:"name"`
	IATACode string  `json:"iataCode,omitempty"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// Coordinates returns the suggestion position.
func (l Location) Coordinates() Coordinates {
	return Coordinates{Lat: l.Lat, Lng: l.Lng}
}

// Label renders the suggestion the way it is listed to the user.
func (l Location) Label() string {
	if l.IATACode != "" {
		return l.Name + " (" + l.IATACode + ")"
	}
	return l.Name
}

// Payload is the normalized result of a search, tagged by Mode.
// Hotels is set for hotels and trip, Flights for flights and trip.
type Payload struct {
	Mode               Mode
	Hotels             []HotelOffer
	Flights            []Flight
	Skipped            int
	Coordinates        *Coordinates
	OriginAirport      string
	DestinationAirport string
	// Airports found around each side during a flights search, nearest first.
	OriginAirports      []Airport
	DestinationAirports []Airport
}

// Empty reports whether the payload has nothing to show for its mode.
func (p *Payload) Empty() bool {
	switch p.Mode {
	case ModeHotels:
		return len(p.Hotels) == 0
	case ModeFlights:
		return len(p.Flights) == 0
	default:
		return len(p.Hotels) == 0 && len(p.Flights) == 0
	}
}
