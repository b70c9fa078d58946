package domain

// FlightQuery is the input of a flight search between two airports.
type FlightQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	Adults        int
}

// HotelQuery is the input of a nearby hotel search.
type HotelQuery struct {
	At       Coordinates
	CheckIn  string
	CheckOut string
	Adults   int
	Rooms    int
	RadiusKm int
	Limit    int
}

// HotelResult is the raw answer of a nearby hotel search.
type HotelResult struct {
	Offers      []RawHotel   `json:"offers"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// TripQuery is the input of a combined trip search.
type TripQuery struct {
	Destination Coordinates
	Origin      Coordinates
	CheckIn     string
	CheckOut    string
	Adults      int
	Rooms       int
}

// TripResult is the raw answer of a combined trip search.
type TripResult struct {
	Hotels             []RawHotel   `json:"hotels"`
	Flights            []Flight     `json:"flights"`
	Coordinates        *Coordinates `json:"coordinates,omitempty"`
	OriginAirport      string       `json:"originAirport,omitempty"`
	DestinationAirport string       `json:"destinationAirport,omitempty"`
}

// Place is a geocoded location.
type Place struct {
	Coordinates
	Address string
}
