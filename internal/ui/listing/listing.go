// Package listing formats search results into the text rows shared by the linear
// and interactive renderers.
package listing

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/ui/style"
)

// Distance renders km with one decimal below ten kilometres.
func Distance(km float64) string {
	if km < 10 {
		return strconv.FormatFloat(km, 'f', 1, 64) + " km"
	}
	return strconv.FormatFloat(km, 'f', 0, 64) + " km"
}

// Price renders an amount with its currency, or "n/a" when the amount is unknown.
func Price(total, currency string) string {
	if total == "" {
		return "n/a"
	}
	if currency == "" {
		return total
	}
	return total + " " + currency
}

// HotelTitle is the first row of a hotel card: position, name, rating, price and the
// distance from the searched point when both positions are known.
func HotelTitle(n int, h *domain.HotelOffer, from *domain.Coordinates) string {
	parts := []string{fmt.Sprintf("%d. %s", n, h.Name)}
	if h.Rating != "" {
		parts = append(parts, style.Star+h.Rating)
	}
	parts = append(parts, Price(h.Total, h.Currency))
	if from != nil && h.Location != nil {
		parts = append(parts, Distance(domain.HaversineKm(*from, *h.Location)))
	}
	return strings.Join(parts, "  ")
}

// HotelDetail is the second row of a hotel card. It is empty when the offer has no
// address and no maps link.
func HotelDetail(h *domain.HotelOffer) string {
	parts := make([]string, 0, 2)
	if h.Address != "" {
		parts = append(parts, h.Address)
	}
	if h.MapsLink != "" {
		parts = append(parts, h.MapsLink)
	}
	return strings.Join(parts, "  ")
}

// FlightRow renders a flight on one line.
func FlightRow(n int, f *domain.Flight) string {
	parts := []string{fmt.Sprintf("%d.", n)}
	if f.Airline != "" {
		parts = append(parts, f.Airline)
	}
	parts = append(parts, fmt.Sprintf("%s %s "+style.Arrow+" %s %s", f.Origin, Clock(f.Departure), f.Destination, Clock(f.Arrival)))
	if f.Duration != "" {
		parts = append(parts, domain.FormatDuration(f.Duration))
	}
	if f.Direct() {
		parts = append(parts, "direct")
	} else {
		parts = append(parts, "via "+strings.Join(f.Stopovers, ", "))
	}
	if km, ok := f.RouteKm(); ok {
		parts = append(parts, Distance(km))
	}
	parts = append(parts, Price(string(f.Price), f.Currency))
	return strings.Join(parts, "  ")
}

// Clock shortens an ISO date-time such as 2025-07-10T08:10:00 to "07-10 08:10".
// Other input is returned unchanged.
func Clock(iso string) string {
	date, clock, ok := strings.Cut(iso, "T")
	if !ok || len(date) != len("2006-01-02") || len(clock) < len("15:04") {
		return iso
	}
	return date[5:] + " " + clock[:5]
}

// Airports lists airports with their distance from the searched point.
func Airports(airports []domain.Airport, from *domain.Coordinates) string {
	parts := make([]string, 0, len(airports))
	for _, a := range airports {
		label := a.IATA
		if a.Name != "" {
			label += " " + a.Name
		}
		if from != nil {
			label += " (" + Distance(domain.HaversineKm(*from, a.Coordinates())) + ")"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, ", ")
}

// Skipped is the notice shown once all hotel pages were listed.
func Skipped(n int) string {
	if n == 1 {
		return "1 offer skipped: missing name, price or currency"
	}
	return strconv.Itoa(n) + " offers skipped: missing name, price or currency"
}

// Count renders n with the singular or plural noun.
func Count(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}

// Location renders a suggestion as "Name (IATA)  lat,lng".
func Location(l domain.Location) string {
	name := l.Name
	if l.IATACode != "" {
		name += " (" + l.IATACode + ")"
	}
	return name + "  " + l.Coordinates().String()
}
