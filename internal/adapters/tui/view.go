package tui

import (
	"fmt"
	"strings"

	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/ui/listing"
	"go.trai.ch/compass/internal/ui/style"
)

// headerLines and footerLines frame the scrollable body.
const (
	headerLines = 2
	footerLines = 2
)

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("compass "+style.Arrow+" "+m.opts.Label) + "\n")
	switch {
	case m.Err != "":
		s.WriteString(failureTitleStyle.Render(style.Cross+" "+m.Err) + "\n")
	case m.Loading:
		s.WriteString(loadingStyle.Render(style.Dot+" searching…") + "\n")
	default:
		s.WriteString("\n")
	}

	body := m.body()
	end := len(body)
	if h := m.bodyHeight(); h > 0 {
		end = min(m.Offset+h, len(body))
	}
	for _, line := range body[min(m.Offset, end):end] {
		s.WriteString(line + "\n")
	}

	s.WriteString("\n" + helpStyle.Render(m.help()))
	return s.String()
}

func (m *Model) bodyHeight() int {
	if m.Height == 0 {
		return 0
	}
	return max(m.Height-headerLines-footerLines, 1)
}

func (m *Model) help() string {
	keys := make([]string, 0, 3)
	if m.HasMore() {
		keys = append(keys, fmt.Sprintf("m more (%d/%d)", m.pager.Offset(), m.pager.Total()))
	}
	return strings.Join(append(keys, "j/k scroll", "q quit"), " · ")
}

// body returns the result lines.
func (m *Model) body() []string {
	p := m.Payload
	if p == nil {
		return nil
	}

	var lines []string
	if p.Mode == domain.ModeHotels || p.Mode == domain.ModeTrip {
		lines = append(lines, m.hotelLines()...)
	}
	if p.Mode == domain.ModeFlights || p.Mode == domain.ModeTrip {
		lines = append(lines, m.flightLines()...)
	}
	return lines
}

func (m *Model) hotelLines() []string {
	if m.pager.Total() == 0 {
		return []string{detailStyle.Render("No hotels found.")}
	}

	from := m.opts.Destination
	if m.Payload.Coordinates != nil {
		from = m.Payload.Coordinates
	}

	lines := []string{sectionStyle.Render(listing.Count(m.pager.Total(), "hotel", "hotels"))}
	for i := range m.Hotels {
		lines = append(lines, listing.HotelTitle(i+1, &m.Hotels[i], from))
		if detail := listing.HotelDetail(&m.Hotels[i]); detail != "" {
			lines = append(lines, "   "+detailStyle.Render(detail))
		}
	}
	if m.Notice != "" {
		lines = append(lines, noticeStyle.Render(style.Warning+" "+m.Notice))
	}
	return lines
}

func (m *Model) flightLines() []string {
	p := m.Payload
	var lines []string
	if len(p.OriginAirports) > 0 {
		lines = append(lines, detailStyle.Render("from: "+listing.Airports(p.OriginAirports, m.opts.Origin)))
	}
	if len(p.DestinationAirports) > 0 {
		lines = append(lines, detailStyle.Render("to:   "+listing.Airports(p.DestinationAirports, m.opts.Destination)))
	}
	if len(p.Flights) == 0 {
		return append(lines, detailStyle.Render("No flights found."))
	}

	title := listing.Count(len(p.Flights), "flight", "flights")
	if p.OriginAirport != "" && p.DestinationAirport != "" {
		title += " " + p.OriginAirport + " " + style.Arrow + " " + p.DestinationAirport
	}
	lines = append(lines, sectionStyle.Render(title))

	direct, alternatives := p.Flights, []domain.Flight(nil)
	if p.DestinationAirport != "" {
		direct, alternatives = domain.PartitionFlights(p.Flights, p.DestinationAirport)
	}
	for i := range direct {
		lines = append(lines, listing.FlightRow(i+1, &direct[i]))
	}
	if len(alternatives) > 0 {
		lines = append(lines, detailStyle.Render("other airports near the destination"))
		for i := range alternatives {
			lines = append(lines, listing.FlightRow(len(direct)+i+1, &alternatives[i]))
		}
	}
	return lines
}
