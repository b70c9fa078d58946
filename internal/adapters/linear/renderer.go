// Package linear provides a line-buffered reconciler for pipes and CI environments.
package linear

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/ui/listing"
	"go.trai.ch/compass/internal/ui/output"
	"go.trai.ch/compass/internal/ui/style"
)

// Printer owns the destination writer. Each search writes through its own Reconciler,
// whose section is flushed as one block once loading ends, so concurrent searches
// never interleave lines.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter creates a Printer writing to w, or stdout when w is nil.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// Options describe the search a Reconciler reports on.
type Options struct {
	// Label heads the section.
	Label string
	// Origin and Destination are used for distances; either may be nil.
	Origin      *domain.Coordinates
	Destination *domain.Coordinates
	// PageSize splits the hotel list into pages.
	PageSize int
}

// Reconciler implements ports.Reconciler by printing one section per search.
type Reconciler struct {
	printer *Printer
	opts    Options

	mu     sync.Mutex
	buf    bytes.Buffer
	out    *termenv.Output
	errMsg string
}

// Reconciler creates a Reconciler for one search.
func (p *Printer) Reconciler(opts Options) *Reconciler {
	r := &Reconciler{printer: p, opts: opts}
	r.out = output.New(&r.buf, false)
	return r
}

// OnLoadingChange starts a fresh section, without the previous error, when loading
// starts and flushes the section when it ends.
func (r *Reconciler) OnLoadingChange(loading bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if loading {
		r.buf.Reset()
		r.errMsg = ""
		r.line(0, r.styled(style.Dot+" "+r.opts.Label, style.Iris))
		return
	}
	r.flushLocked()
}

// OnError prints the error banner.
func (r *Reconciler) OnError(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errMsg = message
	r.line(1, r.styled(style.Cross+" "+message, style.Red))
}

// Err returns the message of the last error banner, empty after a success.
func (r *Reconciler) Err() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errMsg
}

// OnSuccess prints the payload. Hotel pages are listed one after the other.
func (r *Reconciler) OnSuccess(payload *domain.Payload) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch payload.Mode {
	case domain.ModeHotels:
		r.hotelsLocked(payload)
	case domain.ModeFlights:
		r.flightsLocked(payload)
	case domain.ModeTrip:
		r.hotelsLocked(payload)
		r.flightsLocked(payload)
	}
}

func (r *Reconciler) hotelsLocked(p *domain.Payload) {
	from := r.opts.Destination
	if p.Coordinates != nil {
		from = p.Coordinates
	}

	pager := domain.NewHotelPager(p.Hotels, p.Skipped, r.opts.PageSize)
	if pager.Total() == 0 {
		r.line(1, r.styled("No hotels found.", style.Slate))
	} else {
		r.line(1, r.styled(fmt.Sprintf("%s %s",
			style.Check, listing.Count(pager.Total(), "hotel", "hotels")), style.Green))
	}

	for page := 1; pager.HasMore(); page++ {
		start := pager.Offset()
		offers := pager.Next()
		if pager.Total() > pager.PageSize() {
			r.line(1, r.faint(fmt.Sprintf("page %d", page)))
		}
		for i := range offers {
			r.line(1, listing.HotelTitle(start+i+1, &offers[i], from))
			if detail := listing.HotelDetail(&offers[i]); detail != "" {
				r.line(2, r.faint(detail))
			}
		}
	}

	if n, ok := pager.SkippedNotice(); ok {
		r.line(1, r.styled(style.Warning+" "+listing.Skipped(n), style.Yellow))
	}
}

func (r *Reconciler) flightsLocked(p *domain.Payload) {
	if len(p.OriginAirports) > 0 {
		r.line(1, r.faint("from: "+listing.Airports(p.OriginAirports, r.opts.Origin)))
	}
	if len(p.DestinationAirports) > 0 {
		r.line(1, r.faint("to:   "+listing.Airports(p.DestinationAirports, r.opts.Destination)))
	}

	if len(p.Flights) == 0 {
		r.line(1, r.styled("No flights found.", style.Slate))
		return
	}

	header := fmt.Sprintf("%s %s", style.Check, listing.Count(len(p.Flights), "flight", "flights"))
	if p.OriginAirport != "" && p.DestinationAirport != "" {
		header += fmt.Sprintf(" %s → %s", p.OriginAirport, p.DestinationAirport)
	}
	r.line(1, r.styled(header, style.Green))

	if p.DestinationAirport == "" {
		for i := range p.Flights {
			r.line(1, listing.FlightRow(i+1, &p.Flights[i]))
		}
		return
	}

	direct, alternatives := domain.PartitionFlights(p.Flights, p.DestinationAirport)
	n := 0
	for i := range direct {
		n++
		r.line(1, listing.FlightRow(n, &direct[i]))
	}
	if len(alternatives) > 0 {
		r.line(1, r.faint("other airports near the destination"))
		for i := range alternatives {
			n++
			r.line(1, listing.FlightRow(n, &alternatives[i]))
		}
	}
}

func (r *Reconciler) styled(s string, color lipgloss.Color) string {
	return r.out.String(s).Foreground(r.out.Color(string(color))).String()
}

func (r *Reconciler) faint(s string) string {
	return r.out.String(s).Faint().String()
}

func (r *Reconciler) line(indent int, s string) {
	for range indent {
		r.buf.WriteString("  ")
	}
	r.buf.WriteString(s)
	r.buf.WriteByte('\n')
}

func (r *Reconciler) flushLocked() {
	if r.buf.Len() == 0 {
		return
	}
	r.printer.mu.Lock()
	defer r.printer.mu.Unlock()
	_, _ = r.printer.w.Write(r.buf.Bytes())
	r.buf.Reset()
}
