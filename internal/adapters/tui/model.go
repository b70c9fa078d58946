// Package tui provides the interactive terminal interface for a single search.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/ui/listing"
	"go.trai.ch/compass/internal/ui/output"
)

// Messages sent by Reconciler into the program.
type (
	// MsgLoading toggles the loading indicator.
	MsgLoading struct{ Loading bool }
	// MsgSuccess carries a resolved payload.
	MsgSuccess struct{ Payload *domain.Payload }
	// MsgError carries the message for the error banner.
	MsgError struct{ Message string }
	// MsgDone signals that the search goroutine returned.
	MsgDone struct{}
)

// Options describe the search the model shows.
type Options struct {
	Label       string
	Origin      *domain.Coordinates
	Destination *domain.Coordinates
	PageSize    int
}

// Model represents the TUI state.
type Model struct {
	opts Options

	Loading bool
	Done    bool
	Err     string
	Payload *domain.Payload

	pager  *domain.HotelPager
	Hotels []domain.HotelOffer
	Notice string

	Offset int
	Height int

	exitOnDone bool
}

// NewModel creates a model for the search described by opts.
func NewModel(opts Options) *Model {
	lipgloss.SetColorProfile(output.Profile(true))
	return &Model{opts: opts}
}

// WithExitOnDone makes the program quit as soon as the search returns.
// This is primarily used for testing.
func (m *Model) WithExitOnDone() *Model {
	m.exitOnDone = true
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message switch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "m":
			m.loadMore()
		case "j", "down":
			m.scroll(1)
		case "k", "up":
			m.scroll(-1)
		}

	case tea.WindowSizeMsg:
		m.Height = msg.Height
		m.scroll(0)

	case MsgLoading:
		m.Loading = msg.Loading
		if msg.Loading {
			m.Err = ""
		}

	case MsgError:
		m.Err = msg.Message

	case MsgSuccess:
		m.setPayload(msg.Payload)

	case MsgDone:
		m.Done = true
		if m.exitOnDone {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) setPayload(p *domain.Payload) {
	m.Payload = p
	m.Hotels = nil
	m.Notice = ""
	m.Offset = 0
	m.pager = domain.NewHotelPager(p.Hotels, p.Skipped, m.opts.PageSize)
	m.loadMore()
}

// loadMore appends the next hotel page. The skipped notice shows once the last page
// is in.
func (m *Model) loadMore() {
	if m.pager == nil {
		return
	}
	if m.pager.HasMore() {
		m.Hotels = append(m.Hotels, m.pager.Next()...)
	}
	if n, ok := m.pager.SkippedNotice(); ok {
		m.Notice = listing.Skipped(n)
	}
}

// HasMore reports whether another hotel page can be loaded.
func (m *Model) HasMore() bool {
	return m.pager != nil && m.pager.HasMore()
}

func (m *Model) scroll(delta int) {
	limit := max(len(m.body())-m.bodyHeight(), 0)
	m.Offset = min(max(m.Offset+delta, 0), limit)
}
