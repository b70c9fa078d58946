// Package app implements the application layer for compass.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/compass/internal/adapters/detector"
	"go.trai.ch/compass/internal/adapters/linear"
	"go.trai.ch/compass/internal/adapters/tui"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports"
	"go.trai.ch/compass/internal/engine/orchestrator"
	"go.trai.ch/compass/internal/engine/suggest"
	"go.trai.ch/compass/internal/ui/listing"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// DefaultBatchConcurrency bounds how many batch searches run at once.
const DefaultBatchConcurrency = 4

// App represents the main application logic.
type App struct {
	orchestrator *orchestrator.Orchestrator
	suggester    *suggest.Suggester
	geocoder     ports.Geocoder
	logger       ports.Logger
	cfg          *domain.Config

	stdout     io.Writer
	now        func() time.Time
	teaOptions []tea.ProgramOption
	exitOnDone bool
}

// New creates a new App instance.
func New(
	orch *orchestrator.Orchestrator,
	suggester *suggest.Suggester,
	geocoder ports.Geocoder,
	log ports.Logger,
	cfg *domain.Config,
) *App {
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}
	return &App{
		orchestrator: orch,
		suggester:    suggester,
		geocoder:     geocoder,
		logger:       log,
		cfg:          cfg,
		stdout:       os.Stdout,
		now:          time.Now,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithExitOnDone closes the interactive view as soon as the search returns.
// This is primarily used for testing.
func (a *App) WithExitOnDone() *App {
	a.exitOnDone = true
	return a
}

// WithOutput redirects results to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithClock replaces the clock used to default the check-in date.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// SearchOptions configure a single search.
type SearchOptions struct {
	// Output is "auto", "tui" or "linear"; empty uses the configured output.
	Output string
	// PageSize overrides the configured hotel page size when positive.
	PageSize int
}

// Search resolves the places of req and runs it, rendering with the interactive view
// or the linear printer.
func (a *App) Search(ctx context.Context, req domain.SearchRequest, opts SearchOptions) error {
	output := opts.Output
	if output == "" {
		output = a.cfg.Output
	}
	mode := detector.ResolveMode(detector.DetectEnvironment(), output)
	a.logger.Debug(fmt.Sprintf("rendering %s with %s output", req.Label(), mode))

	if mode == detector.ModeLinear {
		return a.searchLinear(ctx, req, linear.NewPrinter(a.stdout), opts.PageSize)
	}

	params, view, err := a.prepare(ctx, req, opts.PageSize)
	if err != nil {
		return err
	}

	m := tui.NewModel(tui.Options(view))
	if a.exitOnDone {
		m = m.WithExitOnDone()
	}
	err = tui.Run(ctx, m, func(ctx context.Context, r ports.Reconciler) error {
		_, dispatchErr := a.orchestrator.Dispatch(ctx, params, r)
		return dispatchErr
	}, a.teaOptions...)
	if err != nil {
		return searchFailed(req, err)
	}
	return nil
}

func (a *App) searchLinear(ctx context.Context, req domain.SearchRequest, printer *linear.Printer, pageSize int) error {
	params, view, err := a.prepare(ctx, req, pageSize)
	if err != nil {
		return err
	}
	if _, err := a.orchestrator.Dispatch(ctx, params, printer.Reconciler(view)); err != nil {
		return searchFailed(req, err)
	}
	return nil
}

// prepare validates req, geocodes its places and applies defaults.
func (a *App) prepare(
	ctx context.Context,
	req domain.SearchRequest,
	pageSize int,
) (domain.SearchParams, linear.Options, error) {
	mode, err := domain.ParseMode(string(req.Mode))
	if err != nil {
		return domain.SearchParams{}, linear.Options{}, err
	}

	params := domain.SearchParams{
		Mode:     mode,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Adults:   req.Adults,
		Rooms:    req.Rooms,
		RadiusKm: req.RadiusKm,
		Limit:    req.Limit,
	}
	if params.RadiusKm <= 0 {
		params.RadiusKm = a.cfg.RadiusFor(mode)
	}
	params, err = params.Normalize(a.now())
	if err != nil {
		return domain.SearchParams{}, linear.Options{}, zerr.With(err, "search", req.Label())
	}

	params.Destination = a.locate(ctx, "destination", req.To)
	if req.From != "" {
		params.Origin = a.locate(ctx, "origin", req.From)
	}

	if pageSize <= 0 {
		pageSize = a.cfg.PageSize
	}
	view := linear.Options{
		Label:       req.Label(),
		Origin:      params.Origin,
		Destination: params.Destination,
		PageSize:    pageSize,
	}
	return params, view, nil
}

// locate geocodes query. A failure is logged and leaves the place unresolved, which the
// search then reports.
func (a *App) locate(ctx context.Context, role, query string) *domain.Coordinates {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	place, err := a.geocoder.ForwardGeocode(ctx, query)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("could not resolve %s %q: %s", role, query, domain.UserMessage(err)))
		return nil
	}
	a.logger.Debug(fmt.Sprintf("%s %q is %s (%s)", role, query, place.Address, place.Coordinates))
	return &place.Coordinates
}

func searchFailed(req domain.SearchRequest, err error) error {
	return zerr.With(domain.WrapKind(domain.ErrSearchFailed, err), "search", req.Label())
}

// BatchOptions configure Batch.
type BatchOptions struct {
	// Concurrency bounds parallel searches; DefaultBatchConcurrency when not positive.
	Concurrency int
	// PageSize overrides the configured hotel page size when positive.
	PageSize int
}

type batchFile struct {
	Searches []domain.SearchRequest `yaml:"searches"`
}

// Batch runs every search listed in the YAML file at path concurrently through the
// shared orchestrator, so identical searches are fetched once. Results are printed in
// linear form. Failed searches do not stop the others.
func (a *App) Batch(ctx context.Context, path string, opts BatchOptions) error {
	requests, err := readBatch(path)
	if err != nil {
		return err
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultBatchConcurrency
	}

	printer := linear.NewPrinter(a.stdout)
	var failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(limit)
	for _, req := range requests {
		g.Go(func() error {
			if err := a.searchLinear(ctx, req, printer, opts.PageSize); err != nil {
				failed.Add(1)
				if !errors.Is(err, domain.ErrSearchFailed) {
					a.logger.Error(err)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	stats := a.orchestrator.Stats()
	a.logger.Info(fmt.Sprintf("%d searches: %d fetched, %d cached, %d coalesced",
		len(requests), stats.Fetches, stats.CacheHits, stats.Coalesced))

	if n := failed.Load(); n > 0 {
		return zerr.With(domain.WrapKind(domain.ErrSearchFailed, nil), "failed", n)
	}
	return nil
}

func readBatch(path string) ([]domain.SearchRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(domain.WrapKind(domain.ErrBatchReadFailed, err), "file", path)
	}

	var file batchFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(domain.WrapKind(domain.ErrBatchReadFailed, err), "file", path)
	}
	if len(file.Searches) == 0 {
		return nil, zerr.With(zerr.With(domain.WrapKind(domain.ErrBatchReadFailed, nil),
			"file", path), "message", "no searches listed")
	}
	return file.Searches, nil
}

// Locations prints the suggestions matching query. A lookup replaced by a newer one
// prints nothing.
func (a *App) Locations(ctx context.Context, query string) error {
	locs, err := a.suggester.Suggest(ctx, query)
	if errors.Is(err, domain.ErrSuperseded) {
		a.logger.Debug(fmt.Sprintf("locations for %q superseded", query))
		return nil
	}
	if err != nil {
		return err
	}
	if len(locs) == 0 {
		a.logger.Warn(fmt.Sprintf("no locations match %q", query))
		return nil
	}
	for _, l := range locs {
		if _, err := fmt.Fprintln(a.stdout, listing.Location(l)); err != nil {
			return zerr.Wrap(err, "failed to write locations")
		}
	}
	return nil
}
