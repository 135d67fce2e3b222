// Package session composes the catalog, filter, view controller and
// renderer into the state behind one map screen.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/archaeoscan/fieldmap/internal/catalog"
	"github.com/archaeoscan/fieldmap/internal/otel"
	"github.com/archaeoscan/fieldmap/internal/render"
	"github.com/archaeoscan/fieldmap/internal/view"
	"github.com/archaeoscan/fieldmap/pkg/core"
)

// Config holds the initial screen settings.
type Config struct {
	Width    int
	Height   int
	Zoom     int
	ShowGrid bool
	Policy   view.PickPolicy
}

// DefaultConfig matches the reference 800x600 map.
func DefaultConfig() Config {
	return Config{Width: 800, Height: 600, Zoom: view.DefaultZoom, ShowGrid: true, Policy: view.PickNearest}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithInstruments records render and pick counters.
func WithInstruments(i *otel.Instruments) Option {
	return func(s *Session) { s.metrics = i }
}

// WithOperator overrides the simulated operator position.
func WithOperator(op Operator) Option {
	return func(s *Session) { s.operator = op }
}

// WithOnSelect registers a callback fired on every selection.
func WithOnSelect(fn view.SelectFunc) Option {
	return func(s *Session) { s.onSelect = fn }
}

// Session is the state of one map screen.
type Session struct {
	objects  []core.FoundObject
	filter   string
	visible  []core.FoundObject
	ctrl     *view.Controller
	width    int
	height   int
	layer    Layer
	operator Operator

	log      *slog.Logger
	metrics  *otel.Instruments
	onSelect view.SelectFunc
}

// New creates a session over objects. The slice is not modified.
func New(objects []core.FoundObject, cfg Config, opts ...Option) *Session {
	s := &Session{
		objects:  objects,
		filter:   catalog.FilterAll,
		visible:  objects,
		width:    cfg.Width,
		height:   cfg.Height,
		layer:    LayerTerrain,
		operator: DefaultOperator,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	st := view.DefaultState()
	st.Zoom = cfg.Zoom
	st.ShowGrid = cfg.ShowGrid
	s.ctrl = view.NewController(
		view.WithState(st),
		view.WithPolicy(cfg.Policy),
		view.WithLogger(s.log),
		view.WithOnSelect(func(obj core.FoundObject) {
			if s.onSelect != nil {
				s.onSelect(obj)
			}
		}),
	)
	return s
}

// Load reads the catalog from src and creates a session over it.
func Load(ctx context.Context, src catalog.Source, cfg Config, opts ...Option) (*Session, error) {
	objects, err := src.Objects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	s := New(objects, cfg, opts...)
	s.log.Info("Catalog loaded", "objects", len(objects))
	return s, nil
}

// Controller exposes the view controller for zoom, pan and grid actions.
func (s *Session) Controller() *view.Controller {
	return s.ctrl
}

// State returns the current view state.
func (s *Session) State() view.State {
	return s.ctrl.State()
}

// Objects returns the full, unfiltered catalog.
func (s *Session) Objects() []core.FoundObject {
	return s.objects
}

// Visible returns the objects passing the active filter.
func (s *Session) Visible() []core.FoundObject {
	return s.visible
}

// Filter returns the active filter kind.
func (s *Session) Filter() string {
	return s.filter
}

// SetFilter restricts the map to one object type, or catalog.FilterAll.
// The current selection is kept even when it no longer matches.
func (s *Session) SetFilter(kind string) error {
	kind = strings.ToLower(strings.TrimSpace(kind))
	visible, err := catalog.Filter(s.objects, kind)
	if err != nil {
		return err
	}
	if kind == "" {
		kind = catalog.FilterAll
	}
	s.filter = kind
	s.visible = visible
	s.log.Debug("Filter changed", "filter", kind, "visible", len(visible))
	return nil
}

// NextFilter advances to the next filter kind in display order.
func (s *Session) NextFilter() string {
	kinds := catalog.FilterKinds()
	next := kinds[0]
	for i, k := range kinds {
		if k == s.filter {
			next = kinds[(i+1)%len(kinds)]
			break
		}
	}
	// kinds come from FilterKinds so this cannot fail
	_ = s.SetFilter(next)
	return next
}

// Size returns the surface size used for hit-testing.
func (s *Session) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the surface size.
func (s *Session) Resize(width, height int) {
	s.width, s.height = width, height
}

// Draw renders the visible objects onto c. The session adopts the canvas
// size so later clicks are tested against the surface that was drawn. An
// empty canvas is not a surface and leaves the size unchanged.
func (s *Session) Draw(ctx context.Context, c render.Canvas) render.Stats {
	if c == nil {
		return render.Stats{}
	}
	if w, h := c.Size(); w > 0 && h > 0 {
		s.width, s.height = w, h
	}
	stats := render.Render(c, s.visible, s.ctrl.State().RenderState())
	s.metrics.RecordRender(ctx, stats.Culled)
	return stats
}

// Click hit-tests a pointer click at surface position (x, y).
func (s *Session) Click(ctx context.Context, x, y float64) (*core.FoundObject, bool) {
	obj, ok := s.ctrl.HandleClick(x, y, s.visible, float64(s.width), float64(s.height))
	s.metrics.RecordPick(ctx, ok)
	return obj, ok
}

// Selected returns the selected object, if any.
func (s *Session) Selected() (core.FoundObject, bool) {
	sel := s.ctrl.State().Selected
	if sel == nil {
		return core.FoundObject{}, false
	}
	return *sel, true
}

// CloseDetail clears the selection.
func (s *Session) CloseDetail() {
	s.ctrl.ClearSelection()
}

// Scale returns the denominator of the displayed map scale, 1:Scale().
func (s *Session) Scale() int64 {
	return int64(math.Pow(2, float64(s.ctrl.State().Zoom))) * 1000
}

// Operator returns the simulated operator fix.
func (s *Session) Operator() Operator {
	return s.operator
}
