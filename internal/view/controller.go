package view

import (
	"log/slog"

	"github.com/archaeoscan/fieldmap/internal/geo"
	"github.com/archaeoscan/fieldmap/pkg/core"
)

// SelectFunc is called with the newly selected object after a hit.
type SelectFunc func(obj core.FoundObject)

// Option configures a Controller.
type Option func(*Controller)

// WithPolicy sets the multi-hit pick policy.
func WithPolicy(p PickPolicy) Option {
	return func(c *Controller) { c.policy = p }
}

// WithOnSelect registers the selection callback.
func WithOnSelect(fn SelectFunc) Option {
	return func(c *Controller) { c.onSelect = fn }
}

// WithLogger sets the logger used for interaction tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithState overrides the initial state. Zoom is clamped.
func WithState(s State) Option {
	return func(c *Controller) {
		s.Zoom = clampZoom(s.Zoom)
		c.state = s
	}
}

// Controller owns the view state. It is not safe for concurrent use; the
// host serialises input events.
type Controller struct {
	state    State
	policy   PickPolicy
	onSelect SelectFunc
	log      *slog.Logger
}

// NewController creates a controller with DefaultState.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		state: DefaultState(),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Policy returns the active pick policy.
func (c *Controller) Policy() PickPolicy {
	return c.policy
}

func (c *Controller) ZoomIn() {
	c.SetZoom(c.state.Zoom + 1)
}

func (c *Controller) ZoomOut() {
	c.SetZoom(c.state.Zoom - 1)
}

// SetZoom sets the zoom level, saturating at MinZoom and MaxZoom.
func (c *Controller) SetZoom(z int) {
	c.state.Zoom = clampZoom(z)
	c.log.Debug("zoom changed", "zoom", c.state.Zoom)
}

func (c *Controller) ToggleGrid() {
	c.state.ShowGrid = !c.state.ShowGrid
	c.log.Debug("grid toggled", "showGrid", c.state.ShowGrid)
}

// ResetCenter moves the view back to DefaultCenter. Zoom and selection are kept.
func (c *Controller) ResetCenter() {
	c.state.Center = DefaultCenter
	c.log.Debug("center reset", "lat", DefaultCenter.Lat, "lng", DefaultCenter.Lng)
}

// SetCenter moves the view origin to center.
func (c *Controller) SetCenter(center core.Coordinate) {
	c.state.Center = center
}

// Pan shifts the view by dx, dy surface pixels at the current zoom.
// Positive dx moves the view east, positive dy moves it south.
func (c *Controller) Pan(dx, dy float64) {
	c.state.Center = geo.Unproject(geo.Point{X: dx, Y: dy}, c.state.Center, c.state.Zoom, 0, 0)
}

// ClearSelection drops the current selection without notifying.
func (c *Controller) ClearSelection() {
	c.state.Selected = nil
}

// HandleClick hit-tests a click at (x, y) on a width x height surface.
// On a hit the object becomes the selection and the callback fires once.
// A miss leaves the selection untouched and returns false.
func (c *Controller) HandleClick(x, y float64, objects []core.FoundObject, width, height float64) (*core.FoundObject, bool) {
	i := Pick(x, y, objects, c.state, width, height, c.policy)
	if i < 0 {
		c.log.Debug("click missed", "x", x, "y", y)
		return nil, false
	}
	obj := objects[i]
	c.state.Selected = &obj
	c.log.Debug("object selected", "id", obj.ID, "x", x, "y", y, "policy", c.policy.String())
	if c.onSelect != nil {
		c.onSelect(obj)
	}
	return &obj, true
}
