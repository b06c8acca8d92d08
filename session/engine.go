// Package session drives the view pipeline for one interactive session:
// it owns the filter and sort state and recomputes the view on every event.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/openhpc/testview/model"
	"github.com/openhpc/testview/query"
)

// View is the result of one pipeline run.
type View struct {
	Records []model.TestRecord
	Summary model.Summary
}

// Compute filters, sorts and summarizes records.
func Compute(records []model.TestRecord, filter model.FilterState, sort model.SortState) View {
	visible := query.Sort(query.Filter(records, filter), sort)
	return View{
		Records: visible,
		Summary: query.Summarize(visible),
	}
}

// Renderer presents a computed view.
type Renderer interface {
	Render(records []model.TestRecord, summary model.Summary)
}

// SummarySeeder is implemented by renderers that display full-set totals.
type SummarySeeder interface {
	SeedSummary(summary model.Summary, latest int)
}

// OptionsPopulator is implemented by renderers that offer filter choices.
type OptionsPopulator interface {
	PopulateOptions(options map[model.FilterKey][]string)
}

// SortMarker is implemented by renderers that show the active sort.
type SortMarker interface {
	MarkSort(state model.SortState)
}

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler sets the scheduler used for debounced search.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		e.scheduler = s
	}
}

// WithSearchDelay overrides SearchDelay.
func WithSearchDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.delay = d
	}
}

// WithFilter sets the initial filter state.
func WithFilter(state model.FilterState) Option {
	return func(e *Engine) {
		e.filter = state
	}
}

// WithSort sets the initial sort state.
func WithSort(state model.SortState) Option {
	return func(e *Engine) {
		e.sort = state
	}
}

// Engine serializes events. Each event updates the state and runs the
// pipeline to completion before the next event is handled.
type Engine struct {
	mu        sync.Mutex
	logger    zerolog.Logger
	records   []model.TestRecord
	renderer  Renderer
	filter    model.FilterState
	sort      model.SortState
	scheduler Scheduler
	delay     time.Duration
	search    *Debouncer
	last      View
	runs      int
}

// New creates an engine over records. Nothing is rendered until Start or an
// event is handled.
func New(logger zerolog.Logger, records []model.TestRecord, renderer Renderer, opts ...Option) *Engine {
	e := &Engine{
		logger:    logger,
		records:   records,
		renderer:  renderer,
		filter:    model.NewFilterState(),
		scheduler: RealScheduler{},
		delay:     SearchDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.search = NewDebouncer(e.scheduler, e.delay)
	return e
}

// Start seeds the renderer with full-set totals and filter options. The
// summary is computed with the same function used for every filtered view.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if s, ok := e.renderer.(SummarySeeder); ok {
		summary := query.Summarize(e.records)
		s.SeedSummary(summary, query.CountLatest(e.records))
		e.logger.Debug().
			Int("records", summary.Count).
			Int("pass_rate", summary.PassRate).
			Msg("Seeded summary")
	}
	if p, ok := e.renderer.(OptionsPopulator); ok {
		p.PopulateOptions(query.Options(e.records))
	}
}

// Refresh recomputes and renders the view without changing any state.
func (e *Engine) Refresh() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.recomputeLocked()
}

// SetFilter applies a filter control change. Unknown keys are ignored.
// Setting the search key directly supersedes a search still waiting.
func (e *Engine) SetFilter(key model.FilterKey, value string) View {
	if key == model.FilterSearch {
		e.search.Cancel()
	}
	return e.applyFilter(key, value)
}

func (e *Engine) applyFilter(key model.FilterKey, value string) View {
	e.mu.Lock()
	defer e.mu.Unlock()

	if key == model.FilterSearch {
		value = strings.ToLower(value)
	}
	e.filter = e.filter.With(key, value)
	return e.recomputeLocked()
}

// ClearFilters drops every filter constraint, including a pending search.
func (e *Engine) ClearFilters() View {
	e.search.Cancel()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.filter = model.NewFilterState()
	return e.recomputeLocked()
}

// Search schedules a search for text after the quiet interval, superseding any
// search still waiting.
func (e *Engine) Search(text string) {
	e.search.Schedule(func() {
		e.applyFilter(model.FilterSearch, text)
	})
}

func (e *Engine) searchPending() bool {
	return e.search.Pending()
}

// ClickSort applies a click on the sortable header for column.
func (e *Engine) ClickSort(column model.SortColumn) View {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sort = e.sort.Toggle(column)
	if m, ok := e.renderer.(SortMarker); ok {
		m.MarkSort(e.sort)
	}
	return e.recomputeLocked()
}

// Close cancels a pending search.
func (e *Engine) Close() {
	e.search.Cancel()
}

// FilterState returns the current filter state.
func (e *Engine) FilterState() model.FilterState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter
}

// SortState returns the current sort state.
func (e *Engine) SortState() model.SortState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sort
}

// Last returns the most recently computed view.
func (e *Engine) Last() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

func (e *Engine) runCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runs
}

func (e *Engine) recomputeLocked() View {
	view := Compute(e.records, e.filter, e.sort)
	e.last = view
	e.runs++

	e.logger.Debug().
		Int("records", len(e.records)).
		Int("visible", len(view.Records)).
		Int("pass_rate", view.Summary.PassRate).
		Str("sort", string(e.sort.Column)).
		Str("direction", string(e.sort.Direction)).
		Msg("Recomputed view")

	if e.renderer != nil {
		e.renderer.Render(view.Records, view.Summary)
	}
	return view
}
