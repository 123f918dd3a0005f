package pokedex

import (
	"context"
	"sync"
)

// FetchState is the list view's fetch lifecycle.
type FetchState int

const (
	// StateIdle means no page fetch has been started yet.
	StateIdle FetchState = iota
	// StateLoading means a page fetch is in flight.
	StateLoading
	// StateLoaded means the most recent fetch was applied.
	StateLoaded
	// StateErrored means the most recent fetch failed or was cancelled.
	StateErrored
)

// String returns the state name used in logs.
func (s FetchState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Ticket identifies one page fetch. Only the ticket returned by the most
// recent Begin may change paginator state.
type Ticket struct {
	Generation uint64
	Page       int
	Offset     int
	Limit      int

	ctx context.Context
}

// Context returns the cancellable context the fetch must run under.
func (t Ticket) Context() context.Context {
	if t.ctx == nil {
		return context.Background()
	}
	return t.ctx
}

// Paginator tracks the incremental list: the accumulated records, the
// current page, the has-more flag and the in-flight fetch. Starting a new
// fetch supersedes the previous one: its context is cancelled and its late
// result is ignored.
type Paginator struct {
	mu         sync.Mutex
	records    *Collection
	page       int
	hasMore    bool
	state      FetchState
	generation uint64
	cancel     context.CancelFunc
}

// NewPaginator returns a paginator positioned on page 1 with has-more set.
func NewPaginator() *Paginator {
	return &Paginator{
		records: NewCollection(),
		page:    1,
		hasMore: true,
		state:   StateIdle,
	}
}

// Begin starts the fetch for the current page, cancelling any fetch still in
// flight. It does not wait for the old fetch to observe the cancellation.
func (p *Paginator) Begin(parent context.Context) Ticket {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.releaseLocked()
	ctx, cancel := context.WithCancel(parent)
	p.cancel = cancel
	p.generation++
	p.state = StateLoading

	return Ticket{
		Generation: p.generation,
		Page:       p.page,
		Offset:     (p.page - 1) * PageSize,
		Limit:      PageSize,
		ctx:        ctx,
	}
}

// Apply merges a completed fetch. It returns the number of newly added
// records and false when the ticket was superseded, in which case nothing
// changes.
func (p *Paginator) Apply(t Ticket, res PageResult) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.currentLocked(t) {
		return 0, false
	}

	added := p.records.Merge(res.Records)
	p.hasMore = res.HasMore
	p.state = StateLoaded
	p.releaseLocked()
	return added, true
}

// Fail records a failed fetch. Accumulated records are kept. It returns
// false when the ticket was superseded.
func (p *Paginator) Fail(t Ticket, _ error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.currentLocked(t) {
		return false
	}

	p.state = StateErrored
	p.releaseLocked()
	return true
}

// NextPage advances to the following page when more pages exist and no
// fetch is in flight. The caller then calls Begin to fetch it.
func (p *Paginator) NextPage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.hasMore || p.state == StateLoading {
		return false
	}
	p.page++
	return true
}

// Close cancels the in-flight fetch, if any. A later result for it is
// ignored.
func (p *Paginator) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		// Invalidate the outstanding ticket as well.
		p.generation++
		if p.state == StateLoading {
			p.state = StateErrored
		}
	}
	p.releaseLocked()
}

// Records returns the accumulated records in load order.
func (p *Paginator) Records() []Summary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.records.All()
}

// Page returns the current page number (1-based).
func (p *Paginator) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// HasMore reports whether the last applied response advertised a next page.
func (p *Paginator) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// State returns the fetch lifecycle state.
func (p *Paginator) State() FetchState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Loading reports whether a fetch is in flight.
func (p *Paginator) Loading() bool {
	return p.State() == StateLoading
}

func (p *Paginator) currentLocked(t Ticket) bool {
	return t.Generation == p.generation && p.cancel != nil
}

func (p *Paginator) releaseLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}
