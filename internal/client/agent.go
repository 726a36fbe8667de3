// Package client implements the synchronization agent that runs inside
// each role terminal. The agent loads a startup snapshot over REST, keeps
// a local cache current from the broadcast stream, and issues optimistic
// status changes that are confirmed asynchronously by the server's echo.
package client

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/gorilla/websocket"
)

const (
	defaultReconnectDelay    = 5 * time.Second
	defaultMutationQueueSize = 16
)

// Config carries everything an agent needs to reach the order service.
type Config struct {
	// ServerURL is the REST base URL, e.g. http://localhost:8000.
	ServerURL string
	// WSURL is the subscription endpoint, e.g. ws://localhost:8000/ws.
	WSURL string
	// Role decides which statuses the terminal displays and which
	// transitions its actions may trigger.
	Role order.Role
	// ReconnectDelay is the fixed wait between subscription attempts.
	// There is no backoff and no retry cap.
	ReconnectDelay time.Duration
	// RequestTimeout bounds every REST call.
	RequestTimeout time.Duration
	// ResyncOnReconnect reloads the full snapshot after every successful
	// redial, closing the gap left by events missed while disconnected.
	// Off by default: the plain behavior is to stay stale until the next
	// live event for the same pieza.
	ResyncOnReconnect bool
	// MutationQueueSize bounds the outbound status-change queue.
	MutationQueueSize int
}

// RenderFunc receives the visible entries in display order after every
// cache change. Called from agent goroutines, never concurrently with
// itself.
type RenderFunc func([]Entry)

// Agent is the per-terminal synchronization state machine.
type Agent struct {
	cfg    Config
	api    *APIClient
	cache  *Cache
	render RenderFunc
	logger *slog.Logger

	queue chan mutationRequest

	mu       sync.Mutex
	conn     *websocket.Conn
	cancel   context.CancelFunc
	started  bool
	renderMu sync.Mutex

	wg sync.WaitGroup
}

// NewAgent creates an agent for one role terminal. The render callback is
// required; nil config durations fall back to defaults.
func NewAgent(cfg Config, render RenderFunc, logger *slog.Logger) (*Agent, error) {
	if cfg.WSURL == "" {
		return nil, errs.NewValueIsRequiredError("wsURL")
	}
	if render == nil {
		return nil, errs.NewValueIsRequiredError("render")
	}
	if err := cfg.Role.Validate(); err != nil {
		return nil, err
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = defaultReconnectDelay
	}
	if cfg.MutationQueueSize <= 0 {
		cfg.MutationQueueSize = defaultMutationQueueSize
	}

	api, err := NewAPIClient(cfg.ServerURL, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &Agent{
		cfg:    cfg,
		api:    api,
		cache:  NewCache(cfg.Role),
		render: render,
		logger: logger.With("component", "sync_agent", "role", cfg.Role.String()),
		queue:  make(chan mutationRequest, cfg.MutationQueueSize),
	}, nil
}

// Start loads the initial snapshot and launches the subscription and
// mutation workers. A failed snapshot load is logged and rendered empty;
// the subscription loop will keep the terminal alive regardless.
func (a *Agent) Start(ctx context.Context) error {
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return errs.NewValueIsInvalidError("agent already started")
	}
	a.started = true
	ctx, a.cancel = context.WithCancel(ctx)
	a.mu.Unlock()

	a.resync(ctx)

	a.wg.Add(2)
	go a.subscribeLoop(ctx)
	go a.mutationWorker(ctx)
	return nil
}

// Stop signals the workers to finish, closes the live subscription socket
// to unblock its read, and waits for both workers to return.
func (a *Agent) Stop() {
	a.mu.Lock()
	cancel := a.cancel
	conn := a.conn
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.Close()
	}
	a.wg.Wait()
}

// Entries returns the current visible entries in display order.
func (a *Agent) Entries() []Entry {
	return a.cache.Snapshot()
}

// Transition applies a role action to the order identified by pieza: the
// cache changes and the terminal re-renders immediately, then the server
// call is queued on the mutation worker. A failed call is logged but never
// rolled back locally; the next broadcast for the same pieza restores
// server truth.
func (a *Agent) Transition(pieza string, target order.Status) error {
	return a.TransitionWithResult(pieza, target, nil)
}

// TransitionWithResult behaves like Transition and additionally reports the
// server call's outcome through done, so a terminal can surface the failure
// to its user. The optimistic local change stands regardless of the outcome.
func (a *Agent) TransitionWithResult(pieza string, target order.Status, done func(error)) error {
	entry, ok := a.cache.Get(pieza)
	if !ok {
		return errs.NewObjectNotFoundError("pieza", pieza)
	}
	if !a.cfg.Role.Allows(entry.Status, target) {
		return errs.NewValueIsInvalidError("estado")
	}

	if a.cache.SetStatus(pieza, target) {
		a.renderNow()
	}

	a.enqueueMutation(pieza, target, done)
	return nil
}

// Advance applies the role's single outgoing transition for the order's
// current status. Fails when the role offers no move, or more than one,
// from that status.
func (a *Agent) Advance(pieza string) error {
	entry, ok := a.cache.Get(pieza)
	if !ok {
		return errs.NewObjectNotFoundError("pieza", pieza)
	}

	target, ok := a.cfg.Role.NextStatus(entry.Status)
	if !ok {
		return errs.NewValueIsInvalidError("estado")
	}
	return a.Transition(pieza, target)
}

// resync reloads the role's visible rows into the cache and re-renders.
// Network failures reduce to a log line and an empty snapshot.
func (a *Agent) resync(ctx context.Context) {
	entries, err := a.api.ListOrders(ctx, a.cfg.Role.VisibleStatuses())
	if err != nil {
		a.logger.Error("Snapshot load failed", "error", err)
		entries = nil
	}

	a.cache.ReplaceAll(entries)
	a.renderNow()
}

// applyEvent merges one broadcast event and re-renders when the visible
// set changed.
func (a *Agent) applyEvent(ev order.Event) {
	status, err := order.ParseStatus(ev.Estado)
	if err != nil {
		a.logger.Warn("Dropping event with unknown estado", "pieza", ev.Pieza, "estado", ev.Estado)
		return
	}

	changed := a.cache.Apply(Entry{
		Pieza:         ev.Pieza,
		Guarda:        ev.Guarda,
		Status:        status,
		PosteRestante: ev.PosteRestante,
	})
	if changed {
		a.renderNow()
	}
}

func (a *Agent) renderNow() {
	a.renderMu.Lock()
	defer a.renderMu.Unlock()
	a.render(a.cache.Snapshot())
}

func (a *Agent) setConn(conn *websocket.Conn) {
	a.mu.Lock()
	a.conn = conn
	a.mu.Unlock()
}
