package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type putCall struct {
	Pieza  string
	Estado string
}

// stubService fakes the order service: canned list responses, recorded
// status changes, and a handle on every accepted subscription socket.
type stubService struct {
	srv *httptest.Server

	mu        sync.Mutex
	rows      []map[string]any
	puts      []putCall
	putStatus int

	conns chan *websocket.Conn
}

func newStubService(t *testing.T) *stubService {
	t.Helper()

	s := &stubService{
		putStatus: http.StatusOK,
		conns:     make(chan *websocket.Conn, 4),
	}

	upgrader := websocket.Upgrader{}
	mux := http.NewServeMux()
	mux.HandleFunc("/pedidos", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		rows := s.rows
		s.mu.Unlock()
		if rows == nil {
			rows = []map[string]any{}
		}
		_ = json.NewEncoder(w).Encode(rows)
	})
	mux.HandleFunc("/pedido/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		s.mu.Lock()
		s.puts = append(s.puts, putCall{
			Pieza:  strings.TrimPrefix(r.URL.Path, "/pedido/"),
			Estado: body["estado"],
		})
		status := s.putStatus
		s.mu.Unlock()
		w.WriteHeader(status)
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		s.conns <- conn
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	s.srv = httptest.NewServer(mux)
	t.Cleanup(s.srv.Close)
	return s
}

func (s *stubService) wsURL() string {
	return "ws" + strings.TrimPrefix(s.srv.URL, "http") + "/ws"
}

func (s *stubService) setRows(rows []map[string]any) {
	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()
}

func (s *stubService) setPutStatus(code int) {
	s.mu.Lock()
	s.putStatus = code
	s.mu.Unlock()
}

func (s *stubService) putCalls() []putCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]putCall, len(s.puts))
	copy(out, s.puts)
	return out
}

func (s *stubService) nextConn(t *testing.T) *websocket.Conn {
	t.Helper()
	select {
	case conn := <-s.conns:
		return conn
	case <-time.After(3 * time.Second):
		t.Fatal("no subscription arrived")
		return nil
	}
}

func startAgent(t *testing.T, stub *stubService, cfg Config) (*Agent, chan []Entry) {
	t.Helper()

	cfg.ServerURL = stub.srv.URL
	cfg.WSURL = stub.wsURL()
	if cfg.ReconnectDelay == 0 {
		cfg.ReconnectDelay = 50 * time.Millisecond
	}

	renders := make(chan []Entry, 32)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	agent, err := NewAgent(cfg, func(entries []Entry) { renders <- entries }, logger)
	require.NoError(t, err)

	require.NoError(t, agent.Start(context.Background()))
	t.Cleanup(agent.Stop)
	return agent, renders
}

func nextRender(t *testing.T, renders chan []Entry) []Entry {
	t.Helper()
	select {
	case entries := <-renders:
		return entries
	case <-time.After(3 * time.Second):
		t.Fatal("no render arrived")
		return nil
	}
}

func waitForPuts(t *testing.T, stub *stubService, want int) []putCall {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		calls := stub.putCalls()
		if len(calls) >= want {
			return calls
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected %d status changes, saw %d", want, len(calls))
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func Test_NewAgent_Validation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	render := func([]Entry) {}

	_, err := NewAgent(Config{ServerURL: "http://x", Role: order.RoleDepot}, render, logger)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired, "missing ws url")

	_, err = NewAgent(Config{ServerURL: "http://x", WSURL: "ws://x/ws", Role: order.RoleDepot}, nil, logger)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired, "missing render")

	_, err = NewAgent(Config{ServerURL: "http://x", WSURL: "ws://x/ws"}, render, logger)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid, "missing role")
}

func Test_Agent_Start_RendersSnapshot(t *testing.T) {
	// Given
	stub := newStubService(t)
	stub.setRows([]map[string]any{
		{"pieza": "HC111111111AR", "guarda": "4", "estado": "Pedido al Deposito"},
		{"pieza": "HC222222222AR", "guarda": "9", "estado": "No Entregado"},
	})

	// When
	_, renders := startAgent(t, stub, Config{Role: order.RoleDepot})

	// Then: failed deliveries render first.
	entries := nextRender(t, renders)
	require.Len(t, entries, 2)
	assert.Equal(t, "HC222222222AR", entries[0].Pieza)
	assert.Equal(t, "HC111111111AR", entries[1].Pieza)
}

func Test_Agent_MergesBroadcastEvents(t *testing.T) {
	// Given
	stub := newStubService(t)
	_, renders := startAgent(t, stub, Config{Role: order.RoleDepot})
	nextRender(t, renders) // empty startup snapshot

	conn := stub.nextConn(t)

	// When
	require.NoError(t, conn.WriteJSON(order.Event{
		Pieza: "HC111111111AR", Guarda: "7", Estado: "Pedido al Deposito",
	}))

	// Then
	entries := nextRender(t, renders)
	require.Len(t, entries, 1)
	assert.Equal(t, "HC111111111AR", entries[0].Pieza)
	assert.Equal(t, "7", entries[0].Guarda)
}

func Test_Agent_EventOutsideVisibleSetEvicts(t *testing.T) {
	// Given
	stub := newStubService(t)
	stub.setRows([]map[string]any{
		{"pieza": "HC111111111AR", "guarda": "4", "estado": "Listo para ser Entregado"},
	})
	_, renders := startAgent(t, stub, Config{Role: order.RoleDelivery})
	require.Len(t, nextRender(t, renders), 1)

	conn := stub.nextConn(t)

	// When: the depot terminal delivered it, so the delivery list drops it.
	require.NoError(t, conn.WriteJSON(order.Event{
		Pieza: "HC111111111AR", Guarda: "4", Estado: "Entregado al Cliente",
	}))

	// Then
	assert.Empty(t, nextRender(t, renders))
}

func Test_Agent_Transition_OptimisticUpdateAndServerCall(t *testing.T) {
	// Given
	stub := newStubService(t)
	stub.setRows([]map[string]any{
		{"pieza": "HC111111111AR", "guarda": "4", "estado": "No Entregado"},
	})
	agent, renders := startAgent(t, stub, Config{Role: order.RoleDepot})
	require.Len(t, nextRender(t, renders), 1)

	// When: re-shelving moves the row out of the depot's visible set.
	require.NoError(t, agent.Transition("HC111111111AR", order.EnDeposito))

	// Then: the render happens before any server confirmation.
	assert.Empty(t, nextRender(t, renders))

	calls := waitForPuts(t, stub, 1)
	assert.Equal(t, "HC111111111AR", calls[0].Pieza)
	assert.Equal(t, "En Deposito", calls[0].Estado)
}

func Test_Agent_Transition_FailedCallIsNotRolledBack(t *testing.T) {
	// Given
	stub := newStubService(t)
	stub.setRows([]map[string]any{
		{"pieza": "HC111111111AR", "guarda": "4", "estado": "Pedido al Deposito"},
	})
	stub.setPutStatus(http.StatusInternalServerError)
	agent, renders := startAgent(t, stub, Config{Role: order.RoleDepot})
	require.Len(t, nextRender(t, renders), 1)

	// When
	require.NoError(t, agent.Transition("HC111111111AR", order.ListoParaEntrega))
	assert.Empty(t, nextRender(t, renders))
	waitForPuts(t, stub, 1)

	// Then: the optimistic eviction stands even though the server refused.
	assert.Empty(t, agent.Entries())
}

func Test_Agent_Transition_RejectsMovesTheRoleDoesNotAllow(t *testing.T) {
	// Given
	stub := newStubService(t)
	stub.setRows([]map[string]any{
		{"pieza": "HC111111111AR", "guarda": "4", "estado": "Pedido al Deposito"},
	})
	agent, renders := startAgent(t, stub, Config{Role: order.RoleDepot})
	require.Len(t, nextRender(t, renders), 1)

	// When
	err := agent.Transition("HC111111111AR", order.EntregadoAlCliente)

	// Then
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Empty(t, stub.putCalls())

	err = agent.Transition("XX000000000AR", order.ListoParaEntrega)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func Test_Agent_Advance_FollowsSingleOutgoingTransition(t *testing.T) {
	// Given
	stub := newStubService(t)
	stub.setRows([]map[string]any{
		{"pieza": "HC111111111AR", "guarda": "4", "estado": "Pedido al Deposito"},
	})
	agent, renders := startAgent(t, stub, Config{Role: order.RoleDepot})
	require.Len(t, nextRender(t, renders), 1)

	// When
	require.NoError(t, agent.Advance("HC111111111AR"))

	// Then
	calls := waitForPuts(t, stub, 1)
	assert.Equal(t, "Listo para ser Entregado", calls[0].Estado)
}

func Test_Agent_Advance_AmbiguousMoveIsRejected(t *testing.T) {
	// Given: the delivery role has two moves out of ready, so Advance
	// cannot pick one.
	stub := newStubService(t)
	stub.setRows([]map[string]any{
		{"pieza": "HC111111111AR", "guarda": "4", "estado": "Listo para ser Entregado"},
	})
	agent, renders := startAgent(t, stub, Config{Role: order.RoleDelivery})
	require.Len(t, nextRender(t, renders), 1)

	// When
	err := agent.Advance("HC111111111AR")

	// Then
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_Agent_TransitionWithResult_ReportsServerOutcome(t *testing.T) {
	// Given
	stub := newStubService(t)
	stub.setRows([]map[string]any{
		{"pieza": "HC111111111AR", "guarda": "4", "estado": "No Entregado"},
	})
	stub.setPutStatus(http.StatusNotFound)
	agent, renders := startAgent(t, stub, Config{Role: order.RoleDepot})
	require.Len(t, nextRender(t, renders), 1)

	results := make(chan error, 1)

	// When
	err := agent.TransitionWithResult("HC111111111AR", order.EnDeposito, func(err error) {
		results <- err
	})

	// Then
	require.NoError(t, err)
	select {
	case callErr := <-results:
		assert.ErrorIs(t, callErr, errs.ErrObjectNotFound)
	case <-time.After(3 * time.Second):
		t.Fatal("no mutation result arrived")
	}
}

func Test_Agent_ReconnectsAfterDrop(t *testing.T) {
	// Given
	stub := newStubService(t)
	_, renders := startAgent(t, stub, Config{Role: order.RoleDepot})
	nextRender(t, renders)

	first := stub.nextConn(t)

	// When
	require.NoError(t, first.Close())

	// Then: a fresh subscription arrives after the fixed delay.
	second := stub.nextConn(t)
	require.NoError(t, second.WriteJSON(order.Event{
		Pieza: "HC111111111AR", Guarda: "1", Estado: "Pedido al Deposito",
	}))
	entries := nextRender(t, renders)
	require.Len(t, entries, 1)
	assert.Equal(t, "HC111111111AR", entries[0].Pieza)
}

func Test_Agent_ResyncOnReconnectReloadsSnapshot(t *testing.T) {
	// Given
	stub := newStubService(t)
	_, renders := startAgent(t, stub, Config{Role: order.RoleDepot, ResyncOnReconnect: true})
	assert.Empty(t, nextRender(t, renders))

	first := stub.nextConn(t)
	stub.setRows([]map[string]any{
		{"pieza": "HC555555555AR", "guarda": "2", "estado": "Pedido al Deposito"},
	})

	// When: the row appeared while this subscription is about to drop.
	require.NoError(t, first.Close())
	stub.nextConn(t)

	// Then: the post-reconnect resync picks it up without a live event.
	entries := nextRender(t, renders)
	require.Len(t, entries, 1)
	assert.Equal(t, "HC555555555AR", entries[0].Pieza)
}
