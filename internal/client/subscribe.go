package client

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/order"

	"github.com/gorilla/websocket"
)

// subscribeLoop keeps a subscription open for the life of the agent.
// Every drop, whether dial failure or mid-stream error, is followed by a
// fixed delay and another attempt; there is no retry cap. Events missed
// while disconnected are gone unless ResyncOnReconnect is set.
func (a *Agent) subscribeLoop(ctx context.Context) {
	defer a.wg.Done()

	first := true
	for {
		if ctx.Err() != nil {
			return
		}

		conn, resp, err := websocket.DefaultDialer.DialContext(ctx, a.cfg.WSURL, nil)
		if err != nil {
			if resp != nil {
				_ = resp.Body.Close()
			}
			a.logger.Warn("Subscription dial failed", "url", a.cfg.WSURL, "error", err)
			if !a.waitReconnect(ctx) {
				return
			}
			continue
		}

		a.logger.Info("Subscribed to event stream", "url", a.cfg.WSURL)
		a.setConn(conn)

		if a.cfg.ResyncOnReconnect && !first {
			a.resync(ctx)
		}
		first = false

		a.readEvents(ctx, conn)

		a.setConn(nil)
		_ = conn.Close()

		if !a.waitReconnect(ctx) {
			return
		}
	}
}

// readEvents drains the socket until it fails. Malformed frames drop the
// connection; the outer loop redials.
func (a *Agent) readEvents(ctx context.Context, conn *websocket.Conn) {
	for {
		var ev order.Event
		if err := conn.ReadJSON(&ev); err != nil {
			if ctx.Err() == nil {
				a.logger.Warn("Subscription closed", "error", err)
			}
			return
		}
		a.applyEvent(ev)
	}
}

// waitReconnect sleeps the fixed reconnect delay. Returns false when the
// agent is stopping.
func (a *Agent) waitReconnect(ctx context.Context) bool {
	t := time.NewTimer(a.cfg.ReconnectDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
