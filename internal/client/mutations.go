package client

import (
	"context"

	"tracking/internal/core/domain/model/order"
)

// mutationRequest is one queued status change. The optional done callback
// receives the server call's outcome so a terminal can surface failures;
// the optimistic cache change stands either way.
type mutationRequest struct {
	pieza  string
	status order.Status
	done   func(error)
}

// enqueueMutation hands a status change to the worker. A full queue falls
// back to a synchronous send so the change is never dropped, at the cost
// of briefly blocking the caller.
func (a *Agent) enqueueMutation(pieza string, status order.Status, done func(error)) {
	req := mutationRequest{pieza: pieza, status: status, done: done}
	select {
	case a.queue <- req:
	default:
		a.logger.Warn("Mutation queue full, sending synchronously", "pieza", pieza)
		a.queue <- req
	}
}

// mutationWorker drains the queue for the life of the agent. Failures are
// logged and passed to the request's callback; there is no retry and no
// cache rollback.
func (a *Agent) mutationWorker(ctx context.Context) {
	defer a.wg.Done()

	for {
		select {
		case <-ctx.Done():
			a.drainQueue(ctx)
			return
		case req := <-a.queue:
			a.performMutation(ctx, req)
		}
	}
}

// drainQueue flushes whatever is still queued at shutdown so accepted
// changes reach the server before the process exits.
func (a *Agent) drainQueue(ctx context.Context) {
	for {
		select {
		case req := <-a.queue:
			a.performMutation(context.WithoutCancel(ctx), req)
		default:
			return
		}
	}
}

func (a *Agent) performMutation(ctx context.Context, req mutationRequest) {
	err := a.api.UpdateOrder(ctx, req.pieza, req.status)
	if err != nil {
		a.logger.Error("Status change failed, local state keeps the optimistic value",
			"pieza", req.pieza, "estado", req.status.String(), "error", err)
	}
	if req.done != nil {
		req.done(err)
	}
}
