// Package matchengine wires the matching core into a sequential
// dispatch loop. Inbound requests are applied in arrival order and
// every response is written to the output channel before the next
// request is taken.
package matchengine

import (
	"context"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
	"github.com/luno/jettison/log"

	"github.com/corverroos/matchengine/match"
	"github.com/corverroos/matchengine/messages"
)

// Inbound is an application request attributed to a source session.
// Exactly one of Order and Cancel is set.
type Inbound struct {
	Source string
	Order  *messages.NewOrderSingle
	Cancel *messages.OrderCancelRequest
}

// Run feeds inbound requests to the engine and fans responses out to
// output. It returns on context cancellation or when the engine
// rejects a malformed order; domain failures (unknown cancels) are
// reported as response messages and do not stop the loop.
func Run(ctx context.Context, engine *match.Engine,
	input <-chan Inbound, output chan<- messages.Mutable, opts ...Option) error {

	s := &state{countInc: func() {}}
	for _, opt := range opts {
		opt(s)
	}
	if s.m != nil {
		s.m.getInput = func() int {
			return len(input)
		}
		s.m.getOutput = func() int {
			return len(output)
		}
		s.countInc = s.m.incCount
	}

	log.Info(ctx, "matchengine: dispatch loop starting")

	for {
		var in Inbound
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in = <-input:
		}

		var (
			symbol    string
			responses []messages.Mutable
			err       error
		)
		switch {
		case in.Order != nil:
			symbol = in.Order.Symbol
			requestsTotal.WithLabelValues("order").Inc()
			responses, err = engine.OnOrder(in.Source, in.Order)
		case in.Cancel != nil:
			symbol = in.Cancel.Symbol
			requestsTotal.WithLabelValues("cancel").Inc()
			responses = engine.OnCancelRequest(in.Source, in.Cancel)
		default:
			return errors.New("empty inbound envelope", j.KV("source", in.Source))
		}
		if err != nil {
			log.Error(ctx, errors.Wrap(err, "rejecting order",
				j.KV("source", in.Source)))
			return err
		}

		s.countInc()

		for _, r := range responses {
			responsesTotal.WithLabelValues(string(r.MsgType())).Inc()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case output <- r:
			}
		}

		if book, ok := engine.OrderBook(symbol); ok {
			bookDepth.WithLabelValues(symbol, "bid").Set(float64(book.BidCount()))
			bookDepth.WithLabelValues(symbol, "ask").Set(float64(book.AskCount()))
		}
	}
}

type state struct {
	m        *Metrics
	countInc func()
}

// Option configures the dispatch loop.
type Option func(*state)

// WithMetrics attaches m to the dispatch loop.
func WithMetrics(m *Metrics) Option {
	return func(s *state) {
		s.m = m
	}
}
