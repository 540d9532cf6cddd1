// Package match implements a continuous trading matching engine with
// per symbol order books under price/time priority. Market orders are
// immediate-or-cancel; unmatched limit quantity rests in the book.
package match

import (
	"fmt"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
	"github.com/shopspring/decimal"

	"github.com/corverroos/matchengine/messages"
)

// Engine matches buy and sell orders. It is not safe for concurrent
// use; callers feed it from a single dispatch goroutine in arrival
// order.
type Engine struct {
	clock   Clock
	factory messages.MutableResponseMessageFactory

	books    map[string]*OrderBook
	orderSeq int32
	execSeq  int32
}

// NewEngine returns an engine producing responses from factory.
// It defaults to the UTC system clock.
func NewEngine(factory messages.MutableResponseMessageFactory, opts ...Option) *Engine {
	e := &Engine{
		clock:   SystemClock(),
		factory: factory,
		books:   make(map[string]*OrderBook),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// OrderBook returns the symbol's book for inspection, or false if no
// order was ever entered for the symbol. The returned book must not be
// mutated.
func (e *Engine) OrderBook(symbol string) (*OrderBook, bool) {
	book, ok := e.books[symbol]
	return book, ok
}

// Symbols returns the symbols with order books.
func (e *Engine) Symbols() []string {
	res := make([]string, 0, len(e.books))
	for symbol := range e.books {
		res = append(res, symbol)
	}
	return res
}

// OnCancelRequest applies an order cancel request and returns exactly
// one response: a canceled execution report if a resting order was
// removed, else an order cancel reject. The report's source is the
// cancel requester, which may differ from the order's entry source.
func (e *Engine) OnCancelRequest(source string, cancel *messages.OrderCancelRequest) []messages.Mutable {
	if book, ok := e.books[cancel.Symbol]; ok {
		if order := book.RemoveOrder(cancel.Side, cancel.ClOrdID, source); order != nil {
			order.Close()
			return []messages.Mutable{e.executionReportCanceled(source, order)}
		}
	}
	return []messages.Mutable{e.cancelRejectUnknownOrder(source, cancel)}
}

// OnOrder matches a new order against the book and returns one
// execution report per resting counterparty filled, in match order,
// followed by a terminal report for the new order. Execution ids
// across the sequence are strictly increasing. Malformed orders return
// ErrInvalidOrder before any state changes.
func (e *Engine) OnOrder(source string, order *messages.NewOrderSingle) ([]messages.Mutable, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	book, ok := e.books[order.Symbol]
	if !ok {
		book = NewOrderBook()
		e.books[order.Symbol] = book
	}

	wo := newWorkingOrder(order, source, e.nextOrderSeq(), e.clock.Now())

	var (
		responses []messages.Mutable
		fillQtys  []int
		fillPxs   []decimal.Decimal
	)
	for _, rest := range book.FindMatches(wo) {
		fillQty := wo.LeavesQty()
		if rest.LeavesQty() < fillQty {
			fillQty = rest.LeavesQty()
		}

		if err := rest.Execute(fillQty); err != nil {
			return nil, err
		}
		if err := wo.Execute(fillQty); err != nil {
			return nil, err
		}
		fillQtys = append(fillQtys, fillQty)
		fillPxs = append(fillPxs, rest.Price()) // Fills price at the resting order's price.

		status := messages.OrdStatusPartiallyFilled
		if rest.LeavesQty() == 0 {
			status = messages.OrdStatusFilled
		}
		n := len(fillQtys)
		responses = append(responses,
			e.executionReportTrade(rest, fillQtys[n-1:], fillPxs[n-1:], status))

		if rest.LeavesQty() == 0 {
			book.Remove(rest)
		}
		if wo.LeavesQty() == 0 {
			break
		}
	}

	if wo.LeavesQty() > 0 && wo.OrdType() == messages.OrdTypeMarket {
		// Market orders are immediate-or-cancel; cancel the residue.
		wo.Close()
		responses = append(responses,
			e.executionReportTrade(wo, fillQtys, fillPxs, messages.OrdStatusCanceled))
		return responses, nil
	}

	var status messages.OrdStatus
	if wo.LeavesQty() > 0 {
		book.AddOrder(wo)
		if wo.CumQty() == 0 {
			status = messages.OrdStatusNew
		} else {
			status = messages.OrdStatusPartiallyFilled
		}
	} else {
		status = messages.OrdStatusFilled
	}
	responses = append(responses,
		e.executionReportTrade(wo, fillQtys, fillPxs, status))

	return responses, nil
}

func validateOrder(order *messages.NewOrderSingle) error {
	if order.OrderQty <= 0 {
		return errors.Wrap(ErrInvalidOrder, "order quantity not positive",
			j.KV("order_qty", order.OrderQty))
	}
	if order.Side != messages.SideBuy && order.Side != messages.SideSell {
		return errors.Wrap(ErrInvalidOrder, "unsupported side",
			j.KV("side", int(order.Side)))
	}
	switch order.OrdType {
	case messages.OrdTypeMarket:
	case messages.OrdTypeLimit:
		if order.Price.Sign() <= 0 {
			return errors.Wrap(ErrInvalidOrder, "limit order requires positive price",
				j.KV("price", order.Price.String()))
		}
	default:
		return errors.Wrap(ErrInvalidOrder, "unsupported order type",
			j.KV("ord_type", int(order.OrdType)))
	}
	return nil
}

func (e *Engine) nextOrderSeq() int32 {
	e.orderSeq++
	return e.orderSeq
}

func (e *Engine) nextExecID() string {
	e.execSeq++
	return fmt.Sprintf("E%d", e.execSeq)
}

func (e *Engine) executionReportTrade(o *WorkingOrder, fillQtys []int,
	fillPxs []decimal.Decimal, status messages.OrdStatus) messages.MutableExecutionReport {

	er := e.factory.ExecutionReport()
	er.SetClOrdID(o.ClOrdID())
	er.SetCumQty(o.CumQty())
	er.SetExecID(e.nextExecID())
	er.SetExecType(messages.ExecTypeTrade)
	er.SetLeavesQty(o.LeavesQty())
	er.SetOrderID(o.OrderID())
	er.SetOrdStatus(status)
	er.SetSide(o.Side())
	er.SetSymbol(o.Symbol())
	er.SetSource(o.Source())
	for i, qty := range fillQtys {
		fill := er.NextFill()
		fill.SetFillPx(fillPxs[i])
		fill.SetFillQty(qty)
	}
	return er
}

func (e *Engine) executionReportCanceled(source string, o *WorkingOrder) messages.MutableExecutionReport {
	er := e.factory.ExecutionReport()
	er.SetClOrdID(o.ClOrdID())
	er.SetCumQty(o.CumQty())
	er.SetExecID(e.nextExecID())
	er.SetExecType(messages.ExecTypeCanceled)
	er.SetLeavesQty(o.LeavesQty())
	er.SetOrderID(o.OrderID())
	er.SetOrdStatus(messages.OrdStatusCanceled)
	er.SetSide(o.Side())
	er.SetSymbol(o.Symbol())
	er.SetSource(source)
	return er
}

func (e *Engine) cancelRejectUnknownOrder(source string, cancel *messages.OrderCancelRequest) messages.MutableOrderCancelReject {
	rej := e.factory.OrderCancelReject()
	rej.SetClOrdID(cancel.ClOrdID)
	rej.SetCxlRejReason(messages.CxlRejReasonUnknownOrder)
	rej.SetOrderID("None")
	rej.SetOrdStatus(messages.OrdStatusRejected)
	rej.SetSource(source)
	return rej
}
