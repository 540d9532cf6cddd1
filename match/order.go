package match

import (
	"fmt"
	"time"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
	"github.com/shopspring/decimal"

	"github.com/corverroos/matchengine/messages"
)

// WorkingOrder is the engine's view of an accepted order. It rests in
// at most one order book side and is mutated only by Execute and
// Close. Quantities always satisfy cumQty + leavesQty == orderQty.
type WorkingOrder struct {
	orderID   string
	seq       int32 // Numeric part of orderID, final priority tie-break.
	clOrdID   string
	source    string
	symbol    string
	side      messages.Side
	ordType   messages.OrdType
	price     decimal.Decimal
	orderQty  int
	cumQty    int
	entryTime time.Time
	open      bool
}

func newWorkingOrder(order *messages.NewOrderSingle, source string, seq int32, entryTime time.Time) *WorkingOrder {
	return &WorkingOrder{
		orderID:   fmt.Sprintf("O%d", seq),
		seq:       seq,
		clOrdID:   order.ClOrdID,
		source:    source,
		symbol:    order.Symbol,
		side:      order.Side,
		ordType:   order.OrdType,
		price:     order.Price,
		orderQty:  order.OrderQty,
		entryTime: entryTime,
		open:      true,
	}
}

func (o *WorkingOrder) OrderID() string {
	return o.orderID
}

func (o *WorkingOrder) ClOrdID() string {
	return o.clOrdID
}

func (o *WorkingOrder) Source() string {
	return o.source
}

func (o *WorkingOrder) Symbol() string {
	return o.symbol
}

func (o *WorkingOrder) Side() messages.Side {
	return o.side
}

func (o *WorkingOrder) OrdType() messages.OrdType {
	return o.ordType
}

func (o *WorkingOrder) Price() decimal.Decimal {
	return o.price
}

func (o *WorkingOrder) OrderQty() int {
	return o.orderQty
}

func (o *WorkingOrder) CumQty() int {
	return o.cumQty
}

// LeavesQty returns the remaining executable quantity.
func (o *WorkingOrder) LeavesQty() int {
	return o.orderQty - o.cumQty
}

func (o *WorkingOrder) EntryTime() time.Time {
	return o.entryTime
}

// Open returns false once the order is fully filled or cancelled.
func (o *WorkingOrder) Open() bool {
	return o.open
}

// Execute fills qty of the order's remaining quantity. The order must
// be open and 0 < qty <= LeavesQty.
func (o *WorkingOrder) Execute(qty int) error {
	if !o.open {
		return errors.Wrap(ErrInvalidState, "execute on closed order",
			j.KV("order_id", o.orderID))
	}
	if qty <= 0 || qty > o.LeavesQty() {
		return errors.Wrap(ErrInvalidState, "execute quantity out of range",
			j.MKV{"order_id": o.orderID, "qty": qty, "leaves_qty": o.LeavesQty()})
	}

	o.cumQty += qty
	return nil
}

// Close marks the order done. No execution or cancellation may follow.
func (o *WorkingOrder) Close() {
	o.open = false
}
