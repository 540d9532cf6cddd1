package match

import (
	"github.com/google/btree"

	"github.com/corverroos/matchengine/messages"
)

const btreeDegree = 16

// OrderBook holds the open resting orders of one symbol, one
// priority-ordered side for bids and one for asks. Bids order best
// first by highest price, asks by lowest price; ties break on earlier
// entry time, then lower order sequence.
type OrderBook struct {
	bids *btree.BTreeG[*WorkingOrder]
	asks *btree.BTreeG[*WorkingOrder]
}

// NewOrderBook returns an empty order book.
func NewOrderBook() *OrderBook {
	return &OrderBook{
		bids: btree.NewG(btreeDegree, bidBefore),
		asks: btree.NewG(btreeDegree, askBefore),
	}
}

func bidBefore(a, b *WorkingOrder) bool {
	switch a.price.Cmp(b.price) {
	case 1:
		return true
	case -1:
		return false
	}
	return timeSeqBefore(a, b)
}

func askBefore(a, b *WorkingOrder) bool {
	switch a.price.Cmp(b.price) {
	case -1:
		return true
	case 1:
		return false
	}
	return timeSeqBefore(a, b)
}

func timeSeqBefore(a, b *WorkingOrder) bool {
	if a.entryTime.Before(b.entryTime) {
		return true
	}
	if b.entryTime.Before(a.entryTime) {
		return false
	}
	return a.seq < b.seq
}

func (b *OrderBook) side(side messages.Side) *btree.BTreeG[*WorkingOrder] {
	if side == messages.SideBuy {
		return b.bids
	}
	return b.asks
}

// AddOrder rests an open limit order with remaining quantity on its
// side of the book. Order ids are unique so duplicates cannot occur.
func (b *OrderBook) AddOrder(o *WorkingOrder) {
	b.side(o.side).ReplaceOrInsert(o)
}

// RemoveOrder removes and returns the open order on side matching
// clOrdID and source, or nil if none rests. Clients may reuse client
// order ids, so the best-priority match wins.
func (b *OrderBook) RemoveOrder(side messages.Side, clOrdID, source string) *WorkingOrder {
	var found *WorkingOrder
	b.side(side).Ascend(func(o *WorkingOrder) bool {
		if o.clOrdID == clOrdID && o.source == source {
			found = o
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}

	b.side(side).Delete(found)
	return found
}

// FindMatches returns the contra side resting orders eligible to trade
// against incoming, best priority first. Callers drain matches in
// order and remove fully filled orders via Remove.
func (b *OrderBook) FindMatches(incoming *WorkingOrder) []*WorkingOrder {
	var matches []*WorkingOrder
	b.side(incoming.side.Opposite()).Ascend(func(o *WorkingOrder) bool {
		if incoming.ordType == messages.OrdTypeLimit && !crosses(incoming, o) {
			// Contra prices only get worse from here.
			return false
		}
		matches = append(matches, o)
		return true
	})
	return matches
}

// Remove deletes a resting order from its side.
func (b *OrderBook) Remove(o *WorkingOrder) {
	b.side(o.side).Delete(o)
}

// crosses returns true if the incoming limit price is compatible with
// the resting contra price.
func crosses(incoming, resting *WorkingOrder) bool {
	if incoming.side == messages.SideBuy {
		return resting.price.Cmp(incoming.price) <= 0
	}
	return resting.price.Cmp(incoming.price) >= 0
}

// Bids returns the resting bids in priority order.
func (b *OrderBook) Bids() []*WorkingOrder {
	return collect(b.bids)
}

// Asks returns the resting asks in priority order.
func (b *OrderBook) Asks() []*WorkingOrder {
	return collect(b.asks)
}

// BidCount returns the number of resting bids.
func (b *OrderBook) BidCount() int {
	return b.bids.Len()
}

// AskCount returns the number of resting asks.
func (b *OrderBook) AskCount() int {
	return b.asks.Len()
}

func collect(t *btree.BTreeG[*WorkingOrder]) []*WorkingOrder {
	res := make([]*WorkingOrder, 0, t.Len())
	t.Ascend(func(o *WorkingOrder) bool {
		res = append(res, o)
		return true
	})
	return res
}
