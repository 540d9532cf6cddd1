package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corverroos/matchengine/messages"
)

func TestBookPriorityOrdering(t *testing.T) {
	book := NewOrderBook()
	t0 := time.Unix(100, 0)

	b1 := addLimit(book, 1, "U1", "C1", messages.SideBuy, 100, t0)
	b2 := addLimit(book, 2, "U2", "C2", messages.SideBuy, 101, t0.Add(time.Millisecond))
	b3 := addLimit(book, 3, "U3", "C3", messages.SideBuy, 101, t0.Add(2*time.Millisecond))
	// Same price and entry time as b3; order sequence breaks the tie.
	b4 := addLimit(book, 4, "U4", "C4", messages.SideBuy, 101, t0.Add(2*time.Millisecond))

	require.Equal(t, []*WorkingOrder{b2, b3, b4, b1}, book.Bids())

	a1 := addLimit(book, 5, "U1", "C5", messages.SideSell, 103, t0)
	a2 := addLimit(book, 6, "U2", "C6", messages.SideSell, 102, t0.Add(time.Millisecond))
	a3 := addLimit(book, 7, "U3", "C7", messages.SideSell, 102, t0.Add(2*time.Millisecond))

	require.Equal(t, []*WorkingOrder{a2, a3, a1}, book.Asks())

	require.Equal(t, 4, book.BidCount())
	require.Equal(t, 3, book.AskCount())
}

func TestBookRemoveOrder(t *testing.T) {
	book := NewOrderBook()
	t0 := time.Unix(100, 0)

	low := addLimit(book, 1, "U1", "C1", messages.SideBuy, 100, t0)
	high := addLimit(book, 2, "U1", "C1", messages.SideBuy, 101, t0.Add(time.Millisecond))

	// Unknown client order id or wrong source removes nothing.
	require.Nil(t, book.RemoveOrder(messages.SideBuy, "C9", "U1"))
	require.Nil(t, book.RemoveOrder(messages.SideBuy, "C1", "U9"))
	require.Nil(t, book.RemoveOrder(messages.SideSell, "C1", "U1"))
	require.Equal(t, 2, book.BidCount())

	// Duplicate client order ids remove the best priority order first.
	require.Equal(t, high, book.RemoveOrder(messages.SideBuy, "C1", "U1"))
	require.Equal(t, low, book.RemoveOrder(messages.SideBuy, "C1", "U1"))
	require.Nil(t, book.RemoveOrder(messages.SideBuy, "C1", "U1"))
	require.Equal(t, 0, book.BidCount())
}

func TestBookFindMatches(t *testing.T) {
	book := NewOrderBook()
	t0 := time.Unix(100, 0)

	a1 := addLimit(book, 1, "U1", "C1", messages.SideSell, 100, t0)
	a2 := addLimit(book, 2, "U2", "C2", messages.SideSell, 101, t0.Add(time.Millisecond))
	a3 := addLimit(book, 3, "U3", "C3", messages.SideSell, 102, t0.Add(2*time.Millisecond))

	incoming := func(side messages.Side, ordType messages.OrdType, price int64) *WorkingOrder {
		order := &messages.NewOrderSingle{
			ClOrdID: "CX", Symbol: "ABC", Side: side, OrdType: ordType, OrderQty: 1,
		}
		if ordType == messages.OrdTypeLimit {
			order.Price = d(price)
		}
		return newWorkingOrder(order, "U9", 99, t0.Add(time.Second))
	}

	// Limit buys take asks priced at or below the limit.
	require.Equal(t, []*WorkingOrder{a1, a2},
		book.FindMatches(incoming(messages.SideBuy, messages.OrdTypeLimit, 101)))
	require.Equal(t, []*WorkingOrder{a1},
		book.FindMatches(incoming(messages.SideBuy, messages.OrdTypeLimit, 100)))
	require.Empty(t,
		book.FindMatches(incoming(messages.SideBuy, messages.OrdTypeLimit, 99)))

	// Market orders take the whole contra side.
	require.Equal(t, []*WorkingOrder{a1, a2, a3},
		book.FindMatches(incoming(messages.SideBuy, messages.OrdTypeMarket, 0)))

	// Limit sells take bids priced at or above the limit.
	b1 := addLimit(book, 4, "U4", "C4", messages.SideBuy, 98, t0)
	b2 := addLimit(book, 5, "U5", "C5", messages.SideBuy, 97, t0.Add(time.Millisecond))
	require.Equal(t, []*WorkingOrder{b1, b2},
		book.FindMatches(incoming(messages.SideSell, messages.OrdTypeLimit, 97)))
	require.Equal(t, []*WorkingOrder{b1},
		book.FindMatches(incoming(messages.SideSell, messages.OrdTypeLimit, 98)))
}

func TestBookRemove(t *testing.T) {
	book := NewOrderBook()
	t0 := time.Unix(100, 0)

	a1 := addLimit(book, 1, "U1", "C1", messages.SideSell, 100, t0)
	a2 := addLimit(book, 2, "U2", "C2", messages.SideSell, 101, t0)

	book.Remove(a1)
	require.Equal(t, []*WorkingOrder{a2}, book.Asks())
	require.Empty(t, book.Bids())
}

func addLimit(book *OrderBook, seq int32, source, clOrdID string,
	side messages.Side, price int64, at time.Time) *WorkingOrder {

	wo := newWorkingOrder(&messages.NewOrderSingle{
		ClOrdID:  clOrdID,
		Symbol:   "ABC",
		Side:     side,
		OrdType:  messages.OrdTypeLimit,
		Price:    d(price),
		OrderQty: 10,
	}, source, seq, at)
	book.AddOrder(wo)
	return wo
}
