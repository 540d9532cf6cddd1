package match

import (
	"testing"
	"time"

	"github.com/luno/jettison/jtest"
	"github.com/stretchr/testify/require"

	"github.com/corverroos/matchengine/messages"
)

func TestWorkingOrderExecute(t *testing.T) {
	wo := newWorkingOrder(&messages.NewOrderSingle{
		ClOrdID:  "C1",
		Symbol:   "ABC",
		Side:     messages.SideBuy,
		OrdType:  messages.OrdTypeLimit,
		Price:    d(100),
		OrderQty: 10,
	}, "U1", 1, time.Unix(1, 0))

	require.Equal(t, "O1", wo.OrderID())
	require.Equal(t, "C1", wo.ClOrdID())
	require.Equal(t, "U1", wo.Source())
	require.Equal(t, 10, wo.OrderQty())
	require.Equal(t, 0, wo.CumQty())
	require.Equal(t, 10, wo.LeavesQty())
	require.True(t, wo.Open())

	require.NoError(t, wo.Execute(4))
	require.Equal(t, 4, wo.CumQty())
	require.Equal(t, 6, wo.LeavesQty())

	// Quantity out of range.
	jtest.Require(t, ErrInvalidState, wo.Execute(7))
	jtest.Require(t, ErrInvalidState, wo.Execute(0))
	jtest.Require(t, ErrInvalidState, wo.Execute(-1))

	require.NoError(t, wo.Execute(6))
	require.Equal(t, 10, wo.CumQty())
	require.Equal(t, 0, wo.LeavesQty())

	jtest.Require(t, ErrInvalidState, wo.Execute(1))
}

func TestWorkingOrderClose(t *testing.T) {
	wo := newWorkingOrder(&messages.NewOrderSingle{
		ClOrdID:  "C1",
		Symbol:   "ABC",
		Side:     messages.SideSell,
		OrdType:  messages.OrdTypeLimit,
		Price:    d(100),
		OrderQty: 10,
	}, "U1", 2, time.Unix(1, 0))

	wo.Close()
	require.False(t, wo.Open())
	jtest.Require(t, ErrInvalidState, wo.Execute(1))

	// Quantities are unaffected by closing.
	require.Equal(t, 0, wo.CumQty())
	require.Equal(t, 10, wo.LeavesQty())
}
