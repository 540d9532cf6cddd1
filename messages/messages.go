// Package messages defines the application layer messages consumed and
// produced by the matching engine, and the factory contract for
// building responses.
package messages

import (
	"github.com/shopspring/decimal"
)

//go:generate stringer -type=Side -trimprefix=Side

// Side is the side of an order.
type Side int

const (
	SideUnknown Side = 0
	SideBuy     Side = 1
	SideSell    Side = 2
)

// Opposite returns the contra side.
func (s Side) Opposite() Side {
	switch s {
	case SideBuy:
		return SideSell
	case SideSell:
		return SideBuy
	default:
		return SideUnknown
	}
}

//go:generate stringer -type=OrdType -trimprefix=OrdType

// OrdType is the order type. Market orders carry no price and are
// immediate-or-cancel. Limit orders carry a positive price.
type OrdType int

const (
	OrdTypeUnknown OrdType = 0
	OrdTypeMarket  OrdType = 1
	OrdTypeLimit   OrdType = 2
)

//go:generate stringer -type=OrdStatus -trimprefix=OrdStatus

// OrdStatus is the state of an order as reported on executions.
type OrdStatus int

const (
	OrdStatusUnknown         OrdStatus = 0
	OrdStatusNew             OrdStatus = 1
	OrdStatusPartiallyFilled OrdStatus = 2
	OrdStatusFilled          OrdStatus = 3
	OrdStatusCanceled        OrdStatus = 4
	OrdStatusRejected        OrdStatus = 5
)

//go:generate stringer -type=ExecType -trimprefix=ExecType

// ExecType is the event type of an execution report.
type ExecType int

const (
	ExecTypeUnknown  ExecType = 0
	ExecTypeNew      ExecType = 1
	ExecTypeTrade    ExecType = 2
	ExecTypeCanceled ExecType = 3
	ExecTypeRejected ExecType = 4
)

//go:generate stringer -type=CxlRejReason -trimprefix=CxlRejReason

// CxlRejReason is the reason a cancel request was rejected.
type CxlRejReason int

const (
	CxlRejReasonUnknown      CxlRejReason = 0
	CxlRejReasonUnknownOrder CxlRejReason = 1
)

// NewOrderSingle is an inbound request to enter an order.
type NewOrderSingle struct {
	ClOrdID  string          `json:"clOrdId"`
	Symbol   string          `json:"symbol"`
	Side     Side            `json:"side"`
	OrdType  OrdType         `json:"ordType"`
	Price    decimal.Decimal `json:"price"` // Zero for market orders.
	OrderQty int             `json:"orderQty"`
}

// OrderCancelRequest is an inbound request to cancel a resting order.
type OrderCancelRequest struct {
	ClOrdID string `json:"clOrdId"`
	Symbol  string `json:"symbol"`
	Side    Side   `json:"side"`
}
