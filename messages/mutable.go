package messages

import (
	"github.com/shopspring/decimal"
)

// MsgType identifies the wire type of an application message.
type MsgType string

const (
	MsgTypeNewOrderSingle     MsgType = "NewOrderSingle"
	MsgTypeOrderCancelRequest MsgType = "OrderCancelRequest"
	MsgTypeExecutionReport    MsgType = "ExecutionReport"
	MsgTypeOrderCancelReject  MsgType = "OrderCancelReject"
)

// Mutable is an outbound response message under construction.
type Mutable interface {
	MsgType() MsgType
}

// MutableExecutionReport is an execution report being populated by the
// engine. Setters mirror the report's wire fields.
type MutableExecutionReport interface {
	Mutable
	SetClOrdID(string)
	SetCumQty(int)
	SetExecID(string)
	SetExecType(ExecType)
	SetLeavesQty(int)
	SetOrderID(string)
	SetOrdStatus(OrdStatus)
	SetSide(Side)
	SetSymbol(string)
	SetSource(string)

	// NextFill appends a fill sub-record and returns it for population.
	NextFill() MutableFill
}

// MutableFill is one fill sub-record of an execution report.
type MutableFill interface {
	SetFillPx(decimal.Decimal)
	SetFillQty(int)
}

// MutableOrderCancelReject is a cancel reject being populated by the
// engine.
type MutableOrderCancelReject interface {
	Mutable
	SetClOrdID(string)
	SetCxlRejReason(CxlRejReason)
	SetOrderID(string)
	SetOrdStatus(OrdStatus)
	SetSource(string)
}

// MutableResponseMessageFactory provides outbound response messages.
// Each call returns a fresh, independently owned message.
type MutableResponseMessageFactory interface {
	ExecutionReport() MutableExecutionReport
	OrderCancelReject() MutableOrderCancelReject
}
