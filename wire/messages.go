package wire

import (
	"github.com/shopspring/decimal"

	"github.com/corverroos/matchengine/messages"
)

// ExecutionReport is the JSON outbound execution report.
type ExecutionReport struct {
	Type      messages.MsgType   `json:"@type"`
	ClOrdID   string             `json:"clOrdId"`
	OrderID   string             `json:"orderId"`
	ExecID    string             `json:"execId"`
	ExecType  messages.ExecType  `json:"execType"`
	OrdStatus messages.OrdStatus `json:"ordStatus"`
	Side      messages.Side      `json:"side"`
	Symbol    string             `json:"symbol"`
	Source    string             `json:"source"`
	CumQty    int                `json:"cumQty"`
	LeavesQty int                `json:"leavesQty"`
	Fills     []Fill             `json:"fills,omitempty"`
}

// Fill is one fill sub-record of an execution report.
type Fill struct {
	FillPx  decimal.Decimal `json:"fillPx"`
	FillQty int             `json:"fillQty"`
}

func (m *ExecutionReport) MsgType() messages.MsgType {
	return messages.MsgTypeExecutionReport
}

func (m *ExecutionReport) SetClOrdID(v string) {
	m.ClOrdID = v
}

func (m *ExecutionReport) SetCumQty(v int) {
	m.CumQty = v
}

func (m *ExecutionReport) SetExecID(v string) {
	m.ExecID = v
}

func (m *ExecutionReport) SetExecType(v messages.ExecType) {
	m.ExecType = v
}

func (m *ExecutionReport) SetLeavesQty(v int) {
	m.LeavesQty = v
}

func (m *ExecutionReport) SetOrderID(v string) {
	m.OrderID = v
}

func (m *ExecutionReport) SetOrdStatus(v messages.OrdStatus) {
	m.OrdStatus = v
}

func (m *ExecutionReport) SetSide(v messages.Side) {
	m.Side = v
}

func (m *ExecutionReport) SetSymbol(v string) {
	m.Symbol = v
}

func (m *ExecutionReport) SetSource(v string) {
	m.Source = v
}

func (m *ExecutionReport) NextFill() messages.MutableFill {
	m.Fills = append(m.Fills, Fill{})
	return &m.Fills[len(m.Fills)-1]
}

func (f *Fill) SetFillPx(v decimal.Decimal) {
	f.FillPx = v
}

func (f *Fill) SetFillQty(v int) {
	f.FillQty = v
}

// OrderCancelReject is the JSON outbound cancel reject.
type OrderCancelReject struct {
	Type         messages.MsgType      `json:"@type"`
	ClOrdID      string                `json:"clOrdId"`
	OrderID      string                `json:"orderId"`
	CxlRejReason messages.CxlRejReason `json:"cxlRejReason"`
	OrdStatus    messages.OrdStatus    `json:"ordStatus"`
	Source       string                `json:"source"`
}

func (m *OrderCancelReject) MsgType() messages.MsgType {
	return messages.MsgTypeOrderCancelReject
}

func (m *OrderCancelReject) SetClOrdID(v string) {
	m.ClOrdID = v
}

func (m *OrderCancelReject) SetCxlRejReason(v messages.CxlRejReason) {
	m.CxlRejReason = v
}

func (m *OrderCancelReject) SetOrderID(v string) {
	m.OrderID = v
}

func (m *OrderCancelReject) SetOrdStatus(v messages.OrdStatus) {
	m.OrdStatus = v
}

func (m *OrderCancelReject) SetSource(v string) {
	m.Source = v
}

// Factory produces JSON response messages.
type Factory struct{}

func (Factory) ExecutionReport() messages.MutableExecutionReport {
	return &ExecutionReport{Type: messages.MsgTypeExecutionReport}
}

func (Factory) OrderCancelReject() messages.MutableOrderCancelReject {
	return &OrderCancelReject{Type: messages.MsgTypeOrderCancelReject}
}
