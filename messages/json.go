package messages

import (
	"encoding/json"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
)

// ErrUnknownEnum indicates an enum value outside the wire vocabulary.
var ErrUnknownEnum = errors.New("unknown enum value", j.C("ERR_a41c6f20be395d87"))

var (
	sideValues = map[string]Side{
		SideBuy.String():  SideBuy,
		SideSell.String(): SideSell,
	}
	ordTypeValues = map[string]OrdType{
		OrdTypeMarket.String(): OrdTypeMarket,
		OrdTypeLimit.String():  OrdTypeLimit,
	}
	ordStatusValues = map[string]OrdStatus{
		OrdStatusNew.String():             OrdStatusNew,
		OrdStatusPartiallyFilled.String(): OrdStatusPartiallyFilled,
		OrdStatusFilled.String():          OrdStatusFilled,
		OrdStatusCanceled.String():        OrdStatusCanceled,
		OrdStatusRejected.String():        OrdStatusRejected,
	}
	execTypeValues = map[string]ExecType{
		ExecTypeNew.String():      ExecTypeNew,
		ExecTypeTrade.String():    ExecTypeTrade,
		ExecTypeCanceled.String(): ExecTypeCanceled,
		ExecTypeRejected.String(): ExecTypeRejected,
	}
	cxlRejReasonValues = map[string]CxlRejReason{
		CxlRejReasonUnknownOrder.String(): CxlRejReasonUnknownOrder,
	}
)

func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Side) UnmarshalJSON(b []byte) error {
	v, err := unmarshalEnum(b, sideValues, "side")
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (t OrdType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *OrdType) UnmarshalJSON(b []byte) error {
	v, err := unmarshalEnum(b, ordTypeValues, "ord_type")
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (s OrdStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrdStatus) UnmarshalJSON(b []byte) error {
	v, err := unmarshalEnum(b, ordStatusValues, "ord_status")
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (t ExecType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ExecType) UnmarshalJSON(b []byte) error {
	v, err := unmarshalEnum(b, execTypeValues, "exec_type")
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (r CxlRejReason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *CxlRejReason) UnmarshalJSON(b []byte) error {
	v, err := unmarshalEnum(b, cxlRejReasonValues, "cxl_rej_reason")
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func unmarshalEnum[T any](b []byte, values map[string]T, field string) (T, error) {
	var (
		zero T
		str  string
	)
	if err := json.Unmarshal(b, &str); err != nil {
		return zero, errors.Wrap(err, "parse enum", j.KV("field", field))
	}
	v, ok := values[str]
	if !ok {
		return zero, errors.Wrap(ErrUnknownEnum, "", j.MKV{"field": field, "value": str})
	}
	return v, nil
}
