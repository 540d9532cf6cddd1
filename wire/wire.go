// Package wire implements the JSON wire format for application
// messages. Inbound requests are dispatched on their "@type" property;
// outbound responses are the mutable messages produced by Factory.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"

	"github.com/corverroos/matchengine/messages"
)

// ErrUnknownType indicates a payload whose "@type" property is missing
// or not a known message type.
var ErrUnknownType = errors.New("unknown message type", j.C("ERR_7e94b0d25a83c16f"))

type envelope struct {
	Type messages.MsgType `json:"@type"`
}

type newOrderSingleJSON struct {
	Type messages.MsgType `json:"@type"`
	messages.NewOrderSingle
}

type orderCancelRequestJSON struct {
	Type messages.MsgType `json:"@type"`
	messages.OrderCancelRequest
}

// DecodeRequest parses an inbound request message. It returns either a
// *messages.NewOrderSingle or a *messages.OrderCancelRequest.
func DecodeRequest(data []byte) (interface{}, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "parse request envelope")
	}

	switch env.Type {
	case messages.MsgTypeNewOrderSingle:
		var m newOrderSingleJSON
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(err, "parse new order single")
		}
		order := m.NewOrderSingle
		return &order, nil

	case messages.MsgTypeOrderCancelRequest:
		var m orderCancelRequestJSON
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(err, "parse order cancel request")
		}
		cancel := m.OrderCancelRequest
		return &cancel, nil

	default:
		return nil, errors.Wrap(ErrUnknownType, "", j.KV("type", string(env.Type)))
	}
}

// EncodeRequest serialises an inbound request message, tagging it with
// its "@type" property.
func EncodeRequest(req interface{}) ([]byte, error) {
	switch m := req.(type) {
	case *messages.NewOrderSingle:
		return json.Marshal(newOrderSingleJSON{
			Type:           messages.MsgTypeNewOrderSingle,
			NewOrderSingle: *m,
		})
	case *messages.OrderCancelRequest:
		return json.Marshal(orderCancelRequestJSON{
			Type:               messages.MsgTypeOrderCancelRequest,
			OrderCancelRequest: *m,
		})
	default:
		return nil, errors.Wrap(ErrUnknownType, "",
			j.KV("go_type", fmt.Sprintf("%T", req)))
	}
}

// Encode serialises an outbound response message.
func Encode(m messages.Mutable) ([]byte, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "encode response")
	}
	return b, nil
}
