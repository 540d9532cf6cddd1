// Package gen provides functionality for generating random order flow
// for tests and benchmarks.
package gen

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/corverroos/matchengine/messages"
)

// Request defines an order flow generation request.
type Request struct {
	Rand   *rand.Rand // Rand for deterministic behaviour
	Count  int        // Number of orders to create
	Buy    bool       // Buys or sells
	Market bool       // Market orders instead of limit orders
	Source string     // Session the flow is attributed to

	Qty       float64 // Quantity to aim at
	QtyStdDev float64 // Standard deviation quantity fuzz (10% of quantity is good start)

	Price       float64 // Price to aim at
	PriceStdDev float64 // Standard deviation price fuzz (10% of price is good start)
	PriceScale  int     // Scale for prices

	CancelProb float64 // Probability a limit order will be cancelled later.
}

// Flow is one generated inbound request; either Order or Cancel is set.
type Flow struct {
	Source string
	Order  *messages.NewOrderSingle
	Cancel *messages.OrderCancelRequest
}

// GenFlow returns random order flow based on the request values.
// Cancels reference client order ids generated earlier in the flow.
// Callers should keep Price well above PriceStdDev so limit prices
// stay positive.
func GenFlow(symbol string, req Request) []Flow {
	ch := make(chan rands, 1000)
	go genRands(req, ch)

	var (
		fl      []Flow
		cancels []string
		n       int
	)
	for rands := range ch {
		n++
		clOrdID := fmt.Sprintf("%s-%d", req.Source, n)

		order := &messages.NewOrderSingle{
			ClOrdID:  clOrdID,
			Symbol:   symbol,
			Side:     side(req.Buy),
			OrdType:  messages.OrdTypeLimit,
			Price:    rands.Price,
			OrderQty: rands.Qty,
		}
		if req.Market {
			order.OrdType = messages.OrdTypeMarket
			order.Price = decimal.Zero
		}
		fl = append(fl, Flow{Source: req.Source, Order: order})

		// Maybe add to future cancels.
		if !req.Market && rands.Floats[0] < req.CancelProb {
			cancels = append(cancels, clOrdID)
		}

		// Maybe cancel one previous
		if len(cancels) > 0 && rands.Floats[1] < req.CancelProb {
			// Pick either head or tail.
			var id string
			if rands.Floats[2] < 0.5 {
				id = cancels[0]
				cancels = cancels[1:]
			} else {
				last := len(cancels) - 1
				id = cancels[last]
				cancels = cancels[:last]
			}

			fl = append(fl, Flow{
				Source: req.Source,
				Cancel: &messages.OrderCancelRequest{
					ClOrdID: id,
					Symbol:  symbol,
					Side:    side(req.Buy),
				},
			})
		}
	}

	return fl
}

func side(buy bool) messages.Side {
	if buy {
		return messages.SideBuy
	}
	return messages.SideSell
}

type rands struct {
	Price decimal.Decimal
	Qty   int

	// Floats provide 5 random floats for custom logic.
	Floats [5]float64
}

// genRands returns req.Count deterministic rands structs.
func genRands(req Request, ch chan<- rands) {
	for i := 0; i < req.Count; i++ {
		priceDec := fuzz(req.Rand, req.Price, req.PriceStdDev).
			Round(int32(req.PriceScale))

		qty := int(fuzz(req.Rand, req.Qty, req.QtyStdDev).IntPart())
		if qty < 1 {
			qty = 1
		}

		var floats [5]float64
		for i := 0; i < 5; i++ {
			floats[i] = req.Rand.Float64()
		}

		ch <- rands{
			Price:  priceDec,
			Qty:    qty,
			Floats: floats,
		}
	}

	close(ch)
}

func fuzz(r *rand.Rand, mean, stdDev float64) decimal.Decimal {
	return decimal.NewFromFloat(r.NormFloat64()*stdDev + mean)
}
