// Package taxbit defines one row of a TaxBit transaction export: how it is
// parsed from and written to CSV, how two rows compare, and which asset a
// row is about.
package taxbit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NoAsset is returned by Asset for an Invalid record with no currency set.
const NoAsset = "NO_ASSET"

// Record is one row of a TaxBit export. Time is milliseconds since the Unix
// epoch, UTC. Optional quantities are absent when Valid is false.
type Record struct {
	Time             int64               `json:"time"`
	Type             TransactionType     `json:"type"`
	ReceivedQuantity decimal.NullDecimal `json:"received_quantity"`
	ReceivedCurrency string              `json:"received_currency"`
	SentQuantity     decimal.NullDecimal `json:"sent_quantity"`
	SentCurrency     string              `json:"sent_currency"`
	FeeCurrency      string              `json:"fee_currency"`
	FeeAmount        decimal.NullDecimal `json:"fee_amount"`
	MarketValue      decimal.NullDecimal `json:"market_value"`
	Source           string              `json:"source"`
	InternalTransfer bool                `json:"internal_transfer"`
	ExternalID       string              `json:"external_id"`
}

// New returns the placeholder record: Unknown type, every optional absent.
// It is the same value as Record{}.
func New() Record {
	return Record{
		Time:             0,
		Type:             TransactionTypeUnknown,
		ReceivedQuantity: decimal.NullDecimal{},
		SentQuantity:     decimal.NullDecimal{},
		FeeAmount:        decimal.NullDecimal{},
		MarketValue:      decimal.NullDecimal{},
		InternalTransfer: false,
	}
}

// Asset returns the currency the transaction is about. Outgoing types use
// SentCurrency and incoming types use ReceivedCurrency. An Invalid record
// falls back through received, sent and fee currency, in that order, taking
// the first non-empty one. Asset panics with *InvariantViolation on Unknown.
func (r Record) Asset() string {
	switch r.Type {
	case TransactionTypeExpense,
		TransactionTypeTransferOut,
		TransactionTypeGiftSent,
		TransactionTypeSale:
		return r.SentCurrency
	case TransactionTypeBuy,
		TransactionTypeTransferIn,
		TransactionTypeIncome,
		TransactionTypeGiftReceived,
		TransactionTypeTrade:
		return r.ReceivedCurrency
	case TransactionTypeInvalid:
		switch {
		case r.ReceivedCurrency != "":
			return r.ReceivedCurrency
		case r.SentCurrency != "":
			return r.SentCurrency
		case r.FeeCurrency != "":
			return r.FeeCurrency
		}
		return NoAsset
	}

	violate("Asset", "transaction type %s has no asset", r.Type)
	return ""
}

// String is a debug rendering in column order. Use Schema.FormatRow for
// output that has to be parsed again.
func (r Record) String() string {
	return fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%t,%s",
		FormatTime(r.Time),
		r.Type,
		decimalOrEmpty(r.ReceivedQuantity),
		r.ReceivedCurrency,
		decimalOrEmpty(r.SentQuantity),
		r.SentCurrency,
		r.FeeCurrency,
		decimalOrEmpty(r.FeeAmount),
		decimalOrEmpty(r.MarketValue),
		r.Source,
		r.InternalTransfer,
		r.ExternalID,
	)
}

func decimalOrEmpty(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
