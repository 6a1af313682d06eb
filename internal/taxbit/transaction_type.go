package taxbit

import (
	"cmp"
	"errors"
	"strings"
)

type TransactionType int

const (
	TransactionTypeUnknown TransactionType = iota
	TransactionTypeBuy
	TransactionTypeSale
	TransactionTypeTrade
	TransactionTypeIncome
	TransactionTypeExpense
	TransactionTypeTransferIn
	TransactionTypeTransferOut
	TransactionTypeGiftSent
	TransactionTypeGiftReceived
	TransactionTypeInvalid
)

var ErrUnknownTransactionType = errors.New("unknown transaction type")

var transactionTypeLabels = map[TransactionType]string{
	TransactionTypeUnknown:      "Unknown",
	TransactionTypeBuy:          "Buy",
	TransactionTypeSale:         "Sale",
	TransactionTypeTrade:        "Trade",
	TransactionTypeIncome:       "Income",
	TransactionTypeExpense:      "Expense",
	TransactionTypeTransferIn:   "Transfer In",
	TransactionTypeTransferOut:  "Transfer Out",
	TransactionTypeGiftSent:     "Gift Sent",
	TransactionTypeGiftReceived: "Gift Received",
	TransactionTypeInvalid:      "Invalid",
}

// Sort rank, independent of the constant values above. Inflows rank ahead
// of outflows so an acquisition sorts before a disposal at the same instant.
var transactionTypeRank = map[TransactionType]int{
	TransactionTypeUnknown:      0,
	TransactionTypeBuy:          1,
	TransactionTypeTrade:        2,
	TransactionTypeIncome:       3,
	TransactionTypeGiftReceived: 4,
	TransactionTypeTransferIn:   5,
	TransactionTypeTransferOut:  6,
	TransactionTypeGiftSent:     7,
	TransactionTypeExpense:      8,
	TransactionTypeSale:         9,
	TransactionTypeInvalid:      10,
}

var transactionTypeByKey = func() map[string]TransactionType {
	m := make(map[string]TransactionType, len(transactionTypeLabels))
	for t, label := range transactionTypeLabels {
		m[labelKey(label)] = t
	}
	return m
}()

func labelKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// ParseTransactionType matches label case-insensitively, ignoring spaces,
// underscores and hyphens. Unknown is never accepted and Invalid only under
// SchemaExtended.
func ParseTransactionType(label string, schema Schema) (TransactionType, error) {
	t, ok := transactionTypeByKey[labelKey(label)]
	if !ok || t == TransactionTypeUnknown {
		return TransactionTypeUnknown, formatError(ColumnTransactionType, label, ErrUnknownTransactionType)
	}
	if t == TransactionTypeInvalid && !schema.allowsInvalidType() {
		return TransactionTypeUnknown, formatError(ColumnTransactionType, label, ErrUnknownTransactionType)
	}
	return t, nil
}

func (t TransactionType) String() string {
	if label, ok := transactionTypeLabels[t]; ok {
		return label
	}
	return transactionTypeLabels[TransactionTypeUnknown]
}

func (t TransactionType) rank() int {
	return transactionTypeRank[t]
}

// CompareTransactionTypes returns -1, 0 or +1 following the declared sort rank.
func CompareTransactionTypes(a, b TransactionType) int {
	return cmp.Compare(a.rank(), b.rank())
}

func (t TransactionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TransactionType) UnmarshalText(text []byte) error {
	parsed, err := ParseTransactionType(string(text), SchemaExtended)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
