package taxbit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionType_Labels(t *testing.T) {
	tests := map[string]TransactionType{
		"Buy":           TransactionTypeBuy,
		"sale":          TransactionTypeSale,
		"TRADE":         TransactionTypeTrade,
		"Income":        TransactionTypeIncome,
		"Expense":       TransactionTypeExpense,
		"Transfer In":   TransactionTypeTransferIn,
		"TransferIn":    TransactionTypeTransferIn,
		"transfer_out":  TransactionTypeTransferOut,
		"Gift Sent":     TransactionTypeGiftSent,
		"gift-received": TransactionTypeGiftReceived,
		"Invalid":       TransactionTypeInvalid,
	}

	for label, expected := range tests {
		got, err := ParseTransactionType(label, SchemaExtended)
		require.NoError(t, err, label)
		assert.Equal(t, expected, got, label)
	}
}

func TestParseTransactionType_Rejects(t *testing.T) {
	for _, label := range []string{"", "Unknown", "Airdrop", "Transfer"} {
		_, err := ParseTransactionType(label, SchemaExtended)
		assert.ErrorIs(t, err, ErrUnknownTransactionType, label)
		assert.ErrorIs(t, err, ErrFormat, label)
	}

	_, err := ParseTransactionType("Invalid", SchemaBasic)
	assert.ErrorIs(t, err, ErrUnknownTransactionType)
}

func TestTransactionType_StringRoundTrip(t *testing.T) {
	for typ := range transactionTypeLabels {
		if typ == TransactionTypeUnknown {
			continue
		}
		parsed, err := ParseTransactionType(typ.String(), SchemaExtended)
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}

	assert.Equal(t, "Unknown", TransactionType(99).String())
}

func TestTransactionType_RankCoversEveryType(t *testing.T) {
	seen := map[int]bool{}
	for typ := range transactionTypeLabels {
		rank, ok := transactionTypeRank[typ]
		require.True(t, ok, typ.String())
		assert.False(t, seen[rank], "duplicate rank %d", rank)
		seen[rank] = true
	}
}

func TestTransactionType_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Type TransactionType `json:"type"`
	}{TransactionTypeTransferIn})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Transfer In"}`, string(data))

	var out struct {
		Type TransactionType `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"gift sent"}`), &out))
	assert.Equal(t, TransactionTypeGiftSent, out.Type)
}

func TestParseSchema(t *testing.T) {
	s, err := ParseSchema("Extended")
	require.NoError(t, err)
	assert.Equal(t, SchemaExtended, s)

	s, err = ParseSchema("basic")
	require.NoError(t, err)
	assert.Equal(t, SchemaBasic, s)

	_, err = ParseSchema("v3")
	assert.ErrorIs(t, err, ErrUnknownSchema)
	assert.False(t, Schema(0).Valid())
}
