package taxbit

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const incomeRow = "2020-03-02T07:32:05.000Z,Income,3e-7,BTC,,,,,0.0025979719720382955,BinanceUS,FALSE,2459217f-1a6f-4693-974c-d8d65f21abab"

func splitRow(s string) []string {
	return strings.Split(s, ",")
}

func TestParseRow_IncomeScenario(t *testing.T) {
	rec, err := SchemaExtended.ParseRow(DefaultHeaderIndex, splitRow(incomeRow))
	require.NoError(t, err)

	assert.Equal(t, int64(1583134325000), rec.Time)
	assert.Equal(t, TransactionTypeIncome, rec.Type)
	require.True(t, rec.ReceivedQuantity.Valid)
	assert.True(t, rec.ReceivedQuantity.Decimal.Equal(dec("0.0000003").Decimal))
	assert.Equal(t, "0.0000003", rec.ReceivedQuantity.Decimal.String())
	assert.Equal(t, "BTC", rec.ReceivedCurrency)
	assert.False(t, rec.SentQuantity.Valid)
	assert.Empty(t, rec.SentCurrency)
	assert.Empty(t, rec.FeeCurrency)
	assert.False(t, rec.FeeAmount.Valid)
	require.True(t, rec.MarketValue.Valid)
	assert.Equal(t, "0.0025979719720382955", rec.MarketValue.Decimal.String())
	assert.Equal(t, "BinanceUS", rec.Source)
	assert.False(t, rec.InternalTransfer)
	assert.Equal(t, "2459217f-1a6f-4693-974c-d8d65f21abab", rec.ExternalID)
	assert.Equal(t, "BTC", rec.Asset())
}

func TestParseRow_RoundTrip(t *testing.T) {
	rows := []string{
		incomeRow,
		"2021-01-10T00:00:00.123Z,Trade,10,ETH,0.5,BTC,BTC,0.0001,20000.50,Coinbase,TRUE,x-1",
		"2021-01-10T00:00:00.123Z,Transfer Out,,,1.000,ETH,,,,Wallet,true,",
		"2019-12-31T23:59:59.999Z,Invalid,,,,,USD,1,,,FALSE,z",
	}

	for _, row := range rows {
		parsed, err := SchemaExtended.ParseRow(DefaultHeaderIndex, splitRow(row))
		require.NoError(t, err, row)

		formatted := SchemaExtended.FormatRow(parsed)
		reparsed, err := SchemaExtended.ParseRow(DefaultHeaderIndex, formatted)
		require.NoError(t, err, row)

		assert.True(t, Equal(parsed, reparsed), row)
		assert.Equal(t, 0, Compare(parsed, reparsed), row)
	}
}

func TestFormatRow(t *testing.T) {
	rec, err := SchemaExtended.ParseRow(DefaultHeaderIndex, splitRow(incomeRow))
	require.NoError(t, err)

	assert.Equal(t,
		"2020-03-02T07:32:05.000Z,Income,0.0000003,BTC,,,,,0.0025979719720382955,BinanceUS,FALSE,2459217f-1a6f-4693-974c-d8d65f21abab",
		strings.Join(SchemaExtended.FormatRow(rec), ","),
	)

	rec.InternalTransfer = true
	rec.Type = TransactionTypeGiftReceived
	basic := SchemaBasic.FormatRow(rec)
	assert.Equal(t, "true", basic[colInternalTransfer])
	assert.Equal(t, "Gift Received", basic[colTransactionType])
	assert.Equal(t, "TRUE", SchemaExtended.FormatRow(rec)[colInternalTransfer])
}

func TestParseRow_FormatErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		row    string
		column string
	}{
		{"bad date", SchemaExtended, "2020-13-02T07:32:05.000Z,Income,1,BTC,,,,,,S,FALSE,id", ColumnDate},
		{"date without zone", SchemaExtended, "2020-03-02T07:32:05.000,Income,1,BTC,,,,,,S,FALSE,id", ColumnDate},
		{"unknown type", SchemaExtended, "2020-03-02T07:32:05.000Z,Airdrop,1,BTC,,,,,,S,FALSE,id", ColumnTransactionType},
		{"unknown label rejected", SchemaExtended, "2020-03-02T07:32:05.000Z,Unknown,1,BTC,,,,,,S,FALSE,id", ColumnTransactionType},
		{"invalid in basic", SchemaBasic, "2020-03-02T07:32:05.000Z,Invalid,1,BTC,,,,,,S,false,id", ColumnTransactionType},
		{"received quantity", SchemaExtended, "2020-03-02T07:32:05.000Z,Income,abc,BTC,,,,,,S,FALSE,id", ColumnReceivedQuantity},
		{"sent quantity", SchemaExtended, "2020-03-02T07:32:05.000Z,Sale,,,1x,BTC,,,,S,FALSE,id", ColumnSentQuantity},
		{"fee amount", SchemaExtended, "2020-03-02T07:32:05.000Z,Sale,,,1,BTC,BTC,NaN,,S,FALSE,id", ColumnFeeAmount},
		{"market value", SchemaExtended, "2020-03-02T07:32:05.000Z,Sale,,,1,BTC,,,$5,S,FALSE,id", ColumnMarketValue},
		{"extended bool", SchemaExtended, "2020-03-02T07:32:05.000Z,Income,1,BTC,,,,,,S,1,id", ColumnInternalTransfer},
		{"basic bool", SchemaBasic, "2020-03-02T07:32:05.000Z,Income,1,BTC,,,,,,S,yes,id", ColumnInternalTransfer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.schema.ParseRow(DefaultHeaderIndex, splitRow(tt.row))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFormat)

			var fe *FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.column, fe.Column)
		})
	}
}

func TestParseRow_BoolLiterals(t *testing.T) {
	base := "2020-03-02T07:32:05.000Z,Income,1,BTC,,,,,,S,%s,id"

	for _, v := range []string{"TRUE", "true", "True"} {
		rec, err := SchemaExtended.ParseRow(DefaultHeaderIndex, splitRow(strings.Replace(base, "%s", v, 1)))
		require.NoError(t, err, v)
		assert.True(t, rec.InternalTransfer, v)
	}

	for _, v := range []string{"false", "0", "F"} {
		rec, err := SchemaBasic.ParseRow(DefaultHeaderIndex, splitRow(strings.Replace(base, "%s", v, 1)))
		require.NoError(t, err, v)
		assert.False(t, rec.InternalTransfer, v)
	}
}

func TestParseRow_FieldCount(t *testing.T) {
	_, err := SchemaExtended.ParseRow(DefaultHeaderIndex, []string{"a", "b"})
	assert.ErrorIs(t, err, ErrFieldCount)
	assert.ErrorIs(t, err, ErrFormat)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ColumnReceivedQuantity, fe.Column)
	assert.Empty(t, fe.Value)
}

func TestParseRow_FieldCountFollowsHeaderOrder(t *testing.T) {
	idx, err := NewHeaderIndex([]string{
		ColumnExternalID, ColumnSource, ColumnDate, ColumnTransactionType,
		ColumnReceivedQuantity, ColumnReceivedCurrency, ColumnSentQuantity,
		ColumnSentCurrency, ColumnFeeCurrency, ColumnFeeAmount, ColumnMarketValue,
		ColumnInternalTransfer,
	})
	require.NoError(t, err)

	_, err = SchemaExtended.ParseRow(idx, []string{"a", "Binance"})

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ColumnDate, fe.Column)
}

func TestParseRow_TooManyFields(t *testing.T) {
	row := make([]string, numColumns+2)
	row[numColumns] = "surplus"

	_, err := SchemaExtended.ParseRow(DefaultHeaderIndex, row)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, ErrFieldCount)
	assert.Equal(t, ColumnExternalID, fe.Column)
	assert.Equal(t, "surplus", fe.Value)
	assert.Contains(t, err.Error(), "expected 12 fields, got 14")
}

func TestParseTime(t *testing.T) {
	ms, err := ParseTime("2020-03-02T07:32:05Z")
	require.NoError(t, err)
	assert.Equal(t, int64(1583134325000), ms)

	ms, err = ParseTime("2020-03-02T09:32:05.5+02:00")
	require.NoError(t, err)
	assert.Equal(t, int64(1583134325500), ms)

	assert.Equal(t, "2020-03-02T07:32:05.500Z", FormatTime(ms))
	assert.Equal(t, "1970-01-01T00:00:00.000Z", FormatTime(0))
}

func TestNewHeaderIndex(t *testing.T) {
	idx, err := NewHeaderIndex(Columns[:])
	require.NoError(t, err)
	assert.Equal(t, DefaultHeaderIndex, idx)

	reordered := []string{
		"External ID", "Date", "Transaction Type", "Received Quantity", "Received Currency",
		"Sent Quantity", "Sent Currency", "Fee Currency", "Fee Amount", "Market Value",
		"Source", "Internal Transfer",
	}
	idx, err = NewHeaderIndex(reordered)
	require.NoError(t, err)
	assert.Equal(t, 0, idx[colExternalID])
	assert.Equal(t, 1, idx[colDate])

	rec, err := SchemaExtended.ParseRow(idx, []string{
		"ext", "2020-03-02T07:32:05.000Z", "Buy", "1", "BTC", "", "", "", "", "", "S", "FALSE",
	})
	require.NoError(t, err)
	assert.Equal(t, "ext", rec.ExternalID)
	assert.Equal(t, TransactionTypeBuy, rec.Type)
}

func TestNewHeaderIndex_Errors(t *testing.T) {
	_, err := NewHeaderIndex(append(Columns[:11:11], "Notes"))
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = NewHeaderIndex(Columns[:11])
	assert.ErrorIs(t, err, ErrMissingColumn)
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, ColumnExternalID, fe.Column)

	_, err = NewHeaderIndex(append(Columns[:11:11], "Date"))
	assert.ErrorIs(t, err, ErrDuplicateColumn)
}
