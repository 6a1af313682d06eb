package taxbit

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Date,Transaction Type,Received Quantity,Received Currency,Sent Quantity,Sent Currency,Fee Currency,Fee Amount,Market Value,Source,Internal Transfer,External ID"

func TestReader_ReadAll(t *testing.T) {
	input := header + "\n" +
		incomeRow + "\n" +
		"2020-03-03T00:00:00.000Z,Sale,,,0.5,BTC,USD,1.25,4000,BinanceUS,FALSE,abc\n"

	records, err := NewReader(strings.NewReader(input), SchemaExtended).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, TransactionTypeIncome, records[0].Type)
	assert.Equal(t, TransactionTypeSale, records[1].Type)
	assert.Equal(t, "BTC", records[1].Asset())
}

func TestReader_ContinuesAfterBadRow(t *testing.T) {
	input := header + "\n" +
		"not-a-date,Income,1,BTC,,,,,,S,FALSE,a\n" +
		incomeRow + "\n"

	r := NewReader(strings.NewReader(input), SchemaExtended)

	_, err := r.Read()
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, ColumnDate, fe.Column)
	assert.Equal(t, 2, r.Line())

	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, int64(1583134325000), rec.Time)
	assert.Equal(t, 3, r.Line())

	_, err = r.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_HeaderErrors(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), SchemaExtended).Read()
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = NewReader(strings.NewReader("Date,Amount\n"), SchemaExtended).Read()
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestReader_QuotedFields(t *testing.T) {
	input := header + "\n" +
		`2020-03-02T07:32:05.000Z,Income,1,BTC,,,,,,"Binance, US",FALSE,"id ""7"""` + "\n"

	records, err := NewReader(strings.NewReader(input), SchemaExtended).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Binance, US", records[0].Source)
	assert.Equal(t, `id "7"`, records[0].ExternalID)
}

func TestWriter_RoundTrip(t *testing.T) {
	input := header + "\n" +
		incomeRow + "\n" +
		"2020-03-03T00:00:00.000Z,Gift Sent,,,2,ETH,ETH,0.01,,Wallet,TRUE,\"a,b\"\n"

	records, err := NewReader(strings.NewReader(input), SchemaExtended).ReadAll()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, SchemaExtended).WriteAll(records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, header, lines[0])
	assert.Equal(t, incomeRow, lines[1])

	again, err := NewReader(&buf, SchemaExtended).ReadAll()
	require.NoError(t, err)
	require.Len(t, again, len(records))
	for i := range records {
		assert.True(t, Equal(records[i], again[i]))
	}
}

func TestWriter_HeaderOnlyOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, SchemaBasic)

	require.NoError(t, w.Write(New()))
	require.NoError(t, w.Write(New()))
	require.NoError(t, w.Flush())

	assert.Equal(t, 1, strings.Count(buf.String(), "External ID"))
	assert.Contains(t, buf.String(), "1970-01-01T00:00:00.000Z,Unknown,,,,,,,,,false,")
}

func TestReader_RowLevelErrors(t *testing.T) {
	input := header + "\n" +
		"2020-03-02T07:32:05.000Z,Income,1,BTC\n" +
		`2020-03-02T07:32:05.000Z,Income,1,BTC,,,,,,"Bin` + "\n" + `ance",FALSE,a` + "\n" +
		incomeRow + "\n"

	r := NewReader(strings.NewReader(input), SchemaExtended)

	_, err := r.Read()
	assert.ErrorIs(t, err, ErrFieldCount)
	assert.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, 2, r.Line())

	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "Bin\nance", rec.Source)
	assert.Equal(t, 3, r.Line())

	_, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, 5, r.Line())
}
