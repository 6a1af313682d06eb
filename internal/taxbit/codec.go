package taxbit

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const timeLayout = "2006-01-02T15:04:05.000Z"

var errNoZone = errors.New("timestamp must carry a UTC designator or offset")

// ParseTime converts an RFC 3339 timestamp to milliseconds since the epoch.
// Offsets other than Z are accepted and normalized to UTC.
func ParseTime(s string) (int64, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if _, localErr := time.Parse("2006-01-02T15:04:05.999999999", s); localErr == nil {
			return 0, formatError(ColumnDate, s, errNoZone)
		}
		return 0, formatError(ColumnDate, s, err)
	}
	return t.UTC().UnixMilli(), nil
}

// FormatTime renders ms as 2006-01-02T15:04:05.000Z.
func FormatTime(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(timeLayout)
}

func parseDecimal(column, value string) (decimal.NullDecimal, error) {
	if value == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.NullDecimal{}, formatError(column, value, err)
	}
	return decimal.NewNullDecimal(d), nil
}

// fieldCountError names the first column a short row lacks, or the last
// column with the first surplus value for a long one.
func fieldCountError(idx HeaderIndex, row []string) *FormatError {
	want := len(row)
	value := ""
	if len(row) > numColumns {
		want = numColumns - 1
		value = row[numColumns]
	}

	column := ""
	for col, pos := range idx {
		if pos == want {
			column = Columns[col]
			break
		}
	}

	return formatError(column, value,
		fmt.Errorf("%w: expected %d fields, got %d", ErrFieldCount, numColumns, len(row)))
}

// ParseRow builds a Record from one data row laid out according to idx.
// Every failure is a *FormatError naming the column.
func (s Schema) ParseRow(idx HeaderIndex, row []string) (Record, error) {
	if len(row) != numColumns {
		return Record{}, fieldCountError(idx, row)
	}
	if !s.Valid() {
		return Record{}, fmt.Errorf("%w: %s", ErrUnknownSchema, s)
	}

	field := func(col int) string { return row[idx[col]] }

	var (
		rec Record
		err error
	)

	if rec.Time, err = ParseTime(field(colDate)); err != nil {
		return Record{}, err
	}
	if rec.Type, err = ParseTransactionType(field(colTransactionType), s); err != nil {
		return Record{}, err
	}
	if rec.ReceivedQuantity, err = parseDecimal(ColumnReceivedQuantity, field(colReceivedQuantity)); err != nil {
		return Record{}, err
	}
	if rec.SentQuantity, err = parseDecimal(ColumnSentQuantity, field(colSentQuantity)); err != nil {
		return Record{}, err
	}
	if rec.FeeAmount, err = parseDecimal(ColumnFeeAmount, field(colFeeAmount)); err != nil {
		return Record{}, err
	}
	if rec.MarketValue, err = parseDecimal(ColumnMarketValue, field(colMarketValue)); err != nil {
		return Record{}, err
	}
	if rec.InternalTransfer, err = s.parseBool(ColumnInternalTransfer, field(colInternalTransfer)); err != nil {
		return Record{}, err
	}

	rec.ReceivedCurrency = field(colReceivedCurrency)
	rec.SentCurrency = field(colSentCurrency)
	rec.FeeCurrency = field(colFeeCurrency)
	rec.Source = field(colSource)
	rec.ExternalID = field(colExternalID)

	return rec, nil
}

// FormatRow renders r in the order of Columns.
func (s Schema) FormatRow(r Record) []string {
	row := make([]string, numColumns)
	row[colDate] = FormatTime(r.Time)
	row[colTransactionType] = r.Type.String()
	row[colReceivedQuantity] = decimalOrEmpty(r.ReceivedQuantity)
	row[colReceivedCurrency] = r.ReceivedCurrency
	row[colSentQuantity] = decimalOrEmpty(r.SentQuantity)
	row[colSentCurrency] = r.SentCurrency
	row[colFeeCurrency] = r.FeeCurrency
	row[colFeeAmount] = decimalOrEmpty(r.FeeAmount)
	row[colMarketValue] = decimalOrEmpty(r.MarketValue)
	row[colSource] = r.Source
	row[colInternalTransfer] = s.formatBool(r.InternalTransfer)
	row[colExternalID] = r.ExternalID
	return row
}
