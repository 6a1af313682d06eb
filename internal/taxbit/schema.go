package taxbit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Schema selects the wire-compatibility mode for a TaxBit export.
//
// SchemaBasic reads Internal Transfer with Go's boolean literals and has no
// Invalid transaction type. SchemaExtended reads and writes TRUE/FALSE and
// accepts Invalid.
type Schema int

const (
	SchemaBasic Schema = iota + 1
	SchemaExtended
)

var ErrUnknownSchema = errors.New("unknown schema")

func ParseSchema(s string) (Schema, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return SchemaBasic, nil
	case "extended":
		return SchemaExtended, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSchema, s)
}

func (s Schema) String() string {
	switch s {
	case SchemaBasic:
		return "basic"
	case SchemaExtended:
		return "extended"
	}
	return "schema(" + strconv.Itoa(int(s)) + ")"
}

func (s Schema) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Schema) UnmarshalText(text []byte) error {
	parsed, err := ParseSchema(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Schema) Valid() bool {
	return s == SchemaBasic || s == SchemaExtended
}

func (s Schema) allowsInvalidType() bool {
	return s == SchemaExtended
}

var errBadBool = errors.New("expected TRUE or FALSE")

func (s Schema) parseBool(column, value string) (bool, error) {
	if s == SchemaExtended {
		switch strings.ToUpper(value) {
		case "TRUE":
			return true, nil
		case "FALSE":
			return false, nil
		}
		return false, formatError(column, value, errBadBool)
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, formatError(column, value, err)
	}
	return b, nil
}

func (s Schema) formatBool(b bool) string {
	if s == SchemaExtended {
		if b {
			return "TRUE"
		}
		return "FALSE"
	}
	return strconv.FormatBool(b)
}

const (
	ColumnDate             = "Date"
	ColumnTransactionType  = "Transaction Type"
	ColumnReceivedQuantity = "Received Quantity"
	ColumnReceivedCurrency = "Received Currency"
	ColumnSentQuantity     = "Sent Quantity"
	ColumnSentCurrency     = "Sent Currency"
	ColumnFeeCurrency      = "Fee Currency"
	ColumnFeeAmount        = "Fee Amount"
	ColumnMarketValue      = "Market Value"
	ColumnSource           = "Source"
	ColumnInternalTransfer = "Internal Transfer"
	ColumnExternalID       = "External ID"
)

// Columns is the header row in wire order.
var Columns = [...]string{
	ColumnDate,
	ColumnTransactionType,
	ColumnReceivedQuantity,
	ColumnReceivedCurrency,
	ColumnSentQuantity,
	ColumnSentCurrency,
	ColumnFeeCurrency,
	ColumnFeeAmount,
	ColumnMarketValue,
	ColumnSource,
	ColumnInternalTransfer,
	ColumnExternalID,
}

const (
	colDate = iota
	colTransactionType
	colReceivedQuantity
	colReceivedCurrency
	colSentQuantity
	colSentCurrency
	colFeeCurrency
	colFeeAmount
	colMarketValue
	colSource
	colInternalTransfer
	colExternalID
	numColumns
)

// HeaderIndex maps each column of Columns to its position in an input row.
type HeaderIndex [numColumns]int

// DefaultHeaderIndex is the index of a row laid out exactly as Columns.
var DefaultHeaderIndex = func() HeaderIndex {
	var idx HeaderIndex
	for i := range idx {
		idx[i] = i
	}
	return idx
}()

// NewHeaderIndex resolves the columns of header by name. Column order is free
// but every column must be present exactly once and no others are allowed.
func NewHeaderIndex(header []string) (HeaderIndex, error) {
	var idx HeaderIndex
	for i := range idx {
		idx[i] = -1
	}

	for pos, raw := range header {
		name := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		col := columnNumber(name)
		if col < 0 {
			return idx, formatError(name, raw, ErrUnknownColumn)
		}
		if idx[col] >= 0 {
			return idx, formatError(name, raw, ErrDuplicateColumn)
		}
		idx[col] = pos
	}

	for col, pos := range idx {
		if pos < 0 {
			return idx, formatError(Columns[col], "", ErrMissingColumn)
		}
	}

	return idx, nil
}

func columnNumber(name string) int {
	for i, c := range Columns {
		if strings.EqualFold(c, name) {
			return i
		}
	}
	return -1
}
