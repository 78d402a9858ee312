// Package export writes ledger records and settlement transfers in CSV, JSON or YAML.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/fkhayef/splitledger/internal/ledger"
	"github.com/fkhayef/splitledger/internal/settlement"
)

// Format is an output encoding
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", s)
	}
}

// Row is one exported payment line
type Row struct {
	Kind    string `csv:"kind" json:"kind" yaml:"kind"`
	From    string `csv:"from" json:"from" yaml:"from"`
	To      string `csv:"to" json:"to" yaml:"to"`
	Amount  string `csv:"amount" json:"amount" yaml:"amount"`
	Display string `csv:"display" json:"display" yaml:"display"`
}

const (
	KindExpense    = "expense"
	KindSettlement = "settlement"
)

// RecordRows converts ledger records to rows
func RecordRows(records []ledger.SplitRecord, currency string) []*Row {
	rows := make([]*Row, len(records))
	for i, r := range records {
		rows[i] = &Row{
			Kind:    KindExpense,
			From:    string(r.From),
			To:      string(r.To),
			Amount:  r.Amount.StringFixed(2),
			Display: r.Format(currency),
		}
	}
	return rows
}

// TransferRows converts settlement transfers to rows
func TransferRows(transfers []settlement.Transfer, currency string) []*Row {
	rows := make([]*Row, len(transfers))
	for i, t := range transfers {
		rows[i] = &Row{
			Kind:    KindSettlement,
			From:    string(t.From),
			To:      string(t.To),
			Amount:  t.Amount.StringFixed(2),
			Display: t.Format(currency),
		}
	}
	return rows
}

// Write encodes rows to w in the given format
func Write(w io.Writer, format Format, rows []*Row) error {
	switch format {
	case FormatCSV:
		if err := gocsv.Marshal(rows, w); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("failed to write YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to write YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
	return nil
}
