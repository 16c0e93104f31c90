// Package cgd parses Caixa Geral de Depósitos CSV exports.
package cgd

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/encoding"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

const dateLayout = "02-01-2006"

var ErrUnknownLayout = errors.New("no known CGD export header found")

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse returns one expense or income line per statement row. Rows without a date or a
// non-zero amount (balances, totals, page footers) are skipped. AccountID is left for
// the caller to fill in.
func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, charset, err := encoding.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode statement: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	l, cols, headerRow, ok := findHeader(rows)
	if !ok {
		return nil, ErrUnknownLayout
	}

	slog.Debug("parsing CGD export", "layout", l.name, "charset", charset)

	return parseRows(l, cols, rows[headerRow+1:], headerRow+1)
}

type columns map[string]int

func findHeader(rows [][]string) (layout, columns, int, bool) {
	for i, row := range rows {
		cols := make(columns, len(row))

		for j, cell := range row {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = j
			}
		}

		for _, l := range layouts {
			if cols.has(l.required()) {
				return l, cols, i, true
			}
		}
	}

	return layout{}, nil, 0, false
}

func (c columns) has(names []string) bool {
	for _, n := range names {
		if _, ok := c[n]; !ok {
			return false
		}
	}

	return true
}

// first is the 0-based file index of rows[0], used for 1-based error line numbers.
func parseRows(l layout, cols columns, rows [][]string, first int) ([]transaction.CreateParams, error) {
	var out []transaction.CreateParams

	for i, row := range rows {
		date, err := time.Parse(dateLayout, cell(row, cols[l.date]))
		if err != nil {
			continue
		}

		amount, typ, ok := rowAmount(l, cols, row)
		if !ok {
			continue
		}

		desc := cell(row, cols[l.desc])
		if desc == "" {
			return nil, fmt.Errorf("line %d: %w: description", first+i+1, ledger.ErrMissingField)
		}

		out = append(out, transaction.CreateParams{
			Type:           typ,
			Amount:         amount,
			Description:    desc,
			RawDescription: desc,
			Date:           date,
		})
	}

	return out, nil
}

func rowAmount(l layout, cols columns, row []string) (decimal.Decimal, ledger.TransactionType, bool) {
	if l.mode == amountSigned {
		d, err := parseEuropeanAmount(cell(row, cols[l.amount]))
		if err != nil || d.IsZero() {
			return decimal.Zero, "", false
		}

		if d.IsNegative() {
			return d.Neg(), ledger.TypeExpense, true
		}

		return d, ledger.TypeIncome, true
	}

	if d, err := parseEuropeanAmount(cell(row, cols[l.debit])); err == nil && !d.IsZero() {
		return d.Abs(), ledger.TypeExpense, true
	}

	if d, err := parseEuropeanAmount(cell(row, cols[l.credit])); err == nil && !d.IsZero() {
		return d.Abs(), ledger.TypeIncome, true
	}

	return decimal.Zero, "", false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
