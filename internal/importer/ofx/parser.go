// Package ofx parses OFX and QFX bank and credit card statements.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

var (
	severity = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)`)
	// SGML exports sometimes drop the closing bracket of a tag that ends the line.
	openTag = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse returns one line per posted transaction across every bank and credit card
// statement in the file. Negative amounts are expenses.
func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(clean(string(raw))))
	if err != nil {
		return nil, fmt.Errorf("parse OFX: %w", err)
	}

	var out []transaction.CreateParams

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}

		lines, err := convert(stmt.BankTranList.Transactions)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", stmt.BankAcctFrom.AcctID, err)
		}

		out = append(out, lines...)
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}

		lines, err := convert(stmt.BankTranList.Transactions)
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", stmt.CCAcctFrom.AcctID, err)
		}

		out = append(out, lines...)
	}

	slog.Debug("parsed OFX statement",
		"lines", len(out),
		"bank_statements", len(resp.Bank),
		"card_statements", len(resp.CreditCard))

	return out, nil
}

func clean(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severity.ReplaceAllStringFunc(content, strings.ToUpper)

	return openTag.ReplaceAllString(content, "$1>")
}

func convert(txs []ofxgo.Transaction) ([]transaction.CreateParams, error) {
	out := make([]transaction.CreateParams, 0, len(txs))

	for _, t := range txs {
		amount, err := decimal.NewFromString(t.TrnAmt.FloatString(2))
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.FiTID, ledger.ErrInvalidAmount)
		}

		if amount.IsZero() {
			continue
		}

		typ := ledger.TypeIncome
		if amount.IsNegative() {
			typ = ledger.TypeExpense
		}

		out = append(out, transaction.CreateParams{
			Type:           typ,
			Amount:         amount.Abs(),
			Description:    payee(t),
			RawDescription: strings.TrimSpace(string(t.Name)),
			Date:           ledger.Day(t.DtPosted.Time),
		})
	}

	return out, nil
}

// payee prefers the structured payee, then the memo when the name is a bare
// transaction kind such as "DEBIT".
func payee(t ofxgo.Transaction) string {
	if t.Payee != nil && t.Payee.Name != "" {
		return strings.TrimSpace(string(t.Payee.Name))
	}

	name := strings.TrimSpace(string(t.Name))

	switch strings.ToUpper(name) {
	case "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE":
		if t.Memo != "" {
			return strings.TrimSpace(string(t.Memo))
		}
	}

	return name
}
