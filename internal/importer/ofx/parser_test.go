package ofx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/importer/ofx"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

const header = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>Info
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
`

const bankStatement = header + `<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>EUR
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240125120000[0:GMT]
<TRNAMT>3000.00
<FITID>2024012501
<NAME>CREDIT
<MEMO>ACME PAYROLL
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const cardStatement = header + `<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>EUR
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240110120000[0:GMT]
<TRNAMT>-45.99
<FITID>CC2024011001
<NAME>AMAZON.COM*RT4Y7HG2
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-500.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParser_Bank(t *testing.T) {
	lines, err := ofx.NewParser().Parse(strings.NewReader(bankStatement))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, ledger.TypeExpense, lines[0].Type)
	assert.True(t, decimal.RequireFromString("25.50").Equal(lines[0].Amount))
	assert.Equal(t, "STARBUCKS STORE #1234", lines[0].RawDescription)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), lines[0].Date)

	assert.Equal(t, ledger.TypeIncome, lines[1].Type)
	assert.Equal(t, "ACME PAYROLL", lines[1].Description)
	assert.Equal(t, "CREDIT", lines[1].RawDescription)
}

func TestParser_CreditCard(t *testing.T) {
	lines, err := ofx.NewParser().Parse(strings.NewReader(cardStatement))
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.True(t, decimal.RequireFromString("45.99").Equal(lines[0].Amount))
	assert.Equal(t, ledger.TypeExpense, lines[0].Type)
}

func TestParser_Invalid(t *testing.T) {
	for _, input := range []string{"", "not valid OFX"} {
		_, err := ofx.NewParser().Parse(strings.NewReader(input))
		assert.Error(t, err, input)
	}
}
