package ofx

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/billbook/internal/common"
	"github.com/Veraticus/billbook/internal/model"
	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ofxHeader = `OFXHEADER:100
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
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
`

type stmtTrn struct {
	trnType string
	posted  string
	amount  string
	fitID   string
	name    string
	memo    string
}

func (s stmtTrn) sgml() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<STMTTRN>\n<TRNTYPE>%s\n<DTPOSTED>%s120000[0:GMT]\n<TRNAMT>%s\n<FITID>%s\n<NAME>%s\n",
		s.trnType, s.posted, s.amount, s.fitID, s.name)
	if s.memo != "" {
		fmt.Fprintf(&b, "<MEMO>%s\n", s.memo)
	}
	b.WriteString("</STMTTRN>\n")
	return b.String()
}

func bankStatement(txns ...stmtTrn) string {
	var b strings.Builder
	b.WriteString(ofxHeader)
	b.WriteString(`<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>021000021
<ACCTID>5550001111
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240229120000[0:GMT]
`)
	for _, tx := range txns {
		b.WriteString(tx.sgml())
	}
	b.WriteString(`</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>2500.00
<DTASOF>20240229120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`)
	return b.String()
}

func cardStatement(txns ...stmtTrn) string {
	var b strings.Builder
	b.WriteString(ofxHeader)
	b.WriteString(`<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4000123412341234
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240229120000[0:GMT]
`)
	for _, tx := range txns {
		b.WriteString(tx.sgml())
	}
	b.WriteString(`</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-80.00
<DTASOF>20240229120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`)
	return b.String()
}

var checkingTxns = []stmtTrn{
	{trnType: "DIRECTDEP", posted: "20240201", amount: "4200.00", fitID: "B001", name: "ACME PAYROLL"},
	{trnType: "POS", posted: "20240203", amount: "-18.75", fitID: "B002", name: "POS PURCHASE NOODLE BAR", memo: "table for two"},
	{trnType: "INT", posted: "20240205", amount: "3.12", fitID: "B003", name: "INTEREST PAID"},
	{trnType: "ATM", posted: "20240207", amount: "-60.00", fitID: "B004", name: "ATM WITHDRAWAL"},
	{trnType: "CHECK", posted: "20240209", amount: "-900.00", fitID: "B005", name: "CHECK 1042"},
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name          string
		ofxData       string
		expectedCount int
		expectedError bool
	}{
		{
			name:          "bank statement",
			ofxData:       bankStatement(checkingTxns...),
			expectedCount: len(checkingTxns),
		},
		{
			name: "credit card statement",
			ofxData: cardStatement(
				stmtTrn{trnType: "DEBIT", posted: "20240111", amount: "-45.99", fitID: "C001", name: "BOOKSHOP.ORG"},
				stmtTrn{trnType: "DEBIT", posted: "20240112", amount: "-34.01", fitID: "C002", name: "CITY TRANSIT"},
			),
			expectedCount: 2,
		},
		{
			name:          "statement without transactions",
			ofxData:       bankStatement(),
			expectedCount: 0,
		},
		{
			name:          "invalid OFX data",
			ofxData:       "definitely not a statement",
			expectedError: true,
		},
		{
			name:          "empty input",
			ofxData:       "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bills, err := NewParser().ParseFile(context.Background(), strings.NewReader(tt.ofxData))

			if tt.expectedError {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidStatement)
				return
			}
			require.NoError(t, err)
			assert.Len(t, bills, tt.expectedCount)
		})
	}
}

func TestParseFile_MapsTransactionsToBills(t *testing.T) {
	bills, err := NewParser().ParseFile(context.Background(), strings.NewReader(bankStatement(checkingTxns...)))
	require.NoError(t, err)
	require.Len(t, bills, 5)

	tests := []struct {
		name        string
		bill        model.Bill
		category    model.Category
		amount      string
		billName    string
		description string
		day         int
	}{
		{name: "direct deposit", bill: bills[0], category: model.CategorySalary, amount: "4200", billName: "ACME PAYROLL", day: 1},
		{name: "point of sale", bill: bills[1], category: model.CategoryShopping, amount: "18.75", billName: "NOODLE BAR", description: "table for two", day: 3},
		{name: "interest", bill: bills[2], category: model.CategoryIncomeInvestment, amount: "3.12", billName: "INTEREST PAID", day: 5},
		{name: "cash withdrawal", bill: bills[3], category: model.CategoryOther, amount: "60", billName: "ATM WITHDRAWAL", day: 7},
		{name: "check", bill: bills[4], category: model.CategoryShopping, amount: "900", billName: "CHECK 1042", day: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.bill.Category)
			assert.True(t, tt.bill.Amount.Equal(decimal.RequireFromString(tt.amount)), "amount %s", tt.bill.Amount)
			assert.Equal(t, tt.billName, tt.bill.Name)
			assert.Equal(t, tt.description, tt.bill.Description)
			assert.Equal(t, 2024, tt.bill.Date.Year())
			assert.Equal(t, time.February, tt.bill.Date.Month())
			assert.Equal(t, tt.day, tt.bill.Date.Day())
		})
	}

	seen := make(map[string]bool)
	for _, bill := range bills {
		assert.False(t, seen[bill.ID.String()])
		seen[bill.ID.String()] = true
	}
}

func TestParseFile_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewParser().ParseFile(ctx, strings.NewReader(bankStatement(checkingTxns...)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		trnType string
		amount  int64
		want    model.Category
	}{
		{trnType: "DIV", amount: 10, want: model.CategoryIncomeInvestment},
		{trnType: "DEP", amount: 10, want: model.CategorySalary},
		{trnType: "CREDIT", amount: 10, want: model.CategorySalary},
		{trnType: "CASH", amount: -10, want: model.CategoryOther},
		{trnType: "PAYMENT", amount: -10, want: model.CategoryShopping},
		{trnType: "debit", amount: -10, want: model.CategoryShopping},
		{trnType: "XFER", amount: 10, want: model.CategorySalary},
		{trnType: "FEE", amount: -10, want: model.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.trnType, func(t *testing.T) {
			assert.Equal(t, tt.want, categorize(tt.trnType, decimal.NewFromInt(tt.amount)))
		})
	}
}

func TestExtractMerchantName(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		tx       ofxgo.Transaction
		expected string
	}{
		{
			name:     "strips card prefix",
			tx:       ofxgo.Transaction{Name: "DEBIT CARD PURCHASE CORNER GROCER"},
			expected: "CORNER GROCER",
		},
		{
			name:     "strips leading date stamp",
			tx:       ofxgo.Transaction{Name: "02/14 FLOWER STALL"},
			expected: "FLOWER STALL",
		},
		{
			name:     "generic name falls back to memo",
			tx:       ofxgo.Transaction{Name: "PURCHASE", Memo: "HARDWARE DEPOT"},
			expected: "HARDWARE DEPOT",
		},
		{
			name:     "payee wins",
			tx:       ofxgo.Transaction{Name: "SQ *CAFE", Payee: &ofxgo.Payee{Name: "Cafe Luna"}},
			expected: "Cafe Luna",
		},
		{
			name:     "trims whitespace",
			tx:       ofxgo.Transaction{Name: "  RIVER BOOKS  "},
			expected: "RIVER BOOKS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parser.extractMerchantName(tt.tx))
		})
	}
}
