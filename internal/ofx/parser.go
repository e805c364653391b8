// Package ofx reads OFX/QFX bank statements into bills.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Veraticus/billbook/internal/common"
	"github.com/Veraticus/billbook/internal/model"
	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Parser converts OFX statements to bills.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// SEVERITY must be upper case.
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// SGML exports sometimes drop the closing bracket of a bare opening tag.
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

// ParseFile parses an OFX/QFX statement and returns one bill per
// transaction, in statement order.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.Bill, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse OFX file: %v", common.ErrInvalidStatement, err)
	}

	var bills []model.Bill
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		bankStmts++
		bills = append(bills, p.convertAll(stmt.BankTranList.Transactions, string(stmt.BankAcctFrom.AcctID))...)
	}

	for _, msg := range resp.CreditCard {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		ccStmts++
		bills = append(bills, p.convertAll(stmt.BankTranList.Transactions, string(stmt.CCAcctFrom.AcctID))...)
	}

	slog.Info("Parsed OFX file",
		"bills", len(bills),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return bills, nil
}

func (p *Parser) convertAll(txns []ofxgo.Transaction, accountID string) []model.Bill {
	bills := make([]model.Bill, 0, len(txns))
	for _, tx := range txns {
		bill, err := p.convertTransaction(tx)
		if err != nil {
			slog.Warn("Skipping OFX transaction",
				"account", accountID,
				"fitid", string(tx.FiTID),
				"error", err)
			continue
		}
		bills = append(bills, bill)
	}
	return bills
}

// convertTransaction maps an OFX transaction to a bill. OFX signs debits
// negative; bills store the absolute amount and carry the sign in the kind.
func (p *Parser) convertTransaction(tx ofxgo.Transaction) (model.Bill, error) {
	amount, err := decimal.NewFromString(tx.TrnAmt.FloatString(2))
	if err != nil {
		return model.Bill{}, fmt.Errorf("invalid amount %q: %w", tx.TrnAmt.String(), err)
	}

	name := p.extractMerchantName(tx)
	category := categorize(tx.TrnType.String(), amount)

	description := strings.TrimSpace(string(tx.Memo))
	if raw := strings.TrimSpace(string(tx.Name)); description == "" && raw != name {
		description = raw
	}

	return model.NewBill(category, name, amount.Abs(), tx.DtPosted.Time, description), nil
}

// categorize picks a category from the OFX transaction type, falling back to
// the sign of the amount.
func categorize(trnType string, amount decimal.Decimal) model.Category {
	switch strings.ToUpper(trnType) {
	case "INT", "DIV":
		return model.CategoryIncomeInvestment
	case "DIRECTDEP", "DEP", "CREDIT":
		return model.CategorySalary
	case "ATM", "CASH":
		return model.CategoryOther
	case "POS", "DEBIT", "CHECK", "PAYMENT":
		return model.CategoryShopping
	}

	if amount.IsPositive() {
		return model.CategorySalary
	}
	return model.CategoryOther
}

// extractMerchantName tries to get a clean merchant name from OFX data.
func (p *Parser) extractMerchantName(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := string(tx.Name)

	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}

	name = strings.TrimSpace(name)

	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}

	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// "MM/DD " date stamps at the start.
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

func isGenericDescription(name string) bool {
	switch strings.ToUpper(name) {
	case "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE":
		return true
	}
	return false
}
