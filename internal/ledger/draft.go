package ledger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/billbook/internal/common"
	"github.com/Veraticus/billbook/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Draft holds the entry form fields between submissions.
type Draft struct {
	Date        time.Time
	Amount      decimal.Decimal
	Category    model.Category
	Name        string `validate:"required"`
	Description string
}

// NewDraft returns an empty draft for category, dated now.
func NewDraft(category model.Category, now time.Time) Draft {
	return Draft{
		Category: category,
		Amount:   decimal.Zero,
		Date:     now,
	}
}

// Validate checks the fields the form requires before a bill can be built.
func (d Draft) Validate() error {
	trimmed := d
	trimmed.Name = strings.TrimSpace(d.Name)
	if err := validate.Struct(trimmed); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			field := strings.ToLower(fieldErrs[0].Field())
			return common.NewUserError(
				fmt.Sprintf("%s is required", field),
				fmt.Errorf("%w: %s failed %q", common.ErrInvalidInput, field, fieldErrs[0].Tag()),
			)
		}
		return fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	return nil
}

// Submit builds a bill from the draft, appends it to store and resets the
// draft. Amount, name, description and date are cleared; the category is
// kept for the next entry. On a validation error nothing changes.
func (d *Draft) Submit(store *Store, now time.Time) (model.Bill, error) {
	if err := d.Validate(); err != nil {
		return model.Bill{}, err
	}

	if d.Amount.IsNegative() {
		slog.Warn("Recording bill with negative amount",
			"name", d.Name,
			"amount", d.Amount.String(),
			"category", d.Category.String())
	}

	bill := model.NewBill(d.Category, strings.TrimSpace(d.Name), d.Amount, d.Date, d.Description)
	store.Add(bill)

	slog.Debug("Bill added",
		"id", bill.ID.String(),
		"category", bill.Category.String(),
		"amount", bill.Amount.String())

	d.Amount = decimal.Zero
	d.Name = ""
	d.Description = ""
	d.Date = now

	return bill, nil
}
