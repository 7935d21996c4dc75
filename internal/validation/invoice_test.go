package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() InvoiceInput {
	return InvoiceInput{
		CustomerID: uuid.NewString(),
		Amount:     "50",
		Status:     "pending",
	}
}

func TestValidateInvoice_Create(t *testing.T) {
	t.Run("normalizes a valid form", func(t *testing.T) {
		in := validInput()
		rec, verrs := ValidateInvoice(in, ModeCreate)

		require.Nil(t, verrs)
		require.NotNil(t, rec)
		assert.Equal(t, in.CustomerID, rec.CustomerID.String())
		assert.Equal(t, int64(5000), rec.AmountCents)
		assert.Equal(t, "pending", rec.Status)
		assert.Equal(t, time.Now().Format("2006-01-02"), rec.Date)
	})

	t.Run("missing customer reports only the customerId field", func(t *testing.T) {
		in := validInput()
		in.CustomerID = ""

		rec, verrs := ValidateInvoice(in, ModeCreate)

		assert.Nil(t, rec)
		require.NotNil(t, verrs)
		assert.Equal(t, "Missing Fields. Failed to Create Invoice.", verrs.Message)
		assert.Contains(t, verrs.Errors, "customerId")
		assert.NotContains(t, verrs.Errors, "amount")
		assert.NotContains(t, verrs.Errors, "status")
	})

	t.Run("rejects a customer id that is not a recognized reference", func(t *testing.T) {
		in := validInput()
		in.CustomerID = "not-a-uuid"

		rec, verrs := ValidateInvoice(in, ModeCreate)

		assert.Nil(t, rec)
		require.NotNil(t, verrs)
		assert.Contains(t, verrs.Errors, "customerId")
	})

	t.Run("rejects non-positive and non-numeric amounts", func(t *testing.T) {
		for _, amount := range []string{"", "abc", "0", "-5"} {
			in := validInput()
			in.Amount = amount

			rec, verrs := ValidateInvoice(in, ModeCreate)

			assert.Nil(t, rec, amount)
			require.NotNil(t, verrs, amount)
			assert.Equal(t, []string{"Please enter an amount greater than $0."}, verrs.Errors["amount"], amount)
		}
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		in := validInput()
		in.Status = "overdue"

		rec, verrs := ValidateInvoice(in, ModeCreate)

		assert.Nil(t, rec)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"Please select an invoice status."}, verrs.Errors["status"])
	})

	t.Run("collects every violation instead of stopping at the first", func(t *testing.T) {
		rec, verrs := ValidateInvoice(InvoiceInput{}, ModeCreate)

		assert.Nil(t, rec)
		require.NotNil(t, verrs)
		assert.Len(t, verrs.Errors, 3)
	})
}

func TestValidateInvoice_Update(t *testing.T) {
	t.Run("uses the update failure message", func(t *testing.T) {
		_, verrs := ValidateInvoice(InvoiceInput{}, ModeUpdate)

		require.NotNil(t, verrs)
		assert.Equal(t, "Invalid Fields. Failed to Update Invoice.", verrs.Message)
	})

	t.Run("does not compute a date", func(t *testing.T) {
		rec, verrs := ValidateInvoice(validInput(), ModeUpdate)

		require.Nil(t, verrs)
		require.NotNil(t, rec)
		assert.Empty(t, rec.Date)
	})

	t.Run("rounds fractional cents half away from zero", func(t *testing.T) {
		in := validInput()
		in.Amount = "12.345"

		rec, verrs := ValidateInvoice(in, ModeUpdate)

		require.Nil(t, verrs)
		assert.Equal(t, int64(1235), rec.AmountCents)
	})
}
