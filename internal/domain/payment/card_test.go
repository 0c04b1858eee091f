//go:build unit

package payment_test

import (
	"testing"
	"time"

	"cuponx-backend/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	valid := payment.CardInput{Number: "4111 1111 1111 1111", CVV: "123", Holder: " Ana Perez ", Expiry: "12/27"}

	t.Run("valid card", func(t *testing.T) {
		card, err := payment.NewCard(valid, now)
		require.NoError(t, err)
		assert.Equal(t, "1111", card.Last4())
		assert.Equal(t, "Ana Perez", card.Holder())
	})

	testCases := []struct {
		name   string
		mutate func(*payment.CardInput)
		errIs  error
	}{
		{name: "13 digits", mutate: func(in *payment.CardInput) { in.Number = "4222222222222" }},
		{name: "19 digits with tabs", mutate: func(in *payment.CardInput) { in.Number = "4222\t2222\t2222\t2222\t222" }},
		{name: "12 digits", mutate: func(in *payment.CardInput) { in.Number = "422222222222" }, errIs: payment.ErrInvalidCardNumber},
		{name: "20 digits", mutate: func(in *payment.CardInput) { in.Number = "42222222222222222222" }, errIs: payment.ErrInvalidCardNumber},
		{name: "letters", mutate: func(in *payment.CardInput) { in.Number = "4111-1111-1111-1111" }, errIs: payment.ErrInvalidCardNumber},
		{name: "4 digit cvv", mutate: func(in *payment.CardInput) { in.CVV = "1234" }},
		{name: "2 digit cvv", mutate: func(in *payment.CardInput) { in.CVV = "12" }, errIs: payment.ErrInvalidCVV},
		{name: "5 digit cvv", mutate: func(in *payment.CardInput) { in.CVV = "12345" }, errIs: payment.ErrInvalidCVV},
		{name: "no expiry", mutate: func(in *payment.CardInput) { in.Expiry = "" }},
		{name: "expires this month", mutate: func(in *payment.CardInput) { in.Expiry = "06/25" }},
		{name: "expired last month", mutate: func(in *payment.CardInput) { in.Expiry = "05/25" }, errIs: payment.ErrCardExpired},
		{name: "malformed expiry", mutate: func(in *payment.CardInput) { in.Expiry = "13/25" }, errIs: payment.ErrInvalidExpiry},
		{name: "december rolls over", mutate: func(in *payment.CardInput) { in.Expiry = "12/25" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := payment.NewCard(in, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
