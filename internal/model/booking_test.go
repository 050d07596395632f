package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amberpalace/hotel-booking/internal/model"
)

func TestNormalizePay(t *testing.T) {
	cases := []struct {
		name       string
		option     string
		wantOption string
		wantStatus string
	}{
		{"empty defaults to pay later", "", model.PayOptionLater, model.PayStatusLater},
		{"bare pay later", "Pay Later", model.PayOptionLater, model.PayStatusLater},
		{"long form label", "Pay Later (reserve now)", model.PayOptionLater, model.PayStatusLater},
		{"paid test", "Paid (test)", model.PayOptionPaidTest, model.PayStatusPaid},
		{"long paid label", "Mark as Paid (test)", model.PayOptionPaidTest, model.PayStatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			option, status := model.NormalizePay(tc.option)
			assert.Equal(t, tc.wantOption, option)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}
