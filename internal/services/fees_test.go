package services

import (
	"testing"

	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/shopspring/decimal"
)

func TestFee(t *testing.T) {
	testCases := []struct {
		Name        string
		Amount      decimal.Decimal
		Bucket      models.Bucket
		ExpectedFee decimal.Decimal
		ExpectedNet decimal.Decimal
	}{
		{
			Name:        "Flat 10% on TOTAL #1",
			Amount:      decimal.NewFromInt(1000),
			Bucket:      models.BucketTotal,
			ExpectedFee: decimal.NewFromInt(100),
			ExpectedNet: decimal.NewFromInt(900),
		},
		{
			Name:        "Flat 10% on DIRECT_REFERRAL #2",
			Amount:      decimal.NewFromInt(250),
			Bucket:      models.BucketDirectReferral,
			ExpectedFee: decimal.NewFromInt(25),
			ExpectedNet: decimal.NewFromInt(225),
		},
		{
			Name:        "Fee truncated, never rounded up #3",
			Amount:      decimal.NewFromFloat(200.19),
			Bucket:      models.BucketIndirectReferral,
			ExpectedFee: decimal.NewFromFloat(20.01),
			ExpectedNet: decimal.NewFromFloat(180.18),
		},
		{
			Name:        "Unknown bucket pays nothing #4",
			Amount:      decimal.NewFromInt(1000),
			Bucket:      models.Bucket("WALLET"),
			ExpectedFee: decimal.Zero,
			ExpectedNet: decimal.NewFromInt(1000),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			fee := Fee(tc.Amount, tc.Bucket)
			if !fee.Equal(tc.ExpectedFee) {
				t.Errorf("Expected fee '%s', got: '%s'", tc.ExpectedFee, fee)
			}
			net := NetAmount(tc.Amount, tc.Bucket)
			if !net.Equal(tc.ExpectedNet) {
				t.Errorf("Expected net amount '%s', got: '%s'", tc.ExpectedNet, net)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		Name           string
		Value          float64
		ExpectedAmount decimal.Decimal
		ExpectedError  error
	}{
		{
			Name:           "Whole amount #1",
			Value:          200,
			ExpectedAmount: decimal.NewFromInt(200),
		},
		{
			Name:           "Two fractional digits #2",
			Value:          200.05,
			ExpectedAmount: decimal.NewFromFloat(200.05),
		},
		{
			Name:          "Sub-cent precision rejected #3",
			Value:         200.005,
			ExpectedError: ErrInvalidAmount,
		},
		{
			Name:          "Three fractional digits rejected #4",
			Value:         1500.125,
			ExpectedError: ErrInvalidAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			amount, err := parseAmount(tc.Value)
			if err != tc.ExpectedError {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil && !amount.Equal(tc.ExpectedAmount) {
				t.Errorf("Expected amount '%s', got: '%s'", tc.ExpectedAmount, amount)
			}
		})
	}
}
