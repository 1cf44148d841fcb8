package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestSplitWithdrawal(t *testing.T) {
	testCases := []struct {
		Name            string
		Amount          decimal.Decimal
		PackageEarnings decimal.Decimal
		ReferralBounty  decimal.Decimal
		ExpectedSplit   Split
		ExpectedOk      bool
	}{
		{
			Name:            "Success. Both buckets used #1",
			Amount:          decimal.NewFromInt(120),
			PackageEarnings: decimal.NewFromInt(100),
			ReferralBounty:  decimal.NewFromInt(50),
			ExpectedSplit:   Split{Package: decimal.NewFromInt(100), Referral: decimal.NewFromInt(20)},
			ExpectedOk:      true,
		},
		{
			Name:            "Success. Package bucket covers alone #2",
			Amount:          decimal.NewFromInt(80),
			PackageEarnings: decimal.NewFromInt(100),
			ReferralBounty:  decimal.NewFromInt(50),
			ExpectedSplit:   Split{Package: decimal.NewFromInt(80), Referral: decimal.Zero},
			ExpectedOk:      true,
		},
		{
			Name:            "Success. Exact drain of both buckets #3",
			Amount:          decimal.NewFromInt(150),
			PackageEarnings: decimal.NewFromInt(100),
			ReferralBounty:  decimal.NewFromInt(50),
			ExpectedSplit:   Split{Package: decimal.NewFromInt(100), Referral: decimal.NewFromInt(50)},
			ExpectedOk:      true,
		},
		{
			Name:            "Error. Buckets do not cover #4",
			Amount:          decimal.NewFromInt(151),
			PackageEarnings: decimal.NewFromInt(100),
			ReferralBounty:  decimal.NewFromInt(50),
			ExpectedSplit:   Split{Package: decimal.NewFromInt(100), Referral: decimal.NewFromInt(50)},
			ExpectedOk:      false,
		},
		{
			Name:            "Success. Fractional amounts #5",
			Amount:          decimal.NewFromFloat(100.50),
			PackageEarnings: decimal.NewFromFloat(100.25),
			ReferralBounty:  decimal.NewFromInt(10),
			ExpectedSplit:   Split{Package: decimal.NewFromFloat(100.25), Referral: decimal.NewFromFloat(0.25)},
			ExpectedOk:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			split, ok := SplitWithdrawal(tc.Amount, tc.PackageEarnings, tc.ReferralBounty)

			if ok != tc.ExpectedOk {
				t.Errorf("Expected ok '%v', got: '%v'", tc.ExpectedOk, ok)
			}
			if !split.Package.Equal(tc.ExpectedSplit.Package) || !split.Referral.Equal(tc.ExpectedSplit.Referral) {
				diff := cmp.Diff(tc.ExpectedSplit, split)
				t.Errorf("expected split mismatch:\n %s", diff)
			}
			if tc.ExpectedOk && !split.Total().Equal(tc.Amount) {
				t.Errorf("Expected split total '%s', got: '%s'", tc.Amount, split.Total())
			}
		})
	}
}

func TestSplitRestoreRoundTrip(t *testing.T) {
	packageEarnings := decimal.NewFromInt(350)
	referralBounty := decimal.NewFromInt(150)
	amount := decimal.NewFromInt(300)

	split, ok := SplitWithdrawal(amount, packageEarnings, referralBounty)
	if !ok {
		t.Fatalf("Expected split to succeed for amount '%s'", amount)
	}

	restoredPackage := packageEarnings.Sub(split.Package).Add(split.Package)
	restoredReferral := referralBounty.Sub(split.Referral).Add(split.Referral)

	if !restoredPackage.Equal(packageEarnings) {
		t.Errorf("Expected restored package earnings '%s', got: '%s'", packageEarnings, restoredPackage)
	}
	if !restoredReferral.Equal(referralBounty) {
		t.Errorf("Expected restored referral bounty '%s', got: '%s'", referralBounty, restoredReferral)
	}
}

func TestBucketSplit(t *testing.T) {
	testCases := []struct {
		Name            string
		Bucket          Bucket
		Amount          decimal.Decimal
		PackageEarnings decimal.Decimal
		ReferralBounty  decimal.Decimal
		ExpectedSplit   Split
		ExpectedOk      bool
	}{
		{
			Name:            "Success. TOTAL spans both buckets #1",
			Bucket:          BucketTotal,
			Amount:          decimal.NewFromInt(120),
			PackageEarnings: decimal.NewFromInt(100),
			ReferralBounty:  decimal.NewFromInt(50),
			ExpectedSplit:   Split{Package: decimal.NewFromInt(100), Referral: decimal.NewFromInt(20)},
			ExpectedOk:      true,
		},
		{
			Name:            "Success. DIRECT_REFERRAL draws from bounty only #2",
			Bucket:          BucketDirectReferral,
			Amount:          decimal.NewFromInt(30),
			PackageEarnings: decimal.NewFromInt(100),
			ReferralBounty:  decimal.NewFromInt(50),
			ExpectedSplit:   Split{Referral: decimal.NewFromInt(30)},
			ExpectedOk:      true,
		},
		{
			Name:            "Error. INDIRECT_REFERRAL over the bounty #3",
			Bucket:          BucketIndirectReferral,
			Amount:          decimal.NewFromInt(60),
			PackageEarnings: decimal.NewFromInt(100),
			ReferralBounty:  decimal.NewFromInt(50),
			ExpectedSplit:   Split{},
			ExpectedOk:      false,
		},
		{
			Name:            "Error. Unknown bucket #4",
			Bucket:          Bucket("WALLET"),
			Amount:          decimal.NewFromInt(10),
			PackageEarnings: decimal.NewFromInt(100),
			ReferralBounty:  decimal.NewFromInt(50),
			ExpectedSplit:   Split{},
			ExpectedOk:      false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			split, ok := BucketSplit(tc.Bucket, tc.Amount, tc.PackageEarnings, tc.ReferralBounty)

			if ok != tc.ExpectedOk {
				t.Errorf("Expected ok '%v', got: '%v'", tc.ExpectedOk, ok)
			}
			if !split.Package.Equal(tc.ExpectedSplit.Package) || !split.Referral.Equal(tc.ExpectedSplit.Referral) {
				diff := cmp.Diff(tc.ExpectedSplit, split)
				t.Errorf("expected split mismatch:\n %s", diff)
			}
		})
	}
}

func TestEarningsData_Ceiling(t *testing.T) {
	earnings := &EarningsData{
		PackageEarnings: decimal.NewFromInt(100),
		ReferralBounty:  decimal.NewFromInt(50),
		Combined:        decimal.NewFromInt(150),
	}

	testCases := []struct {
		Name     string
		Bucket   Bucket
		Expected decimal.Decimal
	}{
		{Name: "TOTAL uses combined earnings #1", Bucket: BucketTotal, Expected: decimal.NewFromInt(150)},
		{Name: "DIRECT_REFERRAL uses bounty #2", Bucket: BucketDirectReferral, Expected: decimal.NewFromInt(50)},
		{Name: "INDIRECT_REFERRAL uses bounty #3", Bucket: BucketIndirectReferral, Expected: decimal.NewFromInt(50)},
		{Name: "Unknown bucket is zero #4", Bucket: Bucket("WALLET"), Expected: decimal.Zero},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ceiling := earnings.Ceiling(tc.Bucket)
			if !ceiling.Equal(tc.Expected) {
				t.Errorf("Expected ceiling '%s', got: '%s'", tc.Expected, ceiling)
			}
		})
	}
}

func TestParseBucket(t *testing.T) {
	testCases := []struct {
		Name       string
		Value      string
		Expected   Bucket
		ExpectedOk bool
	}{
		{Name: "TOTAL #1", Value: "TOTAL", Expected: BucketTotal, ExpectedOk: true},
		{Name: "DIRECT_REFERRAL #2", Value: "DIRECT_REFERRAL", Expected: BucketDirectReferral, ExpectedOk: true},
		{Name: "INDIRECT_REFERRAL #3", Value: "INDIRECT_REFERRAL", Expected: BucketIndirectReferral, ExpectedOk: true},
		{Name: "Lowercase rejected #4", Value: "total", Expected: "", ExpectedOk: false},
		{Name: "Unknown rejected #5", Value: "WALLET", Expected: "", ExpectedOk: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			bucket, ok := ParseBucket(tc.Value)
			if ok != tc.ExpectedOk {
				t.Errorf("Expected ok '%v', got: '%v'", tc.ExpectedOk, ok)
			}
			if bucket != tc.Expected {
				t.Errorf("Expected bucket '%s', got: '%s'", tc.Expected, bucket)
			}
		})
	}
}
