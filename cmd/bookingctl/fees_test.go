package main

import (
	"clinic-booking-service/internal/app/models"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func feeFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("set", pflag.ContinueOnError)
	flags.Int64("recurring", 0, "")
	flags.Int64("default", 0, "")
	flags.Int64("emergency", 0, "")
	assert.NoError(t, flags.Parse(args))
	return flags
}

func TestApplyFeeFlagsKeepsUnsetAmounts(t *testing.T) {
	current := models.FeeStructure{RecurringFee: 150000, DefaultFee: 200000, EmergencyFee: 350000}

	fee := applyFeeFlags(feeFlags(t, "--default", "100"), current)
	assert.Equal(t, models.FeeStructure{RecurringFee: 150000, DefaultFee: 100, EmergencyFee: 350000}, fee)

	fee = applyFeeFlags(feeFlags(t, "--recurring", "0", "--emergency", "5"), current)
	assert.Equal(t, models.FeeStructure{RecurringFee: 0, DefaultFee: 200000, EmergencyFee: 5}, fee)

	assert.Equal(t, current, applyFeeFlags(feeFlags(t), current))
}
