package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePriceTable(t *testing.T) {
	table := DerivePriceTable(9000)

	assert.Equal(t, 600, table.Day)
	assert.Equal(t, 2250, table.Week)
	assert.Equal(t, 9000, table.Month)
	assert.Equal(t, 99000, table.Year)
}

func TestDerivePriceTable_Rounding(t *testing.T) {
	// 7000/15 = 466.67 rounds to 467, 7000/4 = 1750 exactly
	table := DerivePriceTable(7000)

	assert.Equal(t, 467, table.Day)
	assert.Equal(t, 1750, table.Week)
	assert.Equal(t, 77000, table.Year)
}

func TestPriceTable_ForCycle(t *testing.T) {
	table := PriceTable{Day: 500, Week: 3000, Month: 8500, Year: 95000}

	assert.Equal(t, 500, table.ForCycle(CycleDay))
	assert.Equal(t, 3000, table.ForCycle(CycleWeek))
	assert.Equal(t, 8500, table.ForCycle(CycleMonth))
	assert.Equal(t, 95000, table.ForCycle(CycleYear))
	// Unknown cycles fall back to monthly
	assert.Equal(t, 8500, table.ForCycle(BookingCycle("Fortnight")))
}

func TestNeutralInquiryAnalysis(t *testing.T) {
	analysis := NeutralInquiryAnalysis()

	assert.Equal(t, 50, analysis.Seriousness)
	assert.Equal(t, "Neutral", analysis.Tone)
	assert.False(t, analysis.IsSpam)
	assert.Equal(t, "Unable to analyze.", analysis.Reasoning)
}
