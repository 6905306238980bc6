package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddCalendarMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid month",
			in:   time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC),
			want: time.Date(2024, time.April, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "jan 31 clamps to leap february",
			in:   time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "jan 31 clamps to february",
			in:   time.Date(2023, time.January, 31, 9, 0, 0, 0, time.UTC),
			want: time.Date(2023, time.February, 28, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "december rolls the year",
			in:   time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC),
			want: time.Date(2024, time.January, 31, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "may 31 clamps to june 30",
			in:   time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(AddCalendarMonth(tt.in)), "got %s", AddCalendarMonth(tt.in))
		})
	}
}

func TestMonthWindow_UsesLocation(t *testing.T) {
	dhaka := time.FixedZone("BDT", 6*60*60)

	// 2024-03-31 20:00 UTC is already April 1st in Dhaka.
	now := time.Date(2024, time.March, 31, 20, 0, 0, 0, time.UTC)
	start, end := MonthWindow(now, dhaka)

	assert.Equal(t, time.April, start.Month())
	assert.Equal(t, 1, start.Day())
	assert.True(t, end.Equal(time.Date(2024, time.May, 1, 0, 0, 0, 0, dhaka)))

	utcStart, _ := MonthWindow(now, nil)
	assert.Equal(t, time.March, utcStart.Month())
}

func TestLimit_Allows(t *testing.T) {
	assert.True(t, Limit(5).Allows(4))
	assert.False(t, Limit(5).Allows(5))
	assert.False(t, Limit(0).Allows(0))
	assert.True(t, Unlimited.Allows(1_000_000))
	assert.True(t, Unlimited.IsUnlimited())
}

func TestShopProfile_ProActive(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	assert.True(t, (&ShopProfile{IsPro: true, ProExpiry: &future}).ProActive(now))
	assert.False(t, (&ShopProfile{IsPro: true, ProExpiry: &past}).ProActive(now))
	assert.False(t, (&ShopProfile{IsPro: false, ProExpiry: &future}).ProActive(now))
	assert.False(t, (&ShopProfile{IsPro: true}).ProActive(now))

	var nilShop *ShopProfile
	assert.False(t, nilShop.ProActive(now))
}
