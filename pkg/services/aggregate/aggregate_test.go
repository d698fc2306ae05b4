package aggregate

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	day      time.Time
	flag     bool
	quantity decimal.Decimal
	price    decimal.Decimal
}

func day(d int) time.Time {
	return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC)
}

func samples() []sample {
	return []sample{
		{day: day(13).Add(1 * time.Hour), flag: true, quantity: decimal.NewFromInt(2), price: decimal.RequireFromString("10.00")},
		{day: day(14), flag: false, quantity: decimal.NewFromInt(1), price: decimal.RequireFromString("7.25")},
		{day: day(13).Add(5 * time.Hour), flag: true, quantity: decimal.NewFromInt(5), price: decimal.RequireFromString("3.00")},
		{day: day(15), flag: false, quantity: decimal.NewFromInt(4), price: decimal.RequireFromString("1.10")},
		{day: day(14).Add(23 * time.Hour), flag: true, quantity: decimal.NewFromInt(3), price: decimal.RequireFromString("0.33")},
	}
}

func measures(s sample) []decimal.Decimal {
	return []decimal.Decimal{s.quantity, s.quantity.Mul(s.price)}
}

func TestGroupBy_ByDay(t *testing.T) {
	groups := GroupBy(samples(), func(s sample) time.Time { return DayOf(s.day) }, measures)

	require.Equal(t, 3, groups.Len())
	assert.Equal(t, []time.Time{day(13), day(14), day(15)}, groups.Keys())

	totals, ok := groups.Get(day(13))
	require.True(t, ok)
	assert.Equal(t, 2, totals.Count)
	assert.Equal(t, "7", totals.Sum(0).String())
	assert.Equal(t, "35.00", totals.Sum(1).StringFixed(2))
}

func TestGroupBy_ConfirmationCounts(t *testing.T) {
	groups := GroupBy(samples(), func(s sample) bool { return s.flag }, CountOnly[sample])

	confirmed, _ := groups.Get(true)
	notConfirmed, _ := groups.Get(false)
	assert.Equal(t, 3, confirmed.Count)
	assert.Equal(t, 2, notConfirmed.Count)
	assert.Empty(t, confirmed.Sums)
}

func TestGroupBy_IsOrderIndependent(t *testing.T) {
	base := GroupBy(samples(), func(s sample) bool { return s.flag }, measures)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := samples()
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		groups := GroupBy(shuffled, func(s sample) bool { return s.flag }, measures)
		for _, k := range []bool{true, false} {
			want, _ := base.Get(k)
			got, _ := groups.Get(k)
			assert.Equal(t, want.Count, got.Count)
			for m := range want.Sums {
				assert.True(t, want.Sum(m).Equal(got.Sum(m)), "measure %d of group %v", m, k)
			}
		}
	}
}

func TestGroupBy_WholeDataset(t *testing.T) {
	groups := GroupBy(samples(), WholeKey[sample], measures)

	require.Equal(t, 1, groups.Len())
	totals, ok := groups.Get(Whole{})
	require.True(t, ok)
	assert.Equal(t, 5, totals.Count)
	assert.Equal(t, "15", totals.Sum(0).String())
	assert.True(t, totals.Sum(0).Equal(groups.Total().Sum(0)))

	avg, err := totals.Average(0)
	require.NoError(t, err)
	assert.Equal(t, "3", avg.String())
}

func TestGroupBy_PhaseSumsInKWh(t *testing.T) {
	wh := []decimal.Decimal{decimal.NewFromInt(100), decimal.NewFromInt(200), decimal.NewFromInt(300)}
	groups := NewGroups[time.Time]()
	groups.Add(day(13), wh...)

	totals, _ := groups.Get(day(13))
	thousand := decimal.NewFromInt(1000)
	assert.Equal(t, "0.10", totals.Sum(0).Div(thousand).StringFixed(2))
	assert.Equal(t, "0.20", totals.Sum(1).Div(thousand).StringFixed(2))
	assert.Equal(t, "0.30", totals.Sum(2).Div(thousand).StringFixed(2))

	var all decimal.Decimal
	for _, s := range totals.Sums {
		all = all.Add(s)
	}
	assert.Equal(t, "0.60", all.Div(thousand).StringFixed(2))
}

func TestAverage_EmptyGroup(t *testing.T) {
	_, err := Totals{}.Average(0)
	var emptyErr *EmptyGroupError
	require.True(t, errors.As(err, &emptyErr))

	groups := GroupBy([]sample{}, WholeKey[sample], measures)
	_, err = groups.Average(Whole{}, 0)
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, "{}", emptyErr.Group)
	assert.Zero(t, groups.Total().Count)
}

func TestSorted(t *testing.T) {
	groups := NewGroups[ISOWeek]()
	groups.Add(ISOWeek{Year: 2025, Week: 43})
	groups.Add(ISOWeek{Year: 2024, Week: 52})
	groups.Add(ISOWeek{Year: 2025, Week: 41})

	sorted := groups.Sorted(ISOWeek.Compare)

	assert.Equal(t, []ISOWeek{{2024, 52}, {2025, 41}, {2025, 43}}, sorted)
	assert.Equal(t, "2025-W41", sorted[1].String())
}

func TestFilter_InPeriod(t *testing.T) {
	at := func(s sample) time.Time { return s.day }

	matched := Filter(samples(), At(at, InPeriod(domain.NewTimePeriod(day(14), day(15)))))
	assert.Len(t, matched, 3)

	reversed := Filter(samples(), At(at, InPeriod(domain.NewTimePeriod(day(15), day(13)))))
	assert.Empty(t, reversed)

	groups := GroupBy(reversed, WholeKey[sample], measures)
	_, err := groups.Average(Whole{}, 0)
	assert.Error(t, err)
}

func TestFilter_InMonth(t *testing.T) {
	october, err := InMonth(10)
	require.NoError(t, err)
	assert.Len(t, Filter(samples(), At(func(s sample) time.Time { return s.day }, october)), 5)

	november, err := InMonth(11)
	require.NoError(t, err)
	assert.Empty(t, Filter(samples(), At(func(s sample) time.Time { return s.day }, november)))

	for _, m := range []int{0, 13, -1} {
		_, err := InMonth(m)
		var monthErr *MonthError
		assert.True(t, errors.As(err, &monthErr), "month %d", m)
	}
}

func TestMonthOf(t *testing.T) {
	ym := MonthOf(day(31))
	assert.Equal(t, YearMonth{Year: 2025, Month: time.October}, ym)
	assert.Equal(t, "2025-10", ym.String())
	assert.Equal(t, -1, ym.Compare(YearMonth{Year: 2025, Month: time.November}))
}
