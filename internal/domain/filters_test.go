package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestFilterState_Reset(t *testing.T) {
	state := FilterState{Store: "Loja Centro", StartDate: day(10), EndDate: day(12)}

	state.Reset(DateBounds{Start: day(1).Add(15 * time.Hour), End: day(31)})

	assert.Equal(t, AllStores, state.Store)
	assert.True(t, state.AllStoresSelected())
	assert.Equal(t, day(1), state.StartDate)
	assert.Equal(t, day(31), state.EndDate)
}

func TestDateBounds_Contains(t *testing.T) {
	bounds := DateBounds{Start: day(5), End: day(10)}

	assert.True(t, bounds.Contains(day(5)))
	assert.True(t, bounds.Contains(day(10).Add(23*time.Hour)))
	assert.False(t, bounds.Contains(day(4)))
	assert.False(t, bounds.Contains(day(11)))
}

func TestDatasets_BoundsAndStores(t *testing.T) {
	datasets := Datasets{Sales: []SalesRecord{
		{Date: day(3), Store: "Loja B"},
		{Date: day(1), Store: "Loja A"},
		{Date: day(7), Store: "Loja B"},
	}}

	bounds, ok := datasets.DateBounds()
	assert.True(t, ok)
	assert.Equal(t, day(1), bounds.Start)
	assert.Equal(t, day(7), bounds.End)
	assert.Equal(t, []string{"Loja B", "Loja A"}, datasets.Stores())

	_, ok = Datasets{}.DateBounds()
	assert.False(t, ok)
}
