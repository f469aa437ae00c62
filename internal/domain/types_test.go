package domain

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapOfAny_ScanValue(t *testing.T) {
	var m MapOfAny
	require.NoError(t, m.Scan([]byte(`{"name":"Acme","qty":3}`)))
	assert.Equal(t, "Acme", m["name"])
	assert.Equal(t, float64(3), m["qty"])

	var empty MapOfAny
	require.NoError(t, empty.Scan(nil))
	assert.Nil(t, empty)

	v, err := MapOfAny{"a": 1}.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), v)

	v, err = MapOfAny(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		var r DateRange
		err := r.FromURLParams(url.Values{"from": {"2024-03-01"}, "to": {"2024-03-31"}})
		require.NoError(t, err)

		loc, err := time.LoadLocation("Asia/Manila")
		require.NoError(t, err)

		start, end := r.Bounds(loc)
		require.NotNil(t, start)
		require.NotNil(t, end)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), *start)
		assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, loc), *end)
	})

	t.Run("open ended", func(t *testing.T) {
		r := DateRange{From: "2024-03-01"}
		start, end := r.Bounds(nil)
		require.NotNil(t, start)
		assert.Nil(t, end)
		assert.False(t, r.IsZero())
		assert.True(t, DateRange{}.IsZero())
	})

	t.Run("bad format", func(t *testing.T) {
		var r DateRange
		err := r.FromURLParams(url.Values{"from": {"03/01/2024"}})
		assert.IsType(t, ValidationError{}, err)
	})

	t.Run("inverted", func(t *testing.T) {
		err := DateRange{From: "2024-03-02", To: "2024-03-01"}.Validate()
		assert.Error(t, err)
	})
}

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	// 2024-05-10 20:30 UTC is already 2024-05-11 in Manila (UTC+8)
	now := time.Date(2024, 5, 10, 20, 30, 0, 0, time.UTC)
	start, end := DayBounds(now, loc)

	assert.Equal(t, time.Date(2024, 5, 11, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 5, 12, 0, 0, 0, 0, loc), end)
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 15 ", "id")
	require.NoError(t, err)
	assert.Equal(t, int64(15), id)

	_, err = ParseID("", "id")
	assert.EqualError(t, err, "validation error: id is required")

	_, err = ParseID("abc", "id")
	assert.Error(t, err)

	_, err = ParseID("-3", "id")
	assert.Error(t, err)
}

func TestIDList_Validate(t *testing.T) {
	ids, err := IDList{3, 1, 3, 2}.Validate()
	require.NoError(t, err)
	assert.Equal(t, IDList{3, 1, 2}, ids)

	_, err = IDList{}.Validate()
	assert.EqualError(t, err, "validation error: ids is required")

	_, err = IDList(nil).Validate()
	assert.Error(t, err)

	_, err = IDList{1, 0}.Validate()
	assert.Error(t, err)
}

func TestSumByGroup(t *testing.T) {
	type sale struct {
		agent  string
		amount float64
	}

	sales := []sale{
		{"Ana Cruz", 1500},
		{"Ben Reyes", 200.5},
		{"Ana Cruz", 500},
		{"Carl Lim", 2000},
		{"Ben Reyes", 99.5},
		{"Dana Uy", 0},
	}

	totals := SumByGroup(sales,
		func(s sale) string { return s.agent },
		func(s sale) float64 { return s.amount },
	)

	assert.Equal(t, []GroupTotal{
		{Key: "Ana Cruz", Total: 2000, Count: 2},
		{Key: "Carl Lim", Total: 2000, Count: 1},
		{Key: "Ben Reyes", Total: 300, Count: 2},
		{Key: "Dana Uy", Total: 0, Count: 1},
	}, totals)

	assert.Empty(t, SumByGroup([]sale{}, func(s sale) string { return s.agent }, func(s sale) float64 { return s.amount }))
}
