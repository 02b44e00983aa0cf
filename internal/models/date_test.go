package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog-backend/internal/models"
)

func TestParseDate(t *testing.T) {
	d, err := models.ParseDate("2024-07-15")
	require.NoError(t, err)
	assert.Equal(t, models.Date{Year: 2024, Month: time.July, Day: 15}, d)
	assert.Equal(t, "2024-07-15", d.String())

	_, err = models.ParseDate("15/07/2024")
	assert.Error(t, err)
}

func TestDate_AddDaysAcrossMonth(t *testing.T) {
	d := models.Date{Year: 2024, Month: time.February, Day: 28}
	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, "2024-02-27", d.AddDays(-1).String())
}

func TestDate_Ordering(t *testing.T) {
	a := models.Date{Year: 2024, Month: time.July, Day: 1}
	b := models.Date{Year: 2024, Month: time.July, Day: 2}
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
}

func TestDate_In(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)

	d := models.Date{Year: 2024, Month: time.July, Day: 15}
	start := d.In(loc)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, d, models.DateOf(start))
}

func TestDate_Scan(t *testing.T) {
	var d models.Date
	require.NoError(t, d.Scan("2024-07-15"))
	assert.Equal(t, "2024-07-15", d.String())

	require.NoError(t, d.Scan([]byte("2024-07-16T00:00:00Z")))
	assert.Equal(t, "2024-07-16", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 7, 17, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-07-17", d.String())

	assert.Error(t, d.Scan(42))
}

func TestDate_JSON(t *testing.T) {
	var body struct {
		Due *models.Date `json:"due"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-07-15"}`), &body))
	require.NotNil(t, body.Due)
	assert.Equal(t, "2024-07-15", body.Due.String())

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2024-07-15"}`, string(out))
}

func TestTodo_DueOn(t *testing.T) {
	due := models.Date{Year: 2024, Month: time.July, Day: 10}
	todo := models.Todo{DueDate: &due}

	assert.False(t, todo.DueOn(due.AddDays(-1)))
	assert.True(t, todo.DueOn(due))
	assert.True(t, todo.DueOn(due.AddDays(3)))
	assert.False(t, models.Todo{}.DueOn(due))
}
