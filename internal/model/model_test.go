package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/plant-care/internal/apperror"
)

// =========================================================================
// DATE
// =========================================================================

func TestDate_AddDaysCrossesMonthAndYear(t *testing.T) {
	tests := []struct {
		name  string
		start Date
		days  int
		want  string
	}{
		{"same month", NewDate(2024, time.March, 1), 7, "2024-03-08"},
		{"month end", NewDate(2024, time.January, 28), 7, "2024-02-04"},
		{"leap day", NewDate(2024, time.February, 28), 1, "2024-02-29"},
		{"year end", NewDate(2023, time.December, 30), 3, "2024-01-02"},
		{"zero days", NewDate(2024, time.June, 15), 0, "2024-06-15"},
		{"backwards", NewDate(2024, time.March, 1), -1, "2024-02-29"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.AddDays(tt.days).String())
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.True(t, d.Equal(NewDate(2024, time.March, 1)))

	d, err = ParseDate("2024-03-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", d.String())

	_, err = ParseDate("01/03/2024")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2024, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01"`, string(b))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-12-31"`), &d))
	assert.Equal(t, "2024-12-31", d.String())

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero(), "an empty string decodes to the zero date")

	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &d))
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want string
	}{
		{"time", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "2024-03-01"},
		{"string", "2024-03-02", "2024-03-02"},
		{"bytes", []byte("2024-03-03"), "2024-03-03"},
		{"datetime text", "2024-03-04 00:00:00", "2024-03-04"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}

// =========================================================================
// FIELD
// =========================================================================

func TestField_ThreeStates(t *testing.T) {
	var body struct {
		Absent  Field[string] `json:"absent"`
		Null    Field[string] `json:"null"`
		Present Field[string] `json:"present"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"null": null, "present": "x"}`), &body))

	assert.False(t, body.Absent.Set)
	assert.True(t, body.Null.Set)
	assert.True(t, body.Null.Null)
	assert.Nil(t, body.Null.Ptr())
	assert.True(t, body.Present.Set)
	assert.False(t, body.Present.Null)
	assert.Equal(t, "x", *body.Present.Ptr())
}

// =========================================================================
// PLANT
// =========================================================================

func intPtr(v int) *int { return &v }

func datePtr(d Date) *Date { return &d }

func TestPlant_NextWater(t *testing.T) {
	watered := NewDate(2024, time.March, 1)

	tests := []struct {
		name  string
		plant Plant
		want  *Date
	}{
		{"both present", Plant{LastWatered: datePtr(watered), WaterFrequencyDays: intPtr(7)}, datePtr(NewDate(2024, time.March, 8))},
		{"never watered", Plant{WaterFrequencyDays: intPtr(7)}, nil},
		{"no frequency", Plant{LastWatered: datePtr(watered)}, nil},
		{"zero frequency is due the same day", Plant{LastWatered: datePtr(watered), WaterFrequencyDays: intPtr(0)}, datePtr(watered)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.plant.NextWater()
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestPlantView_JSON(t *testing.T) {
	v := NewPlantView(Plant{ID: 3, Name: "Fern", LastWatered: datePtr(NewDate(2024, time.March, 1)), WaterFrequencyDays: intPtr(3)})

	b, err := json.Marshal(v)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "2024-03-04", got["next_water"])
	assert.Equal(t, "2024-03-01", got["last_watered"])
	assert.Nil(t, got["variety"])
	assert.Contains(t, got, "price")
}

func TestNewPlant_Normalize(t *testing.T) {
	empty := ""
	zero := 0.0
	n := NewPlant{Name: "Fern", Variety: &empty, Price: &zero, PhotoURL: &empty}.Normalize()

	assert.Equal(t, DefaultPlantEmoji, *n.Emoji)
	assert.Equal(t, DefaultWaterFrequencyDays, *n.WaterFrequencyDays)
	assert.Equal(t, DefaultHumidity, *n.Humidity)
	assert.Equal(t, DefaultHealth, *n.Health)
	assert.Nil(t, n.Variety)
	assert.Nil(t, n.Price)
	assert.Nil(t, n.PhotoURL)

	var fromJSON NewPlant
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Fern","purchase_date":""}`), &fromJSON))
	assert.Nil(t, fromJSON.Normalize().PurchaseDate)

	humidity := 0
	n = NewPlant{Humidity: &humidity}.Normalize()
	assert.Equal(t, 0, *n.Humidity, "an explicit zero is not replaced by the default")
}

func TestPlantPatch(t *testing.T) {
	var p PlantPatch
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "unknown": 1}`), &p))
	assert.True(t, p.Empty())

	require.NoError(t, json.Unmarshal([]byte(`{"humidity": 80}`), &p))
	assert.False(t, p.Empty())
	assert.Equal(t, 80, p.Humidity.Value)
	assert.NoError(t, p.Validate())

	var clear PlantPatch
	require.NoError(t, json.Unmarshal([]byte(`{"variety": null, "water_frequency_days": null}`), &clear))
	assert.NoError(t, clear.Validate())

	var bad PlantPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name": null}`), &bad))
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	var negative PlantPatch
	require.NoError(t, json.Unmarshal([]byte(`{"water_frequency_days": -1}`), &negative))
	assert.Error(t, negative.Validate())
}
