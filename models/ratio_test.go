package models_test

import (
	"math"
	"testing"

	"call-center-calculator/models"

	"github.com/stretchr/testify/assert"
)

func TestDivide(t *testing.T) {
	r := models.Divide(8000, 10)
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, 800.0, v)

	assert.False(t, models.Divide(8000, 0).IsDefined())
	assert.False(t, models.Divide(0, 0).IsDefined())
	assert.False(t, models.Finite(math.Inf(1)).IsDefined())
	assert.False(t, models.Finite(math.NaN()).IsDefined())
}

func TestRatio_Compare(t *testing.T) {
	low := models.Finite(400)
	high := models.Finite(1200)
	undefined := models.Undefined()

	assert.True(t, low.Less(high))
	assert.False(t, high.Less(low))
	assert.True(t, high.Less(undefined), "finite beats undefined")
	assert.False(t, undefined.Less(high))
	assert.False(t, undefined.Less(undefined))

	assert.True(t, low.AtMost(400))
	assert.False(t, high.AtMost(1000))
	assert.False(t, undefined.AtMost(math.MaxFloat64))
}

func TestRatio_Format(t *testing.T) {
	tests := map[string]struct {
		ratio    models.Ratio
		currency string
		percent  string
		json     string
	}{
		"Finite": {
			ratio:    models.Finite(941.1764),
			currency: "$941.18",
			percent:  "94117.64%",
			json:     "941.1764",
		},
		"Undefined": {
			ratio:    models.Undefined(),
			currency: "undefined",
			percent:  "undefined",
			json:     "null",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.currency, tt.ratio.Currency())
			assert.Equal(t, tt.percent, tt.ratio.Percent())

			b, err := tt.ratio.MarshalJSON()
			assert.NoError(t, err)
			assert.Equal(t, tt.json, string(b))
		})
	}
}
