package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `150000`, 150000},
		{"fractional", `99.5`, 99.5},
		{"quoted number", `"200000"`, 200000},
		{"quoted fractional", `"12.5"`, 12.5},
		{"garbage string", `"free"`, 0},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n FlexNumber
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &n))
			assert.Equal(t, tt.want, n.Float64())
		})
	}
}

func TestFlexNumberInStruct(t *testing.T) {
	var payload struct {
		Price FlexNumber `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price":"abc"}`), &payload))
	assert.Equal(t, 0.0, payload.Price.Float64())

	require.NoError(t, json.Unmarshal([]byte(`{"price":150000}`), &payload))
	assert.Equal(t, 150000.0, payload.Price.Float64())
}
