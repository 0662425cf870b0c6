package payment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    float64
		wantErr bool
	}{
		{name: "number", raw: 19.99, want: 19.99},
		{name: "numeric string", raw: " 25 ", want: 25},
		{name: "negative", raw: -5.0, wantErr: true},
		{name: "zero", raw: 0.0, wantErr: true},
		{name: "word", raw: "abc", wantErr: true},
		{name: "missing", raw: nil, wantErr: true},
		{name: "infinite", raw: math.Inf(1), wantErr: true},
		{name: "bool", raw: true, wantErr: true},
		{name: "largest accepted", raw: 999999.99, want: 999999.99},
		{name: "above provider max", raw: 1000000.0, wantErr: true},
		{name: "huge", raw: 1e300, wantErr: true},
		{name: "huge string", raw: "1e17", wantErr: true},
		{name: "past int64 cents", raw: 92233720368547758.08, wantErr: true},
		{name: "below one cent", raw: 0.001, wantErr: true},
		{name: "half cent rounds up", raw: 0.005, want: 0.005},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsErrBadRequest(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), MinorUnits(19.99))
	assert.Equal(t, int64(1000), MinorUnits(10))
	assert.Equal(t, int64(1), MinorUnits(0.005))
	assert.Equal(t, int64(57), MinorUnits(0.57))
}
