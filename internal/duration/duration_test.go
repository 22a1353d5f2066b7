package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sceneforge/sceneplan-api/internal/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    float64
		wantErr bool
	}{
		{name: "minutes and seconds", expr: "1m 30s", want: 90},
		{name: "multiple tokens sum", expr: "2m 15s", want: 135},
		{name: "bare number is seconds", expr: "45", want: 45},
		{name: "vietnamese minutes", expr: "1 phút", want: 60},
		{name: "vietnamese seconds", expr: "30 giây", want: 30},
		{name: "unaccented vietnamese", expr: "2 phut", want: 120},
		{name: "full english words", expr: "2 minutes 10 seconds", want: 130},
		{name: "singular word unit", expr: "1 minute", want: 60},
		{name: "short sec unit", expr: "20 sec", want: 20},
		{name: "fractional minutes", expr: "1.5m", want: 90},
		{name: "decimal comma", expr: "1,5m", want: 90},
		{name: "no space before unit", expr: "90s", want: 90},
		{name: "token order irrelevant", expr: "30s 1m", want: 90},
		{name: "mixed languages in one string", expr: "1 phút 30s", want: 90},
		{name: "uppercase units", expr: "2M", want: 120},
		{name: "uppercase vietnamese", expr: "1 PHÚT", want: 60},
		{name: "surrounding prose", expr: "khoảng 1m 30s", want: 90},
		{name: "bare fractional number", expr: "7.5", want: 7.5},
		{name: "whitespace padding", expr: "  45s  ", want: 45},
		{name: "full day accepted", expr: "86400", want: 86400},
		{name: "over one day rejected", expr: "86401", wantErr: true},
		{name: "twenty digit number rejected", expr: "99999999999999999999", wantErr: true},
		{name: "exponent overflow rejected", expr: "1e20", wantErr: true},
		{name: "huge minute total rejected", expr: "99999999m", wantErr: true},
		{name: "zero seconds rejected", expr: "0s", wantErr: true},
		{name: "negative rejected", expr: "-5s", wantErr: true},
		{name: "empty rejected", expr: "", wantErr: true},
		{name: "whitespace only rejected", expr: "   ", wantErr: true},
		{name: "words only rejected", expr: "abc xyz", wantErr: true},
		{name: "zero bare number rejected", expr: "0", wantErr: true},
		{name: "negative bare number rejected", expr: "-12", wantErr: true},
		{name: "infinity literal rejected", expr: "inf", wantErr: true},
		{name: "nan literal rejected", expr: "nan", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expr)
			if tt.wantErr {
				require.Error(t, err)
				planErr, ok := models.AsPlanError(err)
				require.True(t, ok)
				assert.Equal(t, models.ErrKindInvalidDuration, planErr.Kind)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseErrorCarriesInput(t *testing.T) {
	_, err := Parse("ten-ish minutes")
	require.Error(t, err)

	planErr, ok := models.AsPlanError(err)
	require.True(t, ok)
	assert.Contains(t, planErr.Message, "ten-ish minutes")
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "seconds only", seconds: 45, want: "45s"},
		{name: "exact minute", seconds: 60, want: "1m"},
		{name: "minutes and seconds", seconds: 90, want: "1m 30s"},
		{name: "rounds fractional seconds", seconds: 7.5, want: "8s"},
		{name: "multi minute", seconds: 135, want: "2m 15s"},
		{name: "clamps beyond the accepted range", seconds: 1e20, want: "1440m"},
		{name: "negative clamps to zero", seconds: -5, want: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.seconds))
		})
	}
}
