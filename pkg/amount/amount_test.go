package amount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{name: "integer", text: "10", want: "10"},
		{name: "dot decimal", text: "10.5", want: "10.5"},
		{name: "comma decimal", text: "10,5", want: "10.5"},
		{name: "zero", text: "0", want: "0"},
		{name: "leading zeros", text: "007", want: "7"},
		{name: "long fraction", text: "1.230045", want: "1.230045"},
		{name: "empty", text: "", wantErr: true},
		{name: "negative", text: "-5", wantErr: true},
		{name: "two separators", text: "12.3.4", wantErr: true},
		{name: "mixed separators", text: "1,2.3", wantErr: true},
		{name: "trailing separator", text: "12.", wantErr: true},
		{name: "leading separator", text: ".5", wantErr: true},
		{name: "letters", text: "abc", wantErr: true},
		{name: "internal space", text: "1 2", wantErr: true},
		{name: "exponent", text: "1e3", wantErr: true},
		{name: "thousands separator", text: "1,000.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}
