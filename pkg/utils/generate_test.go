package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfirmationCode_StaysWithinSixDigits(t *testing.T) {
	for i := 0; i < 5000; i++ {
		code := GenerateConfirmationCode()
		require.GreaterOrEqual(t, code, 0)
		require.LessOrEqual(t, code, 999999)
		require.Len(t, FormatConfirmationCode(code), ConfirmationCodeDigits)
	}
}

func TestRandomDigit_NeverProducesTwoDigitDraw(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		d := randomDigit()
		require.GreaterOrEqual(t, d, 0)
		require.LessOrEqual(t, d, 9)
		seen[d] = true
	}
	assert.Len(t, seen, 10)
}

func TestFormatConfirmationCode_PadsLeadingZeros(t *testing.T) {
	assert.Equal(t, "000042", FormatConfirmationCode(42))
	assert.Equal(t, "123456", FormatConfirmationCode(123456))
}

func TestParseConfirmationCode(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "123456", want: 123456},
		{raw: "000042", want: 42},
		{raw: "42", want: 42},
		{raw: "", wantErr: true},
		{raw: "1234567", wantErr: true},
		{raw: "12a456", wantErr: true},
		{raw: "-12345", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseConfirmationCode(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
