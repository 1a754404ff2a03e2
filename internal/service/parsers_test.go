package service_test

import (
	"testing"
	"time"

	"broker-crm-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "61412345678", service.NormalizePhone("+61 412 345 678"))
	assert.Equal(t, "0412345678", service.NormalizePhone("(04) 1234-5678"))
	assert.Equal(t, "", service.NormalizePhone(""))
	assert.Equal(t, "", service.NormalizePhone("no digits here"))
}

func TestParseCallCount(t *testing.T) {
	assert.Equal(t, 3, service.ParseCallCount("3"))
	assert.Equal(t, 12, service.ParseCallCount(" 12 "))
	assert.Equal(t, 0, service.ParseCallCount("-5"))
	assert.Equal(t, 0, service.ParseCallCount("abc"))
	assert.Equal(t, 0, service.ParseCallCount(""))
	assert.Equal(t, 0, service.ParseCallCount("3.5"))
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"vip", "referral"}, service.ParseTags("VIP, Referral"))
	assert.Equal(t, []string{"hot"}, service.ParseTags("  Hot  "))
	assert.Equal(t, []string{"a", "b"}, service.ParseTags("a,,b,"))
	assert.Nil(t, service.ParseTags(""))
	assert.Nil(t, service.ParseTags("  ,  , "))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-03-15 10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"03/15/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"3/5/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"15 Mar 2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"Mar 15, 2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := service.ParseDate(tt.raw)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, raw := range []string{"", "yesterday", "2024-13-45", "soon"} {
		assert.Nil(t, service.ParseDate(raw), "input %q", raw)
	}
}

func TestParseLoanAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"$50,000", 50000},
		{"$20,000 - $30,000", 30000},
		{"50k", 50000},
		{"$1.5k", 1500},
		{"between 10000 and 25000", 25000},
		{"75000.50", 75000.50},
		{"", 0},
		{"not sure yet", 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ParseLoanAmount(tt.raw))
		})
	}
}
