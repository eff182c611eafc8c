package model_test

import (
	"fmt"
	"testing"
	"time"

	"mela-ticketing/internal/model"
	apperrors "mela-ticketing/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTicketToken(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	token := model.FormatTicketToken(42, createdAt)
	assert.Equal(t, fmt.Sprintf("BOOKING:42:%d", createdAt.Unix()), token)
}

func TestParseTicketToken_RoundTrip(t *testing.T) {
	timestamps := []time.Time{
		time.Unix(0, 0),
		time.Unix(1700000000, 0),
		time.Now(),
	}

	for _, ts := range timestamps {
		for _, id := range []int{0, 1, 42, 999999} {
			token := model.FormatTicketToken(id, ts)
			parsed, err := model.ParseTicketToken(token)
			require.NoError(t, err)
			assert.Equal(t, id, parsed)
		}
	}
}

func TestParseTicketToken_BareID(t *testing.T) {
	id, err := model.ParseTicketToken("17")
	require.NoError(t, err)
	assert.Equal(t, 17, id)
}

func TestParseTicketToken_Invalid(t *testing.T) {
	cases := []string{
		"",
		"BOOKING:",
		"BOOKING:abc:123",
		"TICKET:1:2",
		"not-a-number",
		"-5",
	}

	for _, token := range cases {
		t.Run(token, func(t *testing.T) {
			_, err := model.ParseTicketToken(token)
			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		})
	}
}

func TestParseTicketToken_IgnoresTimestampField(t *testing.T) {
	// 時間戳欄位是保留欄位，內容不影響解析
	id, err := model.ParseTicketToken("BOOKING:7:whatever")
	require.NoError(t, err)
	assert.Equal(t, 7, id)
}
