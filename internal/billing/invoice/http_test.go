// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package invoice

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateParam(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		key        string
		upperBound bool
		expected   string
		valid      bool
	}{
		{
			name:     "plain_date_lower_bound_is_midnight",
			query:    "from=2026-08-01",
			key:      "from",
			expected: "2026-08-01T00:00:00Z",
			valid:    true,
		},
		{
			name:       "plain_date_upper_bound_covers_whole_day",
			query:      "to=2026-08-01",
			key:        "to",
			upperBound: true,
			expected:   "2026-08-01T23:59:59.999999999Z",
			valid:      true,
		},
		{
			name:       "timestamp_upper_bound_is_taken_verbatim",
			query:      "to=2026-08-01T12:30:00Z",
			key:        "to",
			upperBound: true,
			expected:   "2026-08-01T12:30:00Z",
			valid:      true,
		},
		{
			name:  "absent_param_is_nil_and_valid",
			query: "",
			key:   "to",
			valid: true,
		},
		{
			name:  "garbage_is_rejected",
			query: "to=yesterday",
			key:   "to",
			valid: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/invoices?"+tc.query, nil)

			parsed, ok := parseDateParam(request, tc.key, tc.upperBound)
			assert.Equal(t, tc.valid, ok)

			if tc.expected == "" {
				assert.Nil(t, parsed)
				return
			}
			require.NotNil(t, parsed)
			assert.Equal(t, tc.expected, parsed.UTC().Format(time.RFC3339Nano))
		})
	}
}

// An invoice issued during the day named by a plain-date "to" filter must
// fall inside the parsed bound.
func TestParseDateParamUpperBoundIncludesSameDay(t *testing.T) {
	request := httptest.NewRequest("GET", "/invoices?to=2026-08-01", nil)

	to, ok := parseDateParam(request, "to", true)
	require.True(t, ok)
	require.NotNil(t, to)

	issuedMidday := time.Date(2026, 8, 1, 14, 45, 0, 0, time.UTC)
	assert.False(t, issuedMidday.After(*to))
}
