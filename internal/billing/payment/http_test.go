// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package payment

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateParamUpperBoundCoversWholeDay(t *testing.T) {
	request := httptest.NewRequest("GET", "/payments?from=2026-08-01&to=2026-08-01", nil)

	from, ok := parseDateParam(request, "from", false)
	require.True(t, ok)
	require.NotNil(t, from)
	assert.Equal(t, "2026-08-01T00:00:00Z", from.UTC().Format(time.RFC3339Nano))

	to, ok := parseDateParam(request, "to", true)
	require.True(t, ok)
	require.NotNil(t, to)

	// A payment recorded during that same day stays inside the range.
	recorded := time.Date(2026, 8, 1, 18, 5, 0, 0, time.UTC)
	assert.False(t, recorded.Before(*from))
	assert.False(t, recorded.After(*to))
}
