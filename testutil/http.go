package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeader(t *testing.T, req RecordedRequest, header, expectedValue string) {
	t.Helper()
	assert.Equal(t, expectedValue, req.Header.Get(header), "Header %s mismatch", header)
}

func AssertHeaderAbsent(t *testing.T, req RecordedRequest, header string) {
	t.Helper()
	assert.Empty(t, req.Header.Values(header), "Header %s should not be sent", header)
}

func AssertHeaderExists(t *testing.T, req RecordedRequest, header string) {
	t.Helper()
	assert.NotEmpty(t, req.Header.Get(header), "Header %s should exist", header)
}

func AssertNoQuery(t *testing.T, req RecordedRequest) {
	t.Helper()
	assert.Empty(t, req.Query, "Request should carry no query parameters")
}

func AssertEmptyBody(t *testing.T, req RecordedRequest) {
	t.Helper()
	assert.Empty(t, req.Body, "Request body should be empty")
}

func AssertJSONBody(t *testing.T, req RecordedRequest, expected map[string]any) {
	t.Helper()

	var actual map[string]any

	err := json.Unmarshal(req.Body, &actual)
	require.NoError(t, err, "Request body should be valid JSON")
	assert.Equal(t, expected, actual, "Request body mismatch")
}
