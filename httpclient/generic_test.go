package httpclient_test

import (
	"net/http"
	"testing"

	"github.com/andyle182810/gapireq/httpclient"
	"github.com/andyle182810/gapireq/testutil"
	"github.com/stretchr/testify/require"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newUserService(t *testing.T, reply testutil.Reply) (*httpclient.Service, *testutil.RecordingServer) {
	t.Helper()

	server := testutil.NewRecordingServer(t, reply)
	service := httpclient.NewService(server.URL,
		httpclient.WithAuthToken("tok"),
		httpclient.WithDispatcher(newSilentDispatcher()),
	)

	return service, server
}

func TestGetJSON_DecodesResponse(t *testing.T) {
	t.Parallel()

	service, server := newUserService(t, testutil.Reply{
		Status:      http.StatusOK,
		ContentType: "application/json",
		Body:        `{"id":7,"name":"Ada"}`,
	})

	result, err := httpclient.GetJSON[user](t.Context(), service, "/users/7", map[string]any{"expand": "roles"})
	require.NoError(t, err)
	require.Equal(t, user{ID: 7, Name: "Ada"}, result)

	req := server.LastRequest(t)
	require.Equal(t, "roles", req.Query.Get("expand"))
}

func TestPostJSON_DecodesResponse(t *testing.T) {
	t.Parallel()

	service, server := newUserService(t, testutil.Reply{
		Status:      http.StatusCreated,
		ContentType: "application/json",
		Body:        `{"id":8,"name":"Grace"}`,
	})

	result, err := httpclient.PostJSON[user](t.Context(), service, "/users", map[string]any{"name": "Grace"})
	require.NoError(t, err)
	require.Equal(t, 8, result.ID)

	testutil.AssertJSONBody(t, server.LastRequest(t), map[string]any{"name": "Grace"})
}

func TestDeleteJSON_DecodesResponse(t *testing.T) {
	t.Parallel()

	service, _ := newUserService(t, testutil.Reply{
		Status:      http.StatusOK,
		ContentType: "application/json",
		Body:        `{"deleted":true}`,
	})

	result, err := httpclient.DeleteJSON[map[string]bool](t.Context(), service, "/users/8")
	require.NoError(t, err)
	require.True(t, result["deleted"])
}

func TestGetJSON_ReturnsDecodeError(t *testing.T) {
	t.Parallel()

	service, _ := newUserService(t, testutil.Reply{Status: http.StatusOK, Body: "not json"})

	_, err := httpclient.GetJSON[user](t.Context(), service, "/users/7", nil)
	require.ErrorIs(t, err, httpclient.ErrDecodeResponse)
}

func TestGetJSON_PassesRequestErrorThrough(t *testing.T) {
	t.Parallel()

	service, _ := newUserService(t, testutil.Reply{Status: http.StatusForbidden, Body: "nope"})

	result, err := httpclient.GetJSON[user](t.Context(), service, "/users/7", nil)
	require.Zero(t, result)
	require.True(t, httpclient.IsAuthenticationError(err))
}
