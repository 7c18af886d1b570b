package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/lacquer/catalog"
	"github.com/kastheco/lacquer/server"
	"github.com/kastheco/lacquer/theme"
)

func newTestServer(t *testing.T, src server.Source) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(server.NewHandler(src))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp.StatusCode
}

func TestServer_Ping(t *testing.T) {
	srv := newTestServer(t, catalog.New())
	resp, err := http.Get(srv.URL + "/v1/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_ListThemes(t *testing.T) {
	srv := newTestServer(t, catalog.New())

	var infos []catalog.Info
	status := getJSON(t, srv.URL+"/v1/themes", &infos)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, infos, 3)
	assert.Equal(t, "field-log", infos[0].ID)
	assert.True(t, infos[0].Builtin)
}

func TestServer_GetTheme(t *testing.T) {
	srv := newTestServer(t, catalog.New())

	var snap struct {
		Meta    theme.Meta        `json:"meta"`
		Tokens  map[string]string `json:"tokens"`
		Palette map[string]string `json:"palette"`
		Styles  map[string]struct {
			FG   string `json:"fg"`
			Bold bool   `json:"bold"`
		} `json:"styles"`
		Gradients map[string][]string `json:"gradients"`
	}
	status := getJSON(t, srv.URL+"/v1/themes/rose-pine-moon", &snap)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Rosé Pine Moon", snap.Meta.Name)
	assert.Equal(t, "#c4a7e7", snap.Tokens["accent.primary"])
	assert.Equal(t, "#232136", snap.Palette["base"])
	assert.Equal(t, "#c4a7e7", snap.Styles["keyword"].FG)
	assert.True(t, snap.Styles["keyword"].Bold)
	assert.Equal(t, []string{"#c4a7e7", "#9ccfd8"}, snap.Gradients["primary"])
}

func TestServer_ThemeNotFound(t *testing.T) {
	srv := newTestServer(t, catalog.New())

	var body map[string]string
	status := getJSON(t, srv.URL+"/v1/themes/missing", &body)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body["error"], "missing")
}

func TestServer_CSS(t *testing.T) {
	srv := newTestServer(t, catalog.New())

	resp, err := http.Get(srv.URL + "/v1/themes/paper/css")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	css := string(body)
	assert.Contains(t, css, "color-scheme: light;")
	assert.Contains(t, css, "--text-primary: #1f1e1c;")
	assert.Contains(t, css, "--palette-ink: #1f1e1c;")
	assert.Contains(t, css, "--gradient-primary: linear-gradient(90deg, #1d4e89, #1b7f79);")
	assert.Contains(t, css, ".style-keyword {")
}

func TestServer_Gradient(t *testing.T) {
	srv := newTestServer(t, catalog.New())

	var got struct {
		Gradient string   `json:"gradient"`
		Stops    []string `json:"stops"`
		Colors   []string `json:"colors"`
	}
	status := getJSON(t, srv.URL+"/v1/themes/rose-pine-moon/gradients/primary?n=3", &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "primary", got.Gradient)
	require.Len(t, got.Colors, 3)
	assert.Equal(t, "#c4a7e7", got.Colors[0])
	assert.Equal(t, "#9ccfd8", got.Colors[2])

	status = getJSON(t, srv.URL+"/v1/themes/rose-pine-moon/gradients/primary", &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, got.Colors, 10)
}

func TestServer_GradientErrors(t *testing.T) {
	srv := newTestServer(t, catalog.New())

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"unknown gradient", "/v1/themes/paper/gradients/nope", http.StatusNotFound},
		{"unknown theme", "/v1/themes/nope/gradients/primary", http.StatusNotFound},
		{"n not a number", "/v1/themes/paper/gradients/primary?n=abc", http.StatusBadRequest},
		{"n zero", "/v1/themes/paper/gradients/primary?n=0", http.StatusBadRequest},
		{"n too large", "/v1/themes/paper/gradients/primary?n=100000", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]string
			assert.Equal(t, tt.status, getJSON(t, srv.URL+tt.path, &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

type failingSource struct{}

func (failingSource) List(context.Context) ([]catalog.Info, error) {
	return nil, errors.New("disk on fire")
}

func (failingSource) Load(context.Context, string) (*theme.Theme, error) {
	return nil, errors.New("disk on fire")
}

func TestServer_SourceErrors(t *testing.T) {
	srv := newTestServer(t, failingSource{})

	var body map[string]string
	assert.Equal(t, http.StatusInternalServerError, getJSON(t, srv.URL+"/v1/themes", &body))
	assert.Equal(t, "disk on fire", body["error"])
	assert.Equal(t, http.StatusInternalServerError, getJSON(t, srv.URL+"/v1/themes/x/css", &body))
}
