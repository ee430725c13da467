package matchapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/visuscan/visuscan/pkg/apix"
	"github.com/visuscan/visuscan/screening/match/matchsrv"
)

type stubScorer struct {
	score float64
	err   error
}

func (s *stubScorer) Score(_ context.Context, _, _ string) (float64, error) {
	return s.score, s.err
}

func newTestApp(scorer *stubScorer) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apix.ErrorHandler})
	RegisterRoutes(app, NewHandlers(matchsrv.NewService(scorer)))
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) (*http.Response, apix.Envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var env apix.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestMatchSuccess(t *testing.T) {
	app := newTestApp(&stubScorer{score: 0.91})

	body := `{
		"resume": {"Skills": ["Go", "SQL"], "Projects": [{"Description": "API work"}]},
		"jd": {"Skills Required": ["Go", "Kafka"]}
	}`
	resp, env := postJSON(t, app, body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "success", env.Status)
	require.Equal(t, "Relevance computed", env.Message)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, 0.91, data["score"])
	require.Equal(t, "Highly relevant", data["verdict"])

	highlights, ok := data["highlights"].([]any)
	require.True(t, ok)
	require.Contains(t, highlights, "Skills matched: 1 out of 2")
	require.Contains(t, highlights, "Overlapping skills: go")
	require.Contains(t, highlights, "Missing skills: kafka")
	require.Contains(t, highlights, "Resume includes relevant project experience.")
}

func TestMatchEmptyDocuments(t *testing.T) {
	// Missing keys substitute defaults; the comparison itself never fails.
	app := newTestApp(&stubScorer{score: 0.1})

	resp, env := postJSON(t, app, `{"resume": {}, "jd": {}}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Low relevance", data["verdict"])

	highlights, ok := data["highlights"].([]any)
	require.True(t, ok)
	require.Contains(t, highlights, "Experience: Candidate has N/A years vs required N/A")
	require.Contains(t, highlights, "No projects listed in resume.")
}

func TestMatchMalformedBody(t *testing.T) {
	app := newTestApp(&stubScorer{score: 0.5})

	resp, env := postJSON(t, app, `{"resume": [}`)

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, "error", env.Status)
	require.Equal(t, "Validation error", env.Message)
	require.Equal(t, 422, env.Code)
}

func TestMatchScorerFailure(t *testing.T) {
	app := newTestApp(&stubScorer{err: context.DeadlineExceeded})

	resp, env := postJSON(t, app, `{"resume": {}, "jd": {}}`)

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "error", env.Status)
	require.Contains(t, env.Message, "Error computing relevance")
	require.Nil(t, env.Data)
}
