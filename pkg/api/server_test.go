package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liquidswrds/csec3330-labs/pkg/config"
	"github.com/liquidswrds/csec3330-labs/pkg/logging"
)

const testTokenSecret = "test-secret-key-must-be-at-least-32-characters"

func newTestServer(t *testing.T, withAuth bool) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	if withAuth {
		cfg.Sessions.TokenSecret = testTokenSecret
	}

	logger := logging.NewJSONLogger(io.Discard, logging.ErrorLevel)
	srv, err := NewServer(cfg, logger)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createSession(t *testing.T, ts *httptest.Server, labID string) CreateSessionResponse {
	t.Helper()
	resp := doJSON(t, http.MethodPost, ts.URL+"/sessions", "", CreateSessionRequest{LabID: labID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[CreateSessionResponse](t, resp)
}

func TestHealthAndLabs(t *testing.T) {
	ts := newTestServer(t, false)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	health := decode[HealthResponse](t, resp)
	assert.Equal(t, "healthy", health.Status)

	resp, err = http.Get(ts.URL + "/labs")
	require.NoError(t, err)
	labs := decode[[]LabResponse](t, resp)
	require.Len(t, labs, 3)
	assert.Equal(t, "system-boundary-lab", labs[0].ID)
	assert.False(t, labs[0].HasQuiz)
	assert.Equal(t, "interconnection-lab", labs[2].ID)
	assert.True(t, labs[2].HasQuiz)
	assert.Equal(t, 12, labs[2].Connections)
}

func TestLabReferenceCatalogs(t *testing.T) {
	ts := newTestServer(t, false)

	resp, err := http.Get(ts.URL + "/labs/interconnection-lab")
	require.NoError(t, err)
	lab := decode[LabResponse](t, resp)
	assert.Equal(t, "interconnection-lab", lab.ID)
	assert.Equal(t, 24, lab.Elements)

	resp, err = http.Get(ts.URL + "/labs/interconnection-lab/dataflows")
	require.NoError(t, err)
	flows := decode[[]map[string]any](t, resp)
	require.Len(t, flows, 5)
	assert.Equal(t, "df-recipe-data", flows[0]["id"])
	assert.Equal(t, "configuration", flows[0]["dataType"])

	resp, err = http.Get(ts.URL + "/labs/interconnection-lab/threats")
	require.NoError(t, err)
	threats := decode[[]map[string]any](t, resp)
	require.Len(t, threats, 5)
	assert.Equal(t, "threat-unauthorized-access", threats[0]["id"])
	assert.NotEmpty(t, threats[0]["mitigations"])

	resp, err = http.Get(ts.URL + "/labs/nope/dataflows")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/labs/interconnection-lab/nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestElementSystemMetadata(t *testing.T) {
	ts := newTestServer(t, false)
	sess := createSession(t, ts, "interconnection-lab")

	resp, err := http.Get(ts.URL + "/sessions/" + sess.SessionID + "/elements")
	require.NoError(t, err)
	elements := decode[[]ElementResponse](t, resp)

	var mixer *ElementResponse
	for i := range elements {
		if elements[i].ID == "mixing-station-controller" {
			mixer = &elements[i]
		}
	}
	require.NotNil(t, mixer)
	require.NotNil(t, mixer.Meta)
	assert.Equal(t, "control_system", mixer.Meta.Category)
	assert.Equal(t, "production_floor", string(mixer.Meta.Zone))

	// Boundary lab elements carry no system metadata
	boundary := createSession(t, ts, "system-boundary-lab")
	resp, err = http.Get(ts.URL + "/sessions/" + boundary.SessionID + "/elements")
	require.NoError(t, err)
	for _, el := range decode[[]ElementResponse](t, resp) {
		assert.Nil(t, el.Meta, "element %s should have no metadata", el.ID)
	}
}

func TestCreateSession(t *testing.T) {
	ts := newTestServer(t, false)

	sess := createSession(t, ts, "system-boundary-lab")
	assert.NotEmpty(t, sess.SessionID)
	assert.Equal(t, "system-boundary-lab", sess.LabID)
	assert.Empty(t, sess.Token) // no token manager configured

	resp := doJSON(t, http.MethodPost, ts.URL+"/sessions", "", CreateSessionRequest{LabID: "nope"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAssignmentFlow(t *testing.T) {
	ts := newTestServer(t, false)
	sess := createSession(t, ts, "system-boundary-lab")
	base := ts.URL + "/sessions/" + sess.SessionID

	// List elements; ground truth must not leak
	resp, err := http.Get(base + "/elements")
	require.NoError(t, err)
	elements := decode[[]ElementResponse](t, resp)
	assert.Len(t, elements, 23)

	// Assign the right functional area; the mutation response carries the
	// immediate per-element feedback
	area := "logistics"
	resp = doJSON(t, http.MethodPost, base+"/assignments", "", map[string]any{
		"elementId": "flour-supplier",
		"axis":      "functional",
		"area":      area,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[AssignmentResponse](t, resp)
	require.NotNil(t, got.Functional)
	assert.Equal(t, area, *got.Functional)
	assert.True(t, got.Complete)
	assert.True(t, got.Correct)

	// A wrong area is complete but not correct
	resp = doJSON(t, http.MethodPost, base+"/assignments", "", map[string]any{
		"elementId": "flour-supplier",
		"axis":      "functional",
		"area":      "production",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	wrong := decode[AssignmentResponse](t, resp)
	assert.True(t, wrong.Complete)
	assert.False(t, wrong.Correct)

	// Clearing the axis makes the element incomplete again
	resp = doJSON(t, http.MethodPost, base+"/assignments", "", map[string]any{
		"elementId": "flour-supplier",
		"axis":      "functional",
		"area":      nil,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cleared := decode[AssignmentResponse](t, resp)
	assert.False(t, cleared.Complete)
	assert.False(t, cleared.Correct)

	// Unknown element is a 404
	resp = doJSON(t, http.MethodPost, base+"/assignments", "", map[string]any{
		"elementId": "ghost",
		"axis":      "functional",
		"area":      area,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Unknown area is a 400
	resp = doJSON(t, http.MethodPost, base+"/assignments", "", map[string]any{
		"elementId": "flour-supplier",
		"axis":      "functional",
		"area":      "nonsense",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestConnectionFlow(t *testing.T) {
	ts := newTestServer(t, false)
	sess := createSession(t, ts, "interconnection-lab")
	base := ts.URL + "/sessions/" + sess.SessionID

	body := map[string]any{
		"sourceId":       "recipe-management",
		"targetId":       "mixing-station-controller",
		"connectionType": "network",
		"dataFlow":       "bidirectional",
	}
	resp := doJSON(t, http.MethodPost, base+"/connections", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[ConnectionResponse](t, resp)
	assert.Equal(t, 1, created.Count)
	assert.True(t, created.Connection.UserCreated)

	// Duplicate pair conflicts
	resp = doJSON(t, http.MethodPost, base+"/connections", "", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Delete frees the pair
	req, err := http.NewRequest(http.MethodDelete, base+"/connections/"+created.Connection.ID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, base+"/connections", "", body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestValidateAndExport(t *testing.T) {
	ts := newTestServer(t, false)
	sess := createSession(t, ts, "interconnection-lab")
	base := ts.URL + "/sessions/" + sess.SessionID

	resp := doJSON(t, http.MethodPost, base+"/connections", "", map[string]any{
		"sourceId":       "corporate-firewall",
		"targetId":       "ot-firewall",
		"connectionType": "physical",
		"dataFlow":       "bidirectional",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, base+"/validate", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	validated := decode[ValidateResponse](t, resp)
	require.NotNil(t, validated.Report)
	assert.Equal(t, 100, validated.Report.Connections.Score)
	require.NotNil(t, validated.QuizScore)
	assert.Equal(t, 0, *validated.QuizScore)
	require.NotNil(t, validated.CombinedScore)
	assert.Equal(t, 60, *validated.CombinedScore)

	resp = doJSON(t, http.MethodGet, base+"/export", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	export := decode[ExportResponse](t, resp)
	assert.Contains(t, export.Filename, "interconnection-lab-results-")
	assert.Equal(t, "interconnection-lab", export.Record.LabID)
	assert.Len(t, export.Record.Snapshot.Connections, 1)
}

func TestQuizFlow(t *testing.T) {
	ts := newTestServer(t, false)
	sess := createSession(t, ts, "interconnection-lab")
	base := ts.URL + "/sessions/" + sess.SessionID

	resp, err := http.Get(base + "/quiz")
	require.NoError(t, err)
	quizState := decode[QuizResponse](t, resp)
	require.Equal(t, 6, quizState.Total)
	assert.Equal(t, 0, quizState.Answered)

	resp = doJSON(t, http.MethodPost, base+"/quiz/answers", "", map[string]any{
		"questionId": "q3",
		"answer":     "false",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	answered := decode[QuizResponse](t, resp)
	assert.Equal(t, 1, answered.Answered)

	resp = doJSON(t, http.MethodPost, base+"/quiz/grade", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	graded := decode[QuizGradeResponse](t, resp)
	assert.Equal(t, 1, graded.Breakdown.CorrectCount)
	assert.Equal(t, 5, graded.Breakdown.EarnedPoints)

	// Quiz endpoints 404 on labs without a quiz
	boundary := createSession(t, ts, "system-boundary-lab")
	resp, err = http.Get(ts.URL + "/sessions/" + boundary.SessionID + "/quiz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestResetAndDelete(t *testing.T) {
	ts := newTestServer(t, false)
	sess := createSession(t, ts, "interconnection-lab")
	base := ts.URL + "/sessions/" + sess.SessionID

	resp := doJSON(t, http.MethodPost, base+"/connections", "", map[string]any{
		"sourceId":       "recipe-management",
		"targetId":       "mixing-station-controller",
		"connectionType": "network",
		"dataFlow":       "bidirectional",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, base+"/reset", "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, base, "", nil)
	state := decode[SessionStateResponse](t, resp)
	assert.Empty(t, state.Connections)

	req, err := http.NewRequest(http.MethodDelete, base, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, base, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestTokenAuth(t *testing.T) {
	ts := newTestServer(t, true)

	sess := createSession(t, ts, "system-boundary-lab")
	require.NotEmpty(t, sess.Token)
	base := ts.URL + "/sessions/" + sess.SessionID

	// No token
	resp := doJSON(t, http.MethodGet, base, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Valid token
	resp = doJSON(t, http.MethodGet, base, sess.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Token for a different session
	other := createSession(t, ts, "system-boundary-lab")
	resp = doJSON(t, http.MethodGet, base, other.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestSessionLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Sessions.MaxSessions = 1

	logger := logging.NewJSONLogger(io.Discard, logging.ErrorLevel)
	srv, err := NewServer(cfg, logger)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	createSession(t, ts, "system-boundary-lab")

	resp := doJSON(t, http.MethodPost, ts.URL+"/sessions", "", CreateSessionRequest{LabID: "system-boundary-lab"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	resp.Body.Close()
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, false)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "labs_")
}
