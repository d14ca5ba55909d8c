package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy"
	httpAdapter "github.com/aretw0/canopy/pkg/adapters/http"
	"github.com/aretw0/canopy/pkg/adapters/memory"
	"github.com/aretw0/canopy/internal/logging"
)

const validBody = `{
	"programs": {"p1": {"id": "p1", "name": "Onboarding"}},
	"forms": {"f1": {"id": "f1", "title": "Signup", "description": "d", "program": "p1"}},
	"ctas": {"c1": {"id": "c1", "label": "Start", "action": "start_form", "form_id": "f1"}},
	"branches": {"b1": {"id": "b1", "detection_keywords": ["signup"], "available_ctas": {"primary": "c1"}}},
	"chips": {"ch1": {"id": "ch1", "label": "Sign up", "action": "explicit_routing", "target_branch": "b1"}}
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := httpAdapter.NewHandler(canopy.New(), memory.New(), logging.NewNop())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/validate", "application/json", strings.NewReader(validBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result canopy.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Snapshot.MayDeploy)
	assert.NotEmpty(t, result.Graph.Nodes)
}

func TestValidateEndpoint_BadBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/validate", "application/json", strings.NewReader("{nope"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTenantSnapshotRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/tenants/acme/validate", "application/json", strings.NewReader(validBody))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/tenants/acme/snapshot")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, true, snap["may_deploy"])
}

func TestSnapshotNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/tenants/ghost/snapshot")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGateEndpoint_RefusalReasons(t *testing.T) {
	srv := newTestServer(t)

	// A branch whose primary CTA does not exist closes the gate.
	body := `{"branches": {"b1": {"id": "b1", "detection_keywords": ["x"], "available_ctas": {"primary": "nonexistent_cta"}}}}`
	resp, err := http.Post(srv.URL+"/tenants/acme/validate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/tenants/acme/gate")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var gate httpAdapter.GateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&gate))
	assert.False(t, gate.MayDeploy)
	require.NotEmpty(t, gate.Errors)

	found := false
	for _, f := range gate.Errors {
		if strings.Contains(f.Message, "nonexistent_cta") {
			found = true
		}
	}
	assert.True(t, found, "refusal reasons should name the missing CTA")
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
