package metric_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"modelscore/pkg/metric"
	"modelscore/pkg/platform"

	"github.com/stretchr/testify/require"
)

func githubStub(t *testing.T, handler http.HandlerFunc) *platform.GitHubClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &platform.GitHubClient{BaseURL: server.URL}
}

func repoHandler(spdx string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if spdx == "" {
			fmt.Fprint(w, `{"full_name": "owner/repo", "license": null}`)
			return
		}
		fmt.Fprintf(w, `{"full_name": "owner/repo", "license": {"spdx_id": %q}}`, spdx)
	}
}

func TestLicenseScore(t *testing.T) {
	tests := []struct {
		name    string
		spdx    string
		want    float64
		details string
	}{
		{"compatible", "LGPL-2.1", 1.0, "LGPL-2.1"},
		{"compatible only variant", "LGPL-2.1-only", 1.0, "LGPL-2.1-only"},
		{"incompatible", "MIT", 0.0, "MIT"},
		{"no license", "", 0.0, "no license"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			github := githubStub(t, repoHandler(tt.spdx))
			log, _ := silentLog(t)

			score, _, err := metric.LicenseScore{GitHub: github}.Func(context.Background(),
				[]any{"owner", "repo", metric.Silent, log})
			require.NoError(t, err)
			require.Equal(t, tt.want, score.Value)
			require.Equal(t, tt.details, score.Details)
		})
	}
}

func TestLicenseScoreAPIFailure(t *testing.T) {
	github := githubStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	log, buf := silentLog(t)

	_, _, err := metric.LicenseScore{GitHub: github}.Func(context.Background(),
		[]any{"owner", "repo", metric.Silent, log})
	require.Error(t, err)
	require.NoError(t, log.Close())
	require.Contains(t, buf.String(), "[CRITICAL ERROR]")
}
