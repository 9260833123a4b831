package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlip9/aoc20/internal/days"
	"github.com/phlip9/aoc20/internal/runner"
)

func TestVerifyCommandMissingArgs(t *testing.T) {
	_, _, err := execute(t, "verify")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestVerify_PassText(t *testing.T) {
	stdout, _, err := execute(t, "verify", "testdata/verify/pass.yaml")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "verify_pass_text", []byte(stdout))
}

func TestVerify_FailText(t *testing.T) {
	stdout, _, err := execute(t, "verify", "testdata/verify/fail.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "2 puzzle(s) failed")

	newGoldie(t).Assert(t, "verify_fail_text", []byte(stdout))
}

func TestVerify_FailJSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "verify", "testdata/verify/fail.yaml", "--concurrency", "1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	newGoldie(t).Assert(t, "verify_fail_json", []byte(stdout))
}

func TestVerify_ManifestErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantCode string
	}{
		{"missing manifest", "testdata/verify/nope.yaml", CodeNotFound},
		{"unknown field", "testdata/verify/typo.yaml", CodeBadManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, "--format", "json", "verify", tt.path)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestVerify_RecordsEveryRun(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	opts := &RootOptions{
		Format:      "json",
		Database:    db,
		Registry:    days.Registry(),
		IDGenerator: runner.NewFixedGenerator("run-a", "run-b"),
	}
	cmd := NewVerifyCommand(opts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"testdata/verify/pass.yaml"})
	require.NoError(t, cmd.Execute())

	hist := NewHistoryCommand(opts)
	out := &bytes.Buffer{}
	hist.SetOut(out)
	hist.SetArgs([]string{})
	require.NoError(t, hist.Execute())

	var resp struct {
		Data []struct {
			ID  string `json:"id"`
			Day string `json:"day"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	require.Len(t, resp.Data, 2)

	ids := []string{resp.Data[0].ID, resp.Data[1].ID}
	assert.ElementsMatch(t, []string{"run-a", "run-b"}, ids)
}
