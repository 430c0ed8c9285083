package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gruntwork-io/artifact-search/cli"
	"github.com/gruntwork-io/artifact-search/internal/errors"
	"github.com/gruntwork-io/artifact-search/internal/pattern"
	"github.com/gruntwork-io/artifact-search/internal/search"
	"github.com/gruntwork-io/artifact-search/options"
	"github.com/gruntwork-io/artifact-search/util"
)

func TestAppTextOutput(t *testing.T) {
	t.Parallel()

	tmpDir := createFiles(t, "a/x.txt", "a/y/z.txt", "a/y/z.log")

	stdout, stderr, err := runApp(t, "--working-dir", tmpDir, "--path", "a/**/*.txt")
	require.NoError(t, err)

	expected := "root: " + util.JoinPath(tmpDir, "a") + "\n" +
		util.JoinPath(tmpDir, "a/x.txt") + "\n" +
		util.JoinPath(tmpDir, "a/y/z.txt") + "\n"

	assert.Equal(t, expected, stdout)
	assert.Contains(t, stderr, "With the provided path, there will be 2 files uploaded")
	assert.NotContains(t, stderr, "Root artifact directory is")
}

func TestAppDebugLogsRootDirectory(t *testing.T) {
	t.Parallel()

	tmpDir := createFiles(t, "a/x.txt")

	_, stderr, err := runApp(t, "--working-dir", tmpDir, "--log-level", "debug", "--path", "a/x.txt")
	require.NoError(t, err)

	assert.Contains(t, stderr, "there will be 1 file uploaded")
	assert.Contains(t, stderr, "Root artifact directory is "+util.JoinPath(tmpDir, "a"))
}

func TestAppStructuredOutput(t *testing.T) {
	t.Parallel()

	tmpDir := createFiles(t, "dist/app.js", "dist/css/app.css", "dist/tmp/cache.js")

	testCases := []struct {
		name      string
		format    string
		unmarshal func([]byte, any) error
	}{
		{name: "json", format: options.OutputFormatJSON, unmarshal: json.Unmarshal},
		{name: "yaml", format: options.OutputFormatYAML, unmarshal: yaml.Unmarshal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := runApp(t,
				"--working-dir", tmpDir,
				"--output-format", tc.format,
				"--relative",
				"--path", "dist\n!dist/tmp",
			)
			require.NoError(t, err)

			var result search.SearchResult
			require.NoError(t, tc.unmarshal([]byte(stdout), &result))

			assert.Equal(t, util.JoinPath(tmpDir, "dist"), result.RootDirectory)
			assert.Equal(t, []string{"app.js", "css/app.css"}, result.FilesToUpload)
		})
	}
}

func TestAppPositionalPatterns(t *testing.T) {
	t.Parallel()

	tmpDir := createFiles(t, "a/x.txt", "b/y.txt", "c/z.txt")

	stdout, _, err := runApp(t, "--working-dir", tmpDir, "--path", "a/x.txt", "b/*.txt", "c/z.txt")
	require.NoError(t, err)

	expected := "root: " + tmpDir + "\n" +
		util.JoinPath(tmpDir, "a/x.txt") + "\n" +
		util.JoinPath(tmpDir, "b/y.txt") + "\n" +
		util.JoinPath(tmpDir, "c/z.txt") + "\n"

	assert.Equal(t, expected, stdout)
}

func TestAppHiddenFiles(t *testing.T) {
	t.Parallel()

	tmpDir := createFiles(t, "dist/app.js", "dist/.env")

	stdout, _, err := runApp(t, "--working-dir", tmpDir, "--relative", "--path", "dist")
	require.NoError(t, err)
	assert.Equal(t, "root: "+util.JoinPath(tmpDir, "dist")+"\napp.js\n", stdout)

	stdout, _, err = runApp(t, "--working-dir", tmpDir, "--relative", "--include-hidden-files", "--path", "dist")
	require.NoError(t, err)
	assert.Equal(t, "root: "+util.JoinPath(tmpDir, "dist")+"\n.env\napp.js\n", stdout)
}

func TestAppIfNoFilesFound(t *testing.T) {
	t.Parallel()

	tmpDir := createFiles(t, "a/x.txt")

	const message = "No files were found with the provided path: a/*.none. No artifacts will be uploaded."

	testCases := []struct {
		policy   string
		expected string
		wantErr  bool
	}{
		{policy: "warn", expected: "WRN"},
		{policy: "ignore", expected: "INF"},
		{policy: "error", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.policy, func(t *testing.T) {
			t.Parallel()

			stdout, stderr, err := runApp(t, "--working-dir", tmpDir, "--if-no-files-found", tc.policy, "--path", "a/*.none")

			if tc.wantErr {
				require.Error(t, err)

				var noFilesErr cli.NoFilesFoundError
				require.True(t, errors.As(err, &noFilesErr))
				assert.Equal(t, message, err.Error())
				assert.Equal(t, 1, errors.ExitCode(err))
				assert.Empty(t, stdout)

				return
			}

			require.NoError(t, err)
			assert.Contains(t, stderr, tc.expected)
			assert.Contains(t, stderr, message)
			assert.Equal(t, "root: "+util.JoinPath(tmpDir, "a")+"\n", stdout)
		})
	}
}

func TestAppInvalidArguments(t *testing.T) {
	t.Parallel()

	tmpDir := createFiles(t, "a/x.txt")

	t.Run("invalid no-files policy", func(t *testing.T) {
		t.Parallel()

		_, _, err := runApp(t, "--working-dir", tmpDir, "--if-no-files-found", "fail", "--path", "a/x.txt")
		require.Error(t, err)

		var policyErr options.InvalidNoFilesPolicyError
		assert.True(t, errors.As(err, &policyErr))
	})

	t.Run("invalid output format", func(t *testing.T) {
		t.Parallel()

		_, _, err := runApp(t, "--working-dir", tmpDir, "--output-format", "xml", "--path", "a/x.txt")
		require.Error(t, err)

		var formatErr cli.InvalidOutputFormatError
		assert.True(t, errors.As(err, &formatErr))
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Parallel()

		_, _, err := runApp(t, "--working-dir", tmpDir, "--log-level", "loud", "--path", "a/x.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid level")
	})

	t.Run("exclusions only", func(t *testing.T) {
		t.Parallel()

		_, _, err := runApp(t, "--working-dir", tmpDir, "--path", "!a/*.txt")
		require.Error(t, err)

		var patternErr pattern.InvalidPatternError
		assert.True(t, errors.As(err, &patternErr))
	})

	t.Run("missing literal file", func(t *testing.T) {
		t.Parallel()

		_, _, err := runApp(t, "--working-dir", tmpDir, "--path", "a/missing.txt")
		require.Error(t, err)

		var notAFileErr search.NotAFileError
		assert.True(t, errors.As(err, &notAFileErr))
	})
}

func TestAppSearchPathFromEnv(t *testing.T) {
	tmpDir := createFiles(t, "a/x.txt", "b/y.txt")

	t.Setenv("ARTIFACT_SEARCH_PATH", "b/*.txt")
	t.Setenv("ARTIFACT_SEARCH_WORKING_DIR", tmpDir)

	stdout, _, err := runApp(t, "--relative")
	require.NoError(t, err)
	assert.Equal(t, "root: "+util.JoinPath(tmpDir, "b")+"\ny.txt\n", stdout)
}

func TestAppJSONLogFormat(t *testing.T) {
	t.Parallel()

	tmpDir := createFiles(t, "a/x.txt")

	_, stderr, err := runApp(t, "--working-dir", tmpDir, "--log-format", "json", "--path", "a/x.txt")
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(stderr), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "With the provided path, there will be 1 file uploaded", entry["msg"])
}

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	opts := options.NewSearchOptionsForTest(&stdout, &stderr)
	app := cli.NewApp(opts)

	err := app.RunContext(t.Context(), append([]string{cli.AppName}, args...))

	return stdout.String(), stderr.String(), err
}

func createFiles(t *testing.T, paths ...string) string {
	t.Helper()

	tmpDir := util.CleanPath(t.TempDir())

	for _, path := range paths {
		fullPath := filepath.Join(tmpDir, filepath.FromSlash(path))

		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte(path), 0644))
	}

	return tmpDir
}
