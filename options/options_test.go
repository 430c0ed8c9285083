package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruntwork-io/artifact-search/internal/errors"
	"github.com/gruntwork-io/artifact-search/options"
)

func TestParseNoFilesPolicy(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		value    string
		expected options.NoFilesPolicy
	}{
		{"warn", options.NoFilesWarn},
		{"error", options.NoFilesError},
		{"ignore", options.NoFilesIgnore},
		{" Error ", options.NoFilesError},
		{"IGNORE", options.NoFilesIgnore},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Parallel()

			policy, err := options.ParseNoFilesPolicy(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, policy)
		})
	}
}

func TestParseNoFilesPolicyInvalid(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "fail", "warning"} {
		_, err := options.ParseNoFilesPolicy(value)
		require.Error(t, err)

		var policyErr options.InvalidNoFilesPolicyError
		require.True(t, errors.As(err, &policyErr))
		assert.Equal(t, value, policyErr.Value)
		assert.Contains(t, err.Error(), "warn, error, ignore")
	}
}

func TestNewSearchOptions(t *testing.T) {
	t.Parallel()

	opts := options.NewSearchOptions()

	assert.Equal(t, options.NoFilesWarn, opts.IfNoFilesFound)
	assert.Equal(t, options.OutputFormatText, opts.OutputFormat)
	assert.False(t, opts.IncludeHiddenFiles)
	assert.NotNil(t, opts.Logger)
}
