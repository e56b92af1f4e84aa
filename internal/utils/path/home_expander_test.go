package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/kerstop/git-subscribe/internal/utils/path"
)

const (
	testHomeDirectoryConstant        = "/home/developer"
	testRelativeSuffixConstant       = "state/git-subscribe/data.toml"
	testAbsolutePathConstant         = "/var/lib/git-subscribe/data.toml"
	testBareTildeCaseNameConstant    = "bare_tilde"
	testTildePrefixCaseNameConstant  = "tilde_prefix"
	testAbsolutePathCaseNameConstant = "absolute_path_unchanged"
	testEmptyPathCaseNameConstant    = "empty_path_unchanged"
	testProviderErrorCaseName        = "provider_failure_unchanged"
)

func TestHomeExpanderExpand(testInstance *testing.T) {
	testCases := []struct {
		name          string
		provider      pathutils.HomeDirectoryProvider
		candidatePath string
		expectedPath  string
	}{
		{
			name:          testBareTildeCaseNameConstant,
			provider:      func() (string, error) { return testHomeDirectoryConstant, nil },
			candidatePath: "~",
			expectedPath:  testHomeDirectoryConstant,
		},
		{
			name:          testTildePrefixCaseNameConstant,
			provider:      func() (string, error) { return testHomeDirectoryConstant, nil },
			candidatePath: "~/" + testRelativeSuffixConstant,
			expectedPath:  filepath.Join(testHomeDirectoryConstant, testRelativeSuffixConstant),
		},
		{
			name:          testAbsolutePathCaseNameConstant,
			provider:      func() (string, error) { return testHomeDirectoryConstant, nil },
			candidatePath: testAbsolutePathConstant,
			expectedPath:  testAbsolutePathConstant,
		},
		{
			name:          testEmptyPathCaseNameConstant,
			provider:      func() (string, error) { return testHomeDirectoryConstant, nil },
			candidatePath: "",
			expectedPath:  "",
		},
		{
			name:          testProviderErrorCaseName,
			provider:      func() (string, error) { return "", errors.New("home unavailable") },
			candidatePath: "~/" + testRelativeSuffixConstant,
			expectedPath:  "~/" + testRelativeSuffixConstant,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			expander := pathutils.NewHomeExpanderWithProvider(testCase.provider)
			require.Equal(testInstance, testCase.expectedPath, expander.Expand(testCase.candidatePath))
		})
	}
}
