package execshell_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/dbctl/internal/execshell"
)

func TestMergeJavaOptions(testInstance *testing.T) {
	testCases := []struct {
		name            string
		optionLists     [][]string
		expectedOptions []string
	}{
		{
			name:            "first_extended_option_wins",
			optionLists:     [][]string{{"-Xmx2g"}, {"-Xmx4g", "-Xms512m"}},
			expectedOptions: []string{"-Xmx2g", "-Xms512m"},
		},
		{
			name:            "non_extended_options_pass_through_in_order",
			optionLists:     [][]string{{"-Dlog=debug", "-ea"}, {"-Dcluster=local"}},
			expectedOptions: []string{"-Dlog=debug", "-ea", "-Dcluster=local"},
		},
		{
			name:            "exact_duplicates_dropped",
			optionLists:     [][]string{{"-ea", "-ea"}, {"-ea"}},
			expectedOptions: []string{"-ea"},
		},
		{
			name:            "blank_entries_ignored",
			optionLists:     [][]string{{"", "  ", "-Xmn128m"}},
			expectedOptions: []string{"-Xmn128m"},
		},
		{
			name:            "nil_lists_yield_empty_result",
			optionLists:     nil,
			expectedOptions: []string{},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			mergedOptions := execshell.MergeJavaOptions(testCase.optionLists...)
			require.Equal(testInstance, testCase.expectedOptions, mergedOptions)
		})
	}
}

func TestResolveExecutableReportsTypedErrorForMissingTool(testInstance *testing.T) {
	_, resolveError := execshell.ResolveExecutable("definitely-not-a-real-tool-name")
	require.Error(testInstance, resolveError)
	require.IsType(testInstance, execshell.ExecutableNotFoundError{}, resolveError)
}
