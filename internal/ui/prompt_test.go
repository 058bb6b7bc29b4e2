package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/dbctl/internal/ui"
)

func TestIOConfirmationPrompterInterpretsResponses(t *testing.T) {
	testCases := []struct {
		name           string
		response       string
		expectedResult bool
	}{
		{name: "yes_word", response: "yes\n", expectedResult: true},
		{name: "short_y", response: "Y\n", expectedResult: true},
		{name: "no_word", response: "no\n", expectedResult: false},
		{name: "empty_response", response: "\n", expectedResult: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var promptOutput bytes.Buffer
			prompter := ui.NewIOConfirmationPrompter(strings.NewReader(testCase.response), &promptOutput)

			confirmed, confirmError := prompter.Confirm("Overwrite snapshot.zip? ")

			require.NoError(t, confirmError)
			require.Equal(t, testCase.expectedResult, confirmed)
			require.Equal(t, "Overwrite snapshot.zip? ", promptOutput.String())
		})
	}
}

func TestIOChoicePrompterRendersOptionsAndAcceptsLetterOrWord(t *testing.T) {
	testCases := []struct {
		name           string
		response       string
		expectedLetter string
	}{
		{name: "first_letter", response: "p\n", expectedLetter: "p"},
		{name: "full_word", response: "local\n", expectedLetter: "l"},
		{name: "uppercase_word", response: "PERMANENT\n", expectedLetter: "p"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var promptOutput bytes.Buffer
			prompter := ui.NewIOChoicePrompter(strings.NewReader(testCase.response), &promptOutput)

			chosenLetter, chooseError := prompter.Choose("Save to which configuration tier?", "permanent", "local")

			require.NoError(t, chooseError)
			require.Equal(t, testCase.expectedLetter, chosenLetter)
			require.Equal(t, "Save to which configuration tier? ([p]ermanent/[l]ocal) ", promptOutput.String())
		})
	}
}

func TestIOChoicePrompterRepromptsUntilValidResponse(t *testing.T) {
	var promptOutput bytes.Buffer
	prompter := ui.NewIOChoicePrompter(strings.NewReader("maybe\nx\nl\n"), &promptOutput)

	chosenLetter, chooseError := prompter.Choose("Tier?", "permanent", "local")

	require.NoError(t, chooseError)
	require.Equal(t, "l", chosenLetter)
	require.Equal(t, 3, strings.Count(promptOutput.String(), "Tier? "))
}

func TestIOChoicePrompterValidatesChoices(t *testing.T) {
	prompter := ui.NewIOChoicePrompter(strings.NewReader(""), nil)

	_, noChoicesError := prompter.Choose("Tier?")
	require.ErrorIs(t, noChoicesError, ui.ErrNoChoicesConfigured)

	_, emptyChoiceError := prompter.Choose("Tier?", "permanent", " ")
	require.ErrorIs(t, emptyChoiceError, ui.ErrEmptyChoiceValue)

	_, ambiguousError := prompter.Choose("Tier?", "local", "lines")
	var ambiguousChoices *ui.AmbiguousChoicesError
	require.ErrorAs(t, ambiguousError, &ambiguousChoices)
}
