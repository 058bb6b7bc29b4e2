package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	affirmativeShortResponseConstant = "y"
	affirmativeLongResponseConstant  = "yes"

	choicePromptTemplateConstant           = "%s (%s) "
	choiceOptionTemplateConstant           = "[%s]%s"
	choiceOptionSeparatorConstant          = "/"
	emptyChoiceListMessageConstant         = "at least one choice is required"
	emptyChoiceValueMessageConstant        = "choices must not be empty"
	ambiguousChoiceMessageTemplateConstant = "choices %q and %q share the first letter %q"
)

// Sentinel errors for invalid choice prompt configurations.
var (
	ErrNoChoicesConfigured = errors.New(emptyChoiceListMessageConstant)
	ErrEmptyChoiceValue    = errors.New(emptyChoiceValueMessageConstant)
)

// AmbiguousChoicesError reports two choices sharing the same first letter.
type AmbiguousChoicesError struct {
	FirstChoice  string
	SecondChoice string
}

// Error names the colliding choices and their shared letter.
func (ambiguousError *AmbiguousChoicesError) Error() string {
	return fmt.Sprintf(ambiguousChoiceMessageTemplateConstant, ambiguousError.FirstChoice, ambiguousError.SecondChoice, ambiguousError.SecondChoice[:1])
}

// ConfirmationPrompter asks the user a yes/no question.
type ConfirmationPrompter interface {
	Confirm(prompt string) (bool, error)
}

// ChoicePrompter asks the user to pick one of several named choices.
type ChoicePrompter interface {
	Choose(prompt string, choices ...string) (string, error)
}

// IOConfirmationPrompter reads confirmation responses from an io.Reader.
type IOConfirmationPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewIOConfirmationPrompter constructs a prompter from the provided reader and writer.
func NewIOConfirmationPrompter(input io.Reader, output io.Writer) *IOConfirmationPrompter {
	return &IOConfirmationPrompter{reader: bufio.NewReader(input), writer: output}
}

// Confirm writes the prompt and interprets affirmative responses (y/yes).
func (prompter *IOConfirmationPrompter) Confirm(prompt string) (bool, error) {
	if prompter.writer != nil {
		if _, writeError := io.WriteString(prompter.writer, prompt); writeError != nil {
			return false, writeError
		}
	}

	response, readError := prompter.reader.ReadString('\n')
	if readError != nil && readError != io.EOF {
		return false, readError
	}

	trimmedResponse := strings.TrimSpace(strings.ToLower(response))
	switch trimmedResponse {
	case affirmativeShortResponseConstant, affirmativeLongResponseConstant:
		return true, nil
	default:
		return false, nil
	}
}

// IOChoicePrompter reads multiple-choice responses from an io.Reader.
type IOChoicePrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewIOChoicePrompter constructs a choice prompter from the provided reader and writer.
func NewIOChoicePrompter(input io.Reader, output io.Writer) *IOChoicePrompter {
	return &IOChoicePrompter{reader: bufio.NewReader(input), writer: output}
}

// Choose renders "prompt ([o]ption/[s]econd) " and re-prompts until the
// response matches a choice's first letter or full word, returning the chosen
// first letter. Choices must be non-empty with unique first letters.
func (prompter *IOChoicePrompter) Choose(prompt string, choices ...string) (string, error) {
	if validationError := validateChoices(choices); validationError != nil {
		return "", validationError
	}

	renderedPrompt := fmt.Sprintf(choicePromptTemplateConstant, prompt, renderChoiceOptions(choices))

	for {
		if prompter.writer != nil {
			if _, writeError := io.WriteString(prompter.writer, renderedPrompt); writeError != nil {
				return "", writeError
			}
		}

		response, readError := prompter.reader.ReadString('\n')
		trimmedResponse := strings.TrimSpace(strings.ToLower(response))

		for _, choice := range choices {
			loweredChoice := strings.ToLower(choice)
			if trimmedResponse == loweredChoice || trimmedResponse == loweredChoice[:1] {
				return loweredChoice[:1], nil
			}
		}

		if readError != nil {
			return "", readError
		}
	}
}

func validateChoices(choices []string) error {
	if len(choices) == 0 {
		return ErrNoChoicesConfigured
	}

	seenFirstLetters := map[string]string{}
	for _, choice := range choices {
		if len(strings.TrimSpace(choice)) == 0 {
			return ErrEmptyChoiceValue
		}
		firstLetter := strings.ToLower(choice[:1])
		if previousChoice, letterTaken := seenFirstLetters[firstLetter]; letterTaken {
			return &AmbiguousChoicesError{FirstChoice: previousChoice, SecondChoice: choice}
		}
		seenFirstLetters[firstLetter] = choice
	}
	return nil
}

func renderChoiceOptions(choices []string) string {
	renderedOptions := make([]string, 0, len(choices))
	for _, choice := range choices {
		renderedOptions = append(renderedOptions, fmt.Sprintf(choiceOptionTemplateConstant, choice[:1], choice[1:]))
	}
	return strings.Join(renderedOptions, choiceOptionSeparatorConstant)
}
