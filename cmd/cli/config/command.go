package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/dbctl/internal/configstore"
	"github.com/temirov/dbctl/internal/ui"
	"github.com/temirov/dbctl/internal/utils"
	"github.com/temirov/dbctl/internal/utils/flags"
)

const (
	configCommandUseConstant              = "config"
	configCommandShortDescriptionConstant = "Inspect and edit persistent database configuration"
	configCommandLongDescriptionConstant  = "config reads and writes the two-tier persistent configuration store used by database tooling."
	getCommandUseConstant                 = "get <key>"
	getCommandShortDescriptionConstant    = "Print the merged value of a configuration key"
	setCommandUseConstant                 = "set <key> <value>"
	setCommandShortDescriptionConstant    = "Write a configuration key to the permanent or local tier"
	listCommandUseConstant                = "list [prefix]"
	listCommandShortDescriptionConstant   = "List merged configuration entries, optionally filtered by key prefix"

	getCommandArgumentCountConstant  = 1
	setCommandArgumentCountConstant  = 2
	listCommandMaximumArgumentsCount = 1

	tierChoicePermanentConstant = "permanent"
	tierChoiceLocalConstant     = "local"
	tierPromptMessageConstant   = "Save to which configuration tier?"

	outputChoiceTableConstant = "table"
	outputChoiceLinesConstant = "lines"

	tierFlagDescriptionConstant   = "Configuration tier to write"
	outputFlagDescriptionConstant = "Output rendering"

	missingKeyErrorTemplateConstant      = "configuration key %q is not set"
	unknownTierErrorTemplateConstant     = "unknown configuration tier %q"
	unknownOutputErrorTemplateConstant   = "unknown output format %q"
	storeOpenErrorTemplateConstant       = "unable to open configuration store: %w"
	storeWriteErrorTemplateConstant      = "unable to write configuration: %w"
	tierPromptErrorTemplateConstant      = "unable to determine configuration tier: %w"
	listTableCaptionConstant             = "Configuration"
	listLineTemplateConstant             = "%s = %s\n"
	configurationWrittenMessageConstant  = "configuration value written"
	logFieldConfigurationKeyConstant     = "configuration_key"
	logFieldConfigurationTierConstant    = "configuration_tier"
	logFieldConfigurationFormatConstant  = "configuration_format"
	logFieldPermanentStorePathConstant   = "permanent_path"
	logFieldLocalStorePathConstant       = "local_path"
	logFieldSettingsFilePathConstant     = "settings_file"
	configurationStoreOpenedMessageConst = "configuration store opened"
)

var (
	listTableHeadings = []string{"Key", "Value"}
	tierChoices       = []string{tierChoicePermanentConstant, tierChoiceLocalConstant}
	outputChoices     = []string{outputChoiceTableConstant, outputChoiceLinesConstant}
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current configuration store settings.
type ConfigurationProvider func() Configuration

// StoreResolver opens a persistent configuration store for the resolved settings.
type StoreResolver func(configuration Configuration) (*configstore.PersistentConfig, error)

// CommandBuilder assembles the config command hierarchy.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	TierPrompter          ui.ChoicePrompter
	StoreResolver         StoreResolver
}

// Build constructs the config command with get, set, and list subcommands.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	configCommand := &cobra.Command{
		Use:   configCommandUseConstant,
		Short: configCommandShortDescriptionConstant,
		Long:  configCommandLongDescriptionConstant,
	}

	getCommand := &cobra.Command{
		Use:   getCommandUseConstant,
		Short: getCommandShortDescriptionConstant,
		Args:  cobra.ExactArgs(getCommandArgumentCountConstant),
		RunE:  builder.runGet,
	}

	setCommand := &cobra.Command{
		Use:   setCommandUseConstant,
		Short: setCommandShortDescriptionConstant,
		Args:  cobra.ExactArgs(setCommandArgumentCountConstant),
		RunE:  builder.runSet,
	}
	setCommand.Flags().String(
		flags.TierFlagName,
		"",
		flags.FormatChoiceUsage(tierChoicePermanentConstant, tierChoices, tierFlagDescriptionConstant),
	)

	listCommand := &cobra.Command{
		Use:   listCommandUseConstant,
		Short: listCommandShortDescriptionConstant,
		Args:  cobra.MaximumNArgs(listCommandMaximumArgumentsCount),
		RunE:  builder.runList,
	}
	listCommand.Flags().String(
		flags.OutputFlagName,
		outputChoiceTableConstant,
		flags.FormatChoiceUsage(outputChoiceTableConstant, outputChoices, outputFlagDescriptionConstant),
	)

	configCommand.AddCommand(getCommand)
	configCommand.AddCommand(setCommand)
	configCommand.AddCommand(listCommand)

	return configCommand, nil
}

func (builder *CommandBuilder) runGet(command *cobra.Command, arguments []string) error {
	persistentStore, storeError := builder.openStore(command)
	if storeError != nil {
		return storeError
	}

	configurationKey := arguments[0]
	configurationValue, keyPresent := persistentStore.Get(configurationKey)
	if !keyPresent {
		return fmt.Errorf(missingKeyErrorTemplateConstant, configurationKey)
	}

	fmt.Fprintln(command.OutOrStdout(), configurationValue)
	return nil
}

func (builder *CommandBuilder) runSet(command *cobra.Command, arguments []string) error {
	persistentStore, storeError := builder.openStore(command)
	if storeError != nil {
		return storeError
	}

	selectedTier, tierError := builder.resolveTier(command)
	if tierError != nil {
		return tierError
	}

	configurationKey := arguments[0]
	configurationValue := arguments[1]

	var writeError error
	switch selectedTier {
	case tierChoicePermanentConstant:
		writeError = persistentStore.SetPermanent(configurationKey, configurationValue)
	case tierChoiceLocalConstant:
		writeError = persistentStore.SetLocal(configurationKey, configurationValue)
	default:
		return fmt.Errorf(unknownTierErrorTemplateConstant, selectedTier)
	}
	if writeError != nil {
		return fmt.Errorf(storeWriteErrorTemplateConstant, writeError)
	}

	builder.resolveLogger().Info(
		configurationWrittenMessageConstant,
		zap.String(logFieldConfigurationKeyConstant, configurationKey),
		zap.String(logFieldConfigurationTierConstant, selectedTier),
	)

	return nil
}

func (builder *CommandBuilder) runList(command *cobra.Command, arguments []string) error {
	persistentStore, storeError := builder.openStore(command)
	if storeError != nil {
		return storeError
	}

	filterPrefix := ""
	if len(arguments) > 0 {
		filterPrefix = arguments[0]
	}

	outputFlagValue, outputFlagError := command.Flags().GetString(flags.OutputFlagName)
	if outputFlagError != nil {
		return outputFlagError
	}
	selectedOutput := strings.ToLower(strings.TrimSpace(outputFlagValue))
	if len(selectedOutput) == 0 {
		selectedOutput = outputChoiceTableConstant
	}

	configurationPairs := persistentStore.QueryPairs(filterPrefix)

	switch selectedOutput {
	case outputChoiceTableConstant:
		tableRows := make([][]string, 0, len(configurationPairs))
		for _, configurationPair := range configurationPairs {
			tableRows = append(tableRows, []string{configurationPair.Key, ui.FormatDisplayValue(configurationPair.Value)})
		}
		tableFormatter := ui.NewTableFormatter()
		fmt.Fprint(command.OutOrStdout(), tableFormatter.Format(listTableCaptionConstant, listTableHeadings, tableRows))
	case outputChoiceLinesConstant:
		for _, configurationPair := range configurationPairs {
			fmt.Fprintf(command.OutOrStdout(), listLineTemplateConstant, configurationPair.Key, configurationPair.Value)
		}
	default:
		return fmt.Errorf(unknownOutputErrorTemplateConstant, selectedOutput)
	}

	return nil
}

func (builder *CommandBuilder) resolveTier(command *cobra.Command) (string, error) {
	if command.Flags().Changed(flags.TierFlagName) {
		tierFlagValue, tierFlagError := command.Flags().GetString(flags.TierFlagName)
		if tierFlagError != nil {
			return "", tierFlagError
		}
		selectedTier := strings.ToLower(strings.TrimSpace(tierFlagValue))
		switch selectedTier {
		case tierChoicePermanentConstant, tierChoiceLocalConstant:
			return selectedTier, nil
		default:
			return "", fmt.Errorf(unknownTierErrorTemplateConstant, tierFlagValue)
		}
	}

	tierPrompter := builder.resolveTierPrompter(command)
	chosenTierLetter, promptError := tierPrompter.Choose(tierPromptMessageConstant, tierChoices...)
	if promptError != nil {
		return "", fmt.Errorf(tierPromptErrorTemplateConstant, promptError)
	}

	for _, tierChoice := range tierChoices {
		if strings.HasPrefix(tierChoice, chosenTierLetter) {
			return tierChoice, nil
		}
	}

	return "", fmt.Errorf(unknownTierErrorTemplateConstant, chosenTierLetter)
}

func (builder *CommandBuilder) resolveTierPrompter(command *cobra.Command) ui.ChoicePrompter {
	if builder.TierPrompter != nil {
		return builder.TierPrompter
	}

	return ui.NewIOChoicePrompter(command.InOrStdin(), command.OutOrStdout())
}

func (builder *CommandBuilder) openStore(command *cobra.Command) (*configstore.PersistentConfig, error) {
	configuration := builder.resolveConfiguration()

	storeResolver := builder.StoreResolver
	if storeResolver == nil {
		storeResolver = defaultStoreResolver
	}

	persistentStore, resolveError := storeResolver(configuration)
	if resolveError != nil {
		return nil, fmt.Errorf(storeOpenErrorTemplateConstant, resolveError)
	}

	settingsFilePath, _ := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context())
	builder.resolveLogger().Debug(
		configurationStoreOpenedMessageConst,
		zap.String(logFieldConfigurationFormatConstant, configuration.Format),
		zap.String(logFieldPermanentStorePathConstant, configuration.PermanentPath),
		zap.String(logFieldLocalStorePathConstant, configuration.LocalPath),
		zap.String(logFieldSettingsFilePathConstant, settingsFilePath),
	)

	return persistentStore, nil
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	return configuration.Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func defaultStoreResolver(configuration Configuration) (*configstore.PersistentConfig, error) {
	return configstore.NewPersistentConfig(configuration.Format, configuration.PermanentPath, configuration.LocalPath)
}
