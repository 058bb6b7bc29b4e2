package pack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/dbctl/internal/archive"
	"github.com/temirov/dbctl/internal/ui"
	"github.com/temirov/dbctl/internal/utils/flags"
	pathutils "github.com/temirov/dbctl/internal/utils/path"
)

const (
	packCommandUseConstant              = "pack <archive> <source-dir>..."
	packCommandShortDescriptionConstant = "Bundle source directories into a manifest-carrying zip archive"
	packCommandLongDescriptionConstant  = "pack walks the given source directories and writes their regular files into a zip archive whose final entry lists every archived path."

	packCommandMinimumArgumentsConstant = 2

	overwritePromptTemplateConstant     = "Archive %q already exists. Overwrite?"
	overwriteDeclinedMessageConstant    = "existing archive left untouched"
	overwritePromptErrorTemplateConst   = "unable to confirm archive overwrite: %w"
	archiveBuildErrorTemplateConstant   = "unable to build archive: %w"
	archiveCloseErrorTemplateConstant   = "unable to finalize archive: %w"
	archiveWrittenMessageConstant       = "archive written"
	dryRunCompletedMessageConstant      = "dry-run completed, no archive written"
	logFieldArchivePathConstant         = "archive_path"
	logFieldSourceDirectoriesConstant   = "source_directories"
	logFieldManifestEntryCountConstant  = "manifest_entry_count"
	logFieldExclusionPatternCountConst  = "exclusion_pattern_count"
	logFieldDestinationPrefixConstant   = "destination_prefix"
	packingStartedMessageConstant       = "packing source directories"
	manifestCommandUseConstant          = "manifest <archive>"
	manifestCommandShortDescriptionText = "Print the ordered manifest entries of a packed archive"
	manifestCommandArgumentCountConst   = 1
	manifestReadErrorTemplateConstant   = "unable to read archive manifest: %w"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current packing configuration.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the pack command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Prompter              ui.ConfirmationPrompter
}

// Build constructs the pack command with exclusion, prefix, and execution flags.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	packCommand := &cobra.Command{
		Use:   packCommandUseConstant,
		Short: packCommandShortDescriptionConstant,
		Long:  packCommandLongDescriptionConstant,
		Args:  cobra.MinimumNArgs(packCommandMinimumArgumentsConstant),
		RunE:  builder.runPack,
	}

	packCommand.Flags().String(flags.PrefixFlagName, "", flags.PrefixFlagUsage)
	packCommand.Flags().StringArray(flags.ExcludeFlagName, nil, flags.ExcludeFlagUsage)
	flags.BindExecutionFlags(packCommand, flags.ExecutionDefaults{}, flags.ExecutionFlagDefinitions{
		DryRun:    flags.ExecutionFlagDefinition{Name: flags.DryRunFlagName, Usage: flags.DryRunFlagUsage, Enabled: true},
		AssumeYes: flags.ExecutionFlagDefinition{Name: flags.AssumeYesFlagName, Shorthand: flags.AssumeYesFlagShorthand, Usage: flags.AssumeYesFlagUsage, Enabled: true},
	})

	return packCommand, nil
}

func (builder *CommandBuilder) runPack(command *cobra.Command, arguments []string) error {
	logger := builder.resolveLogger()
	executionFlags := flags.ResolveExecutionFlags(command)

	archivePath := arguments[0]
	sourceDirectories := pathutils.NewSourcePathSanitizer().Sanitize(arguments[1:])

	destinationPrefix, prefixFlagError := command.Flags().GetString(flags.PrefixFlagName)
	if prefixFlagError != nil {
		return prefixFlagError
	}

	flagExclusionPatterns, excludeFlagError := command.Flags().GetStringArray(flags.ExcludeFlagName)
	if excludeFlagError != nil {
		return excludeFlagError
	}

	configuration := builder.resolveConfiguration()
	exclusionPatterns := append(append([]string{}, configuration.Excludes...), flagExclusionPatterns...)

	if !executionFlags.DryRun && !executionFlags.AssumeYes {
		overwriteConfirmed, confirmError := builder.confirmOverwrite(command, archivePath)
		if confirmError != nil {
			return confirmError
		}
		if !overwriteConfirmed {
			fmt.Fprintln(command.OutOrStdout(), overwriteDeclinedMessageConstant)
			return nil
		}
	}

	logger.Info(
		packingStartedMessageConstant,
		zap.String(logFieldArchivePathConstant, archivePath),
		zap.Strings(logFieldSourceDirectoriesConstant, sourceDirectories),
		zap.String(logFieldDestinationPrefixConstant, destinationPrefix),
		zap.Int(logFieldExclusionPatternCountConst, len(exclusionPatterns)),
	)

	archiveBuilder, builderError := archive.NewBuilder(archive.BuilderOptions{
		Logger:            logger,
		DryRun:            executionFlags.DryRun,
		ExclusionPatterns: exclusionPatterns,
	})
	if builderError != nil {
		return fmt.Errorf(archiveBuildErrorTemplateConstant, builderError)
	}

	if openError := archiveBuilder.Open(archivePath); openError != nil {
		return fmt.Errorf(archiveBuildErrorTemplateConstant, openError)
	}

	for _, sourceDirectory := range sourceDirectories {
		if addError := archiveBuilder.AddDirectory(sourceDirectory, destinationPrefix); addError != nil {
			return fmt.Errorf(archiveBuildErrorTemplateConstant, addError)
		}
	}

	if closeError := archiveBuilder.Close(); closeError != nil {
		return fmt.Errorf(archiveCloseErrorTemplateConstant, closeError)
	}

	if executionFlags.DryRun {
		logger.Info(dryRunCompletedMessageConstant, zap.String(logFieldArchivePathConstant, archivePath))
		return nil
	}

	logger.Info(
		archiveWrittenMessageConstant,
		zap.String(logFieldArchivePathConstant, archivePath),
		zap.Int(logFieldManifestEntryCountConstant, len(archiveBuilder.ManifestEntries())),
	)

	return nil
}

func (builder *CommandBuilder) confirmOverwrite(command *cobra.Command, archivePath string) (bool, error) {
	if _, statError := os.Stat(archivePath); statError != nil {
		return true, nil
	}

	prompter := builder.Prompter
	if prompter == nil {
		prompter = ui.NewIOConfirmationPrompter(command.InOrStdin(), command.OutOrStdout())
	}

	overwriteConfirmed, promptError := prompter.Confirm(fmt.Sprintf(overwritePromptTemplateConstant, archivePath))
	if promptError != nil {
		return false, fmt.Errorf(overwritePromptErrorTemplateConst, promptError)
	}

	return overwriteConfirmed, nil
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

// ManifestCommandBuilder assembles the manifest inspection command.
type ManifestCommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the manifest command.
func (builder *ManifestCommandBuilder) Build() (*cobra.Command, error) {
	manifestCommand := &cobra.Command{
		Use:   manifestCommandUseConstant,
		Short: manifestCommandShortDescriptionText,
		Args:  cobra.ExactArgs(manifestCommandArgumentCountConst),
		RunE:  builder.runManifest,
	}

	return manifestCommand, nil
}

func (builder *ManifestCommandBuilder) runManifest(command *cobra.Command, arguments []string) error {
	manifestEntries, readError := archive.ReadManifest(arguments[0])
	if readError != nil {
		return fmt.Errorf(manifestReadErrorTemplateConstant, readError)
	}

	for _, manifestEntry := range manifestEntries {
		fmt.Fprintln(command.OutOrStdout(), manifestEntry)
	}

	return nil
}
