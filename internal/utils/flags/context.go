package flags

import "github.com/spf13/cobra"

const (
	// DryRunFlagName exposes the shared dry-run flag name.
	DryRunFlagName = "dry-run"
	// DryRunFlagUsage describes the shared dry-run flag purpose.
	DryRunFlagUsage = "Preview operations without making changes"
	// AssumeYesFlagName exposes the shared assume-yes flag name.
	AssumeYesFlagName = "yes"
	// AssumeYesFlagShorthand provides the shorthand for the assume-yes flag.
	AssumeYesFlagShorthand = "y"
	// AssumeYesFlagUsage describes the shared assume-yes flag purpose.
	AssumeYesFlagUsage = "Automatically confirm prompts"
	// TierFlagName exposes the shared configuration tier flag name.
	TierFlagName = "tier"
	// TierFlagUsage describes the shared configuration tier flag purpose.
	TierFlagUsage = "Configuration tier to write"
	// OutputFlagName exposes the shared output format flag name.
	OutputFlagName = "output"
	// OutputFlagUsage describes the shared output format flag purpose.
	OutputFlagUsage = "Output rendering"
	// ExcludeFlagName exposes the shared exclusion pattern flag name.
	ExcludeFlagName = "exclude"
	// ExcludeFlagUsage describes the shared exclusion pattern flag purpose.
	ExcludeFlagUsage = "Exclusion pattern tested against source paths (repeatable)"
	// PrefixFlagName exposes the shared archive prefix flag name.
	PrefixFlagName = "prefix"
	// PrefixFlagUsage describes the shared archive prefix flag purpose.
	PrefixFlagUsage = "Destination path prefix inside the archive"
	// ServersFlagName exposes the shared server list flag name.
	ServersFlagName = "servers"
	// ServersFlagUsage describes the shared server list flag purpose.
	ServersFlagUsage = "Comma-separated host[:port] list to connect to"
	// JavaOptionFlagName exposes the shared JVM option flag name.
	JavaOptionFlagName = "java-option"
	// JavaOptionFlagUsage describes the shared JVM option flag purpose.
	JavaOptionFlagUsage = "Additional JVM option (repeatable)"
)

// ExecutionFlagValues stores resolved shared execution flag values.
type ExecutionFlagValues struct {
	DryRun    bool
	AssumeYes bool
}

// ResolveExecutionFlags reads the shared dry-run and assume-yes flags from the
// command, tolerating commands that bound only a subset of them.
func ResolveExecutionFlags(command *cobra.Command) ExecutionFlagValues {
	values := ExecutionFlagValues{}
	if command == nil {
		return values
	}

	values.DryRun = resolveBoolFlag(command, DryRunFlagName)
	values.AssumeYes = resolveBoolFlag(command, AssumeYesFlagName)
	return values
}

func resolveBoolFlag(command *cobra.Command, flagName string) bool {
	if flagValue, flagError := command.Flags().GetBool(flagName); flagError == nil {
		return flagValue
	}
	if flagValue, flagError := command.PersistentFlags().GetBool(flagName); flagError == nil {
		return flagValue
	}
	return false
}
