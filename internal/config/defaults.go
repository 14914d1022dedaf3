package config

const (
	defaultConfigPath  = "~/.config/resorg/config.toml"
	projectConfigName  = "resorg.toml"
	defaultLockDir     = "~/.local/state/resorg"
	defaultOnExisting  = OnExistingOverwrite
	defaultSummaryMode = SummaryPlain
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Overwrite policies for Placement.OnExisting.
const (
	OnExistingOverwrite = "overwrite"
	OnExistingRefuse    = "refuse"
)

// Output formats for Summary.Format.
const (
	SummaryPlain = "plain"
	SummaryTable = "table"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LockDir: defaultLockDir,
		},
		Placement: Placement{
			OnExisting:    defaultOnExisting,
			PreserveTimes: true,
		},
		Summary: Summary{
			Format: defaultSummaryMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
