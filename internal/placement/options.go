package placement

import "resorg/internal/config"

// Options controls how files are placed.
type Options struct {
	Move           bool
	OnExisting     string
	AllowEmptyName bool
	PreserveTimes  bool
	VerifyCopy     bool
	KeepGoing      bool
	DryRun         bool
	MinFreeBytes   uint64
	// LockPath, when set, names the advisory lock file held for the duration
	// of Run.
	LockPath string
}

// OptionsFromConfig maps the placement section of cfg onto Options. Move,
// DryRun, and LockPath are left for the caller.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return Options{
		OnExisting:     cfg.Placement.OnExisting,
		AllowEmptyName: cfg.Placement.AllowEmptyName,
		PreserveTimes:  cfg.Placement.PreserveTimes,
		VerifyCopy:     cfg.Placement.VerifyCopy,
		KeepGoing:      cfg.Placement.KeepGoing,
		MinFreeBytes:   cfg.Placement.MinFreeBytes,
	}
}

func (o Options) refuseExisting() bool {
	return o.OnExisting == config.OnExistingRefuse
}
