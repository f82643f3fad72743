package cli

import "tlr/internal/config"

// Flags holds command-line flags
type Flags struct {
	Processors int
	RootDir    string
	Extension  string
	OutputPath string
	NameFilter string
	Ignore     []string
	NoSave     bool
	Open       bool
	Cases      bool
	DSN        string
	Verbose    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Processors: f.Processors,
		RootDir:    f.RootDir,
		Extension:  f.Extension,
		OutputPath: f.OutputPath,
		NameFilter: f.NameFilter,
		Ignore:     f.Ignore,
		NoSave:     f.NoSave,
		Open:       f.Open,
		Cases:      f.Cases,
		DSN:        f.DSN,
	}
}
