package cmd

import (
	"os"
	"path/filepath"

	"lumen/common"

	"github.com/pelletier/go-toml"
)

// tomlProfile represents a Lumen build profile as it is encoded in TOML.
type tomlProfile struct {
	OutputPath string `toml:"output-path"`
	OptLevel   string `toml:"opt-level"`
}

// BuildProfile carries the per-project compilation defaults.  Explicit
// command-line arguments always override the profile.
type BuildProfile struct {
	// The path the object file is written to.
	OutputPath string

	// The optimization-level token passed to the backend.
	OptLevel string
}

// LoadProfile loads the build profile next to the given MIR module file.  A
// missing or unreadable profile yields the defaults: profiles are optional.
func LoadProfile(mirPath string) *BuildProfile {
	profile := &BuildProfile{
		OutputPath: common.DefaultOutputName,
		OptLevel:   "speed",
	}

	buff, err := os.ReadFile(filepath.Join(filepath.Dir(mirPath), common.LumenProfileFileName))
	if err != nil {
		return profile
	}

	tomlProf := &tomlProfile{}
	if err := toml.Unmarshal(buff, tomlProf); err != nil {
		return profile
	}

	if tomlProf.OutputPath != "" {
		profile.OutputPath = tomlProf.OutputPath
	}

	if tomlProf.OptLevel != "" {
		profile.OptLevel = tomlProf.OptLevel
	}

	return profile
}
