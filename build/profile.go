package build

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"cflatc/report"
)

// ProfileFileName is the name of the optional build profile manifest looked
// up in the compilation root.
const ProfileFileName = "cflat.toml"

// tomlProfile represents a build profile as it is encoded in TOML.
type tomlProfile struct {
	Name     string `toml:"name"`
	DumpIR   bool   `toml:"dump-ir"`
	Debug    bool   `toml:"debug"`
	LogLevel string `toml:"log-level"`
}

// Profile holds the per-run compilation settings.
type Profile struct {
	// The display name of the profile.
	Name string

	// Whether to print the rendered program after checking.
	DumpIR bool

	// Whether to dump the raw program structure for compiler debugging.
	Debug bool

	// The reporter log level selected by the profile.
	LogLevel int
}

// DefaultProfile returns the profile used when no manifest is present.
func DefaultProfile() *Profile {
	return &Profile{Name: "default", LogLevel: report.LogLevelVerbose}
}

// LoadProfile loads the build profile from the manifest in the given
// directory.  A missing manifest is not an error: the default profile is
// returned.  A malformed manifest is fatal.
func LoadProfile(dir string) *Profile {
	f, err := os.Open(filepath.Join(dir, ProfileFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultProfile()
		}

		report.ReportFatal("unable to open profile at `%s`: %s", dir, err.Error())
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		report.ReportFatal("error reading profile at `%s`: %s", dir, err.Error())
	}

	tomlProf := &tomlProfile{}
	if err := toml.Unmarshal(buff, tomlProf); err != nil {
		report.ReportFatal("error parsing profile at `%s`: %s", dir, err.Error())
	}

	prof := DefaultProfile()
	if tomlProf.Name != "" {
		prof.Name = tomlProf.Name
	}

	prof.DumpIR = tomlProf.DumpIR
	prof.Debug = tomlProf.Debug

	if tomlProf.LogLevel != "" {
		prof.LogLevel = logLevelFromName(tomlProf.LogLevel)
	}

	return prof
}

// ResolveLogLevel selects the reporter log level for a run.  A level named on
// the command line wins; otherwise the profile's level applies.
func ResolveLogLevel(prof *Profile, cliLevel string) int {
	if cliLevel == "" {
		return prof.LogLevel
	}

	return logLevelFromName(cliLevel)
}

// logLevelFromName converts a profile log level name to a reporter log level.
func logLevelFromName(name string) int {
	switch name {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	case "verbose":
		return report.LogLevelVerbose
	default:
		report.ReportFatal("unknown log level `%s`", name)
		return report.LogLevelVerbose
	}
}
