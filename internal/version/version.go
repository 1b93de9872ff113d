package version

import "fmt"

const VERSION_MAJOR = 1
const VERSION_MINOR = 0
const VERSION_MICRO = 0

// Commit is set at build time: -ldflags "-X .../internal/version.Commit=abc123"
var Commit = ""

var version *Version

type Version struct {
	Major int
	Minor int
	Micro int
}

func (v *Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
	if Commit != "" {
		s += "+" + Commit
	}
	return s
}

func GetVersion() *Version {
	return version
}

func init() {
	version = new(Version)
	version.Major = VERSION_MAJOR
	version.Minor = VERSION_MINOR
	version.Micro = VERSION_MICRO
}
