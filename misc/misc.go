// Package misc keeps build time program information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set by the linker: -X thesisdoc/misc.version=... -X thesisdoc/misc.githash=...
var (
	version = "dev"
	githash = "unknown"
)

// GetAppName returns name of the running executable without extension.
func GetAppName() string {
	name := filepath.Base(os.Args[0])
	if name == "" || name == "." {
		return "thesisdoc"
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return githash
}
