// Package misc keeps build time information about the program.
package misc

// Set by the linker: -X svgprops/misc.version=... -X svgprops/misc.gitHash=...
var (
	appName = "svgprops"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
