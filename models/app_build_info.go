package models

// AppBuildInfo carries the ldflags-stamped build metadata printed by both
// binaries at startup.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}
