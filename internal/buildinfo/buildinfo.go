package buildinfo

import "fmt"

// Set at link time via -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("cubebag %s (commit=%s, date=%s)", Version, Commit, Date)
}
