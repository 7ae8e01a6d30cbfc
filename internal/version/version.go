package version

import "fmt"

// Set at build time with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/alexiusacademia/gorcc/internal/version.Version=0.3.1 \
//	  -X github.com/alexiusacademia/gorcc/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.3.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2025"
)

// String is the one-line form used by --version
func String() string {
	if GitCommit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, built %s)", Version, GitCommit, BuildTime)
}
