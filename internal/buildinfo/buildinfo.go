package buildinfo

import "fmt"

// Set via -ldflags at release time.
var (
	Version = "dev"
	Commit  = ""
	BuiltAt = ""
)

func String() string {
	s := "routeopt " + Version
	if Commit != "" {
		s += fmt.Sprintf(" (%s)", Commit)
	}
	if BuiltAt != "" {
		s += " built " + BuiltAt
	}
	return s
}
