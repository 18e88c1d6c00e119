package page

import (
	"fmt"
	"strings"
)

// ServeDir is a directory served over HTTP. Entries with a Label show up as
// footer links.
type ServeDir struct {
	Path  string
	Dir   string
	Label string
}

// ServeDirs parses a comma-separated list of path:dir[:label] entries, the
// format used by the SERVE_DIRS environment variable. It implements
// encoding.TextUnmarshaler so it can be loaded with core/config.
type ServeDirs []ServeDir

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ServeDirs) UnmarshalText(text []byte) error {
	var dirs ServeDirs
	for entry := range strings.SplitSeq(string(text), ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("page: invalid serve dir %q, expected path:dir[:label]", entry)
		}

		d := ServeDir{Path: parts[0], Dir: parts[1]}
		if len(parts) == 3 {
			d.Label = parts[2]
		}
		if !strings.HasPrefix(d.Path, "/") {
			d.Path = "/" + d.Path
		}
		dirs = append(dirs, d)
	}

	*s = dirs
	return nil
}

// Config holds the startup configuration pages are built from.
type Config struct {
	ServeDirs ServeDirs `env:"SERVE_DIRS"`
}
