package cli

import (
	"runtime/debug"
	"strings"
)

const devVersion = "dev"

// resolvedVersion prefers the linker-injected version, then the module
// version from build info, then the VCS revision.
func resolvedVersion(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" && trimmed != devVersion {
		return trimmed
	}

	if info, ok := debug.ReadBuildInfo(); ok && info != nil {
		if v := strings.TrimSpace(info.Main.Version); v != "" && v != "(devel)" {
			return v
		}
		var revision string
		dirty := false
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = strings.TrimSpace(setting.Value)
			case "vcs.modified":
				dirty = strings.EqualFold(strings.TrimSpace(setting.Value), "true")
			}
		}
		if len(revision) > 12 {
			revision = revision[:12]
		}
		if revision != "" {
			if dirty {
				return revision + "-dirty"
			}
			return revision
		}
	}

	if trimmed != "" {
		return trimmed
	}
	return devVersion
}
