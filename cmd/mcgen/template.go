package main

import (
	"os"

	"github.com/cockroachdb/errors"
)

const configTemplate = `# mcgen configuration. Flags override every key.
suffix = "_mcgen.go"
packages = ["."]
log_level = "info"
dry_run = false
`

// writeTemplate writes a starter mcgen.toml. An existing file is kept
// unless overwrite is set.
func writeTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.Newf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(configTemplate), 0o644)
}
