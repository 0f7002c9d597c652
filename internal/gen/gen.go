package gen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

// DefaultSuffix names generated files after their source file.
const DefaultSuffix = "_mcgen.go"

// Options controls one generation run.
type Options struct {
	// Suffix replaces ".go" on the source file name. Empty means DefaultSuffix.
	Suffix string
	// DryRun renders without writing.
	DryRun bool
}

func (o Options) suffix() string {
	if o.Suffix == "" {
		return DefaultSuffix
	}
	return o.Suffix
}

// Generate renders every directive in dir and writes one output file per
// source file that declares generated types. Outputs from earlier runs
// whose source no longer has directives are removed. It returns the paths
// written. A cancelled ctx stops the run before the next file is written.
func Generate(ctx context.Context, dir string, opts Options) ([]string, error) {
	suffix := opts.suffix()
	if !strings.HasSuffix(suffix, ".go") {
		return nil, errors.Newf("gen: suffix %q must end in .go", suffix)
	}
	pkg, err := Load(dir, suffix)
	if err != nil {
		return nil, err
	}
	files, err := pkg.Render(suffix)
	if err != nil {
		return nil, err
	}
	var written []string
	for _, name := range pkg.OutputNames(suffix) {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "gen: %s", dir)
		}
		path := filepath.Join(dir, name)
		written = append(written, path)
		if opts.DryRun {
			log.Info().Str("file", path).Msg("gen: dry run")
			continue
		}
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return nil, errors.Wrapf(err, "gen: write %s", path)
		}
		log.Debug().Str("file", path).Msg("gen: wrote")
	}
	if !opts.DryRun {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "gen: %s", dir)
		}
		if err := removeStale(dir, suffix, files); err != nil {
			return nil, err
		}
	}
	log.Info().Str("dir", dir).Int("files", len(written)).Int("types", len(pkg.Decls)).Msg("gen: done")
	return written, nil
}

// removeStale deletes generated files this run did not produce. Files
// without the generated header are left alone.
func removeStale(dir, suffix string, keep map[string][]byte) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+suffix))
	if err != nil {
		return errors.Wrap(err, "gen: glob")
	}
	for _, path := range matches {
		if _, ok := keep[filepath.Base(path)]; ok {
			continue
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "gen: read %s", path)
		}
		if !bytes.HasPrefix(src, []byte(Header)) {
			continue
		}
		if err := os.Remove(path); err != nil {
			return errors.Wrapf(err, "gen: remove %s", path)
		}
		log.Debug().Str("file", path).Msg("gen: removed stale output")
	}
	return nil
}
