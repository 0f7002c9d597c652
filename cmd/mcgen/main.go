// Command mcgen generates wire codecs for types marked with //mcgen:
// directives. It is meant to run from go:generate:
//
//	//go:generate go run github.com/danmuck/mcwire/cmd/mcgen
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/danmuck/mcwire/internal/gen"
	"github.com/danmuck/mcwire/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("mcgen failed")
		os.Exit(1)
	}
}

// dirList collects a repeatable -dir flag.
type dirList []string

func (d *dirList) String() string { return strings.Join(*d, ",") }

func (d *dirList) Set(v string) error {
	*d = append(*d, v)
	return nil
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("mcgen", flag.ContinueOnError)
	var dirs dirList
	fs.Var(&dirs, "dir", "package directory to generate (repeatable, default .)")
	suffix := fs.String("suffix", "", "output file suffix (default "+gen.DefaultSuffix+")")
	configPath := fs.String("config", "", "path to "+defaultConfigName+" (default ./"+defaultConfigName+" when present)")
	verbose := fs.Bool("v", false, "log per-type progress")
	dryRun := fs.Bool("n", false, "render without writing files")
	initPath := fs.String("init", "", "write a starter config to this path and exit")
	force := fs.Bool("force", false, "let -init overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *initPath != "" {
		if err := writeTemplate(*initPath, *force); err != nil {
			return err
		}
		log.Info().Str("path", *initPath).Msg("mcgen: wrote config template")
		return nil
	}
	dirs = append(dirs, fs.Args()...)

	cfg := defaultConfig()
	path := *configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigName); err == nil {
			path = defaultConfigName
		}
	}
	if path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if len(dirs) > 0 {
		cfg.Packages = dirs
	}
	if *suffix != "" {
		cfg.Suffix = *suffix
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if *dryRun {
		cfg.DryRun = true
	}
	if len(cfg.Packages) == 0 {
		cfg.Packages = []string{"."}
	}
	packages, err := uniqueDirs(cfg.Packages)
	if err != nil {
		return err
	}
	cfg.Packages = packages
	// An empty level keeps whatever MCWIRE_LOG_LEVEL resolved to.
	if cfg.LogLevel != "" && !logging.SetLevel(cfg.LogLevel) {
		return errors.Newf("unknown log level %q", cfg.LogLevel)
	}
	return generate(ctx, cfg)
}

// uniqueDirs resolves dirs to absolute paths and drops repeats so no two
// goroutines write the same package.
func uniqueDirs(dirs []string) ([]string, error) {
	seen := make(map[string]bool, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve %s", dir)
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		out = append(out, abs)
	}
	return out, nil
}

// generate runs one goroutine per package. The first failure stops the
// others before their next file write.
func generate(ctx context.Context, cfg Config) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, dir := range cfg.Packages {
		dir := dir
		g.Go(func() error {
			log.Debug().Str("dir", dir).Msg("mcgen: package")
			_, err := gen.Generate(ctx, dir, gen.Options{Suffix: cfg.Suffix, DryRun: cfg.DryRun})
			return err
		})
	}
	return g.Wait()
}
