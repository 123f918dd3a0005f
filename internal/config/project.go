package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rshade/pokedex/internal/logging"
)

// EnvProjectConfig names an explicit project overlay, bypassing discovery.
const EnvProjectConfig = "POKEDEX_PROJECT_CONFIG"

// repoMarker stops the overlay walk-up at a repository root.
const repoMarker = ".git"

// ResolveProjectOverlay returns the project overlay to merge over the
// global config. It checks, in order:
//  1. the EnvProjectConfig variable
//  2. a ProjectOverlayName file in startDir or any parent, stopping after
//     the first directory holding a .git entry
//
// An empty result means no overlay. The returned path is absolute.
func ResolveProjectOverlay(ctx context.Context, lookupEnv func(string) (string, bool), startDir string) string {
	if p, ok := lookupEnv(EnvProjectConfig); ok && p != "" {
		return absPath(ctx, p)
	}

	dir := absPath(ctx, startDir)
	for {
		candidate := filepath.Join(dir, ProjectOverlayName)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			logging.FromContext(ctx).Warn().
				Str("component", "config").
				Err(err).
				Str("path", candidate).
				Msg("unexpected error during project overlay discovery")
			return ""
		}

		if _, err = os.Stat(filepath.Join(dir, repoMarker)); err == nil {
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func absPath(ctx context.Context, p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("dir", p).
			Msg("failed to resolve absolute path")
		return p
	}
	return abs
}
