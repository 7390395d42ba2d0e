// Package deploy packages a function entrypoint and publishes it to the
// function-execution service, recording the runtime identifier in the
// parameter store.
package deploy

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	zlog "github.com/rs/zerolog/log"
)

// Stager compiles a function with its resolved dependencies into a clean
// staging directory under dist/.
type Stager struct {
	// RootDir is the repository root containing cmd/<nickname>.
	RootDir string
}

// Stage builds cmd/<nickname> into dist/<nickname>/bootstrap for the Lambda
// provided runtime and returns the staging directory. Any previous staging
// output is removed first.
func (s *Stager) Stage(ctx context.Context, nickname string) (string, error) {
	srcDir := filepath.Join(s.RootDir, "cmd", nickname)
	if _, err := os.Stat(srcDir); err != nil {
		return "", fmt.Errorf("unknown function %q: %w", nickname, err)
	}

	distDir := filepath.Join(s.RootDir, "dist", nickname)
	if err := os.RemoveAll(distDir); err != nil {
		return "", fmt.Errorf("clean staging dir: %w", err)
	}
	if err := os.MkdirAll(distDir, 0o755); err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}

	zlog.Info().Str("function", nickname).Str("dist", distDir).Msg("building function")
	cmd := exec.CommandContext(ctx, "go", "build",
		"-tags", "lambda.norpc",
		"-o", filepath.Join(distDir, "bootstrap"),
		"./cmd/"+nickname)
	cmd.Dir = s.RootDir
	cmd.Env = append(os.Environ(), "GOOS=linux", "GOARCH=arm64", "CGO_ENABLED=0")
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("go build %s: %w\n%s", nickname, err, out)
	}
	return distDir, nil
}
