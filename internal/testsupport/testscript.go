// Package testsupport provides helpers for testscript-driven CLI tests.
package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	tlPath    string
	buildErr  error
)

// BuildTL builds the tl binary once and returns its path.
func BuildTL(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "tl-bin-")
		if err != nil {
			buildErr = err
			return
		}

		tlPath = filepath.Join(binDir, "tl")
		cmd := exec.Command("go", "build", "-o", tlPath, "./cmd/tl")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build tl: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return tlPath
}

// SetupScriptEnv configures the environment for a testscript run: a fresh
// home, a lists directory inside the work dir, and the TL variable pointing
// at the built binary.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TL", BuildTL(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	listsDir := filepath.Join(env.WorkDir, "lists")
	if err := os.MkdirAll(listsDir, 0o755); err != nil {
		return err
	}
	env.Setenv("TL_DIR", listsDir)

	// Keep scripts deterministic regardless of the host terminal.
	env.Setenv("NO_COLOR", "1")

	return nil
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}
