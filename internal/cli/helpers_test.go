package cli_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"jot.dev/jot/internal/testhelper"
)

// getJotBinary returns the path to the pre-built jot binary.
func getJotBinary(t *testing.T) string {
	t.Helper()
	binaryPath := testhelper.GetSharedBinaryPath()
	if binaryPath == "" {
		if err := testhelper.GetBinaryError(); err != nil {
			t.Fatalf("failed to build jot binary: %v", err)
		}
		t.Fatal("jot binary not built")
	}
	return binaryPath
}

// jotEnv builds a process environment with an isolated config home.
func jotEnv(configHome string, extra ...string) []string {
	env := append(os.Environ(),
		"JOT_CONFIG_HOME="+configHome,
		"NO_COLOR=1",
	)
	return append(env, extra...)
}

// writeConfig seeds the isolated config home with a jot.toml.
func writeConfig(t *testing.T, configHome, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(configHome, "jot.toml"), []byte(content), 0600))
}

// readConfig reads back the config file from the isolated config home.
func readConfig(t *testing.T, configHome string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(configHome, "jot.toml"))
	require.NoError(t, err)
	return string(content)
}

// writeProgramScript writes an executable script to stand in for an
// editor or pager.
func writeProgramScript(t *testing.T, content string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "program.sh")
	//nolint:gosec // the script must be executable
	require.NoError(t, os.WriteFile(path, []byte(content), 0700))
	return path
}

// writeRecordingScript writes a script that appends each argument it
// receives, one per line, to recordPath.
func writeRecordingScript(t *testing.T) (script, recordPath string) {
	t.Helper()
	recordPath = filepath.Join(t.TempDir(), "args.txt")
	script = writeProgramScript(t, "#!/bin/sh\nfor arg in \"$@\"; do printf '%s\\n' \"$arg\" >> \"$JOT_TEST_ARGS\"; done\n")
	return script, recordPath
}
