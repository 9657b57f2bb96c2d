package tui

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	// Force a plain color profile so rendered output is deterministic
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestSplog(t *testing.T, colored bool) (*Splog, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	splog, err := NewSplogWithConfig(buf, colored, "")
	require.NoError(t, err)
	return splog, buf
}

func TestSplogLine(t *testing.T) {
	t.Run("writes the text followed by a newline", func(t *testing.T) {
		splog, buf := newTestSplog(t, false)

		splog.Line("Pushed!")

		require.Equal(t, "Pushed!\n", buf.String())
	})

	t.Run("writes successive lines in order", func(t *testing.T) {
		splog, buf := newTestSplog(t, false)

		splog.Line("Adding and committing your new idea..")
		splog.Line("Added and committed!")

		require.Equal(t, "Adding and committing your new idea..\nAdded and committed!\n", buf.String())
	})
}

func TestSplogInputHeader(t *testing.T) {
	t.Run("ends with the prompt marker on its own line", func(t *testing.T) {
		splog, buf := newTestSplog(t, false)

		splog.InputHeader(">> Idea summary")

		require.Equal(t, ">> Idea summary\n> ", buf.String())
	})
}

func TestSplogBanner(t *testing.T) {
	t.Run("mentions the idea file", func(t *testing.T) {
		splog, buf := newTestSplog(t, false)

		splog.Banner()

		require.Contains(t, buf.String(), "Welcome to jot!")
		require.Contains(t, buf.String(), "README.md")
	})

	t.Run("draws a border when colored", func(t *testing.T) {
		splog, buf := newTestSplog(t, true)

		splog.Banner()

		require.Contains(t, buf.String(), "╭")
		require.Contains(t, buf.String(), "╰")
	})

	t.Run("skips the border when plain", func(t *testing.T) {
		splog, buf := newTestSplog(t, false)

		splog.Banner()

		require.NotContains(t, buf.String(), "╭")
	})
}

func TestSplogLevels(t *testing.T) {
	t.Run("warn carries a warning marker", func(t *testing.T) {
		splog, buf := newTestSplog(t, false)

		splog.Warn("branch %s not found", "dev")

		require.Equal(t, "⚠️  branch dev not found\n", buf.String())
	})

	t.Run("error carries an error marker", func(t *testing.T) {
		splog, buf := newTestSplog(t, false)

		splog.Error("boom")

		require.Equal(t, "❌ boom\n", buf.String())
	})

	t.Run("debug is suppressed by default", func(t *testing.T) {
		if os.Getenv("DEBUG") != "" || os.Getenv("JOT_DEBUG") != "" {
			t.Skip("debug mode forced by environment")
		}
		splog, buf := newTestSplog(t, false)

		splog.Debug("internal detail")

		require.Empty(t, buf.String())
	})

	t.Run("debug is written when JOT_DEBUG is set", func(t *testing.T) {
		t.Setenv("JOT_DEBUG", "1")
		splog, buf := newTestSplog(t, false)

		splog.Debug("internal detail")

		require.Equal(t, "internal detail\n", buf.String())
	})
}

func TestSplogFileLogging(t *testing.T) {
	t.Run("writes records to the log file", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "logs", "jot.log")
		buf := &bytes.Buffer{}
		splog, err := NewSplogWithConfig(buf, false, logPath)
		require.NoError(t, err)

		splog.Info("captured an idea")
		require.NoError(t, splog.Close())

		content, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(content), "captured an idea")
		require.Contains(t, buf.String(), "captured an idea")
	})

	t.Run("creates the log directory", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "deeply", "nested", "jot.log")
		splog, err := NewSplogWithConfig(&bytes.Buffer{}, false, logPath)
		require.NoError(t, err)
		defer func() { _ = splog.Close() }()

		info, err := os.Stat(filepath.Dir(logPath))
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})

	t.Run("close without a log file is a no-op", func(t *testing.T) {
		splog, _ := newTestSplog(t, false)

		require.NoError(t, splog.Close())
	})
}

func TestStyles(t *testing.T) {
	t.Run("plain styles render text unchanged", func(t *testing.T) {
		styles := newStyles(false)

		require.Equal(t, "hello", styles.Header.Render("hello"))
		require.Equal(t, "hello", styles.Error.Render("hello"))
	})

	t.Run("styles are exposed for composition", func(t *testing.T) {
		splog, _ := newTestSplog(t, true)

		require.NotNil(t, splog.Styles())
	})
}

func TestLumberjackConfig(t *testing.T) {
	t.Run("defaults apply without environment overrides", func(t *testing.T) {
		t.Setenv("JOT_LOG_MAX_SIZE", "")
		t.Setenv("JOT_LOG_MAX_BACKUPS", "")
		t.Setenv("JOT_LOG_MAX_AGE", "")

		logger := createLumberjackLogger("/tmp/jot.log")

		require.Equal(t, 1, logger.MaxSize)
		require.Equal(t, 2, logger.MaxBackups)
		require.Equal(t, 30, logger.MaxAge)
	})

	t.Run("environment overrides are honored", func(t *testing.T) {
		t.Setenv("JOT_LOG_MAX_SIZE", "5")
		t.Setenv("JOT_LOG_MAX_BACKUPS", "7")
		t.Setenv("JOT_LOG_MAX_AGE", "14")

		logger := createLumberjackLogger("/tmp/jot.log")

		require.Equal(t, 5, logger.MaxSize)
		require.Equal(t, 7, logger.MaxBackups)
		require.Equal(t, 14, logger.MaxAge)
	})

	t.Run("invalid overrides fall back to defaults", func(t *testing.T) {
		t.Setenv("JOT_LOG_MAX_SIZE", "not-a-number")
		t.Setenv("JOT_LOG_MAX_BACKUPS", "-3")

		logger := createLumberjackLogger("/tmp/jot.log")

		require.Equal(t, 1, logger.MaxSize)
		require.Equal(t, 2, logger.MaxBackups)
	})
}

func TestMultiHandler(t *testing.T) {
	t.Run("fans a record out to every handler", func(t *testing.T) {
		first := &bytes.Buffer{}
		second := &bytes.Buffer{}
		logger := slog.New(&multiHandler{handlers: []slog.Handler{
			&simpleHandler{writer: first},
			&simpleHandler{writer: second},
		}})

		logger.Info("shared")

		require.Contains(t, first.String(), "shared")
		require.Contains(t, second.String(), "shared")
	})

	t.Run("debug records skip handlers that have debug disabled", func(t *testing.T) {
		console := &bytes.Buffer{}
		file := &bytes.Buffer{}
		logger := slog.New(&multiHandler{handlers: []slog.Handler{
			&simpleHandler{writer: console},
			slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}),
		}})

		logger.Debug("detail")

		require.Empty(t, console.String())
		require.Contains(t, file.String(), "detail")
	})
}
