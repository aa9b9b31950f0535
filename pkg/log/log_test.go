package log

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobalState 테스트 간 전역 상태(sync.Once, logrus 설정)를 초기화합니다.
func resetGlobalState() {
	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil

	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&logrus.TextFormatter{})
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

type nopCloser struct{ closed int }

func (c *nopCloser) Close() error {
	c.closed++
	return nil
}

// =============================================================================
// Options
// =============================================================================

func TestOptions_Validate(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "existing_file")
	require.NoError(t, os.WriteFile(tempFile, []byte("x"), 0644))

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"Valid", Options{Name: "probe"}, ""},
		{"Missing Name", Options{}, "애플리케이션 식별자(Name)"},
		{"No Output", Options{Name: "probe", DisableFileLog: true}, "모두 비활성화"},
		{"Dir Is File", Options{Name: "probe", Dir: tempFile}, "이미 파일로 존재합니다"},
		{"Dir Is File But File Log Disabled", Options{Name: "probe", Dir: tempFile, DisableFileLog: true, EnableConsoleLog: true}, ""},
		{"Negative MaxAge", Options{Name: "probe", MaxAge: -1}, "MaxAge"},
		{"Negative MaxSizeMB", Options{Name: "probe", MaxSizeMB: -1}, "MaxSizeMB"},
		{"Negative MaxBackups", Options{Name: "probe", MaxBackups: -1}, "MaxBackups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProfiles(t *testing.T) {
	prod := NewProductionOptions("probe")
	assert.Equal(t, InfoLevel, prod.Level)
	assert.True(t, prod.EnableCriticalLog)
	assert.False(t, prod.EnableConsoleLog)
	assert.NoError(t, prod.Validate())

	dev := NewDevelopmentOptions("probe")
	assert.Equal(t, TraceLevel, dev.Level)
	assert.True(t, dev.EnableConsoleLog)

	cli := NewCLIOptions("probe", false)
	assert.True(t, cli.DisableFileLog)
	assert.Equal(t, os.Stderr, cli.ConsoleWriter)
	assert.Equal(t, WarnLevel, cli.Level)
	assert.Equal(t, DebugLevel, NewCLIOptions("probe", true).Level)
	assert.NoError(t, cli.Validate())
}

// =============================================================================
// Hook routing
// =============================================================================

func TestHook_Fire_Routing(t *testing.T) {
	tests := []struct {
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{ErrorLevel, true, true, false},
		{WarnLevel, true, false, false},
		{InfoLevel, true, false, false},
		{DebugLevel, false, false, true},
		{TraceLevel, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var main, critical, verbose, console bytes.Buffer
			h := &hook{
				mainWriter:     &main,
				criticalWriter: &critical,
				verboseWriter:  &verbose,
				consoleWriter:  &console,
				formatter:      &logrus.TextFormatter{DisableTimestamp: true},
			}

			entry := logrus.NewEntry(logrus.New())
			entry.Level = tt.level
			entry.Message = "probe message"

			require.NoError(t, h.Fire(entry))

			assert.Equal(t, tt.wantMain, main.Len() > 0)
			assert.Equal(t, tt.wantCritical, critical.Len() > 0)
			assert.Equal(t, tt.wantVerbose, verbose.Len() > 0)
			assert.Contains(t, console.String(), "probe message")
		})
	}
}

func TestHook_Fire_ClosedAndErrors(t *testing.T) {
	t.Run("Closed hook drops entries", func(t *testing.T) {
		var main bytes.Buffer
		h := &hook{mainWriter: &main, formatter: &logrus.TextFormatter{}}
		require.NoError(t, h.Close())

		entry := logrus.NewEntry(logrus.New())
		entry.Level = InfoLevel
		require.NoError(t, h.Fire(entry))
		assert.Zero(t, main.Len())
	})

	t.Run("Main writer failure is reported", func(t *testing.T) {
		h := &hook{mainWriter: failWriter{}, formatter: &logrus.TextFormatter{}}

		entry := logrus.NewEntry(logrus.New())
		entry.Level = InfoLevel
		assert.Error(t, h.Fire(entry))
	})

	t.Run("Console failure is not propagated", func(t *testing.T) {
		h := &hook{consoleWriter: failWriter{}, formatter: &logrus.TextFormatter{}}

		entry := logrus.NewEntry(logrus.New())
		entry.Level = InfoLevel
		assert.NoError(t, h.Fire(entry))
	})
}

// =============================================================================
// Closer
// =============================================================================

func TestCloser_Idempotent(t *testing.T) {
	c1, c2 := &nopCloser{}, &nopCloser{}
	h := &hook{}
	c := &closer{closers: []io.Closer{c1, c2}, hook: h}

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	assert.Equal(t, 1, c1.closed)
	assert.Equal(t, 1, c2.closed)
	assert.True(t, h.closed)
}

// =============================================================================
// Setup
// =============================================================================

func TestSetup_ConsoleOnly(t *testing.T) {
	resetGlobalState()
	t.Cleanup(resetGlobalState)

	var console bytes.Buffer
	opts := NewCLIOptions("probe-test", true)
	opts.ConsoleWriter = &console
	opts.Dir = filepath.Join(t.TempDir(), "should-not-exist")

	c, err := Setup(opts)
	require.NoError(t, err)
	defer c.Close()

	WithComponentAndFields("test", Fields{"target": "agileflow"}).Debug("console only")

	assert.Contains(t, console.String(), "console only")
	assert.Contains(t, console.String(), "component=test")
	assert.Contains(t, console.String(), "target=agileflow")
	assert.NoDirExists(t, opts.Dir)
}

func TestSetup_FileLogs(t *testing.T) {
	resetGlobalState()
	t.Cleanup(resetGlobalState)

	dir := t.TempDir()
	opts := NewProductionOptions("probe-test")
	opts.Dir = dir

	c, err := Setup(opts)
	require.NoError(t, err)

	WithComponent("test").Error("critical message")
	WithComponent("test").Info("main message")
	require.NoError(t, c.Close())

	mainLog, err := os.ReadFile(filepath.Join(dir, "probe-test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "critical message")
	assert.Contains(t, string(mainLog), "main message")

	criticalLog, err := os.ReadFile(filepath.Join(dir, "probe-test.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(criticalLog), "critical message")
	assert.NotContains(t, string(criticalLog), "main message")
}

func TestSetup_OnlyOnce(t *testing.T) {
	resetGlobalState()
	t.Cleanup(resetGlobalState)

	opts := NewCLIOptions("probe-test", false)
	opts.ConsoleWriter = &bytes.Buffer{}

	c1, err1 := Setup(opts)
	c2, err2 := Setup(Options{}) // 두 번째 호출의 옵션은 무시됩니다.

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Same(t, c1, c2)
}

func TestWithComponentAndFields_DoesNotMutateInput(t *testing.T) {
	fields := Fields{"a": 1}
	entry := WithComponentAndFields("comp", fields)

	assert.Equal(t, "comp", entry.Data["component"])
	assert.Equal(t, 1, entry.Data["a"])
	assert.NotContains(t, fields, "component")
}
