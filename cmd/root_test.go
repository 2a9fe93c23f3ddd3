package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winspect/internal/interfaces"
	"github.com/Norgate-AV/winspect/internal/logger"
	"github.com/Norgate-AV/winspect/internal/testutil"
	"github.com/Norgate-AV/winspect/internal/version"
)

type result struct {
	stdout   string
	stderr   string
	err      error
	exitCode int
	exited   bool
	logDir   string
}

// isolateConfig keeps the real user config and WINSPECT_* variables out of a
// test. Empty variables count as unset.
func isolateConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("APPDATA", dir)
	t.Setenv("HOME", dir)

	for _, name := range []string{"CONFIG", "OUTPUT", "VERBOSE", "LOGS", "LOG_DIR", "DELAY", "INTERVAL"} {
		t.Setenv(EnvPrefix+"_"+name, "")
	}
}

// execute runs the command tree against api with a temporary log directory
func execute(t *testing.T, api interfaces.WindowAPI, args ...string) result {
	t.Helper()
	isolateConfig(t)

	res := result{logDir: t.TempDir()}

	root := newRootCmd(
		func(logger.LoggerInterface) (interfaces.WindowAPI, error) { return api, nil },
		func(code int) {
			res.exited = true
			res.exitCode = code
		},
	)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append(args, "--log-dir="+res.logDir))

	res.err = root.Execute()
	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

func TestRootCmd_Version(t *testing.T) {
	res := execute(t, testutil.SampleDesktop(), "--version")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, version.GetVersion(), "Should print version information")
}

func TestRootCmd_Help(t *testing.T) {
	res := execute(t, testutil.SampleDesktop(), "--help")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "winspect", "Should show usage")
	assert.Contains(t, res.stdout, "Inspect and control desktop windows", "Should show description")
	assert.Contains(t, res.stdout, "--verbose", "Should list verbose flag")
	assert.Contains(t, res.stdout, "--output", "Should list output flag")
	assert.Contains(t, res.stdout, "--logs", "Should list logs flag")

	for _, sub := range []string{"list", "inspect", "children", "tree", "hit", "pick", "move", "send", "watch", "close"} {
		assert.Contains(t, res.stdout, sub, "Should list %s command", sub)
	}
}

func TestRootCmd_NoArgsShowsHelp(t *testing.T) {
	res := execute(t, testutil.SampleDesktop())

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Available Commands")
}

func TestRootCmd_InvalidFlag(t *testing.T) {
	res := execute(t, testutil.SampleDesktop(), "list", "--invalid-flag")

	assert.Error(t, res.err, "Should return error for invalid flag")
	assert.Contains(t, res.stderr, "unknown flag", "Error message should mention unknown flag")
}

func TestRootCmd_InvalidOutputFormat(t *testing.T) {
	res := execute(t, testutil.SampleDesktop(), "list", "-o", "xml")

	assert.ErrorContains(t, res.err, "unknown output format")
}

func TestRootCmd_Flags(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		expectedVerbose bool
		expectedLogs    bool
		expectedOutput  string
	}{
		{name: "no flags", args: []string{}, expectedOutput: "table"},
		{name: "verbose flag short", args: []string{"-V"}, expectedVerbose: true, expectedOutput: "table"},
		{name: "verbose flag long", args: []string{"--verbose"}, expectedVerbose: true, expectedOutput: "table"},
		{name: "logs flag short", args: []string{"-l"}, expectedLogs: true, expectedOutput: "table"},
		{name: "output flag short", args: []string{"-o", "json"}, expectedOutput: "json"},
		{name: "all flags", args: []string{"--verbose", "--logs", "--output=yaml"}, expectedVerbose: true, expectedLogs: true, expectedOutput: "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)

			root := NewRootCmd()
			require.NoError(t, root.ParseFlags(tt.args), "Flag parsing should not error")

			cfg, err := NewConfigFromFlags(root)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedVerbose, cfg.Verbose, "Verbose flag mismatch")
			assert.Equal(t, tt.expectedLogs, cfg.ShowLogs, "Logs flag mismatch")
			assert.Equal(t, tt.expectedOutput, string(cfg.Output), "Output flag mismatch")
		})
	}
}

func TestHandleLogsFlag(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &Config{ShowLogs: true, LogDir: tmpDir}

	testContent := "Test log content\nLine 2\nLine 3"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "winspect.log"), []byte(testContent), 0o644))

	exitCalled := false
	var exitCode int
	mockExit := func(code int) {
		exitCalled = true
		exitCode = code
	}

	var stdout, stderr bytes.Buffer
	require.NoError(t, handleLogsFlag(cfg, &stdout, &stderr, mockExit))

	assert.True(t, exitCalled, "Should call exit function for --logs flag")
	assert.Equal(t, 0, exitCode, "Should exit with code 0 for --logs")
	assert.Equal(t, testContent, stdout.String(), "Should print log file content to stdout")
}

func TestHandleLogsFlag_NoLogFile(t *testing.T) {
	cfg := &Config{ShowLogs: true, LogDir: t.TempDir()}

	var exitCode int
	var stdout, stderr bytes.Buffer
	require.NoError(t, handleLogsFlag(cfg, &stdout, &stderr, func(code int) { exitCode = code }))

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Log file does not exist")
}

func TestHandleLogsFlag_NotRequested(t *testing.T) {
	exitCalled := false
	err := handleLogsFlag(&Config{}, &bytes.Buffer{}, &bytes.Buffer{}, func(int) { exitCalled = true })

	assert.NoError(t, err)
	assert.False(t, exitCalled)
}

func TestLogsFlag_OnSubcommand(t *testing.T) {
	api := testutil.SampleDesktop()
	res := execute(t, api, "list", "--logs")

	require.NoError(t, res.err)
	assert.True(t, res.exited, "--logs should exit before running the command")
	assert.Equal(t, 1, res.exitCode, "no log file has been written yet")
	assert.Zero(t, api.EnumWindowsCalls, "the command body must not run")
}

func TestRun_WritesLogFile(t *testing.T) {
	res := execute(t, testutil.SampleDesktop(), "list", "--verbose")
	require.NoError(t, res.err)

	content, err := os.ReadFile(filepath.Join(res.logDir, "winspect.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Starting winspect")
	assert.Contains(t, res.stderr, "VERBOSE: Listed windows count=3")
}

func TestRun_APIUnavailable(t *testing.T) {
	isolateConfig(t)

	root := newRootCmd(
		func(logger.LoggerInterface) (interfaces.WindowAPI, error) { return nil, errors.New("no desktop") },
		func(int) {},
	)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"list", "--log-dir=" + t.TempDir()})

	assert.EqualError(t, root.Execute(), "no desktop")
}

func TestRun_RecoversPanic(t *testing.T) {
	isolateConfig(t)

	root := newRootCmd(
		func(logger.LoggerInterface) (interfaces.WindowAPI, error) { panic("boom") },
		func(int) {},
	)

	var stderr bytes.Buffer
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&stderr)
	root.SetArgs([]string{"list", "--log-dir=" + t.TempDir()})

	err := root.Execute()
	assert.ErrorContains(t, err, "panic: boom")
	assert.Contains(t, stderr.String(), "*** PANIC: boom ***")
}
