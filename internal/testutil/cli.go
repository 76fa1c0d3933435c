package testutil

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	// binaryPath caches the path to the built cbook binary.
	binaryPath string
	buildMu    sync.Mutex
	buildErr   error
)

// CLIResult represents the result of running a CLI command.
type CLIResult struct {
	OK       bool
	Data     map[string]interface{}
	Error    *CLIError
	Warnings []CLIWarning
	Meta     *CLIMeta
	RawJSON  string
	ExitCode int
}

// CLIError represents a structured error from the CLI.
type CLIError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Suggestion string                 `json:"suggestion,omitempty"`
}

// CLIWarning represents a warning from the CLI.
type CLIWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CLIMeta contains metadata from the response.
type CLIMeta struct {
	Count int `json:"count,omitempty"`
}

// BuildCLI builds the cbook binary once per test process and returns its path.
func BuildCLI(t *testing.T) string {
	t.Helper()

	buildMu.Lock()
	defer buildMu.Unlock()

	if binaryPath != "" {
		if _, err := os.Stat(binaryPath); err == nil {
			return binaryPath
		}
		binaryPath = ""
		buildErr = nil
	}

	projectRoot, err := findProjectRoot()
	if err != nil {
		buildErr = err
	} else {
		tmpDir, err := os.MkdirTemp("", "cbook-cli-bin-*")
		if err != nil {
			buildErr = err
		} else {
			binName := "cbook"
			if runtime.GOOS == "windows" {
				binName = "cbook.exe"
			}

			binaryPath = filepath.Join(tmpDir, binName)
			cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/cbook")
			cmd.Dir = projectRoot
			output, err := cmd.CombinedOutput()
			if err != nil {
				buildErr = &BuildError{Output: string(output), Err: err}
				binaryPath = ""
			}
		}
	}

	if buildErr != nil {
		t.Fatalf("failed to build CLI: %v", buildErr)
	}

	return binaryPath
}

// BuildError represents an error building the CLI binary.
type BuildError struct {
	Output string
	Err    error
}

func (e *BuildError) Error() string {
	return e.Err.Error() + "\n" + e.Output
}

// findProjectRoot walks up the directory tree to find go.mod.
func findProjectRoot() (string, error) {
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
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// RunCLI runs cbook against dataPath with --json and parses the envelope.
// The config file points at an empty temp location so the user's own
// config never leaks into tests.
func RunCLI(t *testing.T, dataPath string, args ...string) *CLIResult {
	t.Helper()
	return runCLI(t, dataPath, nil, args...)
}

// RunCLIWithStdin is RunCLI with the given text on standard input.
func RunCLIWithStdin(t *testing.T, dataPath, stdin string, args ...string) *CLIResult {
	t.Helper()
	return runCLI(t, dataPath, strings.NewReader(stdin), args...)
}

func runCLI(t *testing.T, dataPath string, stdin *strings.Reader, args ...string) *CLIResult {
	t.Helper()

	binary := BuildCLI(t)

	configPath := filepath.Join(t.TempDir(), "config.toml")
	cmdArgs := []string{"--config", configPath, "--data", dataPath, "--json"}
	cmdArgs = append(cmdArgs, args...)

	cmd := exec.Command(binary, cmdArgs...)
	if stdin != nil {
		cmd.Stdin = stdin
	}
	output, err := cmd.Output()

	result := &CLIResult{
		RawJSON: string(output),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
	}

	var resp struct {
		OK       bool                   `json:"ok"`
		Data     map[string]interface{} `json:"data,omitempty"`
		Error    *CLIError              `json:"error,omitempty"`
		Warnings []CLIWarning           `json:"warnings,omitempty"`
		Meta     *CLIMeta               `json:"meta,omitempty"`
	}

	if err := json.Unmarshal(output, &resp); err != nil {
		result.OK = false
		result.Error = &CLIError{
			Code:    "PARSE_ERROR",
			Message: "Failed to parse JSON output: " + err.Error(),
			Details: map[string]interface{}{"raw": string(output)},
		}
		return result
	}

	result.OK = resp.OK
	result.Data = resp.Data
	result.Error = resp.Error
	result.Warnings = resp.Warnings
	result.Meta = resp.Meta

	return result
}

// MustSucceed fails the test if the CLI command did not succeed.
func (r *CLIResult) MustSucceed(t *testing.T) *CLIResult {
	t.Helper()
	if !r.OK {
		errMsg := "unknown error"
		if r.Error != nil {
			errMsg = r.Error.Code + ": " + r.Error.Message
		}
		t.Fatalf("expected command to succeed, got error: %s\nRaw output: %s", errMsg, r.RawJSON)
	}
	return r
}

// MustFail fails the test if the CLI command did not fail with the expected code.
func (r *CLIResult) MustFail(t *testing.T, expectedCode string) *CLIResult {
	t.Helper()
	if r.OK {
		t.Fatalf("expected command to fail with code %s, but it succeeded\nRaw output: %s", expectedCode, r.RawJSON)
	}
	if r.Error == nil {
		t.Fatalf("expected error with code %s, but error is nil\nRaw output: %s", expectedCode, r.RawJSON)
	}
	if r.Error.Code != expectedCode {
		t.Fatalf("expected error code %s, got %s: %s\nRaw output: %s", expectedCode, r.Error.Code, r.Error.Message, r.RawJSON)
	}
	return r
}

// AssertHasWarning checks that the result contains a warning with the given code.
func (r *CLIResult) AssertHasWarning(t *testing.T, code string) {
	t.Helper()
	for _, w := range r.Warnings {
		if w.Code == code {
			return
		}
	}
	t.Errorf("expected warning with code %s, got warnings: %+v", code, r.Warnings)
}

// DataList extracts a list from the Data field.
func (r *CLIResult) DataList(key string) []interface{} {
	if r.Data == nil {
		return nil
	}
	if list, ok := r.Data[key].([]interface{}); ok {
		return list
	}
	return nil
}

// DataString extracts a string from the Data field.
func (r *CLIResult) DataString(key string) string {
	if r.Data == nil {
		return ""
	}
	if s, ok := r.Data[key].(string); ok {
		return s
	}
	return ""
}
