package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built binary functions correctly.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "logbench"
	if runtime.GOOS == "windows" {
		binName = "logbench.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; build from the module root.
	build := exec.Command("go", "build", "-o", binPath, "./cmd/logbench")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build logbench: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Small Comparison Run",
			args:     []string{"-n", "1000", "-seed", "7", "-no-chart", "-preview", "0"},
			wantOut:  "comparison summary",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Single Strategy",
			args:     []string{"-n", "500", "-seed", "7", "-strategy", "vectorized", "-no-chart"},
			wantOut:  "vectorized",
			wantCode: 0,
		},
		{
			name:     "Quiet Mode",
			args:     []string{"-n", "200", "-seed", "7", "--quiet"},
			wantOut:  "append-loop\t",
			wantCode: 0,
		},
		{
			name:     "Chart Run",
			args:     []string{"-n", "500", "-seed", "7", "-preview", "0"},
			wantOut:  "execution time by strategy",
			wantCode: 0,
		},
		{
			name:     "Very Short Timeout",
			args:     []string{"-n", "100000000", "--timeout", "1ns", "--quiet"},
			wantOut:  "",
			wantCode: 2,
		},
		{
			name:     "Invalid N Zero",
			args:     []string{"-n", "0"},
			wantOut:  "validation error",
			wantCode: 4,
		},
		{
			name:     "Unknown Strategy",
			args:     []string{"-strategy", "quantum"},
			wantOut:  "unknown strategy",
			wantCode: 4,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "logbench",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else {
				if err == nil {
					t.Errorf("Expected non-zero exit code, but command succeeded.\nOutput: %s", outStr)
				} else if exitErr, ok := err.(*exec.ExitError); ok {
					if exitErr.ExitCode() != tt.wantCode {
						t.Logf("Exit code mismatch: got %d, want %d (accepting any non-zero)",
							exitErr.ExitCode(), tt.wantCode)
					}
				}
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}

// TestCLI_EnvOverride verifies LOGBENCH_ environment overrides reach the run.
func TestCLI_EnvOverride(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end build in short mode")
	}

	tmpDir := t.TempDir()
	binPath := filepath.Join(tmpDir, "logbench")

	build := exec.Command("go", "build", "-o", binPath, "./cmd/logbench")
	build.Dir = "../.."
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build logbench: %v", err)
	}

	cmd := exec.Command(binPath, "-seed", "7", "--quiet")
	cmd.Env = append(os.Environ(), "NO_COLOR=1", "LOGBENCH_N=100", "LOGBENCH_STRATEGY=map-func")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "map-func\t") {
		t.Errorf("env override not applied, output:\n%s", output)
	}
}
