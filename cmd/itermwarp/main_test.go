package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const testTheme = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>Ansi 0 Color</key>
	<dict>
		<key>Blue Component</key>
		<real>0</real>
		<key>Green Component</key>
		<real>0</real>
		<key>Red Component</key>
		<real>0</real>
	</dict>
</dict>
</plist>
`

// TestMain_VerboseLogsReachStderr runs main in a child process, since main
// exits the process, and checks the log lines are flushed before exit.
func TestMain_VerboseLogsReachStderr(t *testing.T) {
	if os.Getenv("ITERMWARP_RUN_MAIN") == "1" {
		os.Args = append([]string{"itermwarp"}, strings.Split(os.Getenv("ITERMWARP_ARGS"), "\n")...)
		main()
		return
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "test.itermcolors")
	if err := os.WriteFile(input, []byte(testTheme), 0644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}
	outDir := t.TempDir()

	cmd := exec.Command(os.Args[0], "-test.run=^TestMain_VerboseLogsReachStderr$")
	cmd.Env = append(os.Environ(),
		"ITERMWARP_RUN_MAIN=1",
		"ITERMWARP_ARGS="+strings.Join([]string{"-vv", "--out", outDir, input}, "\n"),
	)
	cmd.Stdin = strings.NewReader("My Theme\n")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("itermwarp failed: %v\nstderr: %s", err, stderr.String())
	}

	wantPath := filepath.Join(outDir, "my_theme.yaml")
	if !strings.Contains(stderr.String(), "wrote "+wantPath) {
		t.Errorf("expected %q in stderr, got: %q", "wrote "+wantPath, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Theme converted and saved as "+wantPath) {
		t.Errorf("expected success message in stdout, got: %q", stdout.String())
	}
	if _, err := os.Stat(wantPath); err != nil {
		t.Errorf("expected output file: %v", err)
	}
}

func TestMain_ErrorExitCode(t *testing.T) {
	if os.Getenv("ITERMWARP_RUN_MAIN") == "1" {
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestMain_VerboseLogsReachStderr$")
	cmd.Env = append(os.Environ(),
		"ITERMWARP_RUN_MAIN=1",
		"ITERMWARP_ARGS="+filepath.Join(t.TempDir(), "missing.itermcolors"),
	)
	cmd.Stdin = strings.NewReader("x\n")

	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
	}
}
