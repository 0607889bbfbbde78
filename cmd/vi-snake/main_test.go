package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMain_ExitsNonZeroOnBadFlag runs the binary in a subprocess so os.Exit is observable
func TestMain_ExitsNonZeroOnBadFlag(t *testing.T) {
	if os.Getenv("VISNAKE_MAIN_SUBPROCESS") == "1" {
		os.Args = []string{"vi-snake", "--renderer", "webgl"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMain_ExitsNonZeroOnBadFlag")
	cmd.Env = append(os.Environ(), "VISNAKE_MAIN_SUBPROCESS=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if assert.ErrorAs(t, err, &exitErr) {
		assert.Equal(t, 1, exitErr.ExitCode())
	}
	assert.Contains(t, string(out), "vi-snake: ")
}
