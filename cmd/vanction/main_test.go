/*
File    : vanction/cmd/vanction/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunFile_SuccessDoesNotExit exercises the happy path of runFile,
// which must return normally (not call os.Exit) when the script runs
// to completion without error.
func TestRunFile_SuccessDoesNotExit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.va")
	require.NoError(t, os.WriteFile(path, []byte(`
		func main() {
			System.print("ok");
		}
	`), 0o644))

	runFile(path, false)
}

func TestShowHelpAndVersionDoNotPanic(t *testing.T) {
	assert.NotPanics(t, showHelp)
	assert.NotPanics(t, showVersion)
}
