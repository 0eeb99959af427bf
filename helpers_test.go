package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/spf13/afero"
)

/* general testing helpers */

func tcheck(tb testing.TB, err error) {
	if err == nil {
		return
	}

	tb.Helper()
	tb.Fatalf("fatal error:\n\n%s\n", err)
}

func tcheckf(tb testing.TB, err error, format string, args ...any) {
	if err == nil {
		return
	}

	tb.Helper()
	tb.Fatalf("fatal error:\n\n%s: %s\n", fmt.Sprintf(format, args...), err)
}

// testApp is an app running on an in-memory filesystem.
type testApp struct {
	app
	stdout, stderr bytes.Buffer
	exitCode       int
}

func newTestApp(tb testing.TB, fs afero.Fs) *testApp {
	tb.Helper()

	ta := &testApp{exitCode: -1}
	ta.app = app{
		fs:     fs,
		stdout: &ta.stdout,
		stderr: &ta.stderr,
		exit:   func(code int) { ta.exitCode = code },
	}
	return ta
}

func (ta *testApp) runArgs(args ...string) int {
	ta.stdout.Reset()
	ta.stderr.Reset()
	return ta.main(args)
}
