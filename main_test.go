package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(f func()) string {
	var buf bytes.Buffer
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan bool)
	go func() {
		_, _ = io.Copy(&buf, r)
		done <- true
	}()

	f()
	_ = w.Close()
	os.Stdout = oldStdout
	<-done

	return buf.String()
}

func runMain(args ...string) (int, string) {
	exitCode := 0
	oldExit := exit
	defer func() { exit = oldExit }()
	exit = func(code int) {
		exitCode = code
	}

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = append([]string{"blogbox"}, args...)

	out := captureOutput(main)
	return exitCode, out
}

func TestMainHelp(t *testing.T) {
	code, out := runMain("help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage: blogbox")
	assert.Contains(t, out, "serve")
}

func TestMainVersion(t *testing.T) {
	code, out := runMain("version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "blogbox version "+cliVersion)
}

func TestMainNoArgs(t *testing.T) {
	code, out := runMain()
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Usage: blogbox")
}

func TestMainUnknownCommand(t *testing.T) {
	code, out := runMain("bogus")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Unknown command: bogus")
}
