package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_UnknownDomainIsConfigurationError(t *testing.T) {
	var stderr bytes.Buffer
	old := errOut
	errOut = &stderr
	defer func() { errOut = old }()

	code := run([]string{"notadomain"}, strings.NewReader(""))
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "unknown domain") {
		t.Fatalf("stderr = %q, want mention of unknown domain", stderr.String())
	}
}

func TestRun_NoArgsIsUsageError(t *testing.T) {
	var stderr bytes.Buffer
	old := errOut
	errOut = &stderr
	defer func() { errOut = old }()

	if code := run(nil, strings.NewReader("")); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestRun_PancakeEndToEnd(t *testing.T) {
	var stdout bytes.Buffer
	old := errOut
	errOut = &bytes.Buffer{}
	defer func() { errOut = old }()

	input := "5\n1 0 2 3 4\nucs\n"
	code := run([]string{"pancake", "-cost", "unit", "ucs"}, strings.NewReader(input))
	_ = stdout
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
}
