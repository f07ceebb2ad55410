package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestCLI_EncodeBuiltin(t *testing.T) {
	code, out, stderr := runCLI(t, "encode", "-date", "2024-01-15")
	if code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, stderr)
	}
	if strings.TrimSpace(out) != "2024-01-15 00:00:00 +0000 UTC" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCLI_DecodeBuiltin(t *testing.T) {
	code, out, stderr := runCLI(t, "decode", "-value", "2024-01-15 00:00:00 +0000 UTC")
	if code != 0 || strings.TrimSpace(out) != "2024-01-15 00:00:00 +0000 UTC" {
		t.Fatalf("exit=%d out=%q stderr=%s", code, out, stderr)
	}
}

func TestCLI_MismatchExitsOne(t *testing.T) {
	p := filepath.Join(t.TempDir(), "other.yaml")
	if err := os.WriteFile(p, []byte("type: string\nname: some.other.type\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, stderr := runCLI(t, "encode", "-schema", p, "-date", "2024-01-15")
	if code != 1 || out != "" {
		t.Fatalf("exit=%d out=%q", code, out)
	}
	if !strings.Contains(stderr, "code=schema_mismatch") {
		t.Fatalf("expected schema_mismatch in log, got: %s", stderr)
	}
	code, _, _ = runCLI(t, "decode", "-schema", p, "-value", "x")
	if code != 1 {
		t.Fatalf("decode exit=%d", code)
	}
}

func TestCLI_Verbose(t *testing.T) {
	code, _, stderr := runCLI(t, "encode", "-v", "-date", "2024-01-15")
	if code != 0 || !strings.Contains(stderr, "level=debug") {
		t.Fatalf("exit=%d stderr=%s", code, stderr)
	}
}

func TestCLI_JSONSchemaAndDescribe(t *testing.T) {
	code, out, stderr := runCLI(t, "jsonschema")
	if code != 0 || !strings.Contains(out, `"title": "org.apache.kafka.connect.data.Date"`) {
		t.Fatalf("exit=%d out=%s stderr=%s", code, out, stderr)
	}
	code, out, stderr = runCLI(t, "describe")
	if code != 0 || !strings.Contains(out, `"name": "org.apache.kafka.connect.data.Date"`) || !strings.Contains(out, `"version": 1`) {
		t.Fatalf("exit=%d out=%s stderr=%s", code, out, stderr)
	}
}

func TestCLI_Usage(t *testing.T) {
	if code, _, _ := runCLI(t); code != 2 {
		t.Fatalf("expected usage exit 2, got %d", code)
	}
	if code, _, _ := runCLI(t, "bogus"); code != 2 {
		t.Fatalf("expected usage exit 2, got %d", code)
	}
	if code, _, _ := runCLI(t, "encode"); code != 2 {
		t.Fatalf("expected exit 2 without -date, got %d", code)
	}
}

func TestCLI_UsagePrintedOnce(t *testing.T) {
	code, _, stderr := runCLI(t, "encode", "-nosuchflag")
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if n := strings.Count(stderr, "Usage of encode"); n != 1 {
		t.Fatalf("usage printed %d times:\n%s", n, stderr)
	}
	code, _, stderr = runCLI(t, "decode")
	if code != 2 || strings.Count(stderr, "Usage of decode") != 1 {
		t.Fatalf("exit=%d stderr=%s", code, stderr)
	}
}
