package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDump(t *testing.T) {
	path := writeFile(t, "page.html", `<div class="x"><aBc>hi</aBc></div>`)
	out, err := run(t, "dump", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `div class="x"`) || !strings.Contains(out, "aBc") {
		t.Errorf("unexpected dump output:\n%s", out)
	}
	out, err = run(t, "dump", "--dot", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "digraph") {
		t.Errorf("expected digraph output, got:\n%s", out)
	}
}

func TestSelectCount(t *testing.T) {
	path := writeFile(t, "feed.xml", `<feed><item><title>a</title></item><item><title>b</title></item></feed>`)
	out, err := run(t, "select", "--xml", "--count", "item > title", path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "2" {
		t.Errorf("expected 2 matches, got %q", out)
	}
}

func TestSelectStyle(t *testing.T) {
	path := writeFile(t, "page.html", `<p style="color: red">a</p><p>b</p><p style="color:blue">c</p>`)
	out, err := run(t, "select", "--style", "color", "p", path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || !strings.HasSuffix(lines[0], "\tred") || !strings.HasSuffix(lines[2], "\tblue") {
		t.Errorf("unexpected style output:\n%s", out)
	}
}

func TestErrors(t *testing.T) {
	if _, err := run(t, "dump", filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Error("expected error for missing file")
	}
	path := writeFile(t, "page.html", `<p/>`)
	if _, err := run(t, "select", "a[", path); err == nil {
		t.Error("expected error for invalid selector")
	}
	path = writeFile(t, "bad.xml", `<a x="1></a>`)
	if _, err := run(t, "dump", "--xml", path); err == nil {
		t.Error("expected error for malformed XML")
	}
}
