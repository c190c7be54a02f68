package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"objview/internal/graphics/mesh"
)

func writeOBJ(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := writeOBJ(t, dir, "tri.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nvt 0 0\nf 1/1/1 2/1/1 3/1/1\n")
	empty := writeOBJ(t, dir, "empty.obj", "")
	badIndex := writeOBJ(t, dir, "bad.obj", "v 0 0 0\nvn 0 0 1\nvt 0 0\nf 1/1/1 2/1/1 3/1/1\n")
	missing := filepath.Join(dir, "missing.obj")

	var out bytes.Buffer
	failed := run(&out, []string{good, empty, badIndex, missing})
	if failed != 2 {
		t.Errorf("failed: got %d, want 2", failed)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got:\n%s", out.String())
	}

	fields := strings.Fields(lines[1])
	want := []string{good, "3", "1", "1", "1", "3", "96", "(0,0,0)..(1,1,0)"}
	if strings.Join(fields, " ") != strings.Join(want, " ") {
		t.Errorf("row: got %v, want %v", fields, want)
	}

	if fields := strings.Fields(lines[2]); fields[len(fields)-1] != "-" || fields[5] != "0" {
		t.Errorf("empty row: got %v", fields)
	}
}

func TestPrintLayout(t *testing.T) {
	var out bytes.Buffer
	printLayout(&out, mesh.VertexLayout)

	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if f := strings.Fields(line); len(f) > 0 {
			rows = append(rows, f)
		}
	}
	want := [][]string{
		{"BINDING", "STRIDE", "RATE"},
		{"0", "32", "vertex"},
		{"LOCATION", "BINDING", "FORMAT", "OFFSET"},
		{"0", "0", "R32G32B32_SFLOAT", "0"},
		{"1", "0", "R32G32B32_SFLOAT", "12"},
		{"2", "0", "R32G32_SFLOAT", "24"},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got:\n%s", len(want), out.String())
	}
	for i := range want {
		if strings.Join(rows[i], " ") != strings.Join(want[i], " ") {
			t.Errorf("row %d: got %v, want %v", i, rows[i], want[i])
		}
	}
}
