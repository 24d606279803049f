package discovery

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("[]"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.txt", "a.log", "notes.md", "c.txt")

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	want := []string{"a.log", "b.txt", "c.txt"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, c := range cases {
		if got := FormatSize(c.size); got != c.want {
			t.Errorf("FormatSize(%d): expected %q, got %q", c.size, c.want, got)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt", "b.txt")
	files, err := Scan(dir)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	m := &Menu{In: strings.NewReader("2\n"), Out: &out}

	selected, err := m.Select(files, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if selected.Name != "b.txt" {
		t.Errorf("expected b.txt, got %s", selected.Name)
	}
}

func TestMenuRepromptsOnInvalidInput(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")
	files, _ := Scan(dir)

	var out bytes.Buffer
	m := &Menu{In: strings.NewReader("zero\n9\n1\n"), Out: &out}

	selected, err := m.Select(files, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if selected.Name != "a.txt" {
		t.Errorf("expected a.txt after re-prompts, got %s", selected.Name)
	}
	if !strings.Contains(out.String(), "Invalid selection") {
		t.Error("expected an invalid-selection prompt")
	}
}

func TestMenuQuit(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")
	files, _ := Scan(dir)

	var out bytes.Buffer
	m := &Menu{In: strings.NewReader("q\n"), Out: &out}

	if _, err := m.Select(files, ""); err != ErrQuit {
		t.Errorf("expected ErrQuit, got %v", err)
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	h := NewHistory(path)
	if h.LastFile() != "" {
		t.Errorf("expected empty history, got %q", h.LastFile())
	}

	h.Record("/logs/agent-log.txt")
	if err := h.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded := NewHistory(path)
	if reloaded.LastFile() != "/logs/agent-log.txt" {
		t.Errorf("expected last file to survive reload, got %q", reloaded.LastFile())
	}
}

func TestHistoryCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if h.LastFile() != "" {
		t.Errorf("corrupt history must start fresh, got %q", h.LastFile())
	}
}
