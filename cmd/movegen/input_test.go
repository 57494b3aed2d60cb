package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lgbarn/movegen-go/internal/engine"
)

func TestReadFENs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single line", engine.InitialFEN + "\n", []string{engine.InitialFEN}},
		{"comments and blanks", "# start\n\n" + engine.InitialFEN + "\n   \n", []string{engine.InitialFEN}},
		{"epd operations dropped", "8/8/8/8/8/8/8/N7 w - - ; id \"lone knight\"", []string{"8/8/8/8/8/8/8/N7 w - -"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readFENs(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("readFENs() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("readFENs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCollectInputs(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.fen", "fen-a1\nfen-a2\n")
	second := writeFile(t, dir, "b.fen", "fen-b1\n")
	list := writeFile(t, dir, "list.txt", "# files\n"+first+"\n")

	tests := []struct {
		name     string
		fen      string
		start    bool
		listFile string
		args     []string
		stdin    string
		want     []string
	}{
		{"explicit fen wins", "fen-x", true, list, []string{second}, "fen-stdin", []string{"fen-x"}},
		{"startpos", "", true, "", []string{second}, "", []string{engine.InitialFEN}},
		{"files in order", "", false, "", []string{second, first}, "", []string{"fen-b1", "fen-a1", "fen-a2"}},
		{"file list before args", "", false, list, []string{second}, "", []string{"fen-a1", "fen-a2", "fen-b1"}},
		{"stdin fallback", "", false, "", nil, "fen-stdin\n", []string{"fen-stdin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collectInputs(tt.fen, tt.start, tt.listFile, tt.args, strings.NewReader(tt.stdin))
			if err != nil {
				t.Fatalf("collectInputs() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("collectInputs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollectInputsMissingFile(t *testing.T) {
	if _, err := collectInputs("", false, "", []string{"/nonexistent/positions.fen"}, nil); err == nil {
		t.Error("collectInputs() expected error for missing file")
	}
	if _, err := collectInputs("", false, "/nonexistent/list.txt", nil, nil); err == nil {
		t.Error("collectInputs() expected error for missing file list")
	}
}
