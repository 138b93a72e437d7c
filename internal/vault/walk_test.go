package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

func writeNote(t *testing.T, vaultPath, relPath, content string) {
	t.Helper()
	full := filepath.Join(vaultPath, relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectNotes(t *testing.T) {
	vaultPath := t.TempDir()

	writeNote(t, vaultPath, "Concept A.md", "---\ntype: node\n---\nA body")
	writeNote(t, vaultPath, "sub/Concept B.md", "---\ntype: node\n---\nB body")
	writeNote(t, vaultPath, "notes.txt", "not markdown")
	writeNote(t, vaultPath, ".hidden/skipped.md", "---\ntype: node\n---\n")
	writeNote(t, vaultPath, DataDir+"/graph.db.md", "should be skipped too")

	notes, warnings, err := CollectNotes(vaultPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	if len(notes) != 2 {
		t.Fatalf("notes = %d, want 2", len(notes))
	}

	ids := map[string]bool{}
	for _, n := range notes {
		ids[n.ID] = true
	}
	if !ids["Concept A"] || !ids["sub/Concept B"] {
		t.Errorf("unexpected note IDs: %v", ids)
	}
}

func TestCollectNotesUnreadableFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are ignored for root")
	}

	vaultPath := t.TempDir()
	writeNote(t, vaultPath, "ok.md", "---\ntype: node\n---\n")
	writeNote(t, vaultPath, "secret.md", "---\ntype: node\n---\n")
	if err := os.Chmod(filepath.Join(vaultPath, "secret.md"), 0000); err != nil {
		t.Fatal(err)
	}

	notes, warnings, err := CollectNotes(vaultPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The unreadable note is excluded entirely, not represented as empty.
	if len(notes) != 1 || notes[0].ID != "ok" {
		t.Errorf("notes = %v", notes)
	}
	if len(warnings) != 1 || warnings[0].Code != graph.WarnFileRead {
		t.Errorf("warnings = %v, want one %s", warnings, graph.WarnFileRead)
	}
}

func TestCollectNotesMissingVault(t *testing.T) {
	if _, _, err := CollectNotes(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing vault")
	}
}

func TestNoteID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Concept A.md", "Concept A"},
		{"sub/Concept B.md", "sub/Concept B"},
		{"no-extension", "no-extension"},
	}

	for _, tt := range tests {
		if got := NoteID(tt.in); got != tt.want {
			t.Errorf("NoteID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
