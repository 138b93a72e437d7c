// Package vault enumerates note sources from a filesystem location.
//
// The walker is a thin collaborator: it finds markdown files, reads them, and
// hands their content to the extractor. Per-file read failures exclude that
// note with a warning; only failure to enumerate the vault at all is an error.
package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/vaultgraph/internal/note"
	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

// DataDir is the vault-local directory vaultgraph owns (snapshot database).
// It is never walked.
const DataDir = ".vaultgraph"

// WalkResult is the outcome of processing one markdown file.
type WalkResult struct {
	Path         string
	RelativePath string
	Note         *note.Note
	Warnings     []graph.Warning
	Err          error
}

// WalkNotes walks all markdown files under vaultPath and calls the handler
// for each. Hidden directories and DataDir are skipped.
func WalkNotes(vaultPath string, handler func(result WalkResult) error) error {
	info, err := os.Stat(vaultPath)
	if err != nil {
		return fmt.Errorf("vault not found: %s", vaultPath)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault path is not a directory: %s", vaultPath)
	}

	return filepath.WalkDir(vaultPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			relativePath, _ := filepath.Rel(vaultPath, path)
			return handler(WalkResult{Path: path, RelativePath: relativePath, Err: err})
		}

		if d.IsDir() {
			name := d.Name()
			if path != vaultPath && (strings.HasPrefix(name, ".") || name == DataDir) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(path, ".md") {
			return nil
		}

		relativePath, _ := filepath.Rel(vaultPath, path)
		id := NoteID(relativePath)

		content, err := os.ReadFile(path)
		if err != nil {
			return handler(WalkResult{Path: path, RelativePath: relativePath, Err: err})
		}

		n, warnings := note.Extract(string(content), id)
		return handler(WalkResult{
			Path:         path,
			RelativePath: relativePath,
			Note:         n,
			Warnings:     warnings,
		})
	})
}

// CollectNotes walks the vault and returns all extracted notes plus the
// warnings accumulated on the way. Unreadable files become FILE_READ_ERROR
// warnings and are excluded entirely; they are not represented as empty notes.
func CollectNotes(vaultPath string) ([]*note.Note, []graph.Warning, error) {
	var notes []*note.Note
	var warnings []graph.Warning

	err := WalkNotes(vaultPath, func(result WalkResult) error {
		if result.Err != nil {
			warnings = append(warnings, graph.Warningf(
				graph.WarnFileRead, NoteID(result.RelativePath), "%v", result.Err))
			return nil
		}
		warnings = append(warnings, result.Warnings...)
		notes = append(notes, result.Note)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return notes, warnings, nil
}

// NoteID derives a note identity from its vault-relative path: the path
// without the .md extension, slash-normalized. Unique per run by construction.
func NoteID(relativePath string) string {
	id := strings.TrimSuffix(relativePath, ".md")
	return filepath.ToSlash(id)
}
