package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// SetUpFromFileContent creates a temp file with the given content.
func SetUpFromFileContent(t *testing.T, filename string, content string) string {
	dir := t.TempDir()

	fileOut := filepath.Join(dir, filename)
	if err := os.MkdirAll(filepath.Dir(fileOut), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fileOut, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	return fileOut
}

// SetUpFromFiles populates a temp directory. Keys are slash-separated relative paths.
func SetUpFromFiles(t *testing.T, files map[string]string) string {
	dir := t.TempDir()

	for relpath, content := range files {
		abspath := filepath.Join(dir, filepath.FromSlash(relpath))
		if err := os.MkdirAll(filepath.Dir(abspath), 0755); err != nil {
			t.Fatal(err)
		}
		t.Logf("Create text file %s", abspath)
		if err := os.WriteFile(abspath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

// SetUpFromGoldenDirNamed copies testdata/<testname> into a temp directory.
// Tests are free to edit the copy.
func SetUpFromGoldenDirNamed(t *testing.T, testname string) string {
	dirIn := filepath.Join("testdata", testname)
	dirOut := filepath.Join(t.TempDir(), testname)

	err := filepath.WalkDir(dirIn, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relpath, err := filepath.Rel(dirIn, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dirOut, relpath)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, content, 0644)
	})
	if err != nil {
		t.Fatalf("failed copying golden dir %s: %v", dirIn, err)
	}

	return dirOut
}
