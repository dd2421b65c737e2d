package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "codectx.dev/pkg/codectx/internal/model"
)

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.py")
	content := "def main():\n" + "    pass\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.py")
	content := []byte("def main():\n    pass\n")
	writeTestBytes(t, path, content)

	expected := fmt.Sprintf("%x", sha256.Sum256(content))

	hash, err := adapter.HashFile(m.Path(path))
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	if hash != expected {
		t.Fatalf("HashFile() = %s, want %s", hash, expected)
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.py")
	writeTestFile(t, path, "x = 1\n")

	info, err := adapter.FileInfo(m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func TestLocalSourceFSAdapter_Load(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := t.TempDir()

	t.Run("loads lines and hash", func(t *testing.T) {
		path := filepath.Join(root, "mod.py")
		content := []byte("class A:\n    def f(self):\n        return 1\n")
		writeTestBytes(t, path, content)

		doc, err := adapter.Load(m.Path(path))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if doc.Len() != 3 {
			t.Fatalf("Load() lines = %d, want 3", doc.Len())
		}

		if doc.Hash() != fmt.Sprintf("%x", sha256.Sum256(content)) {
			t.Fatalf("Load() hash mismatch")
		}

		if doc.Path() != m.Path(path) {
			t.Fatalf("Load() path = %s, want %s", doc.Path(), path)
		}
	})

	t.Run("directory is rejected", func(t *testing.T) {
		_, err := adapter.Load(m.Path(root))
		if !errors.Is(err, ErrNotAFile) {
			t.Fatalf("Load() error = %v, want ErrNotAFile", err)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := adapter.Load(m.Path(filepath.Join(root, "missing.py")))
		if !os.IsNotExist(err) {
			t.Fatalf("Load() error = %v, want not-exist", err)
		}
	})
}

func TestLocalSourceFSAdapter_AbsPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	got, err := adapter.AbsPath(m.Path("sub/file.py"))
	if err != nil {
		t.Fatalf("AbsPath() error = %v", err)
	}

	if !filepath.IsAbs(string(got)) {
		t.Fatalf("AbsPath() = %s, want absolute path", got)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
