package document

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.tsx")
	content := "<div>\n  héllo\n</div>\n"

	if err := Store(path, content); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != content {
		t.Errorf("got %q, want %q", got, content)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.tsx"))
	if err == nil {
		t.Fatal("Load of a missing file did not fail")
	}
}

func TestLoadRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load accepted invalid UTF-8")
	}
}

func TestSizeCountsCharacters(t *testing.T) {
	if got := Size("héllo"); got != 5 {
		t.Errorf("Size(\"héllo\") = %d, want 5", got)
	}
	if got := Size(""); got != 0 {
		t.Errorf("Size(\"\") = %d, want 0", got)
	}
}
