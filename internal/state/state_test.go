package state

import (
	"os"
	"testing"
)

// chdirTemp runs the test in a fresh directory so state lands there
// instead of in a real repository.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	chdirTemp(t)

	m, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	content := "original document\n"
	hash, err := m.Snapshot(content)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if hash != HashString(content) {
		t.Errorf("Snapshot returned %s, want %s", hash, HashString(content))
	}

	got, err := m.ReadSnapshot(hash)
	if err != nil {
		t.Fatalf("ReadSnapshot failed: %v", err)
	}
	if got != content {
		t.Errorf("got %q, want %q", got, content)
	}

	// Storing the same content again must be a no-op.
	again, err := m.Snapshot(content)
	if err != nil {
		t.Fatalf("second Snapshot failed: %v", err)
	}
	if again != hash {
		t.Errorf("second Snapshot returned %s, want %s", again, hash)
	}
}

func TestHistoryPointer(t *testing.T) {
	chdirTemp(t)

	m, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if ops := m.GetOperationsToUndo(); ops != nil {
		t.Errorf("empty history returned operations to undo: %v", ops)
	}

	op := Operation{Path: "page.tsx", PreHash: "aaa", PostHash: "bbb"}
	m.Write([]Operation{op})

	undo := m.GetOperationsToUndo()
	if len(undo) != 1 || undo[0] != op {
		t.Fatalf("GetOperationsToUndo returned %v, want [%v]", undo, op)
	}
	if again := m.GetOperationsToUndo(); again != nil {
		t.Errorf("second undo returned operations: %v", again)
	}

	redo := m.GetOperationsToRedo()
	if len(redo) != 1 || redo[0] != op {
		t.Fatalf("GetOperationsToRedo returned %v, want [%v]", redo, op)
	}
	if again := m.GetOperationsToRedo(); again != nil {
		t.Errorf("second redo returned operations: %v", again)
	}
}

func TestHistoryPersistsAcrossManagers(t *testing.T) {
	chdirTemp(t)

	m, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	op := Operation{Path: "page.tsx", PreHash: "aaa", PostHash: "bbb"}
	m.Write([]Operation{op})

	reloaded, err := New()
	if err != nil {
		t.Fatalf("New (reload) failed: %v", err)
	}
	undo := reloaded.GetOperationsToUndo()
	if len(undo) != 1 || undo[0] != op {
		t.Fatalf("reloaded manager returned %v, want [%v]", undo, op)
	}
}

func TestWriteDiscardsRedoTail(t *testing.T) {
	chdirTemp(t)

	m, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	first := Operation{Path: "a.tsx", PreHash: "a1", PostHash: "a2"}
	second := Operation{Path: "b.tsx", PreHash: "b1", PostHash: "b2"}

	m.Write([]Operation{first})
	m.GetOperationsToUndo()
	m.Write([]Operation{second})

	if ops := m.GetOperationsToRedo(); ops != nil {
		t.Errorf("redo tail survived a new write: %v", ops)
	}
	undo := m.GetOperationsToUndo()
	if len(undo) != 1 || undo[0] != second {
		t.Fatalf("GetOperationsToUndo returned %v, want [%v]", undo, second)
	}
}
