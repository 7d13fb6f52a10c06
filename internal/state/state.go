package state

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	stateDirName  = ".snip"
	stateFileName = "state.snip"
	SnapshotDir   = "snapshots"
)

// Operation records one file rewrite: the content hash before the run
// and after it. Both contents are kept as snapshots, so the rewrite
// can be undone and redone safely.
type Operation struct {
	Path     string
	PreHash  string
	PostHash string
}

// HistoryEntry represents one complete run of the tool.
type HistoryEntry struct {
	Timestamp  int64
	Operations []Operation
}

// State represents the entire state file.
type State struct {
	History      []HistoryEntry
	CurrentIndex int
}

// Manager handles the lifecycle of the state file.
type Manager struct {
	statePath string
	state     *State
	StateDir  string
}

// findGitRoot finds the root of the git repository.
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// New creates and loads a state manager. State lives at the git root
// when there is one, otherwise in the working directory.
func New() (*Manager, error) {
	rootDir, err := findGitRoot()
	if err != nil {
		rootDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("could not get current working directory: %w", err)
		}
	}

	stateDir := filepath.Join(rootDir, stateDirName)
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, fmt.Errorf("could not create state directory: %w", err)
	}
	m := &Manager{
		statePath: filepath.Join(stateDir, stateFileName),
		StateDir:  stateDir,
	}
	if err := m.load(); err != nil {
		m.state = &State{CurrentIndex: -1, History: []HistoryEntry{}}
	}
	return m, nil
}

func (m *Manager) load() error {
	data, err := os.ReadFile(m.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			m.state = &State{CurrentIndex: -1, History: []HistoryEntry{}}
			return nil
		}
		return err
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	blocks := strings.Split(content, "\n\n")

	if len(blocks) == 0 || blocks[0] == "" {
		m.state = &State{CurrentIndex: -1, History: []HistoryEntry{}}
		return nil
	}

	// First block is the current index.
	index, err := strconv.Atoi(strings.TrimSpace(blocks[0]))
	if err != nil {
		return fmt.Errorf("invalid state file: could not parse current index: %w", err)
	}

	m.state = &State{CurrentIndex: index, History: []HistoryEntry{}}

	for _, block := range blocks[1:] {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.Split(block, "\n")

		ts, err := strconv.ParseInt(lines[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid state file: could not parse timestamp from '%s': %w", lines[0], err)
		}

		entry := HistoryEntry{Timestamp: ts}
		opLines := lines[1:]
		if len(opLines)%3 != 0 {
			return fmt.Errorf("invalid state file: incomplete operation record")
		}
		for i := 0; i < len(opLines); i += 3 {
			entry.Operations = append(entry.Operations, Operation{
				Path:     opLines[i],
				PreHash:  opLines[i+1],
				PostHash: opLines[i+2],
			})
		}
		m.state.History = append(m.state.History, entry)
	}

	return nil
}

func (m *Manager) save() {
	blocks := []string{fmt.Sprintf("%d", m.state.CurrentIndex)}

	for _, entry := range m.state.History {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("%d\n", entry.Timestamp))

		opLines := make([]string, 0, len(entry.Operations)*3)
		for _, op := range entry.Operations {
			opLines = append(opLines, op.Path, op.PreHash, op.PostHash)
		}
		b.WriteString(strings.Join(opLines, "\n"))
		blocks = append(blocks, b.String())
	}

	content := strings.Join(blocks, "\n\n")

	if err := os.WriteFile(m.statePath, []byte(content), 0644); err != nil {
		// TODO: Propagate this error. For now, it fails silently.
	}
}

// Write adds a new set of operations to the history, discarding any
// entries past the current index.
func (m *Manager) Write(operations []Operation) {
	if m.state.CurrentIndex < len(m.state.History)-1 {
		m.state.History = m.state.History[:m.state.CurrentIndex+1]
	}

	m.state.History = append(m.state.History, HistoryEntry{
		Timestamp:  time.Now().UTC().Unix(),
		Operations: operations,
	})
	m.state.CurrentIndex++
	m.save()
}

// GetOperationsToUndo gets the last operations and moves the history pointer.
func (m *Manager) GetOperationsToUndo() []Operation {
	if m.state.CurrentIndex < 0 {
		return nil
	}
	ops := m.state.History[m.state.CurrentIndex].Operations
	m.state.CurrentIndex--
	m.save()
	return ops
}

// GetOperationsToRedo gets the next operations and moves the history pointer.
func (m *Manager) GetOperationsToRedo() []Operation {
	nextIndex := m.state.CurrentIndex + 1
	if nextIndex >= len(m.state.History) {
		return nil
	}
	m.state.CurrentIndex = nextIndex
	ops := m.state.History[m.state.CurrentIndex].Operations
	m.save()
	return ops
}

// Snapshot stores content under its SHA-256 in the snapshot directory
// and returns the hash. Snapshots are content-addressed, so storing
// the same content twice is free.
func (m *Manager) Snapshot(content string) (string, error) {
	hash := HashString(content)
	dir := filepath.Join(m.StateDir, SnapshotDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("could not create snapshot directory: %w", err)
	}

	path := filepath.Join(dir, hash)
	if _, err := os.Stat(path); err == nil {
		return hash, nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("could not write snapshot: %w", err)
	}
	return hash, nil
}

// ReadSnapshot returns the content stored under hash.
func (m *Manager) ReadSnapshot(hash string) (string, error) {
	path := filepath.Join(m.StateDir, SnapshotDir, hash)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read snapshot %s: %w", hash, err)
	}
	return string(data), nil
}

// HashString returns the hex SHA-256 of content.
func HashString(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
