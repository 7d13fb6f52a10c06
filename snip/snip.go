package snip

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/sokinpui/snip/cli"
	"github.com/sokinpui/snip/internal/document"
	"github.com/sokinpui/snip/internal/nvim"
	"github.com/sokinpui/snip/internal/remover"
	"github.com/sokinpui/snip/internal/source"
	"github.com/sokinpui/snip/internal/state"
	"github.com/sokinpui/snip/internal/ui"
	"github.com/sokinpui/snip/model"
)

// ProgressUpdate is a callback function to report progress.
type ProgressUpdate func(current, total int)

// App orchestrates the entire application logic.
type App struct {
	cfg              *cli.Config
	stateManager     *state.Manager
	sourceProvider   *source.Provider
	sections         []model.Section
	progressCallback ProgressUpdate
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// New creates a new App instance.
func New(cfg *cli.Config) (*App, error) {
	stateManager, err := state.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize state manager: %w", err)
	}

	sections, err := selectSections(cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:            cfg,
		stateManager:   stateManager,
		sourceProvider: source.New(),
		sections:       sections,
	}, nil
}

// SetProgressCallback sets a function to be called for progress updates.
func (a *App) SetProgressCallback(cb ProgressUpdate) {
	a.progressCallback = cb
}

// selectSections resolves the flags into an ordered descriptor list.
func selectSections(cfg *cli.Config) ([]model.Section, error) {
	if cfg.Start != "" {
		return []model.Section{{Name: "custom", Start: cfg.Start, End: cfg.End}}, nil
	}

	sections := make([]model.Section, 0, len(cfg.Sections))
	for _, name := range cfg.Sections {
		sec, ok := remover.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown section %q (built-in sections: %s)",
				name, strings.Join(remover.Names(), ", "))
		}
		sections = append(sections, sec)
	}
	return sections, nil
}

// Execute executes the main application logic based on parsed flags.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	switch {
	case a.cfg.Undo:
		return a.undoLastOperation()
	case a.cfg.Redo:
		return a.redoLastOperation()
	case a.cfg.Print:
		return a.stripFromSource()
	default:
		return a.processFiles()
	}
}

// processFiles applies the selected sections to each target file and
// persists the results. Any file error aborts the whole run.
func (a *App) processFiles() (model.Summary, error) {
	var summary model.Summary
	var ops []state.Operation

	total := len(a.cfg.Paths)
	if a.progressCallback != nil {
		a.progressCallback(0, total)
	}

	var manager *nvim.Manager
	if a.cfg.Buffer && !a.cfg.DryRun {
		var err error
		manager, err = nvim.New()
		if err != nil {
			return model.Summary{}, err
		}
		defer manager.Close()
	}

	for i, path := range a.cfg.Paths {
		report, op, err := a.processFile(path, manager)
		if err != nil {
			return model.Summary{}, err
		}

		summary.Reports = append(summary.Reports, report)
		if report.Changed {
			summary.Modified = append(summary.Modified, path)
		} else {
			summary.Unchanged = append(summary.Unchanged, path)
		}
		if op != nil {
			ops = append(ops, *op)
		}

		if a.progressCallback != nil {
			a.progressCallback(i+1, total)
		}
	}

	if len(ops) > 0 {
		a.stateManager.Write(ops)
	}
	summary.Message = a.closingMessage()
	return summary, nil
}

// closingMessage mirrors the report of the original one-shot script:
// it announces completion whether or not the markers were present.
func (a *App) closingMessage() string {
	if a.cfg.DryRun {
		return "Dry run: no files were written."
	}
	if len(a.sections) == 2 {
		return "Successfully removed both sections!"
	}
	return "Successfully removed the selected sections!"
}

// processFile strips one file and reports its size after each step.
// The returned operation is nil when nothing was written to disk.
func (a *App) processFile(path string, manager *nvim.Manager) (model.FileReport, *state.Operation, error) {
	original, err := document.Load(path)
	if err != nil {
		return model.FileReport{}, nil, err
	}

	report := model.FileReport{
		Path:  path,
		Steps: []model.Step{{Label: "original", Size: document.Size(original)}},
	}

	doc := a.strip(original, &report)
	report.Changed = doc != original
	if !report.Changed || a.cfg.DryRun {
		return report, nil, nil
	}

	if manager != nil {
		// Buffer mode: nothing touches the disk, so there is nothing
		// to record for undo.
		lines := strings.Split(doc, "\n")
		if err := manager.UpdateBuffer(path, lines); err != nil {
			return model.FileReport{}, nil, fmt.Errorf("failed to update buffer for %s: %w", path, err)
		}
		return report, nil, nil
	}

	preHash, err := a.stateManager.Snapshot(original)
	if err != nil {
		return model.FileReport{}, nil, err
	}
	postHash, err := a.stateManager.Snapshot(doc)
	if err != nil {
		return model.FileReport{}, nil, err
	}

	if err := document.Store(path, doc); err != nil {
		return model.FileReport{}, nil, err
	}

	return report, &state.Operation{Path: path, PreHash: preHash, PostHash: postHash}, nil
}

// strip applies each selected section to doc, appending one report
// step per section.
func (a *App) strip(doc string, report *model.FileReport) string {
	for _, sec := range a.sections {
		if a.cfg.All {
			doc, _ = remover.RemoveAll(doc, sec)
		} else {
			next, _, ok := remover.Remove(doc, sec)
			if !ok && remover.HasStart(doc, sec) {
				ui.Warning("Found the %s start marker but no end marker after it; leaving the document unchanged.", sec.Name)
			}
			doc = next
		}
		report.Steps = append(report.Steps, model.Step{
			Label: sec.Name,
			Size:  document.Size(doc),
		})
	}
	return doc
}

// stripFromSource reads the document from stdin or the clipboard,
// prints the stripped document to stdout, and reports to stderr.
func (a *App) stripFromSource() (model.Summary, error) {
	content, err := a.sourceProvider.GetContent()
	if err != nil {
		return model.Summary{}, err
	}
	if content == "" {
		return model.Summary{Message: "Source is empty. Nothing to process."}, nil
	}

	report := model.FileReport{
		Path:  "(stdin)",
		Steps: []model.Step{{Label: "original", Size: document.Size(content)}},
	}
	stripped := a.strip(content, &report)
	report.Changed = stripped != content

	fmt.Print(stripped)

	for i, step := range report.Steps {
		if i == 0 {
			ui.Info("Original size: %d characters", step.Size)
		} else {
			ui.Info("After removing %s: %d characters", step.Label, step.Size)
		}
	}
	return model.Summary{Reports: []model.FileReport{report}}, nil
}

// undoLastOperation restores the pre-run content of the files touched
// by the last run.
func (a *App) undoLastOperation() (model.Summary, error) {
	ops := a.stateManager.GetOperationsToUndo()
	if len(ops) == 0 {
		return model.Summary{Message: "No operation to undo."}, nil
	}

	restored, err := a.restore(ops, func(op state.Operation) (string, string) {
		return op.PostHash, op.PreHash
	})
	if err != nil {
		return model.Summary{}, err
	}
	return model.Summary{Modified: restored, Message: "Undid last operation."}, nil
}

// redoLastOperation re-applies the last undone run.
func (a *App) redoLastOperation() (model.Summary, error) {
	ops := a.stateManager.GetOperationsToRedo()
	if len(ops) == 0 {
		return model.Summary{Message: "No operation to redo."}, nil
	}

	restored, err := a.restore(ops, func(op state.Operation) (string, string) {
		return op.PreHash, op.PostHash
	})
	if err != nil {
		return model.Summary{}, err
	}
	return model.Summary{Modified: restored, Message: "Redid last undone operation."}, nil
}

// restore rewrites each file from its snapshot. pick returns the hash
// the file must currently have and the hash of the snapshot to write.
// Files that changed since the recorded run are left alone.
func (a *App) restore(ops []state.Operation, pick func(state.Operation) (expect, want string)) ([]string, error) {
	var restored []string

	total := len(ops)
	if a.progressCallback != nil {
		a.progressCallback(0, total)
	}

	for i, op := range ops {
		current, err := document.Load(op.Path)
		if err != nil {
			return nil, err
		}

		expect, want := pick(op)
		if state.HashString(current) != expect {
			ui.Warning("%s has changed since the recorded run; leaving it alone.", op.Path)
			continue
		}

		content, err := a.stateManager.ReadSnapshot(want)
		if err != nil {
			return nil, err
		}
		if err := document.Store(op.Path, content); err != nil {
			return nil, err
		}
		restored = append(restored, op.Path)

		if a.progressCallback != nil {
			a.progressCallback(i+1, total)
		}
	}
	return restored, nil
}
