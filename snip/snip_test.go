package snip_test

import (
	"os"
	"testing"

	"github.com/sokinpui/snip/cli"
	"github.com/sokinpui/snip/internal/document"
	"github.com/sokinpui/snip/snip"
)

const page = `export default function Page() {
  return (
    <div>
      <h1>Timing</h1>
      {/* Right Column: Optimization Results */}
      <div>
        <p>results</p>
      </div>
      </div>
      {/* Unified Forecast Bands Card - Full Width */}
      <div>
        <p>bands</p>
      </div>
      </div>
      <footer />
    </div>
  );
}
`

const strippedPage = `export default function Page() {
  return (
    <div>
      <h1>Timing</h1>
      <footer />
    </div>
  );
}
`

// chdirTemp runs the test in a fresh directory so the state directory
// and target files land there.
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

func writePage(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile("page.tsx", []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
}

func newApp(t *testing.T, cfg *cli.Config) *snip.App {
	t.Helper()
	app, err := snip.New(cfg)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	return app
}

func TestExecuteRemovesBothSections(t *testing.T) {
	chdirTemp(t)
	writePage(t, page)

	cfg := &cli.Config{
		Paths:    []string{"page.tsx"},
		Sections: []string{"results", "bands"},
	}
	summary, err := newApp(t, cfg).Execute()
	if err != nil {
		t.Fatal(err)
	}

	got, err := document.Load("page.tsx")
	if err != nil {
		t.Fatal(err)
	}
	if got != strippedPage {
		t.Errorf("stripped file mismatch:\ngot:\n%s\nwant:\n%s", got, strippedPage)
	}

	if len(summary.Modified) != 1 || summary.Modified[0] != "page.tsx" {
		t.Errorf("summary.Modified = %v, want [page.tsx]", summary.Modified)
	}
	if summary.Message != "Successfully removed both sections!" {
		t.Errorf("summary.Message = %q", summary.Message)
	}

	if len(summary.Reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(summary.Reports))
	}
	steps := summary.Reports[0].Steps
	if len(steps) != 3 {
		t.Fatalf("expected 3 report steps, got %d", len(steps))
	}
	if steps[0].Size != document.Size(page) {
		t.Errorf("original size = %d, want %d", steps[0].Size, document.Size(page))
	}
	if steps[2].Size != document.Size(strippedPage) {
		t.Errorf("final size = %d, want %d", steps[2].Size, document.Size(strippedPage))
	}
	if !(steps[0].Size > steps[1].Size && steps[1].Size > steps[2].Size) {
		t.Errorf("sizes did not decrease at each step: %v", steps)
	}
}

func TestExecuteWithoutMarkersIsANoOp(t *testing.T) {
	chdirTemp(t)
	writePage(t, strippedPage)

	cfg := &cli.Config{
		Paths:    []string{"page.tsx"},
		Sections: []string{"results", "bands"},
	}
	summary, err := newApp(t, cfg).Execute()
	if err != nil {
		t.Fatal(err)
	}

	got, err := document.Load("page.tsx")
	if err != nil {
		t.Fatal(err)
	}
	if got != strippedPage {
		t.Errorf("file changed: got %q, want %q", got, strippedPage)
	}

	if len(summary.Unchanged) != 1 {
		t.Errorf("summary.Unchanged = %v, want [page.tsx]", summary.Unchanged)
	}
	steps := summary.Reports[0].Steps
	for _, step := range steps {
		if step.Size != steps[0].Size {
			t.Errorf("reported sizes differ on an unchanged document: %v", steps)
		}
	}
}

func TestExecuteDryRun(t *testing.T) {
	chdirTemp(t)
	writePage(t, page)

	cfg := &cli.Config{
		Paths:    []string{"page.tsx"},
		Sections: []string{"results", "bands"},
		DryRun:   true,
	}
	summary, err := newApp(t, cfg).Execute()
	if err != nil {
		t.Fatal(err)
	}

	got, err := document.Load("page.tsx")
	if err != nil {
		t.Fatal(err)
	}
	if got != page {
		t.Error("dry run modified the file")
	}
	if len(summary.Modified) != 1 {
		t.Errorf("summary.Modified = %v, want the would-be change", summary.Modified)
	}
}

func TestExecuteMissingFileFails(t *testing.T) {
	chdirTemp(t)

	cfg := &cli.Config{
		Paths:    []string{"absent.tsx"},
		Sections: []string{"results"},
	}
	if _, err := newApp(t, cfg).Execute(); err == nil {
		t.Fatal("Execute succeeded on a missing file")
	}
}

func TestExecuteUnknownSectionFails(t *testing.T) {
	chdirTemp(t)

	cfg := &cli.Config{
		Paths:    []string{"page.tsx"},
		Sections: []string{"nope"},
	}
	if _, err := snip.New(cfg); err == nil {
		t.Fatal("New accepted an unknown section name")
	}
}

func TestUndoRedo(t *testing.T) {
	chdirTemp(t)
	writePage(t, page)

	run := &cli.Config{
		Paths:    []string{"page.tsx"},
		Sections: []string{"results", "bands"},
	}
	if _, err := newApp(t, run).Execute(); err != nil {
		t.Fatal(err)
	}

	if _, err := newApp(t, &cli.Config{Undo: true}).Execute(); err != nil {
		t.Fatal(err)
	}
	got, err := document.Load("page.tsx")
	if err != nil {
		t.Fatal(err)
	}
	if got != page {
		t.Errorf("undo did not restore the original:\ngot:\n%s\nwant:\n%s", got, page)
	}

	if _, err := newApp(t, &cli.Config{Redo: true}).Execute(); err != nil {
		t.Fatal(err)
	}
	got, err = document.Load("page.tsx")
	if err != nil {
		t.Fatal(err)
	}
	if got != strippedPage {
		t.Errorf("redo did not restore the stripped document:\ngot:\n%s\nwant:\n%s", got, strippedPage)
	}
}

func TestUndoRefusesChangedFile(t *testing.T) {
	chdirTemp(t)
	writePage(t, page)

	run := &cli.Config{
		Paths:    []string{"page.tsx"},
		Sections: []string{"results", "bands"},
	}
	if _, err := newApp(t, run).Execute(); err != nil {
		t.Fatal(err)
	}

	// Edit the file behind the tool's back.
	edited := strippedPage + "// local edit\n"
	writePage(t, edited)

	summary, err := newApp(t, &cli.Config{Undo: true}).Execute()
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Modified) != 0 {
		t.Errorf("undo touched a changed file: %v", summary.Modified)
	}

	got, err := document.Load("page.tsx")
	if err != nil {
		t.Fatal(err)
	}
	if got != edited {
		t.Error("undo overwrote a file that changed since the recorded run")
	}
}
