package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// DefaultPath is the file the tool was written for: the timing page
// of the company view. It is used when no file argument is given.
const DefaultPath = "app/company/[ticker]/timing/page.tsx"

// Config holds all the command-line flag values.
type Config struct {
	Paths       []string
	Sections    []string
	Start       string
	End         string
	All         bool
	DryRun      bool
	Print       bool
	Buffer      bool
	Undo        bool
	Redo        bool
	NoAnimation bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// Define flags
	pflag.StringSliceVarP(&cfg.Sections, "section", "s", []string{"results", "bands"}, "Built-in sections to remove, in order (results, bands).")
	pflag.StringVar(&cfg.Start, "start", "", "Start marker of a custom section (requires --end).")
	pflag.StringVar(&cfg.End, "end", "", "End marker of a custom section (requires --start).")
	pflag.BoolVarP(&cfg.All, "all", "a", false, "Remove every occurrence of each section, not only the first.")
	pflag.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Report sizes without writing any file.")
	pflag.BoolVarP(&cfg.Print, "print", "p", false, "Read the document from stdin (pipe) or clipboard and print the result.")
	pflag.BoolVarP(&cfg.Buffer, "buffer", "b", false, "Update buffers in Neovim without saving them to disk.")
	pflag.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable the spinner and print a plain report.")

	// Mutually exclusive history group
	pflag.BoolVarP(&cfg.Undo, "undo", "u", false, "Undo the last operation.")
	pflag.BoolVarP(&cfg.Redo, "redo", "r", false, "Redo the last undone operation.")

	pflag.Usage = func() {
		fmt.Println("Usage: snip [flags] [file...]")
		fmt.Println("\nRemove marker-delimited sections from markup files.")
		fmt.Println("\nExample: snip -s results app/company/[ticker]/timing/page.tsx")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	// Validate mutually exclusive flags
	if cfg.Undo && cfg.Redo {
		return nil, fmt.Errorf("error: --undo and --redo are mutually exclusive")
	}
	if (cfg.Start == "") != (cfg.End == "") {
		return nil, fmt.Errorf("error: --start and --end must be given together")
	}

	cfg.Paths = pflag.Args()
	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{DefaultPath}
	}

	return cfg, nil
}
