package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/spf13/cobra"

	"github.com/davidMuir/clean-deps/internal/clean"
	"github.com/davidMuir/clean-deps/internal/scan"
	"github.com/davidMuir/clean-deps/internal/ui"
)

var (
	// Global flags
	deleteFlag   bool
	languageFlag string
	sizeFlag     bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "clean-deps [path]",
	Short: "Find and remove dependency directories",
	Long: `clean-deps - Find and remove build dependency directories.

Scans a directory tree for the dependency artifacts of a chosen
ecosystem (node_modules, target, bin, obj) and lists them, or
removes them with --delete.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		language, err := scan.ParseLanguage(languageFlag)
		if err != nil {
			return err
		}

		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("resolve path %q: %w", root, err)
		}
		info, err := os.Stat(absRoot)
		if err != nil {
			return fmt.Errorf("invalid path %q: %w", root, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("invalid path %q: not a directory", root)
		}

		opts := scanOptions{
			fs:       osfs.New(absRoot),
			root:     absRoot,
			language: language,
			delete:   deleteFlag,
			showSize: sizeFlag,
		}
		return runScan(opts, os.Stdout, os.Stderr)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clean-deps %s (%s) built %s\n", appVersion, appCommit, appDate)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVarP(&deleteFlag, "delete", "d", false, "Remove matched directories instead of listing them")
	rootCmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Ecosystem to clean: dotnet, javascript or rust")
	rootCmd.Flags().BoolVarP(&sizeFlag, "size", "s", false, "Show per-directory sizes and a total")
	_ = rootCmd.MarkFlagRequired("language")

	rootCmd.AddCommand(versionCmd)
}

// scanOptions carries everything one scan invocation needs. The filesystem is
// chrooted at root, so match paths come back relative to it.
type scanOptions struct {
	fs       billy.Filesystem
	root     string // absolute OS path of the scan root, for display
	language scan.Language
	delete   bool
	showSize bool
}

// runScan walks the tree, prints matches, and optionally removes them.
// Recoverable problems go to stderr; only an unreadable root is fatal.
func runScan(opts scanOptions, stdout, stderr io.Writer) error {
	scanner := scan.NewScanner(opts.fs, opts.language)
	matches, err := scanner.Scan("/")
	if err != nil {
		return err
	}

	if opts.showSize {
		printSized(opts, matches, stdout)
	} else if !opts.delete {
		for _, m := range matches {
			fmt.Fprintln(stdout, displayPath(opts.root, m.Path))
		}
	}

	if opts.delete {
		deleteMatches(opts, matches, stdout, stderr)
	}

	for _, w := range scanner.Warnings() {
		fmt.Fprintln(stderr, "warning:", w)
	}

	return nil
}

// printSized renders the decorated listing: tag, truncated path, size,
// ending with a total line. Matches arrive sorted by size descending.
func printSized(opts scanOptions, matches []scan.Match, stdout io.Writer) {
	var total int64
	for _, m := range matches {
		path := ui.TruncatePath(displayPath(opts.root, m.Path), 40)
		fmt.Fprintf(stdout, "%-10s %-45s\t%s\n", ui.LanguageTag(m.Language), path, ui.FormatSize(m.Size))
		total += m.Size
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Total size:", ui.FormatSize(total))
}

// deleteMatches removes every match, reporting each outcome as it happens.
// A failed removal is reported and the loop continues with the next match.
func deleteMatches(opts scanOptions, matches []scan.Match, stdout, stderr io.Writer) {
	if opts.showSize {
		fmt.Fprintln(stdout)
	}
	fmt.Fprintln(stdout, "Removing dependencies:")

	remover := clean.NewRemover(opts.fs)
	var freed int64
	for _, m := range matches {
		path := ui.TruncatePath(displayPath(opts.root, m.Path), 60)
		switch res := remover.Remove(m); {
		case res.Err != nil:
			fmt.Fprintf(stderr, "error: %v\n", res.Err)
		case res.Skipped:
			fmt.Fprintln(stdout, "Skipping empty:", path)
		default:
			fmt.Fprintln(stdout, "Removing", path)
			freed += res.Freed
		}
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Freed:", ui.FormatSize(freed))

	// Best-effort: the volume stat can fail on exotic mounts, and the
	// summary is informational only.
	if usage, err := disk.Usage(opts.root); err == nil {
		fmt.Fprintln(stdout, "Free space on volume:", ui.FormatSize(int64(usage.Free)))
	}
}

// displayPath converts a match path (slash-separated, relative to the scan
// root) back into an absolute OS path for display.
func displayPath(root, match string) string {
	return filepath.Join(root, filepath.FromSlash(match))
}
