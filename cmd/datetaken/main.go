package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quidome/datetaken-go/pkg/datefmt"
	"github.com/quidome/datetaken-go/pkg/datetaken"
	"github.com/quidome/datetaken-go/pkg/rename"
	"github.com/quidome/datetaken-go/pkg/scan"
)

const version = "0.1.0"

type options struct {
	verbose bool
	dryRun  bool
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "datetaken",
		Short:   "A CLI tool to rename pictures to the date they were taken",
		Long:    "Datetaken is a command-line tool that batch-renames image files to the earliest of their EXIF date taken, filesystem creation time and filesystem modification time.",
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("Datetaken CLI")
			cmd.Printf("Version: %s\n", version)
			if opts.verbose {
				cmd.Println("Verbose mode: enabled")
			}
			if opts.dryRun {
				cmd.Println("Dry run mode: enabled")
			}
			cmd.Println("")
			cmd.Println("Use --help to see available commands and options")
		},
	}

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "perform a dry run without making changes")

	rootCmd.AddCommand(newRenameCmd(opts))
	rootCmd.AddCommand(newScanCmd(opts))

	return rootCmd
}

func newRenameCmd(opts *options) *cobra.Command {
	var (
		pattern     string
		maxDepth    int
		useExiftool bool
	)

	renameCmd := &cobra.Command{
		Use:   "rename [directory]",
		Short: "Rename images in a directory to their resolved date",
		Long: `Rename every image under a directory to the earliest of its EXIF
DateTimeOriginal, creation time and modification time, formatted with the
--format pattern (strftime-style tokens). Names already in use gain a " (N)"
suffix. There is no way to undo the renames, so preview with --dry-run first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory := args[0]

			if err := datefmt.Validate(pattern); err != nil {
				return err
			}

			scanOpts := scan.DefaultOptions()
			scanOpts.MaxDepth = maxDepth

			records, err := scan.ScanRecords(os.DirFS(directory), ".", scanOpts)
			if err != nil {
				return err
			}

			resolveOpts := datetaken.Options{Pattern: pattern}
			if useExiftool {
				tool := datetaken.NewToolExtractor(directory)
				defer tool.Close()
				resolveOpts.Metadata = datetaken.Fallback{datetaken.ExifExtractor{}, tool}
			}

			engine := rename.New(rename.Options{
				DryRun: opts.dryRun,
				Notify: func(oldName, newName string) {
					cmd.Printf("%s -> %s\n", oldName, newName)
				},
			})

			failed := renameAll(cmd, directory, records, resolveOpts, engine)

			if opts.verbose {
				cmd.PrintErrf("processed %d images, %d failed\n", len(records), failed)
			}
			if opts.dryRun {
				cmd.Println("dry run: no files were renamed")
			}

			return nil
		},
	}

	renameCmd.Flags().StringVarP(&pattern, "format", "f", datefmt.Default, "strftime-style pattern for new names")
	renameCmd.Flags().IntVar(&maxDepth, "max-depth", -1, "maximum recursion depth (0 = no recursion)")
	renameCmd.Flags().BoolVar(&useExiftool, "exiftool", false, "fall back to an external exiftool process for metadata")

	return renameCmd
}

// renameAll processes the batch one file at a time. A failure on one file is
// reported and does not halt the rest.
func renameAll(cmd *cobra.Command, directory string, records []scan.Record, resolveOpts datetaken.Options, engine *rename.Engine) (failed int) {
	fsys := os.DirFS(directory)

	for _, rec := range records {
		res, err := datetaken.Resolve(fsys, rec.Path, resolveOpts)
		if err != nil {
			cmd.PrintErrf("%s: %v\n", rec.Path, err)
			failed++
			continue
		}

		f := rename.NewFile(filepath.Join(directory, filepath.FromSlash(rec.Path)))
		if _, err := engine.Rename(f, res.Name); err != nil {
			cmd.PrintErrf("%s: %v\n", rec.Path, err)
			failed++
		}
	}

	return failed
}

func newScanCmd(opts *options) *cobra.Command {
	var maxDepth int

	scanCmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Scan a directory for image files",
		Long:  "Scan a directory and print all image files found (relative to the scan root). Files are detected by content signature, not extension.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory := args[0]

			scanOpts := scan.DefaultOptions()
			scanOpts.MaxDepth = maxDepth

			records, err := scan.ScanRecords(os.DirFS(directory), ".", scanOpts)
			if err != nil {
				return err
			}

			for _, rec := range records {
				if opts.verbose {
					cmd.Printf("%s (%s)\n", rec.Path, rec.Type)
				} else {
					cmd.Println(rec.Path)
				}
			}

			if opts.verbose {
				cmd.PrintErrf("found %d image files\n", len(records))
			}

			return nil
		},
	}

	scanCmd.Flags().IntVar(&maxDepth, "max-depth", -1, "maximum recursion depth (0 = no recursion)")

	return scanCmd
}
