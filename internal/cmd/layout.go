package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	oerrors "github.com/smartclimate/scaffold/internal/errors"
	"github.com/smartclimate/scaffold/internal/layout"
	"github.com/smartclimate/scaffold/internal/output"
)

// NewLayoutCmd creates the layout command.
func NewLayoutCmd() *cobra.Command {
	var (
		format string
		match  string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show the planned project layout",
		Long: `Show every file the generator writes, with the pass that decides its
final content. Nothing is written to disk.

Origins:
  base      empty file from the base layout
  extended  extended module; shell scripts carry a placeholder body
  payload   literal starter content

Examples:
  # Draw the layout as a tree
  scaffold layout

  # Only Python sources under src/
  scaffold layout --match 'src/**/*.py'

  # Machine-readable manifest
  scaffold layout -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runLayout(cmd, format, match); err != nil {
				return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "tree",
		"Output format: "+strings.Join(output.ValidFormats(), ", "))
	cmd.Flags().StringVar(&match, "match", "", "Only show paths matching a glob (supports **)")

	return cmd
}

func runLayout(cmd *cobra.Command, formatFlag, match string) error {
	format, ok := output.ParseFormat(formatFlag)
	if !ok {
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", formatFlag), "", "output",
			"Valid formats: "+strings.Join(output.ValidFormats(), ", "))
	}

	manifest := layout.BuildManifest()

	if match != "" {
		if !doublestar.ValidatePattern(match) {
			return oerrors.NewValidationError(
				fmt.Sprintf("invalid pattern %q", match), "", "match",
				"Patterns use doublestar syntax, e.g. 'src/**/*.py'.")
		}
		manifest = manifest.Filter(func(p string) bool {
			ok, _ := doublestar.Match(match, p)
			return ok
		})
		output.Debug("filtered layout", "pattern", match, "files", len(manifest.Entries))
		if len(manifest.Entries) == 0 {
			return oerrors.NewNotFoundError(
				fmt.Sprintf("no layout paths match %q", match), "",
				"Run 'scaffold layout' to list every path.")
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case output.FormatTree:
		fmt.Fprint(out, output.RenderFileTree(manifest.Project, treeEntries(manifest)))
	case output.FormatTable:
		tbl := output.NewTable("PATH", "ORIGIN", "MODE", "SIZE")
		for _, e := range manifest.Entries {
			tbl.Row(e.Path, string(e.Origin), fileMode(e), strconv.Itoa(e.Size))
		}
		fmt.Fprintln(out, tbl.String())
	default:
		return output.WriteDocument(out, manifest, format)
	}

	return nil
}

func treeEntries(m layout.Manifest) []output.TreeEntry {
	entries := make([]output.TreeEntry, 0, len(m.Entries))
	for _, e := range m.Entries {
		entries = append(entries, output.TreeEntry{
			Path:        e.Path,
			Description: string(e.Origin),
			Executable:  e.Executable,
		})
	}
	return entries
}

func fileMode(e layout.ManifestEntry) string {
	if e.Executable {
		return "0755"
	}
	return "0644"
}
