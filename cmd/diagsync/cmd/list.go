package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bsharp-lang/diagsync"
	"github.com/bsharp-lang/diagsync/internal/cmd/output"
	"github.com/bsharp-lang/diagsync/pkg/diagnostics"
	"github.com/bsharp-lang/diagsync/pkg/errors"
	"github.com/bsharp-lang/diagsync/pkg/filter"
)

var listFlags struct {
	root         string
	reference    string
	prefix       string
	codeRange    string
	semanticOnly bool
	includeFile  string
	excludeFile  string
}

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List reference diagnostics after filtering",
	Long: `List extracts diagnostics from the reference document, applies the
same filters as sync, and prints the surviving entries without touching
the catalogue. Output format is table on terminals and JSON when piped;
use -o to force table, json, or yaml.`,
	Example: `  diagsync list
  diagsync list --semantic-only -o yaml
  diagsync list --range CS0100-CS0199`,
	RunE: func(_ *cobra.Command, _ []string) error {
		root := listFlags.root
		if root == "" {
			root = viper.GetString("root")
		}
		if root == "" {
			root = "."
		}
		reference := listFlags.reference
		if reference == "" {
			reference = viper.GetString("reference")
		}
		if reference == "" {
			reference = diagsync.DefaultReferencePath
		}
		if !filepath.IsAbs(reference) {
			reference = filepath.Join(root, reference)
		}

		data, err := os.ReadFile(reference)
		if err != nil {
			return errors.WrapIO("read", reference, err)
		}

		cfg := filter.Config{
			Prefix:       listFlags.prefix,
			Range:        listFlags.codeRange,
			SemanticOnly: listFlags.semanticOnly,
		}
		if listFlags.includeFile != "" {
			if cfg.Include, err = diagnostics.LoadCodeSet(listFlags.includeFile); err != nil {
				return err
			}
		}
		if listFlags.excludeFile != "" {
			if cfg.Exclude, err = diagnostics.LoadCodeSet(listFlags.excludeFile); err != nil {
				return err
			}
		}

		entries := cfg.Apply(diagnostics.Extract(string(data)))

		format := output.DetectFormat(globalFlags.Output)
		formatter := output.NewFormatter(format)
		if format == output.FormatTable {
			return formatter.Format(os.Stdout, output.EntriesToTableData(entries))
		}
		return formatter.Format(os.Stdout, entries)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listFlags.root, "root", "", "Project root directory (default \".\")")
	listCmd.Flags().StringVar(&listFlags.reference, "reference", "", "Reference document path (default \""+diagsync.DefaultReferencePath+"\")")
	listCmd.Flags().StringVar(&listFlags.prefix, "prefix", "", "Keep only codes starting with this prefix")
	listCmd.Flags().StringVar(&listFlags.codeRange, "range", "", "Keep only codes in an inclusive span, e.g. CS0100-CS0199")
	listCmd.Flags().BoolVar(&listFlags.semanticOnly, "semantic-only", false, "Keep only semantic diagnostics (or force-included codes)")
	listCmd.Flags().StringVar(&listFlags.includeFile, "include", "", "Code list file of forced includes")
	listCmd.Flags().StringVar(&listFlags.excludeFile, "exclude", "", "Code list file of forced excludes")
}
