package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bsharp-lang/diagsync"
	syncpkg "github.com/bsharp-lang/diagsync/pkg/sync"
)

var syncFlags struct {
	root         string
	catalogue    string
	reference    string
	fillOnly     bool
	prefix       string
	codeRange    string
	semanticOnly bool
	includeFile  string
	excludeFile  string
	dryRun       bool
}

// syncCmd represents the sync command.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the catalogue with the reference diagnostics",
	Long: `Sync extracts diagnostics from the Roslyn reference document, applies
the configured filters, and merges the result into the compliance
catalogue:

• Existing rows only gain Title and Meaning where those cells are blank;
  curated content is never overwritten.
• Codes the catalogue does not know yet are appended as new rows with the
  B# side left empty (unless --fill-only).

With --dry-run the catalogue is left untouched and a unified diff of the
pending changes is printed instead.`,
	Example: `  diagsync sync                                  # Full sync
  diagsync sync --dry-run                        # Preview changes
  diagsync sync --fill-only                      # Only backfill blank cells
  diagsync sync --range CS0100-CS0699            # Restrict to a code span
  diagsync sync --semantic-only --include keep.txt`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		result, err := diagsync.Sync(cmd.Context(), syncOptions()...)
		if err != nil {
			return err
		}

		if !result.Changed {
			fmt.Println("No changes.")
			return nil
		}

		if result.DryRun {
			syncpkg.WriteDiff(os.Stdout, result.Diff, !globalFlags.NoColor)
			return nil
		}

		if !globalFlags.Quiet {
			fmt.Printf("Updated %s: %d filled, %d appended\n",
				result.CataloguePath,
				len(result.Changes.Filled),
				len(result.Changes.Appended))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVar(&syncFlags.root, "root", "", "Project root directory (default \".\")")
	syncCmd.Flags().StringVar(&syncFlags.catalogue, "catalogue", "", "Catalogue file path (default \""+diagsync.DefaultCataloguePath+"\")")
	syncCmd.Flags().StringVar(&syncFlags.reference, "reference", "", "Reference document path (default \""+diagsync.DefaultReferencePath+"\")")
	syncCmd.Flags().BoolVar(&syncFlags.fillOnly, "fill-only", false, "Backfill blank cells only; never append rows")
	syncCmd.Flags().StringVar(&syncFlags.prefix, "prefix", "", "Keep only codes starting with this prefix")
	syncCmd.Flags().StringVar(&syncFlags.codeRange, "range", "", "Keep only codes in an inclusive span, e.g. CS0100-CS0199")
	syncCmd.Flags().BoolVar(&syncFlags.semanticOnly, "semantic-only", false, "Keep only semantic diagnostics (or force-included codes)")
	syncCmd.Flags().StringVar(&syncFlags.includeFile, "include", "", "Code list file of forced includes")
	syncCmd.Flags().StringVar(&syncFlags.excludeFile, "exclude", "", "Code list file of forced excludes")
	syncCmd.Flags().BoolVar(&syncFlags.dryRun, "dry-run", false, "Print a diff instead of writing the catalogue")
}

// syncOptions translates flags (with viper config fallbacks) into sync
// options.
func syncOptions() []diagsync.Option {
	root := syncFlags.root
	if root == "" {
		root = viper.GetString("root")
	}
	catalogue := syncFlags.catalogue
	if catalogue == "" {
		catalogue = viper.GetString("catalogue")
	}
	reference := syncFlags.reference
	if reference == "" {
		reference = viper.GetString("reference")
	}

	return []diagsync.Option{
		diagsync.WithRoot(root),
		diagsync.WithCataloguePath(catalogue),
		diagsync.WithReferencePath(reference),
		diagsync.WithFillOnly(syncFlags.fillOnly),
		diagsync.WithPrefix(syncFlags.prefix),
		diagsync.WithRange(syncFlags.codeRange),
		diagsync.WithSemanticOnly(syncFlags.semanticOnly),
		diagsync.WithIncludeFile(syncFlags.includeFile),
		diagsync.WithExcludeFile(syncFlags.excludeFile),
		diagsync.WithDryRun(syncFlags.dryRun),
	}
}
