package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bsharp-lang/diagsync"
	"github.com/bsharp-lang/diagsync/internal/report"
	"github.com/bsharp-lang/diagsync/pkg/catalog"
	"github.com/bsharp-lang/diagsync/pkg/errors"
)

var reportFlags struct {
	root       string
	catalogue  string
	outputFile string
}

// reportCmd represents the report command.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a markdown coverage report of the catalogue",
	Long: `Report summarizes the compliance catalogue: how many diagnostics are
catalogued, how many map to B# rules, a per-status breakdown, and the
codes still missing a mapping or a title. The report is markdown, printed
to stdout or written with --output-file.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		root := reportFlags.root
		if root == "" {
			root = viper.GetString("root")
		}
		if root == "" {
			root = "."
		}
		catalogue := reportFlags.catalogue
		if catalogue == "" {
			catalogue = viper.GetString("catalogue")
		}
		if catalogue == "" {
			catalogue = diagsync.DefaultCataloguePath
		}
		if !filepath.IsAbs(catalogue) {
			catalogue = filepath.Join(root, catalogue)
		}

		data, err := os.ReadFile(catalogue)
		if err != nil {
			return errors.WrapIO("read", catalogue, err)
		}
		doc := catalog.Parse(string(data))

		if reportFlags.outputFile == "" {
			return report.Generate(os.Stdout, doc)
		}

		f, err := os.Create(reportFlags.outputFile)
		if err != nil {
			return errors.WrapIO("create", reportFlags.outputFile, err)
		}
		defer func() { _ = f.Close() }()
		return report.Generate(f, doc)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportFlags.root, "root", "", "Project root directory (default \".\")")
	reportCmd.Flags().StringVar(&reportFlags.catalogue, "catalogue", "", "Catalogue file path (default \""+diagsync.DefaultCataloguePath+"\")")
	reportCmd.Flags().StringVar(&reportFlags.outputFile, "output-file", "", "Write the report to a file instead of stdout")
}
