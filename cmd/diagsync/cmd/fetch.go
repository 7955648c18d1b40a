package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bsharp-lang/diagsync"
	"github.com/bsharp-lang/diagsync/internal/fetch"
)

var fetchFlags struct {
	root      string
	reference string
	url       string
}

// fetchCmd represents the fetch command.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the Roslyn diagnostics reference document",
	Long: `Fetch downloads the scraped Roslyn compiler message reference and saves
it to the reference document path, ready for sync and list. The download
goes through a temp file, so an interrupted fetch never corrupts an
existing reference.`,
	Example: `  diagsync fetch
  diagsync fetch --url https://example.org/compiler-messages.md`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		root := fetchFlags.root
		if root == "" {
			root = viper.GetString("root")
		}
		if root == "" {
			root = "."
		}
		reference := fetchFlags.reference
		if reference == "" {
			reference = viper.GetString("reference")
		}
		if reference == "" {
			reference = diagsync.DefaultReferencePath
		}
		if !filepath.IsAbs(reference) {
			reference = filepath.Join(root, reference)
		}

		url := fetchFlags.url
		if url == "" {
			url = viper.GetString("url")
		}

		return fetch.NewClient(url).Download(cmd.Context(), reference)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchFlags.root, "root", "", "Project root directory (default \".\")")
	fetchCmd.Flags().StringVar(&fetchFlags.reference, "reference", "", "Reference document path (default \""+diagsync.DefaultReferencePath+"\")")
	fetchCmd.Flags().StringVar(&fetchFlags.url, "url", "", "Reference document URL (default Roslyn compiler messages)")
}
