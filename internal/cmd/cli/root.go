package cli

import (
	"github.com/spf13/cobra"

	"github.com/ecstatic-morse/ksuid/internal/config"
)

// NewRoot constructs the root ksuid command. Running it bare generates
// identifiers, matching `ksuid generate`; the inspect command group is
// registered alongside.
func NewRoot(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "ksuid",
		Short: "Generate and inspect K-Sortable Unique IDentifiers",
		Long: "ksuid generates 20-byte K-Sortable Unique IDentifiers and prints their\n" +
			"27-character Base62 form, one per line. Identifiers sort chronologically\n" +
			"in both their binary and string encodings.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			return runGenerate(cmd, count)
		},
	}
	root.Flags().IntP("count", "n", cfg.Generate.Count, "Number of identifiers to generate")

	root.AddCommand(NewGenerateCommand(cfg))
	root.AddCommand(NewInspectCommand())
	return root
}
