package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecstatic-morse/ksuid/internal/config"
	"github.com/ecstatic-morse/ksuid/pkg/ksuid"
	"github.com/ecstatic-morse/ksuid/pkg/log"
)

// NewGenerateCommand constructs the generate command.
func NewGenerateCommand(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate identifiers and print their Base62 form",
		Aliases: []string{"gen"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			return runGenerate(cmd, count)
		},
	}
	cmd.Flags().IntP("count", "n", cfg.Generate.Count, "Number of identifiers to generate")
	return cmd
}

// runGenerate prints count identifiers, one per line, to the command's
// stdout. Output is buffered so large counts do not pay a write per line.
func runGenerate(cmd *cobra.Command, count int) error {
	if count < 1 {
		return fmt.Errorf("--count must be >= 1, got %d", count)
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for i := 0; i < count; i++ {
		id, err := ksuid.Generate()
		if err != nil {
			logger := log.L()
			logger.Error().Err(err).Int("generated", i).Msg("generation failed")
			return err
		}
		if _, err := fmt.Fprintln(w, id.Base62()); err != nil {
			return err
		}
	}
	return w.Flush()
}
