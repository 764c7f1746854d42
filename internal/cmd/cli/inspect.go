package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecstatic-morse/ksuid/pkg/ksuid"
)

// NewInspectCommand constructs the inspect command. Each argument is parsed
// by length: 40 characters means hex, 27 means Base62.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>...",
		Short: "Decode identifiers and print their components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				id, err := parseAny(arg)
				if err != nil {
					return fmt.Errorf("inspect %q: %w", arg, err)
				}
				printInspect(cmd, id)
			}
			return nil
		},
	}
}

// parseAny dispatches on input length to the matching decoder.
func parseAny(s string) (ksuid.KSUID, error) {
	switch len(s) {
	case ksuid.HexLen:
		return ksuid.FromHex(s)
	case ksuid.Base62Len:
		return ksuid.FromBase62(s)
	default:
		return ksuid.KSUID{}, fmt.Errorf("%w: want %d (Base62) or %d (hex) characters, got %d",
			ksuid.ErrInvalidLength, ksuid.Base62Len, ksuid.HexLen, len(s))
	}
}

// printInspect writes the representation and component blocks for one
// identifier.
func printInspect(cmd *cobra.Command, id ksuid.KSUID) {
	hex := id.Hex()
	fmt.Fprintf(cmd.OutOrStdout(), `
REPRESENTATION:

  String: %v
     Raw: %v

COMPONENTS:

       Time: %v
  Timestamp: %v
    Payload: %v

`,
		id.Base62(),
		hex,
		id.Time().UTC().Format("Mon, 02 Jan 2006 15:04:05 MST"),
		id.Timestamp(),
		hex[8:])
}
