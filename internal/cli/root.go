package cli

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-reconcile/witness"
)

const serviceName = "reconcile"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel string
	Format   string // "cbor" | "yaml", empty picks from the file extension

	Log logger.Logger
}

// ValidFormats defines the allowed witness formats.
var ValidFormats = []string{"", string(witness.FormatCBOR), string(witness.FormatYAML)}

// NewRootCommand creates the root command for the reconcile CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Build and check side-effect reconciliation witnesses",
		Long: `Build and check the witnesses used to reconcile fixed capacity side-effect
arrays: combined order hints for two partitions and deduplication runs for
storage writes. Every check runs natively and, on request, as a circuit.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be cbor or yaml", opts.Format)
			}
			logger.New(opts.LogLevel)
			opts.Log = logger.Sugar.WithServiceName(serviceName)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "INFO", "log level (DEBUG|INFO|WARN|ERROR|NOOP)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "witness format (cbor|yaml), defaults from the file extension")

	cmd.AddCommand(NewCombineCommand(opts))
	cmd.AddCommand(NewVerifyDedupCommand(opts))
	cmd.AddCommand(NewBuildDedupCommand(opts))
	cmd.AddCommand(NewCompileCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// codecFor returns the codec for path, honouring an explicit --format.
func (o *RootOptions) codecFor(path string) (*witness.Codec, error) {
	format := witness.Format(o.Format)
	if format == "" {
		format = witness.FormatFromPath(path)
	}
	return witness.NewCodec(witness.WithFormat(format), witness.WithLogger(o.Log))
}
