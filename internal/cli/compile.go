package cli

import (
	"fmt"
	"io"

	"github.com/consensys/gnark/frontend"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-reconcile/circuit"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Capacity int
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the reconciliation circuits and report their size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&opts.Capacity, "capacity", 64, "array capacity")

	return cmd
}

func runCompile(opts *CompileOptions, w io.Writer) error {
	if opts.Capacity < 1 {
		return fmt.Errorf("capacity must be positive, got %d", opts.Capacity)
	}
	circuits := []struct {
		name string
		def  frontend.Circuit
	}{
		{"dedup", circuit.NewDedupCircuit(opts.Capacity)},
		{"order", circuit.NewOrderHintCircuit(opts.Capacity)},
	}
	for _, c := range circuits {
		_, stats, err := circuit.Compile(c.def)
		if err != nil {
			return fmt.Errorf("compiling %s circuit: %w", c.name, err)
		}
		opts.Log.Debugf("compiled %s circuit: %+v", c.name, stats)
		if _, err := fmt.Fprintf(w, "%s capacity %d constraints %d public %d secret %d\n",
			c.name, opts.Capacity, stats.Constraints, stats.PublicVariables, stats.SecretVariables); err != nil {
			return err
		}
	}
	return nil
}
