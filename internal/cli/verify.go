package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-reconcile/circuit"
	"github.com/forestrie/go-reconcile/reconcile"
)

// VerifyDedupOptions holds flags for the verify-dedup command.
type VerifyDedupOptions struct {
	*RootOptions
	Circuit bool
}

// NewVerifyDedupCommand creates the verify-dedup command.
func NewVerifyDedupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyDedupOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify-dedup <dedup-bundle>",
		Short: "Check a deduplication witness",
		Long: `Check that the deduplicated array of a bundle holds exactly the last write
of each position in the sorted array, as described by its run lengths.

The first violated invariant is reported and the command exits non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerifyDedup(opts, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.Circuit, "circuit", false, "also solve the dedup circuit for the witness")

	return cmd
}

func runVerifyDedup(opts *VerifyDedupOptions, path string, w io.Writer) error {
	codec, err := opts.codecFor(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	b, err := codec.DecodeDedup(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	hints, err := b.Hints()
	if err != nil {
		return err
	}

	if err := reconcile.VerifyDedupRuns(hints.Sorted, hints.Deduped, hints.RunLengths); err != nil {
		return fmt.Errorf("pass %s: %w", b.PassID, err)
	}
	runs := reconcile.ArrayLength(hints.Deduped)
	opts.Log.Infof("verified pass %s: capacity=%d runs=%d", b.PassID, len(hints.Sorted), runs)

	if opts.Circuit {
		if err := circuit.Solve(circuit.NewDedupCircuit(len(hints.Sorted)), circuit.DedupAssignment(hints)); err != nil {
			return fmt.Errorf("pass %s: dedup circuit: %w", b.PassID, err)
		}
		opts.Log.Infof("dedup circuit satisfied for pass %s", b.PassID)
	}

	_, err = fmt.Fprintf(w, "pass %s capacity %d writes %d runs %d ok\n",
		b.PassID, len(hints.Sorted), reconcile.ArrayLength(hints.Sorted), runs)
	return err
}
