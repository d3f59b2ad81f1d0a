package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-reconcile/circuit"
	"github.com/forestrie/go-reconcile/reconcile"
)

// CombineOptions holds flags for the combine command.
type CombineOptions struct {
	*RootOptions
	Circuit bool
}

// NewCombineCommand creates the combine command.
func NewCombineCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CombineOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "combine <order-bundle>",
		Short: "Print the combined order hint layout for two effect arrays",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(opts, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.Circuit, "circuit", false, "also check the layout against the order hint circuit")

	return cmd
}

func runCombine(opts *CombineOptions, path string, w io.Writer) error {
	codec, err := opts.codecFor(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	b, err := codec.DecodeOrder(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	lt, gte, err := b.Effects()
	if err != nil {
		return err
	}

	hints, err := reconcile.CombineOrderHints(lt, gte)
	if err != nil {
		return err
	}
	p := reconcile.NewOrderPartition(lt, gte)
	opts.Log.Infof("combined pass %s: capacity=%d private=%d", b.PassID, len(hints), p.TotalPrivate())

	if opts.Circuit {
		if err := circuit.Solve(circuit.NewOrderHintCircuit(len(lt)), circuit.OrderHintAssignment(lt, gte, hints)); err != nil {
			return fmt.Errorf("order hint circuit: %w", err)
		}
		opts.Log.Infof("order hint circuit satisfied for pass %s", b.PassID)
	}

	return writeLayout(w, b.PassID.String(), p, hints)
}

func writeLayout(w io.Writer, passID string, p reconcile.OrderPartition, hints []reconcile.OrderHint) error {
	if _, err := fmt.Fprintf(w, "pass %s\ncapacity %d private_lt %d private_gte %d\nslot counter index\n",
		passID, len(hints), p.NumPrivateA, p.NumPrivateB); err != nil {
		return err
	}
	for i, h := range hints {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", i, h.Counter, h.OriginalIndex); err != nil {
			return err
		}
	}
	return nil
}
