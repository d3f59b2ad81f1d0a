package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-reconcile/reconcile"
	"github.com/forestrie/go-reconcile/witness"
)

// BuildDedupOptions holds flags for the build-dedup command.
type BuildDedupOptions struct {
	*RootOptions
	Output string
}

// NewBuildDedupCommand creates the build-dedup command.
func NewBuildDedupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildDedupOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build-dedup <write-set>",
		Short: "Build the deduplication witness for a set of storage writes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildDedup(opts, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path, stdout when empty")

	return cmd
}

func runBuildDedup(opts *BuildDedupOptions, path string, w io.Writer) error {
	in, err := opts.codecFor(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	set, err := in.DecodeWrites(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	writes, err := set.StorageWrites()
	if err != nil {
		return err
	}

	hints, err := reconcile.BuildDedupRuns(writes)
	if err != nil {
		return fmt.Errorf("pass %s: %w", set.PassID, err)
	}
	b := witness.NewDedupBundle(hints)
	b.PassID = set.PassID

	out, err := opts.codecFor(opts.Output)
	if err != nil {
		return err
	}
	encoded, err := out.EncodeDedup(b)
	if err != nil {
		return err
	}
	opts.Log.Infof("built pass %s: capacity=%d runs=%d format=%s",
		b.PassID, len(hints.Sorted), reconcile.ArrayLength(hints.Deduped), out.Format())

	if opts.Output == "" {
		_, err = w.Write(encoded)
		return err
	}
	return os.WriteFile(opts.Output, encoded, 0o644)
}
