package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-curl/internal/batch"
)

func newImportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Parse every curl command in a file",
		Long: `Parses a file of saved curl commands concurrently and prints one entry per
command, in file order. Commands are separated by blank lines, comment
lines starting with '#', or a new line starting with "curl". Reads stdin
when the file is omitted or "-".

Exits non-zero when any command fails to parse; the other entries are
still printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open commands file: %w", err)
				}
				defer f.Close()
				in = f
			}

			im := batch.NewImporter(batch.Options{
				Workers: a.cfg.Workers,
				Strict:  a.cfg.Strict,
				Logger:  a.logger,
			})
			entries, err := im.ImportReader(cmd.Context(), in)
			if err != nil {
				return err
			}

			if err := writeEntries(cmd.OutOrStdout(), a.cfg.Format, entries); err != nil {
				return err
			}
			if _, failed := batch.Summarize(entries); failed > 0 {
				return fmt.Errorf("%d of %d commands failed to parse", failed, len(entries))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&a.workers, "workers", "w", 0, "parallel parses (default from config)")
	return cmd
}
