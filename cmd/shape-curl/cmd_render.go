package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/shapestone/shape-curl/pkg/curl"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Print saved requests as curl commands",
		Long: `Reads requests written with --format ast, either one object or the list
that "import --format ast" prints, and prints each as a canonical curl
command. Failed import entries are skipped. Reads stdin when the file is
omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open requests file: %w", err)
				}
				defer f.Close()
				in = f
			}

			var doc any
			if err := yaml.NewDecoder(in).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("failed to decode requests: %w", err)
			}

			var items []any
			switch v := doc.(type) {
			case map[string]any:
				items = []any{v}
			case []any:
				items = v
			case nil:
			default:
				return fmt.Errorf("expected an object or a list, got %T", doc)
			}

			for i, item := range items {
				m, ok := item.(map[string]any)
				if !ok {
					return fmt.Errorf("item %d: expected an object, got %T", i, item)
				}
				if _, failed := m["error"]; failed {
					a.logger.Debug("skipping failed entry", zap.Any("line", m["line"]))
					continue
				}
				req, err := curl.FromMap(m)
				if err != nil {
					return fmt.Errorf("item %d: %w", i, err)
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), curl.Render(req)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
