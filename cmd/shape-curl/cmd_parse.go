package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shapestone/shape-curl/pkg/curl"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [command]",
		Short: "Parse a single curl command",
		Long: `Parses one curl command and prints the request it describes.

The command is taken from the arguments, or from stdin when none are given.
Quote it as a single argument to keep its own quoting intact:

  shape-curl parse 'curl -X POST -d "{\"a\":1}" https://api.example.com/items'
  pbpaste | shape-curl parse --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				req *curl.ParsedRequest
				err error
			)
			opts := curl.Options{Strict: a.cfg.Strict}
			if len(args) > 0 {
				req, err = curl.ParseWithOptions(strings.Join(args, " "), opts)
			} else {
				req, err = curl.ParseReaderWithOptions(cmd.InOrStdin(), opts)
			}
			if err != nil {
				a.logger.Debug("parse failed", zap.Error(err))
				return err
			}

			for _, w := range req.Warnings {
				a.logger.Warn("curl command", zap.String("warning", w))
			}
			return writeRequest(cmd.OutOrStdout(), a.cfg.Format, req)
		},
	}
}
