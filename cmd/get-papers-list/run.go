// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/internal/output"
	"github.com/pdiddy/get-papers-list/internal/pipeline"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

func runQuery(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}
	return run(cmd.Context(), cfg, args[0], cmd.OutOrStdout(), os.Stderr)
}

// run executes one query and writes the results. Warnings go to stderr;
// stage tracing goes there too when cfg.Debug is set.
func run(ctx context.Context, cfg types.PipelineConfig, query string, stdout, stderr io.Writer) error {
	trace := io.Discard
	if cfg.Debug {
		trace = stderr
	}

	client := &http.Client{Timeout: cfg.HTTP.Timeout}
	p := pipeline.New(cfg, client, stderr, trace)

	res, err := p.Run(ctx, query)
	if err != nil {
		return err
	}

	if cfg.Output.Path == "" {
		return output.WriteConsole(stdout, res.Papers)
	}

	if err := output.WriteFile(cfg.Output.Path, res.Papers, cfg.Output.Format); err != nil {
		return err
	}
	if len(res.Papers) == 0 {
		fmt.Fprintln(stdout, "No papers found.")
		return nil
	}
	fmt.Fprintf(stdout, "Wrote %d paper(s) to %s\n", len(res.Papers), cfg.Output.Path)
	return nil
}
