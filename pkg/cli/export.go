package cli

import (
	"context"
	"os"

	"github.com/healthy-campus/hurs/pkg/cli/config"
	"github.com/healthy-campus/hurs/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var (
		storageCfg config.Storage
		output     string
	)

	flags := joinFlags(
		storageCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file path (stdout if not set)",
				Destination: &output,
			},
		},
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Export the full score table as CSV",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			store, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			data, err := usecase.NewReport(store).Export(ctx)
			if err != nil {
				return err
			}

			if output == "" {
				if _, err := os.Stdout.Write(data); err != nil {
					return goerr.Wrap(err, "failed to write export to stdout")
				}
				return nil
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write export file",
					goerr.V("path", output))
			}

			ctxlog.From(ctx).Info("Score table exported", "path", output, "bytes", len(data))
			return nil
		},
	}
}
