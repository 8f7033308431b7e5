package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gabapcia/blockexplorer/internal/blockscan"

	"github.com/urfave/cli/v3"
)

// scanCommand runs the block scanner and prints every non-empty cycle as one
// JSON document. The process runs until it receives SIGINT or SIGTERM.
//
//	blockexplorer scan
func scanCommand(scanner blockscan.Service) *cli.Command {
	return &cli.Command{
		Name:        "scan",
		Description: "Scans every configured chain block range by block range, resuming from the last checkpoint.",
		Usage:       "Runs the block scanner. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			results, err := scanner.Start(ctx)
			if err != nil {
				return err
			}
			defer scanner.Close()

			for {
				select {
				case <-ctx.Done():
					return nil
				case result, ok := <-results:
					if !ok {
						return nil
					}
					if err := printJSON(c, result); err != nil {
						return err
					}
				}
			}
		},
	}
}
