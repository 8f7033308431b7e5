// Package cli exposes the explorers and the block scanner on the command line.
package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/gabapcia/blockexplorer/internal/blockscan"
	"github.com/gabapcia/blockexplorer/internal/explorer"

	"github.com/urfave/cli/v3"
)

// Explorer is the multi-provider explorer of one chain.
type Explorer interface {
	GetBalance(ctx context.Context, address string) (explorer.Balance, error)
	GetBalances(ctx context.Context, addresses []string) ([]explorer.Balance, error)
	GetTxDetails(ctx context.Context, txHash string) ([]explorer.TransferTx, error)
	GetTxDetailsBatch(ctx context.Context, txHashes []string) (map[string][]explorer.TransferTx, error)
	GetAddressTxs(ctx context.Context, address string) ([]explorer.TransferTx, error)
	GetBlockTxs(ctx context.Context, height int64) ([]explorer.TransferTx, error)
	GetBatchBlockTxs(ctx context.Context, from, to int64) ([]explorer.TransferTx, error)
	GetBlockHead(ctx context.Context) (int64, error)
}

var _ Explorer = (*explorer.Explorer)(nil)

// Explorers returns the Explorer of chain.
type Explorers func(chain string) (Explorer, error)

// Run executes the blockexplorer CLI application with os.Args.
//
// Query commands print their result as JSON on stdout. The scan command runs
// until it receives SIGINT or SIGTERM.
func Run(ctx context.Context, explorers Explorers, scanner blockscan.Service) error {
	return newApp(explorers, scanner).Run(ctx, os.Args)
}

func newApp(explorers Explorers, scanner blockscan.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "blockexplorer",
		Description:           "Query balances, transactions and blocks through failover-aware blockchain explorers.",
		Usage:                 "blockexplorer [command] [flags]",
		Commands: []*cli.Command{
			balanceCommand(explorers),
			balancesCommand(explorers),
			txCommand(explorers),
			addressTxsCommand(explorers),
			blockTxsCommand(explorers),
			headCommand(explorers),
			scanCommand(scanner),
		},
	}
}

func chainFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "chain",
		Usage:    "Chain name as listed in the provider table (e.g., ethereum, solana)",
		Required: true,
	}
}

// printJSON writes v to the writer of the root command.
func printJSON(c *cli.Command, v any) error {
	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
