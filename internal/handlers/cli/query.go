package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

// balanceCommand prints the balance of one address.
//
//	blockexplorer balance --chain ethereum --address 0xABC...
func balanceCommand(explorers Explorers) *cli.Command {
	return &cli.Command{
		Name:  "balance",
		Usage: "Prints the balance of an address.",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.StringFlag{Name: "address", Usage: "Address to look up", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			exp, err := explorers(c.String("chain"))
			if err != nil {
				return err
			}

			balance, err := exp.GetBalance(ctx, c.String("address"))
			if err != nil {
				return err
			}

			return printJSON(c, balance)
		},
	}
}

// balancesCommand prints the balances of several addresses, all read from the
// same provider.
//
//	blockexplorer balances --chain solana --address A --address B
func balancesCommand(explorers Explorers) *cli.Command {
	return &cli.Command{
		Name:  "balances",
		Usage: "Prints the balances of several addresses.",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.StringSliceFlag{Name: "address", Usage: "Address to look up, repeatable", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			exp, err := explorers(c.String("chain"))
			if err != nil {
				return err
			}

			balances, err := exp.GetBalances(ctx, c.StringSlice("address"))
			if err != nil {
				return err
			}

			return printJSON(c, balances)
		},
	}
}

// txCommand prints the transfers of one transaction, or of several keyed by hash.
//
//	blockexplorer tx --chain polkadot --hash 0x123...
func txCommand(explorers Explorers) *cli.Command {
	return &cli.Command{
		Name:  "tx",
		Usage: "Prints the transfers of one or more transactions.",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.StringSliceFlag{Name: "hash", Usage: "Transaction hash, repeatable", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			exp, err := explorers(c.String("chain"))
			if err != nil {
				return err
			}

			hashes := c.StringSlice("hash")
			if len(hashes) == 1 {
				txs, err := exp.GetTxDetails(ctx, hashes[0])
				if err != nil {
					return err
				}
				return printJSON(c, txs)
			}

			details, err := exp.GetTxDetailsBatch(ctx, hashes)
			if err != nil {
				return err
			}

			return printJSON(c, details)
		},
	}
}

// addressTxsCommand prints the recent transfers of an address.
func addressTxsCommand(explorers Explorers) *cli.Command {
	return &cli.Command{
		Name:  "address-txs",
		Usage: "Prints the recent transfers involving an address.",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.StringFlag{Name: "address", Usage: "Address to look up", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			exp, err := explorers(c.String("chain"))
			if err != nil {
				return err
			}

			txs, err := exp.GetAddressTxs(ctx, c.String("address"))
			if err != nil {
				return err
			}

			return printJSON(c, txs)
		},
	}
}

// blockTxsCommand prints the transfers of a block, or of the range
// [height, to] when --to is given.
//
//	blockexplorer block-txs --chain cardano --height 100 --to 110
func blockTxsCommand(explorers Explorers) *cli.Command {
	return &cli.Command{
		Name:  "block-txs",
		Usage: "Prints the transfers of a block or a block range.",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.Int64Flag{Name: "height", Usage: "Block height, first of the range with --to", Required: true},
			&cli.Int64Flag{Name: "to", Usage: "Last block of the range, inclusive"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			exp, err := explorers(c.String("chain"))
			if err != nil {
				return err
			}

			height := c.Int64("height")
			if !c.IsSet("to") {
				txs, err := exp.GetBlockTxs(ctx, height)
				if err != nil {
					return err
				}
				return printJSON(c, txs)
			}

			txs, err := exp.GetBatchBlockTxs(ctx, height, c.Int64("to"))
			if err != nil {
				return err
			}

			return printJSON(c, txs)
		},
	}
}

// headCommand prints the chain tip height.
func headCommand(explorers Explorers) *cli.Command {
	return &cli.Command{
		Name:  "head",
		Usage: "Prints the latest block height of a chain.",
		Flags: []cli.Flag{chainFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			exp, err := explorers(c.String("chain"))
			if err != nil {
				return err
			}

			head, err := exp.GetBlockHead(ctx)
			if err != nil {
				return err
			}

			return printJSON(c, map[string]int64{"head": head})
		},
	}
}
