package main

import (
	"github.com/urfave/cli/v2"
)

func chainIDFlag() cli.Flag {
	return &cli.Int64Flag{
		Name:  "chain-id",
		Usage: "Chain id of the network, the default chain of configurations is used if omitted",
	}
}

func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "Raffle"
	s.app.Usage = "Backend of the decentralized raffle"
	s.app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to the toml configuration file",
			Value:   "config.toml",
			EnvVars: []string{"RAFFLE_CONFIG"},
		},
	}
	s.app.Before = s.loadConfig
	s.app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Used for start service api, it serves raffles, tickets, claims, referrals and wallet login.`,
		},
		{
			Action: s.startMigrate,
			Name:   "migrate",
			Usage:  "Migrate the database",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "sql",
					Usage: "Apply the embedded postgres migrations instead of auto migration",
				},
			},
			Category: "Database",
		},
		{
			Action: s.startDeploy,
			Name:   "deploy",
			Usage:  "Deploy the raffle contract",
			Flags: []cli.Flag{
				chainIDFlag(),
				&cli.StringFlag{
					Name:     "artifact",
					Usage:    "Path to the compiled contract json of hardhat or foundry",
					Required: true,
				},
				&cli.StringFlag{
					Name:    "private-key",
					Usage:   "Hex private key of the deployer",
					EnvVars: []string{"DEPLOYER_PRIVATE_KEY"},
				},
				&cli.Uint64Flag{
					Name:  "subscription-id",
					Usage: "VRF subscription id, the one of network is used if omitted",
				},
				&cli.StringFlag{
					Name:  "payment-token",
					Usage: "ERC20 token used to buy tickets, the test token of network is used if omitted",
				},
			},
			Category:    "Contract",
			Description: `Used to deploy the raffle contract with the VRF parameters of the network.`,
		},
		{
			Action: s.startMint,
			Name:   "mint",
			Usage:  "Mint test tokens to the wallet",
			Flags: []cli.Flag{
				chainIDFlag(),
				&cli.StringFlag{
					Name:    "private-key",
					Usage:   "Hex private key of the wallet",
					EnvVars: []string{"WALLET_PRIVATE_KEY"},
				},
				&cli.StringFlag{
					Name:  "amount",
					Usage: "Amount in the smallest unit of token",
					Value: "1000000000000000000000",
				},
			},
			Category: "Contract",
		},
		{
			Action: s.startBuy,
			Name:   "buy",
			Usage:  "Buy tickets of a raffle",
			Flags: []cli.Flag{
				chainIDFlag(),
				&cli.StringFlag{
					Name:    "private-key",
					Usage:   "Hex private key of the wallet",
					EnvVars: []string{"WALLET_PRIVATE_KEY"},
				},
				&cli.Int64Flag{
					Name:     "raffle-id",
					Usage:    "Raffle id on contract",
					Required: true,
				},
				&cli.Int64Flag{
					Name:  "quantity",
					Usage: "Number of tickets",
					Value: 1,
				},
			},
			Category: "Contract",
		},
	}
}
