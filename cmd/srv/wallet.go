package main

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/questx-lab/raffle/internal/model"
	"github.com/questx-lab/raffle/pkg/ethutil"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

// walletSession connects the wallet of the private key flag to the chain of the chain-id flag.
func (s *srv) walletSession(cctx *cli.Context) (model.WalletSession, *ecdsa.PrivateKey, error) {
	key, err := ethutil.ParsePrivateKey(cctx.String("private-key"))
	if err != nil {
		return model.WalletSession{}, nil, fmt.Errorf("invalid private key: %w", err)
	}

	session := model.WalletSession{
		Account: ethcrypto.PubkeyToAddress(key.PublicKey),
		ChainID: s.resolveChainID(cctx),
	}

	return session, key, nil
}

func (s *srv) startMint(cctx *cli.Context) error {
	session, key, err := s.walletSession(cctx)
	if err != nil {
		return err
	}

	amount, ok := new(big.Int).SetString(cctx.String("amount"), 10)
	if !ok || amount.Sign() <= 0 {
		return fmt.Errorf("invalid amount %q", cctx.String("amount"))
	}

	s.loadChainClient()
	tx, err := s.chainClient.MintTestToken(s.ctx, session, key, amount)
	if err != nil {
		return err
	}

	return s.waitTransaction(session, tx.Hash().Hex(), func(ctx context.Context, backend bind.DeployBackend) error {
		receipt, err := bind.WaitMined(ctx, backend, tx)
		if err != nil {
			return err
		}

		if receipt.Status == 0 {
			return fmt.Errorf("mint %s is reverted", tx.Hash().Hex())
		}

		return nil
	})
}

func (s *srv) startBuy(cctx *cli.Context) error {
	session, key, err := s.walletSession(cctx)
	if err != nil {
		return err
	}

	s.loadChainClient()
	tx, err := s.chainClient.BuyTicket(s.ctx, session, key, cctx.Int64("raffle-id"), cctx.Int64("quantity"))
	if err != nil {
		return err
	}

	return s.waitTransaction(session, tx.Hash().Hex(), func(ctx context.Context, backend bind.DeployBackend) error {
		receipt, err := bind.WaitMined(ctx, backend, tx)
		if err != nil {
			return err
		}

		if receipt.Status == 0 {
			return fmt.Errorf("purchase %s is reverted", tx.Hash().Hex())
		}

		return nil
	})
}

func (s *srv) waitTransaction(
	session model.WalletSession,
	hash string,
	wait func(context.Context, bind.DeployBackend) error,
) error {
	backend, n, err := s.chainClient.Backend(s.ctx, session.ChainID)
	if err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Sent transaction %s", n.TxURL(hash))

	ctx, cancel := context.WithTimeout(s.ctx, deployTimeout)
	defer cancel()
	if err := wait(ctx, backend); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Transaction %s is mined", hash)
	return nil
}
