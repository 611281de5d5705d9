package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/questx-lab/raffle/contract/raffle"
	"github.com/questx-lab/raffle/pkg/ethutil"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
)

const deployTimeout = 5 * time.Minute

// contractArtifact is the compiled output of hardhat (bytecode is a string) or foundry (bytecode
// is an object with the hex in its "object" field).
type contractArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode json.RawMessage `json:"bytecode"`
}

func loadArtifact(path string) (abi.ABI, []byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return abi.ABI{}, nil, err
	}

	var artifact contractArtifact
	if err := json.Unmarshal(b, &artifact); err != nil {
		return abi.ABI{}, nil, fmt.Errorf("invalid artifact: %w", err)
	}

	parsed, err := abi.JSON(strings.NewReader(string(artifact.ABI)))
	if err != nil {
		return abi.ABI{}, nil, fmt.Errorf("invalid abi of artifact: %w", err)
	}

	var hexBytecode string
	if err := json.Unmarshal(artifact.Bytecode, &hexBytecode); err != nil {
		var foundryBytecode struct {
			Object string `json:"object"`
		}

		if err := json.Unmarshal(artifact.Bytecode, &foundryBytecode); err != nil {
			return abi.ABI{}, nil, errors.New("unknown bytecode format")
		}

		hexBytecode = foundryBytecode.Object
	}

	if !strings.HasPrefix(hexBytecode, "0x") {
		hexBytecode = "0x" + hexBytecode
	}

	bytecode, err := hexutil.Decode(hexBytecode)
	if err != nil {
		return abi.ABI{}, nil, fmt.Errorf("invalid bytecode: %w", err)
	}

	if len(bytecode) == 0 {
		return abi.ABI{}, nil, errors.New("empty bytecode, the artifact may be an interface")
	}

	return parsed, bytecode, nil
}

// checkRaffleABI ensures the artifact is compiled from the raffle contract, so the binding can
// interact with the deployed contract.
func checkRaffleABI(parsed abi.ABI) error {
	expected, err := raffle.ParseRaffleABI()
	if err != nil {
		return err
	}

	for name := range expected.Methods {
		if _, ok := parsed.Methods[name]; !ok {
			return fmt.Errorf("artifact has no method %s", name)
		}
	}

	want := []string{}
	for _, input := range expected.Constructor.Inputs {
		want = append(want, input.Type.String())
	}

	got := []string{}
	for _, input := range parsed.Constructor.Inputs {
		got = append(got, input.Type.String())
	}

	if !slices.Equal(want, got) {
		return fmt.Errorf("constructor (%s) mismatches (%s)", strings.Join(got, ","), strings.Join(want, ","))
	}

	return nil
}

func (s *srv) resolveChainID(cctx *cli.Context) int64 {
	if chainID := cctx.Int64("chain-id"); chainID != 0 {
		return chainID
	}

	return xcontext.Configs(s.ctx).Chain.DefaultChainID
}

func (s *srv) startDeploy(cctx *cli.Context) error {
	parsed, bytecode, err := loadArtifact(cctx.String("artifact"))
	if err != nil {
		return err
	}

	if err := checkRaffleABI(parsed); err != nil {
		return err
	}

	key, err := ethutil.ParsePrivateKey(cctx.String("private-key"))
	if err != nil {
		return fmt.Errorf("invalid private key: %w", err)
	}

	s.loadChainClient()
	chainID := s.resolveChainID(cctx)
	backend, n, err := s.chainClient.Backend(s.ctx, chainID)
	if err != nil {
		return err
	}

	paymentToken := cctx.String("payment-token")
	if paymentToken == "" {
		paymentToken = n.Contracts.TestToken
	}

	if !ethutil.IsAddress(paymentToken) {
		return fmt.Errorf("invalid payment token %q", paymentToken)
	}

	subscriptionID := cctx.Uint64("subscription-id")
	if subscriptionID == 0 {
		subscriptionID = n.VRF.SubscriptionID
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(chainID))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(s.ctx, deployTimeout)
	defer cancel()
	opts.Context = ctx

	xcontext.Logger(s.ctx).Infof("Deploying raffle on %s from %s",
		n.Name, ethcrypto.PubkeyToAddress(key.PublicKey).Hex())

	address, tx, _, err := raffle.DeployRaffle(
		opts,
		backend,
		bytecode,
		common.HexToAddress(n.VRF.Coordinator),
		common.HexToHash(n.VRF.KeyHash),
		subscriptionID,
		n.VRF.CallbackGasLimit,
		common.HexToAddress(paymentToken),
	)
	if err != nil {
		return fmt.Errorf("cannot deploy raffle: %w", err)
	}

	xcontext.Logger(s.ctx).Infof("Sent deployment %s", n.TxURL(tx.Hash().Hex()))
	if _, err := bind.WaitDeployed(ctx, backend, tx); err != nil {
		return fmt.Errorf("cannot wait deployment: %w", err)
	}

	xcontext.Logger(s.ctx).Infof("Deployed raffle at %s", n.AddressURL(address.Hex()))
	xcontext.Logger(s.ctx).Infof("Set Chain.RaffleOverrides.%q = %q to use it", fmt.Sprint(n.ChainID), address.Hex())
	return nil
}
