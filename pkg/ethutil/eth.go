package ethutil

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

var (
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	txHashRegex  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// IsAddress only checks the format, the EIP-55 checksum is not required.
func IsAddress(s string) bool {
	return addressRegex.MatchString(s)
}

func IsTxHash(s string) bool {
	return txHashRegex.MatchString(s)
}

// RecoverPersonalSign returns the address which signed the message using personal_sign (EIP-191).
func RecoverPersonalSign(message, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("cannot decode signature: %w", err)
	}

	if len(sig) != ethcrypto.SignatureLength {
		return common.Address{}, errors.New("invalid signature length")
	}

	// Transform yellow paper V from 27/28 to 0/1.
	if sig[ethcrypto.RecoveryIDOffset] == 27 || sig[ethcrypto.RecoveryIDOffset] == 28 {
		sig[ethcrypto.RecoveryIDOffset] -= 27
	}

	hash := accounts.TextHash([]byte(message))
	pub, err := ethcrypto.SigToPub(hash, sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("cannot recover public key: %w", err)
	}

	return ethcrypto.PubkeyToAddress(*pub), nil
}

func ParsePrivateKey(s string) (*ecdsa.PrivateKey, error) {
	return ethcrypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
}
