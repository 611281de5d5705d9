package model

import "github.com/ethereum/go-ethereum/common"

// WalletSession is the connected wallet every contract interaction is made on behalf of.
type WalletSession struct {
	Account common.Address
	ChainID int64
}

func (s WalletSession) Connected() bool {
	return s.Account != (common.Address{}) && s.ChainID != 0
}
