package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/questx-lab/raffle/contract/raffle"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "Raffle.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_loadArtifact(t *testing.T) {
	tests := []struct {
		name         string
		artifact     string
		wantBytecode []byte
		wantErr      bool
	}{
		{
			name:         "hardhat",
			artifact:     `{"abi":` + raffle.RaffleABI + `,"bytecode":"0x6080"}`,
			wantBytecode: []byte{0x60, 0x80},
		},
		{
			name:         "foundry",
			artifact:     `{"abi":` + raffle.RaffleABI + `,"bytecode":{"object":"6080"}}`,
			wantBytecode: []byte{0x60, 0x80},
		},
		{
			name:     "empty bytecode",
			artifact: `{"abi":` + raffle.RaffleABI + `,"bytecode":"0x"}`,
			wantErr:  true,
		},
		{
			name:     "unknown bytecode",
			artifact: `{"abi":` + raffle.RaffleABI + `,"bytecode":1}`,
			wantErr:  true,
		},
		{
			name:     "invalid abi",
			artifact: `{"abi":{},"bytecode":"0x6080"}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, bytecode, err := loadArtifact(writeArtifact(t, tt.artifact))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantBytecode, bytecode)
			require.NoError(t, checkRaffleABI(parsed))
		})
	}
}

func Test_checkRaffleABI(t *testing.T) {
	erc20, err := abi.JSON(strings.NewReader(raffle.TestTokenABI))
	require.NoError(t, err)
	require.Error(t, checkRaffleABI(erc20))
}
