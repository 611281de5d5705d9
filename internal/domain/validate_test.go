package domain

import (
	"strings"
	"testing"

	"github.com/questx-lab/raffle/internal/model"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func Test_validateRequest(t *testing.T) {
	validAddress := "0x" + strings.Repeat("aB", 20)
	validHash := "0x" + strings.Repeat("0f", 32)

	tests := []struct {
		name       string
		req        *model.UpdateRaffleWinnerRequest
		wantFields []string
	}{
		{
			name: "happy case",
			req: &model.UpdateRaffleWinnerRequest{
				RaffleID:      1,
				WinnerAddress: validAddress,
				DrawTxHash:    validHash,
				Status:        "completed",
			},
		},
		{
			name: "status is optional",
			req: &model.UpdateRaffleWinnerRequest{
				RaffleID:      1,
				WinnerAddress: validAddress,
				DrawTxHash:    validHash,
			},
		},
		{
			name: "invalid hex address",
			req: &model.UpdateRaffleWinnerRequest{
				RaffleID:      1,
				WinnerAddress: "0x" + strings.Repeat("zz", 20),
				DrawTxHash:    validHash,
			},
			wantFields: []string{"winnerAddress"},
		},
		{
			name: "short hash and unknown status",
			req: &model.UpdateRaffleWinnerRequest{
				RaffleID:      1,
				WinnerAddress: validAddress,
				DrawTxHash:    "0x1234",
				Status:        "finished",
			},
			wantFields: []string{"drawTxHash", "status"},
		},
		{
			name:       "empty payload",
			req:        &model.UpdateRaffleWinnerRequest{},
			wantFields: []string{"raffleId", "winnerAddress", "drawTxHash"},
		},
		{
			name: "negative raffle id",
			req: &model.UpdateRaffleWinnerRequest{
				RaffleID:      -1,
				WinnerAddress: validAddress,
				DrawTxHash:    validHash,
			},
			wantFields: []string{"raffleId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			errx := errorx.From(err)
			require.Equal(t, errorx.BadRequest, errx.Code)

			details, ok := errx.Details.([]errorx.FieldError)
			require.True(t, ok)

			fields := []string{}
			for _, d := range details {
				fields = append(fields, d.Field)
				require.NotEmpty(t, d.Message)
			}
			require.Equal(t, tt.wantFields, fields)
		})
	}
}
