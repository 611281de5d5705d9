package router

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

type errorResponse struct {
	Code    int64  `json:"code"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func writeResponse(ctx context.Context, w http.ResponseWriter, resp any) {
	if resp == nil {
		resp = struct{}{}
	}

	if err := WriteJson(w, http.StatusOK, resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	errx := errorx.From(err)
	resp := errorResponse{
		Code:    int64(errx.Code),
		Error:   errx.Message,
		Details: errx.Details,
	}

	if err := WriteJson(w, errorx.HTTPStatus(errx.Code), resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the error response: %v", err)
	}
}

func WriteJson(w http.ResponseWriter, status int, resp any) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(b)
	return err
}
