package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/questx-lab/raffle/internal/common"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/router"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

func WithStartTime() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		return xcontext.WithStartTime(ctx, time.Now()), nil
	}
}

func Prometheus() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		status := http.StatusOK
		if err := xcontext.Error(ctx); err != nil {
			status = errorx.HTTPStatus(errorx.From(err).Code)
		}

		labels := []string{req.URL.Path, fmt.Sprint(status)}
		common.PromCounters[common.HTTPRequestTotal].WithLabelValues(labels...).Inc()

		if startTime := xcontext.StartTime(ctx); !startTime.IsZero() {
			common.PromHistograms[common.HTTPRequestDurationSeconds].
				WithLabelValues(labels...).Observe(time.Since(startTime).Seconds())
		}
	}
}
