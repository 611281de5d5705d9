package main

import (
	"net/http"

	"github.com/questx-lab/raffle/internal/middleware"
	"github.com/questx-lab/raffle/pkg/prometheus"
	"github.com/questx-lab/raffle/pkg/router"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	cfg := xcontext.Configs(s.ctx)
	s.migrateDB()
	s.loadRedisClient()
	s.loadPublisher()
	s.loadChainClient()
	s.loadIDGenerator()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	go func() {
		httpSrv := &http.Server{
			Addr:    cfg.PrometheusServer.Address(),
			Handler: prometheus.NewHandler(),
		}
		xcontext.Logger(s.ctx).Infof("Starting prometheus on port: %s", cfg.PrometheusServer.Port)
		if err := httpSrv.ListenAndServe(); err != nil {
			panic(err)
		}
		xcontext.Logger(s.ctx).Infof("Server prometheus stop")
	}()

	s.server = &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: s.router.Handler(cfg.ApiServer.AllowedOrigins...),
	}

	xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger(), middleware.Prometheus())

	// These following APIs need authentication with Access Token.
	onlyTokenAuthRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier().WithCookie()
	onlyTokenAuthRouter.Before(authVerifier.Middleware())
	{
		// Admin API, the role of caller is checked after the payload is validated.
		router.POST(onlyTokenAuthRouter, "/updateRaffleWinner", s.raffleDomain.UpdateWinner)

		// Ticket API
		router.GET(onlyTokenAuthRouter, "/getMyTickets", s.ticketDomain.GetMyTickets)

		// Prize claim API
		router.POST(onlyTokenAuthRouter, "/claimPrize", s.prizeClaimDomain.ClaimPrize)
		router.GET(onlyTokenAuthRouter, "/getMyClaims", s.prizeClaimDomain.GetMyClaims)

		// Referral API
		router.GET(onlyTokenAuthRouter, "/getReferralTier", s.referralDomain.GetReferralTier)
	}

	// Public API.
	router.GET(s.router, "/wallet/login", s.walletAuthDomain.Login)
	router.POST(s.router, "/wallet/verify", s.walletAuthDomain.Verify)
	router.GET(s.router, "/getRaffle", s.raffleDomain.Get)
	router.GET(s.router, "/getListRaffle", s.raffleDomain.GetList)
	router.GET(s.router, "/getOnChainRaffle", s.raffleDomain.GetOnChain)
	router.GET(s.router, "/getNetworks", s.networkDomain.GetNetworks)
	router.GET(s.router, "/getNetwork", s.networkDomain.GetNetwork)
}
