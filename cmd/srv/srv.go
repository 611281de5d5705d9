package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/questx-lab/raffle/config"
	"github.com/questx-lab/raffle/internal/client"
	"github.com/questx-lab/raffle/internal/domain"
	"github.com/questx-lab/raffle/internal/repository"
	"github.com/questx-lab/raffle/migration"
	"github.com/questx-lab/raffle/pkg/authenticator"
	"github.com/questx-lab/raffle/pkg/idutil"
	"github.com/questx-lab/raffle/pkg/kafka"
	"github.com/questx-lab/raffle/pkg/logger"
	"github.com/questx-lab/raffle/pkg/pubsub"
	"github.com/questx-lab/raffle/pkg/router"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"github.com/questx-lab/raffle/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	redisClient xredis.Client
	publisher   pubsub.Publisher
	chainClient client.ChainClient
	idGenerator idutil.Generator

	userRepo         repository.UserRepository
	userRoleRepo     repository.UserRoleRepository
	raffleRepo       repository.RaffleRepository
	ticketRepo       repository.TicketRepository
	prizeClaimRepo   repository.PrizeClaimRepository
	referralTierRepo repository.ReferralTierRepository

	raffleDomain     domain.RaffleDomain
	ticketDomain     domain.TicketDomain
	prizeClaimDomain domain.PrizeClaimDomain
	referralDomain   domain.ReferralDomain
	networkDomain    domain.NetworkDomain
	walletAuthDomain domain.WalletAuthDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	path := cctx.String("config")
	if _, err := os.Stat(path); err != nil && !cctx.IsSet("config") {
		// Run with the default configurations if there is no config file in working directory.
		path = ""
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithConfigs(context.Background(), cfg)
	s.loadLogger()
	s.ctx = xcontext.WithTokenEngine(s.ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	return nil
}

func (s *srv) loadLogger() {
	cfg := xcontext.Configs(s.ctx)
	level := logger.ParseLevel(cfg.LogLevel)

	var l logger.Logger
	if cfg.Env == "production" {
		l = logger.NewProductionLogger(level)
	} else {
		l = logger.NewLogger(level)
	}

	s.ctx = xcontext.WithLogger(s.ctx, l)
}

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx).Database

	var dialector gorm.Dialector
	switch strings.ToLower(cfg.Driver) {
	case "mysql":
		dialector = mysql.New(mysql.Config{
			DSN:                       cfg.ConnectionString(),
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		})
	case "sqlite":
		dialector = sqlite.Open(cfg.ConnectionString())
	default:
		dialector = postgres.Open(cfg.ConnectionString())
	}

	gormLogLevel := gormlogger.Warn
	if xcontext.Configs(s.ctx).Env == "production" {
		gormLogLevel = gormlogger.Error
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) migrateDB() {
	if err := migration.AutoMigrate(s.ctx); err != nil {
		panic(err)
	}

	if err := migration.SeedReferralTiers(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

// loadPublisher falls back to a publisher dropping every event if no kafka broker is configured.
func (s *srv) loadPublisher() {
	cfg := xcontext.Configs(s.ctx).Kafka
	if cfg.Addr == "" {
		xcontext.Logger(s.ctx).Warnf("No kafka broker is configured, events are dropped")
		s.publisher = pubsub.NewNopPublisher()
		return
	}

	publisher, err := kafka.NewPublisher(cfg.ClientID, []string{cfg.Addr})
	if err != nil {
		panic(err)
	}

	s.publisher = publisher
}

func (s *srv) loadChainClient() {
	s.chainClient = client.NewChainClient()
}

func (s *srv) loadIDGenerator() {
	var err error
	s.idGenerator, err = idutil.NewSnowflakeGenerator(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.userRoleRepo = repository.NewUserRoleRepository()
	s.raffleRepo = repository.NewRaffleRepository()
	s.ticketRepo = repository.NewTicketRepository()
	s.prizeClaimRepo = repository.NewPrizeClaimRepository()
	s.referralTierRepo = repository.NewReferralTierRepository()
}

func (s *srv) loadDomains() {
	s.raffleDomain = domain.NewRaffleDomain(s.raffleRepo, s.userRoleRepo, s.chainClient, s.publisher)
	s.ticketDomain = domain.NewTicketDomain(s.ticketRepo)
	s.prizeClaimDomain = domain.NewPrizeClaimDomain(s.prizeClaimRepo, s.raffleRepo, s.idGenerator)
	s.referralDomain = domain.NewReferralDomain(s.userRepo, s.referralTierRepo)
	s.networkDomain = domain.NewNetworkDomain()
	s.walletAuthDomain = domain.NewWalletAuthDomain(s.userRepo, s.redisClient)
}
