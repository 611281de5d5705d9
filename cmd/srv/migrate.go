package main

import (
	"github.com/questx-lab/raffle/migration"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())

	if cctx.Bool("sql") {
		if err := migration.DoSqlMigration(s.ctx); err != nil {
			return err
		}

		xcontext.Logger(s.ctx).Infof("Applied sql migrations")
		return nil
	}

	s.migrateDB()
	xcontext.Logger(s.ctx).Infof("Migrated database")
	return nil
}
