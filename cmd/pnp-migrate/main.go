// Command pnp-migrate applies the embedded schema migrations
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/promptandpause/promptandpause-sub003/internal/platform/config"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/logger"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/store/migrate"
)

func main() {
	fTimeout := flag.Duration("timeout", 2*time.Minute, "give up after this long")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] up|down|status|version\n\nMIGRATE_COMMAND sets the default command\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger.Init(logger.FromEnv())
	l := logger.Named("migrate")

	command := config.New().Prefix("MIGRATE_").MayEnum("COMMAND", "up", "up", "down", "status", "version")
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	dsn := config.New().Prefix("SERVICE_PGSQL_").MustString("DBURL")
	db, err := migrate.Open(dsn)
	if err != nil {
		l.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *fTimeout)
	defer cancel()

	if err := migrate.New(db, l).Run(ctx, command); err != nil {
		l.Error().Err(err).Str("command", command).Msg("migrate failed")
		cancel()
		os.Exit(1)
	}
}
