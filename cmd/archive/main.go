// Command archive uploads one game day of Attack Events to object storage.
// Without -date it archives the previous game day. With -url it also prints
// a presigned download link valid for the given duration.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/vaultsiege/internal/clock"
	"github.com/dmitrijs2005/vaultsiege/internal/flagx"
	"github.com/dmitrijs2005/vaultsiege/internal/logging"
	"github.com/dmitrijs2005/vaultsiege/internal/server/archive"
	"github.com/dmitrijs2005/vaultsiege/internal/server/config"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/repomanager"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	fs := flag.NewFlagSet("archive", flag.ExitOnError)
	date := fs.String("date", "", "game day to archive, YYYY-MM-DD")
	link := fs.Duration("url", 0, "print a presigned download URL valid for this long, e.g. 24h")
	_ = fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-date", "--date", "-url", "--url"}))

	day, err := clock.NewDayClock(cfg.DayTimezone, cfg.DayStartHour)
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	a := archive.NewArchiver(db, repomanager.NewPostgresRepositoryManager(), cfg, day, logger)

	t, err := a.ResolveDay(*date, time.Now())
	if err != nil {
		log.Fatalf("%v", err)
	}

	res, err := a.ArchiveAndLink(ctx, t, *link)
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger.Info(ctx, "Archive complete", "key", res.Key, "events", res.Events)
	if res.URL != "" {
		fmt.Println(res.URL)
	}
}
