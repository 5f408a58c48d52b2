// Command seed populates a development database with a small fleet of
// monitors, their current state, a rolling window of check results, and
// one past outage, so the status/latency/uptime endpoints have
// something to answer with.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	"fleetstatus/src/config"
	"fleetstatus/src/modules/shared"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/driver/sqliteshim"

	_ "github.com/go-sql-driver/mysql"
)

type seedMonitor struct {
	bun.BaseModel `bun:"table:monitors"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Name        string    `bun:"name,notnull"`
	Type        string    `bun:"type,notnull"`
	IntervalSec int64     `bun:"interval_sec,notnull"`
	Active      bool      `bun:"active,notnull"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull"`
}

type seedState struct {
	bun.BaseModel `bun:"table:monitor_state"`

	MonitorID     int64  `bun:"monitor_id,pk"`
	Status        string `bun:"status,notnull"`
	LastCheckedAt *int64 `bun:"last_checked_at"`
	LastLatencyMs *int64 `bun:"last_latency_ms"`
}

type seedCheckResult struct {
	bun.BaseModel `bun:"table:check_results"`

	MonitorID int64  `bun:"monitor_id,notnull"`
	CheckedAt int64  `bun:"checked_at,notnull"`
	Status    string `bun:"status,notnull"`
	LatencyMs *int64 `bun:"latency_ms"`
}

type seedOutage struct {
	bun.BaseModel `bun:"table:outages"`

	MonitorID int64  `bun:"monitor_id,notnull"`
	StartedAt int64  `bun:"started_at,notnull"`
	EndedAt   *int64 `bun:"ended_at"`
}

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	db, err := connect(&cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	monitors := []seedMonitor{
		{Name: "api-gateway", Type: "http", IntervalSec: 60, Active: true, CreatedAt: now.Add(-30 * 24 * time.Hour)},
		{Name: "checkout-db", Type: "tcp", IntervalSec: 30, Active: true, CreatedAt: now.Add(-30 * 24 * time.Hour)},
		{Name: "legacy-reports", Type: "http", IntervalSec: 300, Active: true, CreatedAt: now.Add(-10 * 24 * time.Hour)},
	}

	if _, err := db.NewInsert().Model(&monitors).Exec(ctx); err != nil {
		log.Fatalf("insert monitors: %v", err)
	}

	for i := range monitors {
		m := &monitors[i]
		lookback := 2 * time.Hour
		if err := seedMonitorHistory(ctx, db, m, now, lookback); err != nil {
			log.Fatalf("seed history for %s: %v", m.Name, err)
		}
	}

	fmt.Println("seed complete")
}

// seedMonitorHistory fabricates a check-result trail over the lookback
// window, one short outage for the checkout-db monitor, and the resulting
// current monitor_state row.
func seedMonitorHistory(ctx context.Context, db *bun.DB, m *seedMonitor, now time.Time, lookback time.Duration) error {
	start := now.Add(-lookback).Unix()
	end := now.Unix()
	interval := m.IntervalSec

	var results []seedCheckResult
	lastStatus := shared.CheckStatusUp
	var lastLatency *int64
	var outageStart *int64

	for t := start; t <= end; t += interval {
		status := shared.CheckStatusUp
		var latency *int64

		if m.Name == "checkout-db" && t > start+int64(lookback.Seconds())/3 && t < start+int64(lookback.Seconds())/3+600 {
			status = shared.CheckStatusDown
			if outageStart == nil {
				ts := t
				outageStart = &ts
			}
		} else {
			l := int64(20 + rand.Intn(180))
			latency = &l
			if outageStart != nil {
				ts := t
				if _, err := db.NewInsert().Model(&seedOutage{
					MonitorID: m.ID,
					StartedAt: *outageStart,
					EndedAt:   &ts,
				}).Exec(ctx); err != nil {
					return err
				}
				outageStart = nil
			}
		}

		results = append(results, seedCheckResult{
			MonitorID: m.ID,
			CheckedAt: t,
			Status:    string(status),
			LatencyMs: latency,
		})

		lastStatus = status
		lastLatency = latency
	}

	if len(results) > 0 {
		if _, err := db.NewInsert().Model(&results).Exec(ctx); err != nil {
			return err
		}
	}

	lastCheckedAt := end
	state := &seedState{
		MonitorID:     m.ID,
		Status:        string(monitorStatusFor(lastStatus)),
		LastCheckedAt: &lastCheckedAt,
		LastLatencyMs: lastLatency,
	}
	_, err := db.NewInsert().Model(state).Exec(ctx)
	return err
}

func monitorStatusFor(last shared.CheckStatus) shared.MonitorStatus {
	if last == shared.CheckStatusDown {
		return shared.MonitorStatusDown
	}
	return shared.MonitorStatusUp
}

func connect(cfg *config.Config) (*bun.DB, error) {
	var sqldb *sql.DB
	var db *bun.DB
	var err error

	switch cfg.DBType {
	case "postgres", "postgresql":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		sqldb = sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		db = bun.NewDB(sqldb, pgdialect.New())

	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
			cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		sqldb, err = sql.Open("mysql", dsn)
		if err != nil {
			return nil, err
		}
		db = bun.NewDB(sqldb, mysqldialect.New())

	case "sqlite":
		dbPath := cfg.DBName
		if dbPath == "" {
			dbPath = "./data.db"
		}
		sqldb, err = sql.Open(sqliteshim.ShimName, fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbPath))
		if err != nil {
			return nil, err
		}
		db = bun.NewDB(sqldb, sqlitedialect.New())

	default:
		return nil, fmt.Errorf("seed only supports postgres, mysql and sqlite, got %q", cfg.DBType)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
