// Command import-csv bulk loads results or tickets from a CSV export.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bhagyamlottery/agency-backend/internal/config"
	"github.com/bhagyamlottery/agency-backend/internal/importer"
	"github.com/bhagyamlottery/agency-backend/internal/logger"
	"github.com/bhagyamlottery/agency-backend/internal/services"
	"github.com/bhagyamlottery/agency-backend/internal/storage"
	flag "github.com/spf13/pflag"
)

var errRowsRejected = errors.New("some rows were rejected")

func main() {
	var (
		configPath = flag.String("config", ".", "directory holding config.yaml")
		kind       = flag.StringP("type", "t", "results", "what the file holds: results or tickets")
		timeout    = flag.Duration("timeout", 5*time.Minute, "overall time limit")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: import-csv [flags] <file.csv>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configPath, *kind, flag.Arg(0), *timeout); err != nil {
		logger.GetLogger("app").Errorf("Import failed: %v", err)
		os.Exit(1)
	}
}

func run(configPath, kind, csvPath string, timeout time.Duration) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := logger.Init(cfg.Log); err != nil {
		return fmt.Errorf("initialise logging: %w", err)
	}
	defer logger.Close()
	log := logger.GetLogger("app")

	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open CSV file: %w", err)
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	repos, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer repos.Close(context.Background())

	csvImporter := importer.NewCSVImporter(
		services.NewResultService(repos.Results),
		services.NewTicketService(repos.Tickets),
	)

	var report *importer.Report
	switch kind {
	case "results":
		report, err = csvImporter.ImportResults(ctx, file)
	case "tickets":
		report, err = csvImporter.ImportTickets(ctx, file)
	default:
		return fmt.Errorf("unknown type %q, want results or tickets", kind)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}

	log.WithField("imported", report.Imported).WithField("rows", report.TotalRows).Info("Import finished")
	if len(report.Errors) > 0 {
		return fmt.Errorf("%w: %d of %d", errRowsRejected, len(report.Errors), report.TotalRows)
	}
	return nil
}
