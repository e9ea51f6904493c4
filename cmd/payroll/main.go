package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gocarina/gocsv"
	"github.com/joho/godotenv"

	"github.com/ogurasousui/codex-grpc-payroll/internal/core/payrun"
	"github.com/ogurasousui/codex-grpc-payroll/internal/platform/config"
	"github.com/ogurasousui/codex-grpc-payroll/internal/platform/rostersource"
)

// resultRow は CSV 出力の 1 行です。
type resultRow struct {
	EmployeeID string `csv:"employee_id"`
	Gross      string `csv:"gross"`
	Deductions string `csv:"deductions"`
	Net        string `csv:"net"`
}

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		employees  = flag.String("employees", "", "comma separated employee ids (defaults to the whole roster)")
		outPath    = flag.String("out", "", "CSV output path (defaults to stdout)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env", slog.String("error", err.Error()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, effectiveConfigPath(*configPath), splitIDs(*employees), *outPath, logger); err != nil {
		logger.Error("payroll run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath string, ids []string, outPath string, logger *slog.Logger) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	src, err := rostersource.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer src.Close()

	svc := payrun.NewService(src.Repository, cfg.Payroll.Rates(), cfg.Payroll.Clock(), src.TxManager)
	result, err := svc.RunPayroll(ctx, payrun.RunPayrollInput{EmployeeIDs: ids})
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}

	if err := writeCSV(w, result); err != nil {
		return err
	}

	logger.Info("payroll run completed",
		slog.String("run_id", result.ID),
		slog.Int("employees", len(result.Results)),
		slog.String("total_gross", result.TotalGross.String()),
		slog.String("total_deductions", result.TotalDeductions.String()),
		slog.String("total_net", result.TotalNet.String()),
	)
	return nil
}

func writeCSV(w io.Writer, result *payrun.Run) error {
	rows := make([]resultRow, 0, len(result.Results))
	for _, r := range result.Results {
		rows = append(rows, resultRow{
			EmployeeID: r.EmployeeID(),
			Gross:      r.Gross().String(),
			Deductions: r.Deductions().String(),
			Net:        r.Net().String(),
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func splitIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}
