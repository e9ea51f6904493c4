package payrun

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/codex-grpc-payroll/internal/core/payroll"
)

// Run は 1 回の給与計算の実行結果です。
type Run struct {
	ID              string
	EvaluatedAt     time.Time
	Results         []payroll.Result
	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
}

func newRun(id string, evaluatedAt time.Time, results []payroll.Result) *Run {
	run := &Run{
		ID:              id,
		EvaluatedAt:     evaluatedAt,
		Results:         results,
		TotalGross:      decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
	}
	for _, r := range results {
		run.TotalGross = run.TotalGross.Add(r.Gross())
		run.TotalDeductions = run.TotalDeductions.Add(r.Deductions())
		run.TotalNet = run.TotalNet.Add(r.Net())
	}
	return run
}
