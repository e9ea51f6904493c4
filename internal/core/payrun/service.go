package payrun

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ogurasousui/codex-grpc-payroll/internal/core/payroll"
	"github.com/ogurasousui/codex-grpc-payroll/internal/core/roster"
)

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// UseCase は給与計算ユースケースの公開インターフェースです。
type UseCase interface {
	RunPayroll(ctx context.Context, in RunPayrollInput) (*Run, error)
	CalculatePayroll(ctx context.Context, in CalculatePayrollInput) (*Run, error)
}

// RunPayrollInput は登録済み名簿に対する給与計算の入力です。
type RunPayrollInput struct {
	// EmployeeIDs が空の場合は名簿全体を対象とします。
	EmployeeIDs []string
}

// CalculatePayrollInput は呼び出し元が渡した名簿に対する給与計算の入力です。
type CalculatePayrollInput struct {
	Records []roster.Record
}

// Service は名簿の取得から給与計算までをまとめます。
type Service struct {
	repo  roster.Repository
	rates payroll.Rates
	clock payroll.Clock
	tx    TransactionManager
	newID func() string
}

// NewService は Service を生成します。
func NewService(repo roster.Repository, rates payroll.Rates, clock payroll.Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, rates: rates, clock: clock, tx: tx, newID: uuid.NewString}
}

// RunPayroll は登録済み名簿を読み込み、給与計算を実行します。
func (s *Service) RunPayroll(ctx context.Context, in RunPayrollInput) (*Run, error) {
	var records []roster.Record
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		listed, err := s.repo.List(txCtx)
		if err != nil {
			return fmt.Errorf("payrun: list roster: %w", err)
		}
		records = listed
		return nil
	}); err != nil {
		return nil, err
	}

	selected, err := selectRecords(records, in.EmployeeIDs)
	if err != nil {
		return nil, err
	}

	return s.process(selected)
}

// CalculatePayroll は渡された名簿に対して給与計算を実行します。
func (s *Service) CalculatePayroll(_ context.Context, in CalculatePayrollInput) (*Run, error) {
	return s.process(in.Records)
}

func (s *Service) process(records []roster.Record) (*Run, error) {
	employees, err := roster.Build(records)
	if err != nil {
		return nil, err
	}

	evaluatedAt := s.clock.Now()
	svc := payroll.NewService(employees, s.rates, payroll.FixedClock{At: evaluatedAt})

	results, err := svc.ProcessAll()
	if err != nil {
		return nil, err
	}

	return newRun(s.newID(), evaluatedAt, results), nil
}

// selectRecords は名簿順を保ったまま ids に含まれる行だけを残します。
func selectRecords(records []roster.Record, ids []string) ([]roster.Record, error) {
	if len(ids) == 0 {
		return records, nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		trimmed := strings.TrimSpace(id)
		if trimmed == "" {
			continue
		}
		wanted[trimmed] = false
	}
	if len(wanted) == 0 {
		return records, nil
	}

	selected := make([]roster.Record, 0, len(wanted))
	for _, rec := range records {
		if _, ok := wanted[rec.ID]; ok {
			wanted[rec.ID] = true
			selected = append(selected, rec)
		}
	}

	for _, id := range ids {
		trimmed := strings.TrimSpace(id)
		if trimmed != "" && !wanted[trimmed] {
			return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, trimmed)
		}
	}
	return selected, nil
}
