package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/codex-grpc-payroll/internal/core/payroll"
	"github.com/ogurasousui/codex-grpc-payroll/internal/core/roster"
	pgdb "github.com/ogurasousui/codex-grpc-payroll/internal/platform/db/postgres"
)

const (
	undefinedTableCode  = "42P01"
	undefinedColumnCode = "42703"
)

// ErrRosterSchemaMismatch は payroll_roster テーブルが想定と異なる場合に返却されます。
var ErrRosterSchemaMismatch = errors.New("roster repository: payroll_roster table is missing or has unexpected columns")

const listRosterQuery = `
        SELECT id,
               name,
               kind,
               hire_date,
               permanent,
               monthly_salary::text,
               hourly_rate::text,
               hours_worked::text,
               months_of_service,
               accept_savings_fund,
               base_salary::text,
               sales_amount::text,
               commission_percent::text
          FROM payroll_roster
         ORDER BY position, id
    `

// RosterRepository は PostgreSQL の payroll_roster テーブルを参照する roster.Repository の実装です。
// テーブルは外部で管理され、このリポジトリは読み取りのみを行います。
type RosterRepository struct {
	pool pgdb.Queryer
}

// NewRosterRepository は RosterRepository を生成します。
func NewRosterRepository(pool pgdb.Queryer) *RosterRepository {
	return &RosterRepository{pool: pool}
}

// List は名簿を position 順に取得します。
func (r *RosterRepository) List(ctx context.Context) ([]roster.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, listRosterQuery)
	if err != nil {
		return nil, translateRosterPgError(err)
	}
	defer rows.Close()

	records := make([]roster.Record, 0)
	for rows.Next() {
		rec, err := scanRosterRecord(rows)
		if err != nil {
			return nil, translateRosterPgError(err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, translateRosterPgError(err)
	}

	return records, nil
}

func scanRosterRecord(row pgx.Row) (roster.Record, error) {
	var (
		id                string
		name              string
		kind              string
		hireDate          time.Time
		permanent         bool
		monthlySalary     sql.NullString
		hourlyRate        sql.NullString
		hoursWorked       sql.NullString
		monthsOfService   sql.NullInt32
		acceptSavingsFund sql.NullBool
		baseSalary        sql.NullString
		salesAmount       sql.NullString
		commissionPercent sql.NullString
	)

	if err := row.Scan(
		&id,
		&name,
		&kind,
		&hireDate,
		&permanent,
		&monthlySalary,
		&hourlyRate,
		&hoursWorked,
		&monthsOfService,
		&acceptSavingsFund,
		&baseSalary,
		&salesAmount,
		&commissionPercent,
	); err != nil {
		return roster.Record{}, err
	}

	return roster.Record{
		ID:                id,
		Name:              name,
		Kind:              payroll.Kind(kind),
		HireDate:          hireDate.UTC().Format(roster.HireDateLayout),
		Permanent:         permanent,
		MonthlySalary:     monthlySalary.String,
		HourlyRate:        hourlyRate.String,
		HoursWorked:       hoursWorked.String,
		MonthsOfService:   int(monthsOfService.Int32),
		AcceptSavingsFund: acceptSavingsFund.Bool,
		BaseSalary:        baseSalary.String,
		SalesAmount:       salesAmount.String,
		CommissionPercent: commissionPercent.String,
	}, nil
}

func translateRosterPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case undefinedTableCode, undefinedColumnCode:
			return fmt.Errorf("%w: %s", ErrRosterSchemaMismatch, pgErr.Message)
		}
	}
	return err
}
