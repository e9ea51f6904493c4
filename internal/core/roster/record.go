package roster

import "github.com/ogurasousui/codex-grpc-payroll/internal/core/payroll"

// HireDateLayout は名簿上の入社日の書式です。
const HireDateLayout = "2006-01-02"

// Record は名簿の 1 行を表します。金額は精度を保つため 10 進文字列で保持します。
type Record struct {
	ID        string       `yaml:"id" csv:"id" validate:"required"`
	Name      string       `yaml:"name" csv:"name" validate:"required"`
	Kind      payroll.Kind `yaml:"kind" csv:"kind" validate:"required,oneof=salaried hourly commission temporary"`
	HireDate  string       `yaml:"hire_date" csv:"hire_date" validate:"required,datetime=2006-01-02"`
	Permanent bool         `yaml:"permanent" csv:"permanent"`

	MonthlySalary string `yaml:"monthly_salary,omitempty" csv:"monthly_salary"`

	HourlyRate        string `yaml:"hourly_rate,omitempty" csv:"hourly_rate"`
	HoursWorked       string `yaml:"hours_worked,omitempty" csv:"hours_worked"`
	MonthsOfService   int    `yaml:"months_of_service,omitempty" csv:"months_of_service" validate:"gte=0"`
	AcceptSavingsFund bool   `yaml:"accept_savings_fund,omitempty" csv:"accept_savings_fund"`

	BaseSalary        string `yaml:"base_salary,omitempty" csv:"base_salary"`
	SalesAmount       string `yaml:"sales_amount,omitempty" csv:"sales_amount"`
	CommissionPercent string `yaml:"commission_percent,omitempty" csv:"commission_percent"`
}
