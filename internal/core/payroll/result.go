package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Result は 1 名分の給与計算結果です。計算のたびに新しく生成され、生成後は変更されません。
type Result struct {
	employeeID string
	gross      decimal.Decimal
	deductions decimal.Decimal
	net        decimal.Decimal
}

// NewResult は Result を生成します。入力値の検証は行いません。
func NewResult(employeeID string, gross, deductions, net decimal.Decimal) Result {
	return Result{employeeID: employeeID, gross: gross, deductions: deductions, net: net}
}

func (r Result) EmployeeID() string          { return r.employeeID }
func (r Result) Gross() decimal.Decimal      { return r.gross }
func (r Result) Deductions() decimal.Decimal { return r.deductions }
func (r Result) Net() decimal.Decimal        { return r.net }

func (r Result) String() string {
	return fmt.Sprintf("PayrollResult[id=%s, gross=%s, deductions=%s, net=%s]", r.employeeID, r.gross, r.deductions, r.net)
}
