package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock は常に同じ時刻を返す Clock です。基準日を固定して給与を再計算する場合に使用します。
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

// Service は名簿に対する給与計算をまとめます。
type Service struct {
	employees []Employee
	rates     Rates
	clock     Clock
}

// NewService は Service を生成します。名簿の順序は ProcessAll の結果順として保持されます。
func NewService(employees []Employee, rates Rates, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	roster := make([]Employee, len(employees))
	copy(roster, employees)
	return &Service{employees: roster, rates: rates, clock: clock}
}

// CalculateFor は総支給額、控除額、差引支給額の順に計算します。
// 各段階のエラーはラップせずにそのまま返します。
func (s *Service) CalculateFor(e Employee) (Result, error) {
	gross, err := e.CalculateGross(Terms{Now: s.clock.Now(), FoodAllowance: s.rates.FoodAllowance})
	if err != nil {
		return Result{}, err
	}

	deductions, err := e.CalculateDeductions(decimal.NewNullDecimal(gross), s.rates.DeductionRate, s.rates.ARLRate)
	if err != nil {
		return Result{}, err
	}

	net, err := e.CalculateNet(gross, deductions)
	if err != nil {
		return Result{}, err
	}

	return NewResult(e.ID(), gross, deductions, net), nil
}

// ProcessAll は名簿順に全社員の給与を計算します。
// 1 名でもエラーになった場合は結果を返さずにそのエラーを返します。
func (s *Service) ProcessAll() ([]Result, error) {
	results := make([]Result, 0, len(s.employees))
	for _, e := range s.employees {
		result, err := s.CalculateFor(e)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
