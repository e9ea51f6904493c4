package payroll

import "github.com/shopspring/decimal"

const seniorityBonusYears = 5

var seniorityBonusPercent = decimal.RequireFromString("0.10")

// Salaried は固定月給の社員です。
type Salaried struct {
	Profile
	monthlySalary decimal.Decimal
}

// NewSalaried は Salaried を生成します。月給の検証は行いません。
func NewSalaried(profile Profile, monthlySalary decimal.Decimal) *Salaried {
	return &Salaried{Profile: profile, monthlySalary: monthlySalary}
}

// MonthlySalary は月給を返します。
func (s *Salaried) MonthlySalary() decimal.Decimal { return s.monthlySalary }

// Kind は KindSalaried を返します。
func (s *Salaried) Kind() Kind { return KindSalaried }

// CalculateGross は月給に、勤続 5 年超なら 10% の賞与、常用社員なら食事手当を加算します。
func (s *Salaried) CalculateGross(terms Terms) (decimal.Decimal, error) {
	gross := s.monthlySalary

	if s.YearsOfService(terms.Now) > seniorityBonusYears {
		gross = gross.Add(s.monthlySalary.Mul(seniorityBonusPercent))
	}

	if s.Permanent() {
		gross = gross.Add(terms.FoodAllowance)
	}
	return gross, nil
}

func (*Salaried) variant() {}
