package payroll

import "github.com/shopspring/decimal"

// Temporary は固定月給の臨時社員です。
type Temporary struct {
	Profile
	monthlySalary decimal.Decimal
}

// NewTemporary は Temporary を生成します。月給が未設定または 0 以下の場合は ErrInvalidMonthlySalary を返します。
func NewTemporary(profile Profile, monthlySalary decimal.NullDecimal) (*Temporary, error) {
	if !monthlySalary.Valid || !monthlySalary.Decimal.IsPositive() {
		return nil, ErrInvalidMonthlySalary
	}
	return &Temporary{Profile: profile, monthlySalary: monthlySalary.Decimal}, nil
}

// MonthlySalary は月給を返します。
func (t *Temporary) MonthlySalary() decimal.Decimal { return t.monthlySalary }

// Kind は KindTemporary を返します。
func (t *Temporary) Kind() Kind { return KindTemporary }

// CalculateGross は月給をそのまま返します。
func (t *Temporary) CalculateGross(Terms) (decimal.Decimal, error) {
	return t.monthlySalary, nil
}

func (*Temporary) variant() {}
