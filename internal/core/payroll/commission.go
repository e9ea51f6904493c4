package payroll

import "github.com/shopspring/decimal"

var (
	salesBonusThreshold = decimal.NewFromInt(20_000_000)
	salesBonusPercent   = decimal.RequireFromString("0.03")
)

// Commission は基本給と売上歩合で支給される社員です。
type Commission struct {
	Profile
	baseSalary        decimal.Decimal
	salesAmount       decimal.Decimal
	commissionPercent decimal.Decimal
}

// NewCommission は Commission を生成します。売上額の検証は CalculateGross で行います。
func NewCommission(profile Profile, baseSalary, salesAmount, commissionPercent decimal.Decimal) *Commission {
	return &Commission{
		Profile:           profile,
		baseSalary:        baseSalary,
		salesAmount:       salesAmount,
		commissionPercent: commissionPercent,
	}
}

func (c *Commission) BaseSalary() decimal.Decimal        { return c.baseSalary }
func (c *Commission) SalesAmount() decimal.Decimal       { return c.salesAmount }
func (c *Commission) CommissionPercent() decimal.Decimal { return c.commissionPercent }

// Kind は KindCommission を返します。
func (c *Commission) Kind() Kind { return KindCommission }

// CalculateGross は基本給と歩合に、売上 20,000,000 超で売上の 3%、常用社員なら食事手当を加算します。
func (c *Commission) CalculateGross(terms Terms) (decimal.Decimal, error) {
	if c.salesAmount.IsNegative() {
		return decimal.Decimal{}, ErrNegativeSales
	}

	gross := c.baseSalary.Add(c.salesAmount.Mul(c.commissionPercent))

	if c.salesAmount.GreaterThan(salesBonusThreshold) {
		gross = gross.Add(c.salesAmount.Mul(salesBonusPercent))
	}

	if c.Permanent() {
		gross = gross.Add(terms.FoodAllowance)
	}
	return gross, nil
}

func (*Commission) variant() {}
