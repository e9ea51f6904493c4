package payroll

import "github.com/shopspring/decimal"

// Rates は給与計算で使用する固定値の集合です。
type Rates struct {
	// DeductionRate は総支給額に掛ける一般控除率です。
	DeductionRate decimal.Decimal
	// ARLRate は労災保険 (ARL) の追加控除率です。Valid が false の場合は追加控除なしとして扱います。
	ARLRate decimal.NullDecimal
	// FoodAllowance は常用社員に支給する食事手当です。
	FoodAllowance decimal.Decimal
}

// DefaultRates は控除率 4%、ARL 0%、食事手当 1,000,000 の既定値を返します。
func DefaultRates() Rates {
	return Rates{
		DeductionRate: decimal.RequireFromString("0.04"),
		ARLRate:       decimal.NewNullDecimal(decimal.Zero),
		FoodAllowance: decimal.NewFromInt(1_000_000),
	}
}
