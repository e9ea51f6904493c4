package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind は報酬形態を表します。
type Kind string

const (
	KindSalaried   Kind = "salaried"
	KindHourly     Kind = "hourly"
	KindCommission Kind = "commission"
	KindTemporary  Kind = "temporary"
)

// Terms は総支給額の計算時に参照する外部条件です。
type Terms struct {
	// Now は勤続年数の算出に用いる評価時点です。
	Now time.Time
	// FoodAllowance は常用社員へ加算する食事手当です。
	FoodAllowance decimal.Decimal
}

// Employee は給与計算の対象となる社員の共通契約です。
// 実装は Salaried, Hourly, Commission, Temporary の 4 種類に限られます。
type Employee interface {
	ID() string
	Name() string
	HireDate() time.Time
	Permanent() bool
	Kind() Kind
	// YearsOfService は now 時点の勤続年数を返します。
	YearsOfService(now time.Time) int
	// CalculateGross は報酬形態ごとの総支給額を計算します。
	CalculateGross(terms Terms) (decimal.Decimal, error)
	// CalculateDeductions は総支給額に対する控除額を計算します。
	CalculateDeductions(gross decimal.NullDecimal, deductionRate decimal.Decimal, arlRate decimal.NullDecimal) (decimal.Decimal, error)
	// CalculateNet は差引支給額を計算します。
	CalculateNet(gross, deductions decimal.Decimal) (decimal.Decimal, error)

	variant()
}

// Profile は全報酬形態に共通する社員の属性です。生成後は変更できません。
type Profile struct {
	id        string
	name      string
	hireDate  time.Time
	permanent bool
}

// NewProfile は Profile を生成します。
func NewProfile(id, name string, hireDate time.Time, permanent bool) Profile {
	return Profile{id: id, name: name, hireDate: hireDate, permanent: permanent}
}

// ID は社員 ID を返します。
func (p Profile) ID() string { return p.id }

// Name は社員名を返します。
func (p Profile) Name() string { return p.name }

// HireDate は入社日を返します。
func (p Profile) HireDate() time.Time { return p.hireDate }

// Permanent は常用社員かどうかを返します。
func (p Profile) Permanent() bool { return p.permanent }

// YearsOfService は評価年と入社年の差を返します。
// 入社記念日は考慮しないため、経過期間より最大 1 年多くなることがあります。
func (p Profile) YearsOfService(now time.Time) int {
	return now.Year() - p.hireDate.Year()
}

// CalculateDeductions は gross × deductionRate に、arlRate が指定されていれば gross × arlRate を加えた額を返します。
func (p Profile) CalculateDeductions(gross decimal.NullDecimal, deductionRate decimal.Decimal, arlRate decimal.NullDecimal) (decimal.Decimal, error) {
	if !gross.Valid {
		return decimal.Decimal{}, ErrMissingGross
	}

	total := gross.Decimal.Mul(deductionRate)
	if arlRate.Valid {
		total = total.Add(gross.Decimal.Mul(arlRate.Decimal))
	}
	return total, nil
}

// CalculateNet は gross - deductions を返します。結果が負数になる場合は切り上げずにエラーとします。
func (p Profile) CalculateNet(gross, deductions decimal.Decimal) (decimal.Decimal, error) {
	net := gross.Sub(deductions)
	if net.IsNegative() {
		return decimal.Decimal{}, ErrNegativeNet
	}
	return net, nil
}
