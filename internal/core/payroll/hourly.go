package payroll

import "github.com/shopspring/decimal"

var (
	regularHoursLimit  = decimal.NewFromInt(40)
	overtimeMultiplier = decimal.RequireFromString("1.5")
)

// Hourly は時給制の社員です。
type Hourly struct {
	Profile
	hourlyRate        decimal.Decimal
	hoursWorked       decimal.Decimal
	monthsOfService   int
	acceptSavingsFund bool
}

// NewHourly は Hourly を生成します。労働時間の検証は CalculateGross で行います。
func NewHourly(profile Profile, hourlyRate, hoursWorked decimal.Decimal, monthsOfService int, acceptSavingsFund bool) *Hourly {
	return &Hourly{
		Profile:           profile,
		hourlyRate:        hourlyRate,
		hoursWorked:       hoursWorked,
		monthsOfService:   monthsOfService,
		acceptSavingsFund: acceptSavingsFund,
	}
}

func (h *Hourly) HourlyRate() decimal.Decimal  { return h.hourlyRate }
func (h *Hourly) HoursWorked() decimal.Decimal { return h.hoursWorked }
func (h *Hourly) MonthsOfService() int         { return h.monthsOfService }
func (h *Hourly) AcceptSavingsFund() bool      { return h.acceptSavingsFund }

// Kind は KindHourly を返します。
func (h *Hourly) Kind() Kind { return KindHourly }

// CalculateGross は 40 時間までを通常時給、超過分を 1.5 倍で計算します。
func (h *Hourly) CalculateGross(Terms) (decimal.Decimal, error) {
	if h.hoursWorked.IsNegative() {
		return decimal.Decimal{}, ErrNegativeHours
	}

	regular := decimal.Min(h.hoursWorked, regularHoursLimit)
	overtime := decimal.Max(h.hoursWorked.Sub(regularHoursLimit), decimal.Zero)

	gross := regular.Mul(h.hourlyRate).
		Add(overtime.Mul(h.hourlyRate).Mul(overtimeMultiplier))
	return gross, nil
}

func (*Hourly) variant() {}
