package payroll

import (
	"errors"
	"fmt"
)

// ErrInvalidInput は給与計算の入力が不正な場合に返却されます。
// 以下の個別エラーはすべて ErrInvalidInput をラップしており、errors.Is で判定できます。
var ErrInvalidInput = errors.New("payroll: invalid input")

var (
	// ErrNegativeHours は労働時間が負数の場合に返却されます。
	ErrNegativeHours = fmt.Errorf("%w: hours worked cannot be negative", ErrInvalidInput)
	// ErrNegativeSales は売上額が負数の場合に返却されます。
	ErrNegativeSales = fmt.Errorf("%w: sales cannot be negative", ErrInvalidInput)
	// ErrInvalidMonthlySalary は臨時社員の月給が未設定または 0 以下の場合に返却されます。
	ErrInvalidMonthlySalary = fmt.Errorf("%w: monthly salary must be greater than 0 and not null", ErrInvalidInput)
	// ErrMissingGross は控除計算に総支給額が渡されなかった場合に返却されます。
	ErrMissingGross = fmt.Errorf("%w: gross pay cannot be null", ErrInvalidInput)
	// ErrNegativeNet は差引支給額が負数になる場合に返却されます。
	ErrNegativeNet = fmt.Errorf("%w: net pay cannot be negative", ErrInvalidInput)
)
