package payrun

import "errors"

var (
	// ErrEmployeeNotFound は指定された社員 ID が名簿に存在しない場合に返却されます。
	ErrEmployeeNotFound = errors.New("payrun: employee not found")
)
