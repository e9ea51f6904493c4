package roster

import "errors"

var (
	// ErrInvalidRecord は名簿の行が不正な場合に返却されます。
	ErrInvalidRecord = errors.New("roster: invalid record")
	// ErrDuplicateEmployeeID は同一名簿内で社員 ID が重複している場合に返却されます。
	ErrDuplicateEmployeeID = errors.New("roster: duplicate employee id")
)
