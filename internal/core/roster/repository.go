package roster

import "context"

// Repository は名簿の取得元の抽象です。返却順は給与計算結果の順序になります。
type Repository interface {
	List(ctx context.Context) ([]Record, error)
}
