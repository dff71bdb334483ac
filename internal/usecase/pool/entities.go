package pool

type PoolDTO struct {
	ID       uint64 `json:"id"`
	PoolName string `json:"pool_name"`
}
