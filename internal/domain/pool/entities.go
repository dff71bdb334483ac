package pool

// Pool is a named grouping of loans. Names are stored upper-cased and are
// unique at the store level; pools are created during ingestion and never
// renamed or deleted afterwards.
type Pool struct {
	ID       uint64 `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	PoolName string `gorm:"column:pool_name;size:128;not null;uniqueIndex:ux_pools_pool_name" json:"pool_name"`
}

func (Pool) TableName() string { return "pools" }

// Summary holds the per-pool aggregates computed by the store.
// AvgInterestRate is a fraction (0.0450 = 4.50%), like the stored column.
type Summary struct {
	PoolName               string  `gorm:"column:pool_name" json:"pool_name"`
	TotalPropertyValue     float64 `gorm:"column:total_property_value" json:"total_property_value"`
	AvgPropertyValue       float64 `gorm:"column:avg_property_value" json:"avg_property_value"`
	TotalCurrentPrincipal  float64 `gorm:"column:total_current_principal" json:"total_current_principal"`
	AvgCurrentPrincipal    float64 `gorm:"column:avg_current_principal" json:"avg_current_principal"`
	TotalOriginalPrincipal float64 `gorm:"column:total_original_principal" json:"total_original_principal"`
	AvgOriginalPrincipal   float64 `gorm:"column:avg_original_principal" json:"avg_original_principal"`
	AvgInterestRate        float64 `gorm:"column:avg_interest_rate" json:"avg_interest_rate"`
	AvgPayment             float64 `gorm:"column:avg_payment" json:"avg_payment"`
}
