package loan

// PortfolioSummary holds the aggregates computed over the full loan set.
// Every field resolves to 0 on an empty table, never NULL.
// AvgInterestRate is a fraction, matching the stored column.
type PortfolioSummary struct {
	AvgInterestRate        float64 `gorm:"column:avg_interest_rate" json:"avg_interest_rate"`
	AvgPayment             float64 `gorm:"column:avg_payment" json:"avg_payment"`
	AvgOriginalPrincipal   float64 `gorm:"column:avg_original_principal" json:"avg_original_principal"`
	TotalOriginalPrincipal float64 `gorm:"column:total_original_principal" json:"total_original_principal"`
	AvgCurrentPrincipal    float64 `gorm:"column:avg_current_principal" json:"avg_current_principal"`
	TotalCurrentPrincipal  float64 `gorm:"column:total_current_principal" json:"total_current_principal"`
	AvgPropertyValue       float64 `gorm:"column:avg_property_value" json:"avg_property_value"`
	TotalPropertyValue     float64 `gorm:"column:total_property_value" json:"total_property_value"`
}
