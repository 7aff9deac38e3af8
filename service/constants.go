package service

const (
	MaxBusinessNameLength = 200

	MaxDealAmount      = 1_000_000_000.0 // price, SDE
	MaxOperatingAmount = 10_000_000.0    // salary, costs, fees
	MaxPercent         = 100.0
	MinTermMonths      = 1
	MaxTermMonths      = 600 // 50 years

	// Sensitivity sweeps
	MaxSensitivityRangeMonths = 480
	DefaultSensitivityStep    = 12
)
