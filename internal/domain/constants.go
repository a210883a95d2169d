package domain

import "time"

// Starting farm layout, matching the original wallet-connect bonus.
const (
	InitialSlots      = 5
	InitialGreenSeeds = 3
	InitialBalance    = 10
	InitialWorkers    = 2
)

// Slot purchase pricing: each purchase multiplies the next price by 1.5, floored.
const (
	BaseSlotPrice      = 10
	SlotPriceNumerator = 3 // price growth of 3/2 applied with integer math
	SlotPriceDivisor   = 2
)

// Water pool tuning. The recovery rate is pool-level state so premium can
// double it without touching plant configs.
const (
	WaterMax               = 30
	WaterRecoveryPerMinute = 1
	PlantWaterCost         = 1
	WaterBottleRefill      = 10
)

// Growth acceleration: an accelerated plant keeps 10% of its remaining time.
const (
	AdViewDailyLimit        = 5
	AccelerateRetainPercent = 10
)

// Harvest slot level-up chance per harvest.
const SlotLevelUpChance = 0.05

// Economy tuning.
const (
	GoldFruitUnitPrice  = 5
	SellCommissionPct   = 10
	WithdrawBurnPct     = 5
	WithdrawMinimum     = 10
	PremiumPrice        = 100
	PremiumRecoveryMult = 2
)

// Worker shifts.
const (
	WorkerHireCost = 20
	WorkerWage     = 30
)

// WorkerShiftDuration is how long a hired worker stays on the clock.
const WorkerShiftDuration = 4 * time.Hour

// AdQuotaDayFormat is the calendar-day stamp used for lazy daily resets (UTC).
const AdQuotaDayFormat = "2006-01-02"
