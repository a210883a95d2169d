package domain

// Stats are lifetime counters for one farm.
type Stats struct {
	PlantsPlanted     int64 `json:"plants_planted"`
	HarvestsCollected int64 `json:"harvests_collected"`
	ItemsCrafted      int64 `json:"items_crafted"`
	ResourcesDumped   int64 `json:"resources_dumped"`
	SlotsPurchased    int64 `json:"slots_purchased"`
	WorkersHired      int64 `json:"workers_hired"`
	TonEarned         int64 `json:"ton_earned"`
	TonWithdrawn      int64 `json:"ton_withdrawn"`
	TonBurned         int64 `json:"ton_burned"`
}
