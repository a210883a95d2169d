package domain

import "time"

// Service response types shared between the business layer and the HTTP
// handlers. Handlers serialize these verbatim.

// PlantResponse reports a single successful planting.
type PlantResponse struct {
	SlotIndex int       `json:"slot_index"`
	Plant     PlantKind `json:"plant"`
	ReadyAt   time.Time `json:"ready_at"`
	WaterLeft int       `json:"water_left"`
	Message   string    `json:"message"`
}

// PlantAllResponse reports a bulk planting pass over all empty slots.
type PlantAllResponse struct {
	Planted     int    `json:"planted"`
	SlotIndexes []int  `json:"slot_indexes"`
	WaterLeft   int    `json:"water_left"`
	Message     string `json:"message"`
}

// HarvestResponse reports a single harvest with its resolved reward bundle.
type HarvestResponse struct {
	SlotIndex int             `json:"slot_index"`
	Plant     PlantKind       `json:"plant"`
	Rewards   []ResourceDelta `json:"rewards"`
	SlotLevel int             `json:"slot_level"`
	LeveledUp bool            `json:"leveled_up"`
	Message   string          `json:"message"`
}

// HarvestAllResponse reports a bulk harvest over all ready slots.
type HarvestAllResponse struct {
	Harvested      int             `json:"harvested"`
	Rewards        []ResourceDelta `json:"rewards"`
	SlotsLeveledUp int             `json:"slots_leveled_up"`
	Message        string          `json:"message"`
}

// RemoveResponse reports cleared slots. Removal never refunds anything.
type RemoveResponse struct {
	Cleared int    `json:"cleared"`
	Message string `json:"message"`
}

// AccelerateResponse reports a growth speedup.
type AccelerateResponse struct {
	SlotIndex       int       `json:"slot_index"`
	ReadyAt         time.Time `json:"ready_at"`
	UsedAccelerator bool      `json:"used_accelerator"`
	AdViewsLeft     int       `json:"ad_views_left"`
	Message         string    `json:"message"`
}

// WaterResponse reports a water bottle refill.
type WaterResponse struct {
	Restored  int    `json:"restored"`
	WaterLeft int    `json:"water_left"`
	Message   string `json:"message"`
}

// TickResponse reports a background clock pass for one player.
type TickResponse struct {
	NewlyReady     int   `json:"newly_ready"`
	WaterRecovered int   `json:"water_recovered"`
	WagesPaid      int64 `json:"wages_paid"`
}

// BuySlotResponse reports a slot purchase and the escalated next price.
type BuySlotResponse struct {
	SlotIndex int    `json:"slot_index"`
	PricePaid int64  `json:"price_paid"`
	NextPrice int64  `json:"next_price"`
	Balance   int64  `json:"balance"`
	Message   string `json:"message"`
}

// DepositResponse reports an external top-up.
type DepositResponse struct {
	Amount  int64  `json:"amount"`
	Balance int64  `json:"balance"`
	Message string `json:"message"`
}

// WithdrawResponse reports a withdrawal with its burn fee breakdown.
type WithdrawResponse struct {
	Requested int64  `json:"requested"`
	Burned    int64  `json:"burned"`
	Paid      int64  `json:"paid"`
	Balance   int64  `json:"balance"`
	Message   string `json:"message"`
}

// SellGoldFruitsResponse reports a gold fruit sale with commission breakdown.
type SellGoldFruitsResponse struct {
	Sold       int    `json:"sold"`
	Gross      int64  `json:"gross"`
	Commission int64  `json:"commission"`
	Net        int64  `json:"net"`
	Balance    int64  `json:"balance"`
	Message    string `json:"message"`
}

// TradeResponse reports a merchant trade in either direction.
type TradeResponse struct {
	OfferKey string       `json:"offer_key"`
	Resource ResourceKind `json:"resource"`
	Quantity int          `json:"quantity"`
	Total    int64        `json:"total"`
	Balance  int64        `json:"balance"`
	Message  string       `json:"message"`
}

// PremiumResponse reports a premium activation.
type PremiumResponse struct {
	Balance           int64  `json:"balance"`
	RecoveryPerMinute int    `json:"recovery_per_minute"`
	Message           string `json:"message"`
}

// CraftResponse reports a completed craft.
type CraftResponse struct {
	RecipeKey string       `json:"recipe_key"`
	Output    ResourceKind `json:"output"`
	Quantity  int          `json:"quantity"`
	Message   string       `json:"message"`
}

// DumpResponse reports a dump-sink sacrifice. Reward is nil when the dump
// yielded nothing.
type DumpResponse struct {
	Dumped  ResourceKind   `json:"dumped"`
	Tier    int            `json:"tier"`
	Reward  *ResourceDelta `json:"reward,omitempty"`
	Message string         `json:"message"`
}

// HireWorkerResponse reports a worker sent on shift.
type HireWorkerResponse struct {
	WorkerID int       `json:"worker_id"`
	EndsAt   time.Time `json:"ends_at"`
	Wage     int64     `json:"wage"`
	Balance  int64     `json:"balance"`
	Message  string    `json:"message"`
}

// FireWorkerResponse reports a worker recalled early. The shift cost and
// wage are both forfeit.
type FireWorkerResponse struct {
	WorkerID int    `json:"worker_id"`
	Message  string `json:"message"`
}

// SlotView is the read-model projection of a slot.
type SlotView struct {
	Index            int       `json:"index"`
	State            SlotState `json:"state"`
	Plant            PlantKind `json:"plant,omitempty"`
	Level            int       `json:"level"`
	RemainingSeconds int64     `json:"remaining_seconds"`
}

// WorkerView is the read-model projection of a worker.
type WorkerView struct {
	ID               int          `json:"id"`
	Status           WorkerStatus `json:"status"`
	RemainingSeconds int64        `json:"remaining_seconds"`
}

// FarmSnapshot is the complete read-model of one farm, as served to clients.
type FarmSnapshot struct {
	PlayerID    string               `json:"player_id"`
	Username    string               `json:"username"`
	Balance     int64                `json:"balance"`
	SlotPrice   int64                `json:"slot_price"`
	Premium     bool                 `json:"premium"`
	Resources   map[ResourceKind]int `json:"resources"`
	Slots       []SlotView           `json:"slots"`
	Water       WaterPool            `json:"water"`
	Workers     []WorkerView         `json:"workers"`
	AdViewsLeft int                  `json:"ad_views_left"`
	Stats       Stats                `json:"stats"`
	GeneratedAt time.Time            `json:"generated_at"`
}

// RegisterResponse reports a freshly registered player.
type RegisterResponse struct {
	PlayerID string        `json:"player_id"`
	Snapshot *FarmSnapshot `json:"snapshot"`
	Message  string        `json:"message"`
}
