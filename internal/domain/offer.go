package domain

// OfferDirection distinguishes merchant stock sold to the player from goods
// the merchant buys back.
type OfferDirection string

const (
	// OfferSellToPlayer: the merchant sells, the player pays.
	OfferSellToPlayer OfferDirection = "sell_to_player"
	// OfferBuyFromPlayer: the merchant buys, the player is paid.
	OfferBuyFromPlayer OfferDirection = "buy_from_player"
)

// MerchantOffer is a fixed-price, fixed-quantity trade.
type MerchantOffer struct {
	Key       string         `json:"key"`
	Direction OfferDirection `json:"direction"`
	Kind      ResourceKind   `json:"kind"`
	Quantity  int            `json:"quantity"`
	UnitPrice int64          `json:"unit_price"`
}

// Total returns the currency amount exchanged by one transaction.
func (o MerchantOffer) Total() int64 {
	return o.UnitPrice * int64(o.Quantity)
}
