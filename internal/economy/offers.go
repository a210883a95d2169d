package economy

import "github.com/dmkorzh/farmbox/internal/domain"

// The merchant's board is fixed at build time. Keys are stable API identifiers.
var offerBoard = []domain.MerchantOffer{
	{
		Key:       "water_bottle_pack",
		Direction: domain.OfferSellToPlayer,
		Kind:      domain.ResourceWaterBottle,
		Quantity:  1,
		UnitPrice: 5,
	},
	{
		Key:       "fertilizer_bag",
		Direction: domain.OfferSellToPlayer,
		Kind:      domain.ResourceFertilizer,
		Quantity:  1,
		UnitPrice: 8,
	},
	{
		Key:       "green_fruit_buyback",
		Direction: domain.OfferBuyFromPlayer,
		Kind:      domain.ResourceGreenFruit,
		Quantity:  1,
		UnitPrice: 2,
	},
	{
		Key:       "gold_fruit_buyback",
		Direction: domain.OfferBuyFromPlayer,
		Kind:      domain.ResourceGoldFruit,
		Quantity:  1,
		UnitPrice: 5,
	},
}

// Offers returns a copy of the merchant board for the query API.
func Offers() []domain.MerchantOffer {
	out := make([]domain.MerchantOffer, len(offerBoard))
	copy(out, offerBoard)
	return out
}

func findOffer(key string) (domain.MerchantOffer, bool) {
	for _, o := range offerBoard {
		if o.Key == key {
			return o, true
		}
	}
	return domain.MerchantOffer{}, false
}
