package economy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkorzh/farmbox/internal/database/memory"
	"github.com/dmkorzh/farmbox/internal/domain"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, balance int64, grants map[domain.ResourceKind]int) (*service, *memory.FarmRepository) {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewFarmRepository()

	st := domain.NewFarmState("p1", "alice", testStart)
	st.Balance = balance
	for kind, qty := range grants {
		st.Credit(kind, qty)
	}
	require.NoError(t, repo.CreateFarm(ctx, st))

	return &service{repo: repo, now: func() time.Time { return testStart }}, repo
}

func farmState(t *testing.T, repo *memory.FarmRepository) *domain.FarmState {
	t.Helper()
	st, err := repo.GetFarm(context.Background(), "p1")
	require.NoError(t, err)
	return st
}

func TestBuySlotEscalatesPrice(t *testing.T) {
	svc, repo := newTestService(t, 100, nil)

	resp, err := svc.BuySlot(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.InitialSlots, resp.SlotIndex)
	assert.EqualValues(t, 10, resp.PricePaid)
	assert.EqualValues(t, 15, resp.NextPrice)
	assert.EqualValues(t, 90, resp.Balance)

	// Second purchase pays the escalated price, floored by integer math.
	resp, err = svc.BuySlot(context.Background(), "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 15, resp.PricePaid)
	assert.EqualValues(t, 22, resp.NextPrice)

	st := farmState(t, repo)
	assert.Len(t, st.Slots, domain.InitialSlots+2)
	assert.EqualValues(t, 2, st.Stats.SlotsPurchased)
}

func TestBuySlotInsufficientFunds(t *testing.T) {
	svc, repo := newTestService(t, 5, nil)

	_, err := svc.BuySlot(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	st := farmState(t, repo)
	assert.Len(t, st.Slots, domain.InitialSlots)
	assert.EqualValues(t, 5, st.Balance)
}

func TestDeposit(t *testing.T) {
	svc, _ := newTestService(t, 0, nil)

	resp, err := svc.Deposit(context.Background(), "p1", 50)
	require.NoError(t, err)
	assert.EqualValues(t, 50, resp.Balance)

	_, err = svc.Deposit(context.Background(), "p1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestWithdrawBurnsFee(t *testing.T) {
	svc, repo := newTestService(t, 50, nil)

	resp, err := svc.Withdraw(context.Background(), "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 50, resp.Requested)
	assert.EqualValues(t, 2, resp.Burned) // floor(50 * 5%)
	assert.EqualValues(t, 48, resp.Paid)
	assert.EqualValues(t, 0, resp.Balance)

	st := farmState(t, repo)
	assert.EqualValues(t, 0, st.Balance)
	assert.EqualValues(t, 48, st.Stats.TonWithdrawn)
	assert.EqualValues(t, 2, st.Stats.TonBurned)
}

func TestWithdrawBelowMinimum(t *testing.T) {
	svc, repo := newTestService(t, domain.WithdrawMinimum-1, nil)

	_, err := svc.Withdraw(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrBelowMinimum)

	// Balance untouched by the failed withdraw
	st := farmState(t, repo)
	assert.EqualValues(t, domain.WithdrawMinimum-1, st.Balance)
}

func TestSellGoldFruitsTakesCommission(t *testing.T) {
	svc, repo := newTestService(t, 0, map[domain.ResourceKind]int{
		domain.ResourceGoldFruit: 4,
	})

	resp, err := svc.SellGoldFruits(context.Background(), "p1", 3)
	require.NoError(t, err)
	assert.EqualValues(t, 15, resp.Gross)     // 3 * 5
	assert.EqualValues(t, 1, resp.Commission) // floor(15 * 10%)
	assert.EqualValues(t, 14, resp.Net)
	assert.EqualValues(t, 14, resp.Balance)

	st := farmState(t, repo)
	assert.Equal(t, 1, st.ResourceCount(domain.ResourceGoldFruit))
}

func TestSellGoldFruitsShortLedger(t *testing.T) {
	svc, _ := newTestService(t, 0, map[domain.ResourceKind]int{
		domain.ResourceGoldFruit: 1,
	})

	_, err := svc.SellGoldFruits(context.Background(), "p1", 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientResource)
}

func TestTradeBuyFromMerchant(t *testing.T) {
	svc, repo := newTestService(t, 20, nil)

	resp, err := svc.Trade(context.Background(), "p1", "water_bottle_pack", 2)
	require.NoError(t, err)
	assert.Equal(t, domain.ResourceWaterBottle, resp.Resource)
	assert.Equal(t, 2, resp.Quantity)
	assert.EqualValues(t, 10, resp.Total)
	assert.EqualValues(t, 10, resp.Balance)

	st := farmState(t, repo)
	assert.Equal(t, 2, st.ResourceCount(domain.ResourceWaterBottle))
}

func TestTradeSellToMerchant(t *testing.T) {
	svc, repo := newTestService(t, 0, map[domain.ResourceKind]int{
		domain.ResourceGreenFruit: 3,
	})

	resp, err := svc.Trade(context.Background(), "p1", "green_fruit_buyback", 3)
	require.NoError(t, err)
	assert.EqualValues(t, 6, resp.Total)
	assert.EqualValues(t, 6, resp.Balance)

	st := farmState(t, repo)
	assert.Equal(t, 0, st.ResourceCount(domain.ResourceGreenFruit))
}

func TestTradeUnknownOffer(t *testing.T) {
	svc, _ := newTestService(t, 0, nil)

	_, err := svc.Trade(context.Background(), "p1", "dragon_egg", 1)
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)
}

func TestBuyPremiumDoublesRecovery(t *testing.T) {
	svc, repo := newTestService(t, domain.PremiumPrice, nil)

	resp, err := svc.BuyPremium(context.Background(), "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, resp.Balance)
	assert.Equal(t, domain.WaterRecoveryPerMinute*domain.PremiumRecoveryMult, resp.RecoveryPerMinute)

	st := farmState(t, repo)
	assert.True(t, st.Premium)

	// No stacking.
	_, err = svc.BuyPremium(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrPremiumActive)
}

func TestListOffers(t *testing.T) {
	svc, _ := newTestService(t, 0, nil)

	offers := svc.ListOffers(context.Background())
	require.Len(t, offers, 4)
	for _, o := range offers {
		assert.True(t, o.Direction == domain.OfferSellToPlayer || o.Direction == domain.OfferBuyFromPlayer)
	}
}
