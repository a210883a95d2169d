package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/logger"
	"github.com/dmkorzh/farmbox/internal/metrics"
	"github.com/dmkorzh/farmbox/internal/repository"
)

// Service defines the currency and trading business logic
type Service interface {
	// BuySlot purchases one additional planting slot at the current price
	BuySlot(ctx context.Context, playerID string) (*domain.BuySlotResponse, error)

	// Deposit credits an external top-up to the balance
	Deposit(ctx context.Context, playerID string, amount int64) (*domain.DepositResponse, error)

	// Withdraw pays out the whole balance minus the burn fee
	Withdraw(ctx context.Context, playerID string) (*domain.WithdrawResponse, error)

	// SellGoldFruits converts gold fruits to currency minus commission
	SellGoldFruits(ctx context.Context, playerID string, quantity int) (*domain.SellGoldFruitsResponse, error)

	// Trade executes one merchant offer a given number of times
	Trade(ctx context.Context, playerID, offerKey string, times int) (*domain.TradeResponse, error)

	// BuyPremium activates the premium water recovery bonus
	BuyPremium(ctx context.Context, playerID string) (*domain.PremiumResponse, error)

	// ListOffers returns the merchant board
	ListOffers(ctx context.Context) []domain.MerchantOffer
}

type service struct {
	repo repository.Farm
	now  func() time.Time
}

// NewService creates a new economy service
func NewService(repo repository.Farm) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

// mutate runs one locked load-advance-mutate-save cycle for a player.
func (s *service) mutate(ctx context.Context, playerID string, fn func(st *domain.FarmState, now time.Time) error) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	st, err := tx.GetFarmForUpdate(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to load farm: %w", err)
	}

	now := s.now()
	domain.Advance(st, now)

	if err := fn(st, now); err != nil {
		return err
	}

	st.UpdatedAt = now
	if err := tx.SaveFarm(ctx, st); err != nil {
		return fmt.Errorf("failed to save farm: %w", err)
	}
	return tx.Commit(ctx)
}

// BuySlot purchases one additional planting slot at the current price
func (s *service) BuySlot(ctx context.Context, playerID string) (*domain.BuySlotResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("BuySlot called", "playerID", playerID)

	var resp *domain.BuySlotResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time) error {
		price := st.SlotPrice
		if err := st.DebitBalance(price); err != nil {
			return err
		}

		slot := st.AppendSlot()
		st.SlotPrice = domain.NextSlotPrice(price)
		st.Stats.SlotsPurchased++

		resp = &domain.BuySlotResponse{
			SlotIndex: slot.Index,
			PricePaid: price,
			NextPrice: st.SlotPrice,
			Balance:   st.Balance,
			Message:   fmt.Sprintf("Bought slot %d for %d TON", slot.Index, price),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.SlotsPurchased.Inc()
	return resp, nil
}

// Deposit credits an external top-up to the balance
func (s *service) Deposit(ctx context.Context, playerID string, amount int64) (*domain.DepositResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("Deposit called", "playerID", playerID, "amount", amount)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, amount)
	}

	var resp *domain.DepositResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time) error {
		st.CreditBalance(amount)
		st.Stats.TonEarned += amount

		resp = &domain.DepositResponse{
			Amount:  amount,
			Balance: st.Balance,
			Message: fmt.Sprintf("Deposited %d TON", amount),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TonEarned.Add(float64(amount))
	return resp, nil
}

// Withdraw cashes out the entire balance. The burn fee is floored, so tiny
// balances never burn below the integer grid; the minimum keeps the fee
// meaningful.
func (s *service) Withdraw(ctx context.Context, playerID string) (*domain.WithdrawResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("Withdraw called", "playerID", playerID)

	var resp *domain.WithdrawResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time) error {
		amount := st.Balance
		if amount < domain.WithdrawMinimum {
			return fmt.Errorf("%w: withdraw at least %d TON", domain.ErrBelowMinimum, domain.WithdrawMinimum)
		}
		if err := st.DebitBalance(amount); err != nil {
			return err
		}

		burned := amount * domain.WithdrawBurnPct / 100
		paid := amount - burned
		st.Stats.TonWithdrawn += paid
		st.Stats.TonBurned += burned

		resp = &domain.WithdrawResponse{
			Requested: amount,
			Burned:    burned,
			Paid:      paid,
			Balance:   st.Balance,
			Message:   fmt.Sprintf("Withdrew %d TON (%d burned)", paid, burned),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TonWithdrawn.Add(float64(resp.Paid))
	metrics.TonBurned.Add(float64(resp.Burned))
	return resp, nil
}

// SellGoldFruits converts gold fruits to currency minus commission
func (s *service) SellGoldFruits(ctx context.Context, playerID string, quantity int) (*domain.SellGoldFruitsResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("SellGoldFruits called", "playerID", playerID, "quantity", quantity)

	if quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}

	var resp *domain.SellGoldFruitsResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time) error {
		if err := st.Debit(domain.ResourceGoldFruit, quantity); err != nil {
			return err
		}

		gross := int64(quantity) * domain.GoldFruitUnitPrice
		commission := gross * domain.SellCommissionPct / 100
		net := gross - commission
		st.CreditBalance(net)
		st.Stats.TonEarned += net

		resp = &domain.SellGoldFruitsResponse{
			Sold:       quantity,
			Gross:      gross,
			Commission: commission,
			Net:        net,
			Balance:    st.Balance,
			Message:    fmt.Sprintf("Sold %d gold fruits for %d TON", quantity, net),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TonEarned.Add(float64(resp.Net))
	return resp, nil
}

// Trade executes one merchant offer a given number of times
func (s *service) Trade(ctx context.Context, playerID, offerKey string, times int) (*domain.TradeResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("Trade called", "playerID", playerID, "offer", offerKey, "times", times)

	offer, ok := findOffer(offerKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrOfferNotFound, offerKey)
	}
	if times <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, times)
	}

	qty := offer.Quantity * times
	total := offer.Total() * int64(times)

	var resp *domain.TradeResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time) error {
		switch offer.Direction {
		case domain.OfferSellToPlayer:
			if err := st.DebitBalance(total); err != nil {
				return err
			}
			st.Credit(offer.Kind, qty)
		case domain.OfferBuyFromPlayer:
			if err := st.Debit(offer.Kind, qty); err != nil {
				return err
			}
			st.CreditBalance(total)
			st.Stats.TonEarned += total
		}

		resp = &domain.TradeResponse{
			OfferKey: offer.Key,
			Resource: offer.Kind,
			Quantity: qty,
			Total:    total,
			Balance:  st.Balance,
			Message:  fmt.Sprintf("Traded %d %s for %d TON", qty, offer.Kind, total),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// BuyPremium activates the premium water recovery bonus. Buying twice is
// rejected rather than stacking.
func (s *service) BuyPremium(ctx context.Context, playerID string) (*domain.PremiumResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("BuyPremium called", "playerID", playerID)

	var resp *domain.PremiumResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time) error {
		if st.Premium {
			return domain.ErrPremiumActive
		}
		if err := st.DebitBalance(domain.PremiumPrice); err != nil {
			return err
		}

		st.Premium = true
		st.Water.RecoveryPerMinute = domain.WaterRecoveryPerMinute * domain.PremiumRecoveryMult

		resp = &domain.PremiumResponse{
			Balance:           st.Balance,
			RecoveryPerMinute: st.Water.RecoveryPerMinute,
			Message:           "Premium activated",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListOffers returns the merchant board
func (s *service) ListOffers(_ context.Context) []domain.MerchantOffer {
	return Offers()
}
