package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFarmStateStartingLayout(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	st := NewFarmState("p1", "alice", now)

	assert.Len(t, st.Slots, InitialSlots)
	for i, slot := range st.Slots {
		assert.Equal(t, i, slot.Index)
		assert.Equal(t, SlotEmpty, slot.State)
		assert.Equal(t, 1, slot.Level)
	}
	assert.Equal(t, InitialGreenSeeds, st.ResourceCount(ResourceGreenSeed))
	assert.EqualValues(t, InitialBalance, st.Balance)
	assert.EqualValues(t, BaseSlotPrice, st.SlotPrice)
	assert.Equal(t, WaterMax, st.Water.Current)
	assert.Len(t, st.Workers, InitialWorkers)
}

func TestDebitInsufficientLeavesLedgerUnchanged(t *testing.T) {
	st := NewFarmState("p1", "alice", time.Now())

	err := st.Debit(ResourceGreenSeed, InitialGreenSeeds+1)
	require.ErrorIs(t, err, ErrInsufficientResource)
	assert.Equal(t, InitialGreenSeeds, st.ResourceCount(ResourceGreenSeed))
}

func TestDebitNeverGoesNegative(t *testing.T) {
	st := NewFarmState("p1", "alice", time.Now())

	require.NoError(t, st.Debit(ResourceGreenSeed, InitialGreenSeeds))
	assert.Equal(t, 0, st.ResourceCount(ResourceGreenSeed))

	err := st.Debit(ResourceGreenSeed, 1)
	assert.ErrorIs(t, err, ErrInsufficientResource)
	assert.Equal(t, 0, st.ResourceCount(ResourceGreenSeed))
}

func TestDebitRejectsNonPositiveQuantity(t *testing.T) {
	st := NewFarmState("p1", "alice", time.Now())

	assert.ErrorIs(t, st.Debit(ResourceGreenSeed, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, st.Debit(ResourceGreenSeed, -5), ErrInvalidQuantity)
}

func TestDebitBalance(t *testing.T) {
	st := NewFarmState("p1", "alice", time.Now())
	st.Balance = 5

	err := st.DebitBalance(10)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.EqualValues(t, 5, st.Balance)

	require.NoError(t, st.DebitBalance(5))
	assert.EqualValues(t, 0, st.Balance)
}

func TestCreditIgnoresNonPositive(t *testing.T) {
	st := NewFarmState("p1", "alice", time.Now())

	st.Credit(ResourceFertilizer, 0)
	st.Credit(ResourceFertilizer, -3)
	assert.Equal(t, 0, st.ResourceCount(ResourceFertilizer))

	st.CreditBalance(-100)
	assert.EqualValues(t, InitialBalance, st.Balance)
}

func TestSlotLookup(t *testing.T) {
	st := NewFarmState("p1", "alice", time.Now())

	slot, err := st.Slot(0)
	require.NoError(t, err)
	assert.Equal(t, 0, slot.Index)

	_, err = st.Slot(InitialSlots)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	_, err = st.Slot(-1)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCloneIsDeep(t *testing.T) {
	st := NewFarmState("p1", "alice", time.Now())
	clone := st.Clone()

	clone.Credit(ResourceGoldSeed, 7)
	clone.Slots[0].State = SlotGrowing
	clone.Workers[0].Status = WorkerWorking

	assert.Equal(t, 0, st.ResourceCount(ResourceGoldSeed))
	assert.Equal(t, SlotEmpty, st.Slots[0].State)
	assert.Equal(t, WorkerFree, st.Workers[0].Status)
}

func TestNextSlotPriceEscalation(t *testing.T) {
	// 10 -> 15 -> 22 -> 33 with a floored 1.5x multiplier
	price := int64(BaseSlotPrice)
	var got []int64
	for i := 0; i < 4; i++ {
		price = NextSlotPrice(price)
		got = append(got, price)
	}
	assert.Equal(t, []int64{15, 22, 33, 49}, got)
}
