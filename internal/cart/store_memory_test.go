package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	store *Store
}

func (s *StoreSuite) SetupTest() {
	s.store = NewStore()
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) TestEmptySummary() {
	sum := s.store.Summary()
	assert.Equal(s.T(), Summary{Lines: []Line{}}, sum)
}

func (s *StoreSuite) TestAddAccumulates() {
	s.store.Add("Aspirin", 10, 1)
	s.store.Add("Aspirin", 10, 1)

	sum := s.store.Summary()
	require.Len(s.T(), sum.Lines, 1)
	assert.Equal(s.T(), Line{Name: "Aspirin", Price: 10, Quantity: 2}, sum.Lines[0])
	assert.Equal(s.T(), 20.0, sum.Total)
	assert.Equal(s.T(), 2, sum.Count)
}

func (s *StoreSuite) TestFirstPriceWins() {
	s.store.Add("Aspirin", 10, 1)
	s.store.Add("Aspirin", 99, 3)

	sum := s.store.Summary()
	require.Len(s.T(), sum.Lines, 1)
	assert.Equal(s.T(), Line{Name: "Aspirin", Price: 10, Quantity: 4}, sum.Lines[0])
}

func (s *StoreSuite) TestInsertionOrderPreserved() {
	s.store.Add("Aspirin", 2.50, 3)
	s.store.Add("Gauze", 1.00, 2)

	sum := s.store.Summary()
	require.Len(s.T(), sum.Lines, 2)
	assert.Equal(s.T(), "Aspirin", sum.Lines[0].Name)
	assert.Equal(s.T(), "Gauze", sum.Lines[1].Name)
	assert.Equal(s.T(), 9.50, sum.Total)
	assert.Equal(s.T(), 5, sum.Count)
}

func (s *StoreSuite) TestIncreaseAndDecrease() {
	s.store.Add("Gauze", 1, 1)
	s.store.Increase("Gauze")
	s.store.Increase("Gauze")
	s.store.Decrease("Gauze")

	sum := s.store.Summary()
	require.Len(s.T(), sum.Lines, 1)
	assert.Equal(s.T(), 2, sum.Lines[0].Quantity)
}

func (s *StoreSuite) TestDecreaseRemovesAtZero() {
	s.store.Add("Gauze", 1, 1)
	s.store.Decrease("Gauze")

	sum := s.store.Summary()
	assert.Empty(s.T(), sum.Lines)
	assert.Zero(s.T(), sum.Total)
	assert.Zero(s.T(), sum.Count)
}

func (s *StoreSuite) TestAbsentNameMutationsAreNoOps() {
	s.store.Add("Aspirin", 2, 1)

	assert.NotPanics(s.T(), func() {
		s.store.Increase("nonexistent")
		s.store.Decrease("nonexistent")
	})

	sum := s.store.Summary()
	require.Len(s.T(), sum.Lines, 1)
	assert.Equal(s.T(), Line{Name: "Aspirin", Price: 2, Quantity: 1}, sum.Lines[0])
}

func (s *StoreSuite) TestInvalidAddIsIgnored() {
	s.store.Add("", 5, 1)
	s.store.Add("Aspirin", 5, 0)

	assert.Empty(s.T(), s.store.Summary().Lines)
}

func (s *StoreSuite) TestClearIsIdempotent() {
	s.store.Add("Aspirin", 2, 1)
	s.store.Clear()
	s.store.Clear()

	assert.Equal(s.T(), Summary{Lines: []Line{}}, s.store.Summary())
}

func (s *StoreSuite) TestCountMatchesLineQuantities() {
	s.store.Add("a", 1, 2)
	s.store.Add("b", 2, 5)
	s.store.Increase("a")
	s.store.Decrease("b")
	s.store.Decrease("c")

	sum := s.store.Summary()
	total := 0
	for _, line := range sum.Lines {
		require.Positive(s.T(), line.Quantity)
		total += line.Quantity
	}
	assert.Equal(s.T(), total, sum.Count)
}

func (s *StoreSuite) TestSubscribeNotifiesOnEffectiveMutations() {
	var got []Summary
	s.store.Subscribe(func(sum Summary) { got = append(got, sum) })

	s.store.Add("Aspirin", 2, 1) // notify 1
	s.store.Increase("Aspirin")  // notify 2
	s.store.Increase("missing")  // no-op, silent
	s.store.Decrease("missing")  // no-op, silent
	s.store.Clear()              // notify 3
	s.store.Clear()              // already empty, silent

	require.Len(s.T(), got, 3)
	assert.Equal(s.T(), 1, got[0].Count)
	assert.Equal(s.T(), 2, got[1].Count)
	assert.Zero(s.T(), got[2].Count)
}
