package service_test

import (
	"testing"

	"broker-crm-backend/internal/database/models"
	"broker-crm-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allocationsFor(shares map[uuid.UUID]int) []models.LeadDistributionAllocation {
	allocations := make([]models.LeadDistributionAllocation, 0, len(shares))
	for userID, pct := range shares {
		allocations = append(allocations, models.LeadDistributionAllocation{
			UserID:     userID,
			UserName:   "user",
			Percentage: pct,
		})
	}
	return allocations
}

func TestDistributionAllocator_HonorsPercentagesOverFullCycle(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	allocator := service.NewDistributionAllocator([]models.LeadDistributionAllocation{
		{UserID: userA, UserName: "A", Percentage: 60},
		{UserID: userB, UserName: "B", Percentage: 40},
	}, 0)

	counts := map[uuid.UUID]int{}
	for i := 0; i < 100; i++ {
		next := allocator.Next()
		require.NotNil(t, next)
		counts[*next]++
	}

	assert.Equal(t, 60, counts[userA])
	assert.Equal(t, 40, counts[userB])
}

func TestDistributionAllocator_CounterWrapsAtHundred(t *testing.T) {
	userA := uuid.New()
	allocator := service.NewDistributionAllocator(allocationsFor(map[uuid.UUID]int{userA: 100}), 99)

	next := allocator.Next()
	require.NotNil(t, next)
	assert.Equal(t, userA, *next)
	assert.Equal(t, 0, allocator.Counter())
}

func TestDistributionAllocator_ResumesFromPersistedCounter(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	allocations := []models.LeadDistributionAllocation{
		{UserID: userA, UserName: "A", Percentage: 50},
		{UserID: userB, UserName: "B", Percentage: 50},
	}

	// Counter 50 lands in the second user's slot run
	allocator := service.NewDistributionAllocator(allocations, 50)
	next := allocator.Next()
	require.NotNil(t, next)
	assert.Equal(t, userB, *next)
	assert.Equal(t, 51, allocator.Counter())
}

func TestDistributionAllocator_EmptyAllocations(t *testing.T) {
	allocator := service.NewDistributionAllocator(nil, 5)
	assert.Nil(t, allocator.Next())
	assert.False(t, allocator.Used())
	assert.Equal(t, 5, allocator.Counter())
}

func TestDistributionAllocator_UsedOnlyAfterDraw(t *testing.T) {
	userA := uuid.New()
	allocator := service.NewDistributionAllocator(allocationsFor(map[uuid.UUID]int{userA: 100}), 0)

	assert.False(t, allocator.Used())
	allocator.Next()
	assert.True(t, allocator.Used())
}

func TestAssigneeResolver_EmailHintWins(t *testing.T) {
	owner := service.AssignableUser{UserID: uuid.New(), Email: "owner@firm.com", Name: "Owner Person"}
	member := service.AssignableUser{UserID: uuid.New(), Email: "jamie@firm.com", Name: "Jamie Smith"}
	resolver := service.NewAssigneeResolver([]service.AssignableUser{owner, member}, nil)

	// Email hint beats a conflicting name hint
	got := resolver.Resolve("JAMIE@firm.com", "Owner Person")
	require.NotNil(t, got)
	assert.Equal(t, member.UserID, *got)
}

func TestAssigneeResolver_NameExactMatch(t *testing.T) {
	member := service.AssignableUser{UserID: uuid.New(), Email: "jamie@firm.com", Name: "Jamie Smith"}
	resolver := service.NewAssigneeResolver([]service.AssignableUser{member}, nil)

	got := resolver.Resolve("", "  jamie smith ")
	require.NotNil(t, got)
	assert.Equal(t, member.UserID, *got)
}

func TestAssigneeResolver_NameFuzzyMatchPrefersOwner(t *testing.T) {
	owner := service.AssignableUser{UserID: uuid.New(), Email: "owner@firm.com", Name: "Jamie Smithers"}
	member := service.AssignableUser{UserID: uuid.New(), Email: "j2@firm.com", Name: "Jamie Smithson"}
	resolver := service.NewAssigneeResolver([]service.AssignableUser{owner, member}, nil)

	// "jamie smith" is contained in both names; owner is first in the list
	got := resolver.Resolve("", "Jamie Smith")
	require.NotNil(t, got)
	assert.Equal(t, owner.UserID, *got)
}

func TestAssigneeResolver_FuzzyMatchesBothDirections(t *testing.T) {
	member := service.AssignableUser{UserID: uuid.New(), Email: "j@firm.com", Name: "Jamie"}
	resolver := service.NewAssigneeResolver([]service.AssignableUser{member}, nil)

	// Hint longer than the stored name still matches
	got := resolver.Resolve("", "Jamie Smith")
	require.NotNil(t, got)
	assert.Equal(t, member.UserID, *got)
}

func TestAssigneeResolver_UnmatchedHintLeavesUnassigned(t *testing.T) {
	userA := uuid.New()
	allocator := service.NewDistributionAllocator(allocationsFor(map[uuid.UUID]int{userA: 100}), 0)
	member := service.AssignableUser{UserID: uuid.New(), Email: "jamie@firm.com", Name: "Jamie Smith"}
	resolver := service.NewAssigneeResolver([]service.AssignableUser{member}, allocator)

	// A hint that matches nobody must not fall back to distribution
	assert.Nil(t, resolver.Resolve("unknown@firm.com", ""))
	assert.Nil(t, resolver.Resolve("", "Nobody Here"))
	assert.False(t, allocator.Used())
}

func TestAssigneeResolver_NoHintUsesDistribution(t *testing.T) {
	userA := uuid.New()
	allocator := service.NewDistributionAllocator(allocationsFor(map[uuid.UUID]int{userA: 100}), 0)
	resolver := service.NewAssigneeResolver(nil, allocator)

	got := resolver.Resolve("", "")
	require.NotNil(t, got)
	assert.Equal(t, userA, *got)
	assert.True(t, allocator.Used())
}

func TestAssigneeResolver_NoHintNoAllocator(t *testing.T) {
	resolver := service.NewAssigneeResolver(nil, nil)
	assert.Nil(t, resolver.Resolve("", ""))
}
