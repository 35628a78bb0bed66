// internal/handlers/community/matcher_test.go
package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantscape-service/internal/models"
)

func user(name string, plants ...string) models.User {
	refs := make([]models.PlantRef, len(plants))
	for i, p := range plants {
		refs[i] = models.PlantRef{Name: p}
	}
	return models.User{Name: name, Plants: refs}
}

func TestGroupUsersBySharedPlants(t *testing.T) {
	users := []models.User{
		user("Raj", "Spider Plant", "Snake Plant"),
		user("Aisha", "Guava", "Lemon"),
		user("Noah", "Snake Plant", "Cactus"),
		user("Liam", "Lemon", "Apple"),
	}

	groups := GroupUsers(users, 2)

	require.Len(t, groups, 2)
	assert.Equal(t, []string{"Raj", "Noah"}, groups[0].Users)
	assert.Equal(t, []string{"Aisha", "Liam"}, groups[1].Users)
}

func TestGroupUsersTransitiveConnection(t *testing.T) {
	// A-B share basil, B-C share mint: all three form one group.
	users := []models.User{
		user("A", "Basil"),
		user("B", "Basil", "Mint"),
		user("C", "Mint"),
	}

	groups := GroupUsers(users, 2)

	require.Len(t, groups, 1)
	assert.Equal(t, []string{"A", "B", "C"}, groups[0].Users)
}

func TestGroupUsersCaseInsensitiveNames(t *testing.T) {
	users := []models.User{
		user("A", "snake plant"),
		user("B", "Snake Plant "),
	}

	groups := GroupUsers(users, 2)

	require.Len(t, groups, 1)
	assert.Equal(t, []string{"A", "B"}, groups[0].Users)
}

func TestGroupUsersDropsSingletons(t *testing.T) {
	users := []models.User{
		user("Alone", "Baobab"),
		user("A", "Fern"),
		user("B", "Fern"),
	}

	groups := GroupUsers(users, 2)

	require.Len(t, groups, 1)
	assert.Equal(t, []string{"A", "B"}, groups[0].Users)
}

func TestGroupUsersNoOverlapReturnsEmptySlice(t *testing.T) {
	users := []models.User{
		user("A", "Fern"),
		user("B", "Oak"),
	}

	groups := GroupUsers(users, 2)

	require.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupDescriptionNamesSharedPlants(t *testing.T) {
	users := []models.User{
		user("Raj", "Snake Plant", "Pothos"),
		user("Noah", "Snake Plant", "Pothos", "Cactus"),
	}

	groups := GroupUsers(users, 2)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Description, 1)
	desc := groups[0].Description[0]
	assert.Contains(t, desc, "Raj and Noah")
	assert.Contains(t, desc, "Pothos")
	assert.Contains(t, desc, "Snake Plant")
}

func TestGroupBenefitsScaleWithSize(t *testing.T) {
	users := []models.User{
		user("A", "Fern"),
		user("B", "Fern"),
		user("C", "Fern"),
	}

	groups := GroupUsers(users, 2)

	require.Len(t, groups, 1)
	benefits := groups[0].Benefits
	require.Len(t, benefits, 3)
	assert.Equal(t, "oxygen production", benefits[0].Type)
	assert.Equal(t, "12%", benefits[0].Amount)
	assert.True(t, benefits[0].Direction)
	assert.False(t, benefits[1].Direction)
}

func TestGroupUsersIgnoresEmptyPlantNames(t *testing.T) {
	users := []models.User{
		user("A", "", "Fern"),
		user("B", "Fern", ""),
	}

	groups := GroupUsers(users, 2)

	require.Len(t, groups, 1)
	assert.Equal(t, []string{"Fern"}, sharedPlants(users, []int{0, 1}))
}
