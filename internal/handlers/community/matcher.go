// internal/handlers/community/matcher.go
package community

import (
	"fmt"
	"sort"
	"strings"

	"plantscape-service/internal/models"
)

// GroupUsers partitions users into communities of shared plant
// interest. Two users are connected when they grow at least one plant
// in common (name comparison is case-insensitive); groups are the
// connected components of that relation, kept in request order.
// Components smaller than minGroupSize are dropped.
func GroupUsers(users []models.User, minGroupSize int) []models.Match {
	parent := make([]int, len(users))
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			// Lower index wins so components keep request order
			if ra < rb {
				parent[rb] = ra
			} else {
				parent[ra] = rb
			}
		}
	}

	// plant name -> first user index seen with it
	firstSeen := make(map[string]int)
	for i, u := range users {
		for _, name := range u.PlantNames() {
			key := normalizeName(name)
			if key == "" {
				continue
			}
			if j, ok := firstSeen[key]; ok {
				union(i, j)
			} else {
				firstSeen[key] = i
			}
		}
	}

	// Collect components in request order
	componentOrder := make([]int, 0)
	components := make(map[int][]int)
	for i := range users {
		root := find(i)
		if _, ok := components[root]; !ok {
			componentOrder = append(componentOrder, root)
		}
		components[root] = append(components[root], i)
	}

	matches := make([]models.Match, 0)
	for _, root := range componentOrder {
		member := components[root]
		if len(member) < minGroupSize {
			continue
		}

		names := make([]string, len(member))
		for i, idx := range member {
			names[i] = users[idx].Name
		}

		shared := sharedPlants(users, member)
		matches = append(matches, models.Match{
			Users:       names,
			Description: describeGroup(names, shared),
			Benefits:    localBenefits(len(member)),
		})
	}
	return matches
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// sharedPlants returns display names of plants grown by two or more
// group members, sorted for stable output.
func sharedPlants(users []models.User, member []int) []string {
	counts := make(map[string]int)
	display := make(map[string]string)
	for _, idx := range member {
		seen := make(map[string]bool)
		for _, name := range users[idx].PlantNames() {
			key := normalizeName(name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			counts[key]++
			if _, ok := display[key]; !ok {
				display[key] = strings.TrimSpace(name)
			}
		}
	}

	shared := make([]string, 0)
	for key, n := range counts {
		if n >= 2 {
			shared = append(shared, display[key])
		}
	}
	sort.Strings(shared)
	return shared
}

func describeGroup(names, shared []string) []string {
	who := joinNames(names)
	if len(shared) == 0 {
		return []string{fmt.Sprintf("%s have overlapping plant interests and can coordinate planting in their area.", who)}
	}
	return []string{fmt.Sprintf(
		"%s share an interest in %s and can coordinate planting, exchange cuttings, and pool care knowledge.",
		who, joinNames(shared),
	)}
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// localBenefits estimates environmental gains from group planting.
// Used whenever model narration is disabled or fails.
func localBenefits(groupSize int) []models.Benefit {
	return []models.Benefit{
		{Type: "oxygen production", Amount: fmt.Sprintf("%d%%", 4*groupSize), Direction: true},
		{Type: "carbon dioxide", Amount: fmt.Sprintf("%d%%", 3*groupSize), Direction: false},
		{Type: "local air humidity", Amount: fmt.Sprintf("%d%%", 2*groupSize), Direction: true},
	}
}
