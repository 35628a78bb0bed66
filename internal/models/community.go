// internal/models/community.go
package models

import "encoding/json"

// PlantRef accepts both the legacy wire format (a bare plant name string) and
// the enhanced format (a full Plant object). Only the name survives; community
// matching never needs the rest.
type PlantRef struct {
	Name string
}

func (p *PlantRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Name = s
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	p.Name = obj.Name
	return nil
}

func (p PlantRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Name)
}

// User is a community participant with the plant names they are interested in.
type User struct {
	Name   string     `json:"name"`
	Plants []PlantRef `json:"plants"`
}

// PlantNames returns the non-empty plant names in submission order.
func (u User) PlantNames() []string {
	names := make([]string, 0, len(u.Plants))
	for _, p := range u.Plants {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}
	return names
}

// Benefit describes one environmental effect of a match. Direction true means
// the metric increases.
type Benefit struct {
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	Direction bool   `json:"direction"`
}

// Match is one group of users with overlapping plant interests.
type Match struct {
	Users       []string  `json:"users"`
	Description []string  `json:"description"`
	Benefits    []Benefit `json:"benefits"`
}

// Community is the /community response envelope.
type Community struct {
	Match []Match `json:"match"`
}
