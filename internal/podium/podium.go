// Package podium builds the presentational view model for the ranked list.
//
// Everything here is a pure function of the ranked list so the layout can
// be tested without any rendering harness.
package podium

import "github.com/nuitinfo/podium-live/internal/team/model"

// Tier is one of the three special podium slots.
type Tier string

const (
	TierGold   Tier = "gold"
	TierSilver Tier = "silver"
	TierBronze Tier = "bronze"
)

// Place is a single podium slot. Team is nil while the slot has no team
// yet; the layout then shows an awaiting placeholder instead of collapsing.
type Place struct {
	Tier Tier
	Rank int
	Team *model.Team
}

// Awaiting reports whether the slot renders the placeholder state.
func (p Place) Awaiting() bool {
	return p.Team == nil
}

// Entry is one row of the flat list below the podium.
type Entry struct {
	Rank int
	Team model.Team
}

// View is the full leaderboard layout.
type View struct {
	// Places holds the podium slots in visual order: silver (rank 2),
	// gold (rank 1), bronze (rank 3). The leader stands in the middle,
	// like on a physical podium.
	Places [3]Place
	// List holds the remaining teams, ranked from 4 upwards.
	List []Entry
}

// Build maps a ranked list to the podium layout.
func Build(teams []model.Team) View {
	place := func(rank int, tier Tier) Place {
		p := Place{Tier: tier, Rank: rank}
		if len(teams) >= rank {
			t := teams[rank-1]
			p.Team = &t
		}
		return p
	}

	view := View{
		Places: [3]Place{
			place(2, TierSilver),
			place(1, TierGold),
			place(3, TierBronze),
		},
	}

	for i := 3; i < len(teams); i++ {
		view.List = append(view.List, Entry{Rank: i + 1, Team: teams[i]})
	}

	return view
}
