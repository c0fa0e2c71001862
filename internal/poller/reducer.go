package poller

import (
	"fmt"

	"github.com/nuitinfo/podium-live/internal/team/model"
)

// EventKind distinguishes the two ranking notifications.
type EventKind int

const (
	// EventLeaderChanged is the celebratory notification: the rank-1 team
	// changed and motion effects are enabled.
	EventLeaderChanged EventKind = iota
	// EventRankingUpdated is the quiet variant emitted instead when the
	// client opted out of motion effects (text announcement only).
	EventRankingUpdated
)

// Event describes a leader change observed between two polls.
type Event struct {
	Kind         EventKind
	LeaderID     uint
	LeaderName   string
	Announcement string
}

// Observe is the leader-change reducer. It compares the previously observed
// leader id (nil before the first successful poll) against the head of the
// new ranked list and returns the next leader id plus an optional event.
//
// The first observation is stored silently so a fresh session never fires a
// celebration for a leader that was already in place. An empty list keeps
// the previous observation.
func Observe(prev *uint, teams []model.Team, reducedMotion bool) (*uint, *Event) {
	if len(teams) == 0 {
		return prev, nil
	}

	leader := teams[0]
	next := leader.ID

	if prev == nil || *prev == leader.ID {
		return &next, nil
	}

	if reducedMotion {
		return &next, &Event{
			Kind:         EventRankingUpdated,
			LeaderID:     leader.ID,
			LeaderName:   leader.Name,
			Announcement: fmt.Sprintf("Classement mis à jour. Leader actuel : %s", leader.Name),
		}
	}

	return &next, &Event{
		Kind:         EventLeaderChanged,
		LeaderID:     leader.ID,
		LeaderName:   leader.Name,
		Announcement: fmt.Sprintf("Nouveau leader ! %s passe en première position !", leader.Name),
	}
}
