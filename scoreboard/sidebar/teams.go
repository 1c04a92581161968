package sidebar

import "github.com/geodemc/geode/scoreboard"

// BoardTeams resolves entry teams from the session's scoreboard registry.
// The explicit nil check keeps a missing team a plain nil Team instead of a
// typed nil hiding inside the interface.
type BoardTeams struct {
	Board *scoreboard.Scoreboard
}

func (t BoardTeams) TeamFor(name string) Team {
	if team := t.Board.TeamFor(name); team != nil {
		return team
	}
	return nil
}
