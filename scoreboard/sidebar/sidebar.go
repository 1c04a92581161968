// Package sidebar reconciles the authoritative scores of one objective
// against what has already been sent to the client for the sidebar display
// surface. The client caps the surface at a hard line limit, has no secondary
// sort key, and does not reliably reorder an existing line on a plain
// refresh, so the render pass computes explicit add/remove batches and leans
// on invisible order markers to express tie-breaks.
package sidebar

import (
	"cmp"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/geodemc/geode/scoreboard"
	"github.com/geodemc/geode/text"
	"github.com/geodemc/geode/wire"
)

// DisplayLimit is the number of lines the client renders at most.
const DisplayLimit = 15

type Config struct {
	// Limit is the number of entries displayed at most. The marker palette
	// has text.DisplayOrderLen values, limits above that can not be
	// tie-broken.
	Limit int `mapstructure:"limit"`
}

func DefaultConfig() Config {
	return Config{
		Limit: DisplayLimit,
	}
}

type Opt func(*Sidebar)

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Sidebar) {
		s.log = logger
	}
}

func WithConfig(cfg Config) Opt {
	return func(s *Sidebar) {
		s.cfg = cfg
	}
}

func WithPalette(p palette) Opt {
	return func(s *Sidebar) {
		s.palette = p
	}
}

// colorPalette is the default marker palette, backed by the legacy color
// codes the client sorts lexicographically.
type colorPalette struct{}

func (colorPalette) MarkerForIndex(i int) string {
	return text.DisplayOrder(i)
}

// Sidebar owns the displayed entries of one objective on one session. The
// render pass runs on a single goroutine at a time (the updater serializes
// it); SetTeamFor may be called concurrently from packet handlers.
type Sidebar struct {
	log      *zap.Logger
	cfg      Config
	position wire.DisplaySlot
	palette  palette

	objective objectiveView
	ids       identitySource
	teams     teamSource
	builder   payloadBuilder
	session   directives

	// live is the published list. It is replaced wholesale by the render
	// pass, never mutated in place, so concurrent readers always observe
	// either the previous or the fully reordered new list.
	live atomic.Pointer[[]*Entry]
	// prev mirrors the previous render's live list. Render-thread-only: the
	// matching step consumes it entry by entry, and that transient state must
	// never be visible to SetTeamFor.
	prev []*Entry
}

func New(
	objective objectiveView,
	ids identitySource,
	teams teamSource,
	builder payloadBuilder,
	session directives,
	position wire.DisplaySlot,
	opts ...Opt,
) *Sidebar {
	s := &Sidebar{
		log:       zap.NewNop(),
		cfg:       DefaultConfig(),
		position:  position,
		palette:   colorPalette{},
		objective: objective,
		ids:       ids,
		teams:     teams,
		builder:   builder,
		session:   session,
	}
	for _, opt := range opts {
		opt(s)
	}
	live := make([]*Entry, 0, s.cfg.Limit)
	s.live.Store(&live)
	s.prev = make([]*Entry, 0, s.cfg.Limit)
	return s
}

// Entries returns the currently published display list, best first.
func (s *Sidebar) Entries() []*Entry {
	return *s.live.Load()
}

// compareScores orders candidates by score descending, then case-insensitive
// name ascending. The client can only express the score ordering; the name
// tie-break is enforced through order markers after selection.
func compareScores(a, b scoreboard.Score) int {
	if c := cmp.Compare(b.Value, a.Value); c != 0 {
		return c
	}
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

// Render reconciles the given score snapshot against the previously sent
// state and returns the payload batches the session has to transmit, removals
// first. state is the objective lifecycle transition pending since the last
// pass; passing it consumes it.
func (s *Sidebar) Render(scores []scoreboard.Score, state scoreboard.UpdateType) (add, remove []wire.ScoreInfo) {
	start := time.Now()

	candidates := make([]scoreboard.Score, 0, len(scores))
	for _, score := range scores {
		if !score.Hidden {
			candidates = append(candidates, score)
		}
	}
	slices.SortFunc(candidates, compareScores)
	if len(candidates) > s.cfg.Limit {
		candidates = candidates[:s.cfg.Limit]
	}

	next := make([]*Entry, 0, len(candidates))
	for _, candidate := range candidates {
		entry := s.takePrev(candidate.Name)
		if entry == nil {
			entry = newEntry(s.ids.NextID(), candidate, s.teams)
		} else {
			entry.setValue(candidate.Value)
		}
		next = append(next, entry)
	}

	// Publish before the rest of the pass: even if nothing was added or
	// removed the order may have changed, and a concurrent SetTeamFor must
	// see the new list as soon as possible.
	s.live.Store(&next)

	// Matching consumed reused entries out of prev, so whatever remains is no
	// longer displayed.
	for _, entry := range s.prev {
		remove = append(remove, entry.cached)
	}

	// prev has to mirror the new list for the next pass.
	s.prev = append(s.prev[:0], next...)

	s.assignOrderMarkers(next)

	objectiveAdd := state == scoreboard.UpdateAdd
	objectiveUpdate := state == scoreboard.UpdateUpdate
	objectiveName := s.objective.Name()

	for _, entry := range next {
		doAdd := objectiveAdd || objectiveUpdate
		exists := entry.exists

		if team := entry.Team(); team != nil {
			// entities are mostly removed from teams without the scores
			// being notified, so staleness is detected here.
			if team.FlaggedForRemoval() || !team.Contains(entry.name) {
				entry.setTeam(nil)
			}
		}

		dirty, valueOnly := entry.takeDirty()
		if dirty {
			entry.refresh(s.builder, objectiveName)
			doAdd = true
		}

		if doAdd {
			add = append(add, entry.cached)
			entry.exists = true
		}

		// The client does not reliably reorder an existing line on a plain
		// refresh (MCPE-143063), so anything but a pure score value change is
		// removed and re-added. Pointless when the line does not exist yet or
		// the whole surface is being recreated anyway.
		if doAdd && exists && !(objectiveAdd || objectiveUpdate) && !valueOnly {
			remove = append(remove, entry.cached)
		}
	}

	if objectiveUpdate {
		s.session.DestroySidebar(objectiveName)
	}
	if objectiveAdd || objectiveUpdate {
		s.session.ShowSidebar(objectiveName, s.objective.DisplayName(), s.position)
	}

	displayedEntries.Set(float64(len(next)))
	addedScores.Add(float64(len(add)))
	removedScores.Add(float64(len(remove)))
	renderDuration.Observe(time.Since(start).Seconds())

	if len(add) > 0 || len(remove) > 0 {
		s.log.Debug("rendered sidebar",
			zap.String("objective", objectiveName),
			zap.Stringer("state", state),
			zap.Int("displayed", len(next)),
			zap.Int("add", len(add)),
			zap.Int("remove", len(remove)),
		)
	}
	return add, remove
}

// takePrev removes and returns the entry with the given name from the working
// snapshot. First match wins: if the score source ever hands us duplicate
// names, the first candidate inherits the old identity and later ones are
// treated as new.
func (s *Sidebar) takePrev(name string) *Entry {
	for i, entry := range s.prev {
		if entry.name == name {
			s.prev = append(s.prev[:i], s.prev[i+1:]...)
			return entry
		}
	}
	return nil
}

// assignOrderMarkers walks the final display order and hands every member of
// a maximal run of equal scores a distinct marker, indexed from zero within
// the run. Entries outside any run lose their marker. Markers only dirty an
// entry when they actually change, so a standing tie stays quiet.
func (s *Sidebar) assignOrderMarkers(entries []*Entry) {
	if len(entries) == 0 {
		return
	}
	var last *Entry
	count := 0
	for _, entry := range entries {
		if last == nil {
			last = entry
			continue
		}

		if entry.value == last.value {
			if count == 0 {
				last.setOrder(s.palette.MarkerForIndex(count))
				count++
			}
			entry.setOrder(s.palette.MarkerForIndex(count))
			count++
		} else {
			if count == 0 {
				last.clearOrder()
			}
			count = 0
		}
		last = entry
	}

	if count == 0 && last != nil {
		last.clearOrder()
	}
}

// SetTeamFor updates the team reference of every displayed entry whose name
// is in members. Entries not currently displayed resolve their team when they
// become displayed, so they need no bookkeeping here. Safe to call
// concurrently with a render pass; an update racing a pass lands either just
// before or just after it.
func (s *Sidebar) SetTeamFor(team Team, members map[string]struct{}) {
	for _, entry := range *s.live.Load() {
		if _, ok := members[entry.name]; ok {
			entry.setTeam(team)
		}
	}
}
