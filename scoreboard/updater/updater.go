// Package updater drives the per-session render loop. All render passes run
// on the loop goroutine, which is what serializes them; team updates arriving
// from packet handlers are fanned out to the display slots directly and may
// overlap a running pass.
package updater

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/geodemc/geode/scoreboard/sidebar"
)

type Config struct {
	// Interval between render passes.
	Interval time.Duration `mapstructure:"interval"`
}

func DefaultConfig() Config {
	return Config{
		Interval: 250 * time.Millisecond,
	}
}

type Opt func(*Updater)

func WithLogger(logger *zap.Logger) Opt {
	return func(u *Updater) {
		u.log = logger
	}
}

func WithConfig(cfg Config) Opt {
	return func(u *Updater) {
		u.cfg = cfg
	}
}

func WithClock(clock clockwork.Clock) Opt {
	return func(u *Updater) {
		u.clock = clock
	}
}

type tracked struct {
	objective objective
	slot      slot
}

// Updater renders all tracked display slots once per tick and hands non-empty
// batches to the sender.
type Updater struct {
	log   *zap.Logger
	cfg   Config
	clock clockwork.Clock
	out   sender

	ctx    context.Context
	cancel context.CancelFunc
	eg     errgroup.Group

	mu    sync.Mutex
	slots []tracked
}

func New(out sender, opts ...Opt) *Updater {
	ctx, cancel := context.WithCancel(context.Background())
	u := &Updater{
		log:    zap.NewNop(),
		cfg:    DefaultConfig(),
		clock:  clockwork.NewRealClock(),
		out:    out,
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Track registers a display slot to be rendered from the given objective on
// every tick.
func (u *Updater) Track(objective objective, slot slot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.slots = append(u.slots, tracked{objective: objective, slot: slot})
}

// Untrack stops rendering the given objective. The caller is responsible for
// tearing the display surface down.
func (u *Updater) Untrack(objective objective) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.slots = slices.DeleteFunc(u.slots, func(t tracked) bool {
		return t.objective == objective
	})
}

// SetTeamFor fans a team membership change out to every tracked display slot.
// Safe to call from any goroutine, including while a tick is running.
func (u *Updater) SetTeamFor(team sidebar.Team, members map[string]struct{}) {
	for _, t := range u.tracked() {
		t.slot.SetTeamFor(team, members)
	}
}

// Start launches the render loop.
func (u *Updater) Start() {
	u.eg.Go(func() error {
		ticker := u.clock.NewTicker(u.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-u.ctx.Done():
				return nil
			case <-ticker.Chan():
				u.tick()
			}
		}
	})
}

// Stop terminates the render loop and waits for it to exit.
func (u *Updater) Stop() {
	u.cancel()
	u.eg.Wait()
}

func (u *Updater) tick() {
	for _, t := range u.tracked() {
		add, remove := t.slot.Render(t.objective.ScoreSnapshot(), t.objective.TakeUpdate())
		if len(add) == 0 && len(remove) == 0 {
			continue
		}
		u.out.SendScores(add, remove)
	}
}

func (u *Updater) tracked() []tracked {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.slots)
}
