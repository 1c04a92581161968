package updater

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/geodemc/geode/scoreboard"
	"github.com/geodemc/geode/wire"
)

type testUpdater struct {
	*Updater
	ctrl   *gomock.Controller
	clock  clockwork.FakeClock
	sender *Mocksender
}

func newTestUpdater(t *testing.T, opts ...Opt) *testUpdater {
	t.Helper()
	ctrl := gomock.NewController(t)
	clock := clockwork.NewFakeClock()
	sender := NewMocksender(ctrl)
	u := New(sender, append([]Opt{
		WithLogger(zaptest.NewLogger(t)),
		WithClock(clock),
	}, opts...)...)
	return &testUpdater{Updater: u, ctrl: ctrl, clock: clock, sender: sender}
}

func TestTickSendsBatches(t *testing.T) {
	tu := newTestUpdater(t)
	obj := NewMockobjective(tu.ctrl)
	slot := NewMockslot(tu.ctrl)
	tu.Track(obj, slot)

	scores := []scoreboard.Score{{Name: "A", Value: 1}}
	add := []wire.ScoreInfo{{ID: 1, ObjectiveID: "kills", Name: "A", Score: 1}}
	obj.EXPECT().ScoreSnapshot().Return(scores)
	obj.EXPECT().TakeUpdate().Return(scoreboard.UpdateAdd)
	slot.EXPECT().Render(scores, scoreboard.UpdateAdd).Return(add, nil)
	tu.sender.EXPECT().SendScores(add, gomock.Nil())

	tu.tick()
}

func TestTickSkipsEmptyBatches(t *testing.T) {
	tu := newTestUpdater(t)
	obj := NewMockobjective(tu.ctrl)
	slot := NewMockslot(tu.ctrl)
	tu.Track(obj, slot)

	obj.EXPECT().ScoreSnapshot().Return(nil)
	obj.EXPECT().TakeUpdate().Return(scoreboard.UpdateNothing)
	slot.EXPECT().Render(gomock.Nil(), scoreboard.UpdateNothing).Return(nil, nil)

	// no SendScores expectation: an empty diff stays off the wire
	tu.tick()
}

func TestUntrack(t *testing.T) {
	tu := newTestUpdater(t)
	removed := NewMockobjective(tu.ctrl)
	removedSlot := NewMockslot(tu.ctrl)
	kept := NewMockobjective(tu.ctrl)
	keptSlot := NewMockslot(tu.ctrl)
	tu.Track(removed, removedSlot)
	tu.Track(kept, keptSlot)

	tu.Untrack(removed)

	kept.EXPECT().ScoreSnapshot().Return(nil)
	kept.EXPECT().TakeUpdate().Return(scoreboard.UpdateNothing)
	keptSlot.EXPECT().Render(gomock.Nil(), scoreboard.UpdateNothing).Return(nil, nil)

	tu.tick()
}

func TestSetTeamForFansOut(t *testing.T) {
	tu := newTestUpdater(t)
	first := NewMockslot(tu.ctrl)
	second := NewMockslot(tu.ctrl)
	tu.Track(NewMockobjective(tu.ctrl), first)
	tu.Track(NewMockobjective(tu.ctrl), second)

	team := scoreboard.New().RegisterTeam("red")
	members := map[string]struct{}{"alice": {}}
	first.EXPECT().SetTeamFor(team, members)
	second.EXPECT().SetTeamFor(team, members)

	tu.SetTeamFor(team, members)
}

func TestRenderLoop(t *testing.T) {
	tu := newTestUpdater(t, WithConfig(Config{Interval: 50 * time.Millisecond}))
	obj := NewMockobjective(tu.ctrl)
	slot := NewMockslot(tu.ctrl)
	tu.Track(obj, slot)

	rendered := make(chan struct{})
	obj.EXPECT().ScoreSnapshot().Return(nil)
	obj.EXPECT().TakeUpdate().Return(scoreboard.UpdateNothing)
	slot.EXPECT().Render(gomock.Nil(), scoreboard.UpdateNothing).
		DoAndReturn(func([]scoreboard.Score, scoreboard.UpdateType) ([]wire.ScoreInfo, []wire.ScoreInfo) {
			close(rendered)
			return nil, nil
		})

	tu.Start()
	tu.clock.BlockUntil(1)
	tu.clock.Advance(50 * time.Millisecond)
	select {
	case <-rendered:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the render loop to tick")
	}
	tu.Stop()
}
