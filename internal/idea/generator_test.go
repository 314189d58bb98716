package idea

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ideaslot/internal/links"
	"github.com/alexisbeaulieu97/ideaslot/internal/schedule"
	"github.com/alexisbeaulieu97/ideaslot/internal/words"
)

var epoch = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

// scriptedRand returns the queued indexes in order, wrapping modulo n.
type scriptedRand struct {
	picks []int
	calls int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.picks[r.calls%len(r.picks)]
	r.calls++
	return v % n
}

type fixture struct {
	gen    *Generator
	sched  *schedule.Manual
	opener *links.Recorder
}

func newFixture(t *testing.T, opts ...Option) fixture {
	t.Helper()

	sched := schedule.NewManual(epoch)
	opener := &links.Recorder{}
	base := []Option{
		WithRand(rand.New(rand.NewPCG(7, 11))),
		WithScheduler(sched),
		WithOpener(opener),
	}
	gen := New(words.Default(), append(base, opts...)...)
	t.Cleanup(gen.Close)

	return fixture{gen: gen, sched: sched, opener: opener}
}

func lockAll(g *Generator) {
	for _, slot := range Slots {
		g.ToggleLock(slot)
	}
}

func TestNewStartsWithInitialSentence(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	snap := f.gen.Snapshot()

	assert.Equal(t, "Gamble a startup for you", snap.Sentence().String())
	assert.False(t, snap.HasGeneratedOnce)
	assert.False(t, snap.AllLocked)
	assert.False(t, snap.Celebration.Active)
	assert.Equal(t, "Let's go gambling!", f.gen.PrimaryLabel())
}

func TestNewFallsBackToFirstWord(t *testing.T) {
	t.Parallel()

	lists := words.Lists{Subjects: []string{"Uber"}, Forms: []string{"an app"}, TargetAudiences: []string{"cats", "you"}}
	gen := New(lists, WithScheduler(schedule.NewManual(epoch)))

	assert.Equal(t, Sentence{Subject: "Uber", Form: "an app", Audience: "you"}, gen.Sentence())
}

func TestNewPanicsOnEmptyList(t *testing.T) {
	t.Parallel()

	lists := words.Lists{Subjects: []string{"Uber"}, Forms: nil, TargetAudiences: []string{"cats"}}
	require.Panics(t, func() { New(lists) })
}

func TestGenerateDrawsFromLists(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	lists := words.Default()

	for i := 0; i < 200; i++ {
		s := f.gen.Generate()
		require.True(t, slices.Contains(lists.Subjects, s.Subject), s.Subject)
		require.True(t, slices.Contains(lists.Forms, s.Form), s.Form)
		require.True(t, slices.Contains(lists.TargetAudiences, s.Audience), s.Audience)
	}
	assert.True(t, f.gen.HasGeneratedOnce())
}

func TestGenerateUsesOneDrawPerUnlockedSlot(t *testing.T) {
	t.Parallel()

	r := &scriptedRand{picks: []int{1, 2, 3}}
	f := newFixture(t, WithRand(r))
	lists := words.Default()

	s := f.gen.Generate()
	assert.Equal(t, lists.Subjects[1], s.Subject)
	assert.Equal(t, lists.Forms[2], s.Form)
	assert.Equal(t, lists.TargetAudiences[3], s.Audience)
	assert.Equal(t, 3, r.calls)

	f.gen.ToggleLock(Form)
	f.gen.Generate()
	assert.Equal(t, 5, r.calls, "locked slots must not consume draws")
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a := newFixture(t, WithRand(rand.New(rand.NewPCG(42, 42))))
	b := newFixture(t, WithRand(rand.New(rand.NewPCG(42, 42))))

	for i := 0; i < 20; i++ {
		require.Equal(t, a.gen.Generate(), b.gen.Generate())
	}
}

func TestHasGeneratedOnceNeverReverts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.gen.Generate()
	lockAll(f.gen)
	f.gen.ToggleLock(Subject)
	f.gen.Generate()

	assert.True(t, f.gen.HasGeneratedOnce())
}

func TestToggleLockIgnoredBeforeFirstGeneration(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	before := f.gen.Snapshot()

	for _, slot := range Slots {
		f.gen.ToggleLock(slot)
		f.gen.ToggleLock(slot)
		f.gen.ToggleLock(slot)
	}

	assert.Equal(t, before, f.gen.Snapshot())
	assert.Zero(t, f.sched.Pending())
}

func TestLockedSlotSurvivesGeneration(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	first := f.gen.Generate()
	f.gen.ToggleLock(Subject)

	for i := 0; i < 50; i++ {
		s := f.gen.Generate()
		require.Equal(t, first.Subject, s.Subject)
	}
	assert.True(t, f.gen.Slot(Subject).Locked)
	assert.False(t, f.gen.Slot(Form).Locked)
}

func TestUnlockedSlotsKeepChanging(t *testing.T) {
	t.Parallel()

	r := &scriptedRand{picks: []int{0, 1, 2, 3, 4, 5}}
	f := newFixture(t, WithRand(r))
	f.gen.Generate()
	f.gen.ToggleLock(Subject)

	seen := map[string]bool{}
	for i := 0; i < 6; i++ {
		seen[f.gen.Generate().Form] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestToggleLockUnlocks(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.gen.Generate()

	f.gen.ToggleLock(Audience)
	require.True(t, f.gen.Slot(Audience).Locked)
	f.gen.ToggleLock(Audience)
	require.False(t, f.gen.Slot(Audience).Locked)
}

func TestToggleLockPanicsOnUnknownSlot(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.gen.Generate()

	require.Panics(t, func() { f.gen.ToggleLock(Slot(3)) })
	require.Panics(t, func() { f.gen.ToggleLock(Slot(-1)) })
}

func TestAllLockedStartsCelebrationWithinCall(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.gen.Generate()

	f.gen.ToggleLock(Subject)
	f.gen.ToggleLock(Form)
	require.False(t, f.gen.Celebration().Active)

	f.gen.ToggleLock(Audience)
	c := f.gen.Celebration()
	assert.True(t, c.Active)
	assert.Equal(t, epoch, c.StartedAt)
	assert.True(t, f.gen.AllLocked())
	assert.Equal(t, "Congrats!", f.gen.PrimaryLabel())
}

func TestCelebrationExpiresAfterExactDuration(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.gen.Generate()
	lockAll(f.gen)

	f.sched.Advance(CelebrationDuration - time.Millisecond)
	require.True(t, f.gen.Celebration().Active, "must not end early")

	f.sched.Advance(time.Millisecond)
	require.False(t, f.gen.Celebration().Active, "must end at 5s")
	assert.True(t, f.gen.AllLocked(), "expiry does not touch locks")
}

func TestUnlockDoesNotCancelCelebration(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.gen.Generate()
	lockAll(f.gen)

	f.sched.Advance(time.Second)
	f.gen.ToggleLock(Form)
	assert.True(t, f.gen.Celebration().Active)
	assert.False(t, f.gen.AllLocked())

	f.sched.Advance(CelebrationDuration - time.Second)
	assert.False(t, f.gen.Celebration().Active)
}

func TestRelockRestartsCelebrationAndLatestTimerWins(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.gen.Generate()
	lockAll(f.gen)

	f.sched.Advance(3 * time.Second)
	f.gen.ToggleLock(Form)
	f.gen.ToggleLock(Form)

	c := f.gen.Celebration()
	require.True(t, c.Active)
	assert.Equal(t, epoch.Add(3*time.Second), c.StartedAt)
	assert.Equal(t, 1, f.sched.Pending(), "earlier expiry must be cancelled")

	f.sched.Advance(2 * time.Second)
	assert.True(t, f.gen.Celebration().Active, "stale timer must not deactivate")

	f.sched.Advance(3 * time.Second)
	assert.False(t, f.gen.Celebration().Active)
}

func TestCloseCancelsPendingExpiry(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.gen.Generate()
	lockAll(f.gen)

	f.gen.Close()
	assert.Zero(t, f.sched.Pending())

	f.sched.Advance(time.Minute)
	assert.True(t, f.gen.Celebration().Active, "a closed generator is not mutated")
}

func TestPrimaryActionGeneratesWhenNotAllLocked(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	action, err := f.gen.PrimaryAction()
	require.NoError(t, err)
	assert.Equal(t, ActionGenerate, action)
	assert.True(t, f.gen.HasGeneratedOnce())
	assert.Zero(t, f.opener.Count())
}

func TestPrimaryActionConvertsWithoutMutation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.gen.Generate()
	lockAll(f.gen)
	before := f.gen.Snapshot()

	action, err := f.gen.PrimaryAction()
	require.NoError(t, err)
	assert.Equal(t, ActionConvert, action)
	assert.Equal(t, before, f.gen.Snapshot())
	assert.Equal(t, []string{links.SupportURL}, f.opener.Opened)
}

func TestPrimaryActionDuringCelebrationUsesLockState(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.gen.Generate()
	lockAll(f.gen)
	f.gen.ToggleLock(Subject)
	require.True(t, f.gen.Celebration().Active)

	action, err := f.gen.PrimaryAction()
	require.NoError(t, err)
	assert.Equal(t, ActionGenerate, action)
}

func TestPrimaryActionOpenerFailureKeepsState(t *testing.T) {
	t.Parallel()

	f := newFixture(t, WithConvertURL("https://example.com/thanks"))
	f.opener.Err = errors.New("no browser")
	f.gen.Generate()
	lockAll(f.gen)
	before := f.gen.Snapshot()

	action, err := f.gen.PrimaryAction()
	require.EqualError(t, err, "no browser")
	assert.Equal(t, ActionConvert, action)
	assert.Equal(t, before, f.gen.Snapshot())
	assert.Equal(t, []string{"https://example.com/thanks"}, f.opener.Opened)
}

func TestPin(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.ErrorIs(t, f.gen.Pin(Subject, "Uber"), ErrNotGenerated)

	f.gen.Generate()
	require.NoError(t, f.gen.Pin(Subject, "Uber"))
	assert.Equal(t, SlotState{Value: "Uber", Locked: true}, f.gen.Slot(Subject))

	require.Error(t, f.gen.Pin(Form, "a spaceship"))
	assert.False(t, f.gen.Slot(Form).Locked)

	require.NoError(t, f.gen.Pin(Form, "an app"))
	require.NoError(t, f.gen.Pin(Audience, "cats"))
	assert.True(t, f.gen.Celebration().Active)
	assert.Equal(t, "Uber an app for cats", f.gen.Sentence().String())
}

func TestParseSlot(t *testing.T) {
	t.Parallel()

	for _, slot := range Slots {
		got, err := ParseSlot(slot.String())
		require.NoError(t, err)
		assert.Equal(t, slot, got)
	}

	_, err := ParseSlot("verb")
	require.Error(t, err)
	assert.Equal(t, "Slot(9)", Slot(9).String())
}

func TestSentenceWord(t *testing.T) {
	t.Parallel()

	s := Sentence{Subject: "Uber", Form: "an app", Audience: "cats"}
	assert.Equal(t, "Uber", s.Word(Subject))
	assert.Equal(t, "an app", s.Word(Form))
	assert.Equal(t, "cats", s.Word(Audience))
	assert.Panics(t, func() { s.Word(Slot(5)) })
}

func TestPressConvertsWithoutOpening(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.Equal(t, ActionGenerate, f.gen.Press())
	lockAll(f.gen)
	before := f.gen.Snapshot()

	assert.Equal(t, ActionConvert, f.gen.Press())
	assert.Equal(t, before, f.gen.Snapshot())
	assert.Zero(t, f.opener.Count(), "opening is left to the caller")
	assert.Equal(t, links.SupportURL, f.gen.ConvertURL())
}

// stateReadingOpener reads generator state from inside Open.
type stateReadingOpener struct {
	gen  *Generator
	seen Snapshot
}

func (o *stateReadingOpener) Open(string) error {
	o.seen = o.gen.Snapshot()
	return nil
}

func TestPrimaryActionOpensWithoutHoldingLock(t *testing.T) {
	t.Parallel()

	opener := &stateReadingOpener{}
	gen := New(words.Default(), WithScheduler(schedule.NewManual(epoch)), WithOpener(opener))
	t.Cleanup(gen.Close)
	opener.gen = gen
	gen.Generate()
	lockAll(gen)

	done := make(chan Action, 1)
	go func() {
		action, _ := gen.PrimaryAction()
		done <- action
	}()

	select {
	case action := <-done:
		assert.Equal(t, ActionConvert, action)
		assert.True(t, opener.seen.AllLocked)
	case <-time.After(2 * time.Second):
		t.Fatal("opener ran while the generator was locked")
	}
}
