// Package idea implements the business idea generator: three lockable word
// slots, random generation, completion detection and a timed celebration.
package idea

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/ideaslot/internal/links"
	"github.com/alexisbeaulieu97/ideaslot/internal/logger"
	"github.com/alexisbeaulieu97/ideaslot/internal/schedule"
	"github.com/alexisbeaulieu97/ideaslot/internal/words"
)

// CelebrationDuration is how long the celebration stays active.
const CelebrationDuration = 5000 * time.Millisecond

const (
	generateLabel = "Let's go gambling!"
	convertLabel  = "Congrats!"
)

// initialWords is the sentence shown before the first generation.
var initialWords = [slotCount]string{"Gamble", "a startup", "you"}

// ErrNotGenerated is returned by Pin before the first generation.
var ErrNotGenerated = errors.New("nothing generated yet")

// Rand is the random source used for word selection. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Action is what the primary control did.
type Action int

const (
	ActionGenerate Action = iota
	ActionConvert
)

func (a Action) String() string {
	if a == ActionConvert {
		return "convert"
	}
	return "generate"
}

// Celebration is the transient effect shown once every slot is locked.
type Celebration struct {
	Active    bool
	StartedAt time.Time
}

// SlotState is the displayed word of a slot and whether it is locked.
type SlotState struct {
	Value  string
	Locked bool
}

// Snapshot is a copy of the generator state.
type Snapshot struct {
	Slots            [slotCount]SlotState
	HasGeneratedOnce bool
	AllLocked        bool
	Celebration      Celebration
}

// Sentence returns the words of the snapshot.
func (s Snapshot) Sentence() Sentence {
	return Sentence{
		Subject:  s.Slots[Subject].Value,
		Form:     s.Slots[Form].Value,
		Audience: s.Slots[Audience].Value,
	}
}

// Sentence is one generated idea.
type Sentence struct {
	Subject  string
	Form     string
	Audience string
}

// Word returns the word in slot.
func (s Sentence) Word(slot Slot) string {
	slot.mustBeValid()
	switch slot {
	case Subject:
		return s.Subject
	case Form:
		return s.Form
	default:
		return s.Audience
	}
}

func (s Sentence) String() string {
	return fmt.Sprintf("%s %s for %s", s.Subject, s.Form, s.Audience)
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rand = r }
}

// WithScheduler sets the scheduler used for the celebration expiry.
func WithScheduler(s schedule.Scheduler) Option {
	return func(g *Generator) { g.sched = s }
}

// WithOpener sets how the conversion URL is opened.
func WithOpener(o links.Opener) Option {
	return func(g *Generator) { g.opener = o }
}

// WithConvertURL overrides the URL opened when every slot is locked.
func WithConvertURL(url string) Option {
	return func(g *Generator) { g.convertURL = url }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// Generator owns the slots, lock flags and celebration of one session.
// It is safe for concurrent use, though callers normally drive it from a
// single event loop.
type Generator struct {
	mu sync.Mutex

	lists       [slotCount][]string
	slots       [slotCount]SlotState
	generated   bool
	celebration Celebration
	pending     schedule.Task

	rand       Rand
	sched      schedule.Scheduler
	opener     links.Opener
	convertURL string
	log        *logger.Logger
}

// New creates a Generator over lists. Every list must be non-empty.
func New(lists words.Lists, opts ...Option) *Generator {
	g := &Generator{
		rand:       globalRand{},
		opener:     links.Browser{},
		convertURL: links.SupportURL,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.sched == nil {
		g.sched = schedule.NewLoop(schedule.Fire.Run)
	}
	g.log = g.log.With("component", "generator")

	for _, slot := range Slots {
		list := listFor(lists, slot)
		if len(list) == 0 {
			panic(fmt.Sprintf("idea: empty word list for %s", slot))
		}
		g.lists[slot] = list

		value := list[0]
		if slices.Contains(list, initialWords[slot]) {
			value = initialWords[slot]
		}
		g.slots[slot] = SlotState{Value: value}
	}

	return g
}

// Generate draws a new word for every unlocked slot and returns the sentence.
func (g *Generator) Generate() Sentence {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generate()
}

func (g *Generator) generate() Sentence {
	if !g.generated {
		g.generated = true
		g.log.Debug("first generation")
	}
	for _, slot := range Slots {
		if g.slots[slot].Locked {
			continue
		}
		list := g.lists[slot]
		g.slots[slot].Value = list[g.rand.IntN(len(list))]
	}
	return g.sentence()
}

// ToggleLock flips the lock on slot. Before the first generation it does
// nothing. Locking the last unlocked slot starts the celebration.
func (g *Generator) ToggleLock(slot Slot) {
	slot.mustBeValid()

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.generated {
		return
	}

	g.slots[slot].Locked = !g.slots[slot].Locked
	g.log.WithFields(map[string]any{"slot": slot.String(), "locked": g.slots[slot].Locked}).Debug("lock toggled")

	if g.slots[slot].Locked && g.allLocked() {
		g.startCelebration()
	}
}

// Pin sets slot to value and locks it. value must belong to the slot's list.
func (g *Generator) Pin(slot Slot, value string) error {
	slot.mustBeValid()

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.generated {
		return ErrNotGenerated
	}
	if !slices.Contains(g.lists[slot], value) {
		return fmt.Errorf("%q is not a known %s", value, slot)
	}

	wasLocked := g.slots[slot].Locked
	g.slots[slot] = SlotState{Value: value, Locked: true}
	if !wasLocked && g.allLocked() {
		g.startCelebration()
	}
	return nil
}

// Press applies the primary control to the state. It generates while any
// slot is unlocked; once every slot is locked it returns ActionConvert and
// leaves the state untouched. Opening ConvertURL is left to the caller.
func (g *Generator) Press() Action {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.allLocked() {
		return ActionConvert
	}
	g.generate()
	return ActionGenerate
}

// PrimaryAction is Press followed, on ActionConvert, by opening ConvertURL
// with the configured opener. The opener runs without the generator lock.
func (g *Generator) PrimaryAction() (Action, error) {
	action := g.Press()
	if action != ActionConvert {
		return action, nil
	}

	g.log.Info("opening conversion link")
	return action, g.opener.Open(g.convertURL)
}

// ConvertURL is the page the primary control leads to once every slot is
// locked.
func (g *Generator) ConvertURL() string {
	return g.convertURL
}

// PrimaryLabel is the caption of the primary control.
func (g *Generator) PrimaryLabel() string {
	if g.AllLocked() {
		return convertLabel
	}
	return generateLabel
}

// startCelebration activates the celebration and schedules its expiry. Any
// earlier pending expiry is cancelled so only the latest one applies.
func (g *Generator) startCelebration() {
	if g.pending != nil {
		g.pending.Stop()
	}

	g.celebration = Celebration{Active: true, StartedAt: g.sched.Now()}
	g.log.Info("all slots locked, celebrating")

	var task schedule.Task
	task = g.sched.AfterFunc(CelebrationDuration, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.pending != task {
			return
		}
		g.pending = nil
		g.celebration.Active = false
		g.log.Debug("celebration over")
	})
	g.pending = task
}

// Close cancels the pending celebration expiry. The generator must not be
// used afterwards.
func (g *Generator) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending != nil {
		g.pending.Stop()
		g.pending = nil
	}
}

// Sentence returns the current words.
func (g *Generator) Sentence() Sentence {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sentence()
}

// Slot returns the state of slot.
func (g *Generator) Slot(slot Slot) SlotState {
	slot.mustBeValid()
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.slots[slot]
}

// HasGeneratedOnce reports whether Generate has ever run.
func (g *Generator) HasGeneratedOnce() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generated
}

// AllLocked reports whether every slot is locked.
func (g *Generator) AllLocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.allLocked()
}

// Celebration returns the celebration state.
func (g *Generator) Celebration() Celebration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.celebration
}

// Snapshot returns a copy of the whole state.
func (g *Generator) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Snapshot{
		Slots:            g.slots,
		HasGeneratedOnce: g.generated,
		AllLocked:        g.allLocked(),
		Celebration:      g.celebration,
	}
}

func (g *Generator) allLocked() bool {
	for _, s := range g.slots {
		if !s.Locked {
			return false
		}
	}
	return true
}

func (g *Generator) sentence() Sentence {
	return Sentence{
		Subject:  g.slots[Subject].Value,
		Form:     g.slots[Form].Value,
		Audience: g.slots[Audience].Value,
	}
}
