package idea

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/ideaslot/internal/words"
)

// Slot is one of the three independently lockable word positions.
type Slot int

const (
	Subject Slot = iota
	Form
	Audience
)

const slotCount = 3

// Slots lists every slot in sentence order.
var Slots = [slotCount]Slot{Subject, Form, Audience}

var slotNames = [slotCount]string{words.SubjectList, words.FormList, words.AudienceList}

func (s Slot) String() string {
	if !s.valid() {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return slotNames[s]
}

// ParseSlot converts a slot name into a Slot.
func ParseSlot(name string) (Slot, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, n := range slotNames {
		if n == want {
			return Slot(i), nil
		}
	}
	return 0, fmt.Errorf("unknown slot %q (want subject, form or audience)", name)
}

func (s Slot) valid() bool {
	return s >= 0 && int(s) < slotCount
}

// mustBeValid panics on slots outside the enum. Reaching it is a programming
// error in the caller.
func (s Slot) mustBeValid() {
	if !s.valid() {
		panic(fmt.Sprintf("idea: invalid slot %d", int(s)))
	}
}

// listFor returns the word list backing slot.
func listFor(lists words.Lists, slot Slot) []string {
	slot.mustBeValid()
	list, _ := lists.For(slot.String())
	return list
}
