// This file is part of sdlwrap.
//
// sdlwrap is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdlwrap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdlwrap.  If not, see <https://www.gnu.org/licenses/>.

package ledger

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/sdlwrap/assert"
	"github.com/jetsetilly/sdlwrap/handle"
	"github.com/jetsetilly/sdlwrap/logger"
)

// Entry is the record of a single owned raw handle.
type Entry struct {
	Kind      string
	Handle    string
	Goroutine uint64
	Claimed   time.Time

	// number of owning handles claiming the raw handle. more than one is a
	// double claim
	Claims int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s (goroutine %d)", e.Kind, e.Handle, e.Goroutine)
}

type key struct {
	kind string
	raw  any
}

// Ledger implements the handle.Observer interface.
type Ledger struct {
	crit sync.Mutex
	perm logger.Permission

	live     map[key]Entry
	findings []Finding

	// findings are also written here if not nil
	echo io.Writer
}

// NewLedger is the preferred method of initialisation for the Ledger type.
// Findings are logged with the supplied permission.
func NewLedger(perm logger.Permission) *Ledger {
	return &Ledger{
		perm: perm,
		live: make(map[key]Entry),
	}
}

// Install the ledger as the observer for the handle package. Only one
// observer can be installed at once and any previous observer is replaced.
func (l *Ledger) Install() {
	handle.SetObserver(l)
}

// Uninstall removes the ledger as the handle observer. The record of live
// handles is kept.
func (l *Ledger) Uninstall() {
	handle.SetObserver(nil)
}

// SetEcho writes findings to io.Writer as well as to the central logger. A nil
// argument stops the echo.
func (l *Ledger) SetEcho(w io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = w
}

// OnHandleEvent implements the handle.Observer interface.
func (l *Ledger) OnHandleEvent(ev handle.Event) {
	l.crit.Lock()
	defer l.crit.Unlock()

	k := key{kind: ev.Kind, raw: ev.Raw}
	e, ok := l.live[k]

	switch ev.Type {
	case handle.EventClaimed:
		if ok {
			l.report(DoubleClaim, e)
			e.Claims++
			l.live[k] = e
			return
		}
		l.live[k] = Entry{
			Kind:      ev.Kind,
			Handle:    fmt.Sprintf("%v", ev.Raw),
			Goroutine: assert.GoroutineID(),
			Claimed:   time.Now(),
			Claims:    1,
		}

	case handle.EventDestroyed:
		if !ok {
			l.report(UnclaimedDestroy, Entry{
				Kind:   ev.Kind,
				Handle: fmt.Sprintf("%v", ev.Raw),
			})
			return
		}
		if !assert.SameGoroutine(e.Goroutine) {
			l.report(CrossGoroutine, e)
		}
		l.unclaim(k, e)

	case handle.EventReleased:
		if ok {
			l.unclaim(k, e)
		}

	case handle.EventLeaked:
		if !ok {
			e = Entry{
				Kind:   ev.Kind,
				Handle: fmt.Sprintf("%v", ev.Raw),
			}
		}
		l.report(Leak, e)
		if ok {
			l.unclaim(k, e)
		}
	}
}

// unclaim removes one claim from the entry. the entry is removed when there
// are no claims left. must be called with the critical section held.
func (l *Ledger) unclaim(k key, e Entry) {
	e.Claims--
	if e.Claims <= 0 {
		delete(l.live, k)
		return
	}
	l.live[k] = e
}

// report must be called with the critical section held.
func (l *Ledger) report(t FindingType, e Entry) {
	f := Finding{Type: t, Entry: e}
	l.findings = append(l.findings, f)
	logger.Log(l.perm, "ledger", f)
	if l.echo != nil {
		io.WriteString(l.echo, fmt.Sprintf("ledger: %s\n", f))
	}
}

// Len returns the number of raw handles currently owned.
func (l *Ledger) Len() int {
	l.crit.Lock()
	defer l.crit.Unlock()
	return len(l.live)
}

// Live returns a copy of the record of currently owned raw handles. The list
// is sorted by claim time.
func (l *Ledger) Live() []Entry {
	l.crit.Lock()
	defer l.crit.Unlock()

	live := make([]Entry, 0, len(l.live))
	for _, e := range l.live {
		live = append(live, e)
	}
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].Claimed.Before(live[j].Claimed)
	})
	return live
}

// Findings returns a copy of every finding made so far.
func (l *Ledger) Findings() []Finding {
	l.crit.Lock()
	defer l.crit.Unlock()
	f := make([]Finding, len(l.findings))
	copy(f, l.findings)
	return f
}

// Report writes a summary of the ledger to io.Writer. Live handles are listed
// first, followed by the findings.
func (l *Ledger) Report(w io.Writer) {
	live := l.Live()
	findings := l.Findings()

	io.WriteString(w, fmt.Sprintf("%d live handles\n", len(live)))
	for _, e := range live {
		io.WriteString(w, fmt.Sprintf("  %s\n", e))
	}
	io.WriteString(w, fmt.Sprintf("%d findings\n", len(findings)))
	for _, f := range findings {
		io.WriteString(w, fmt.Sprintf("  %s\n", f))
	}
}

// Visualise writes a Graphviz dot representation of the live handles to
// io.Writer.
func (l *Ledger) Visualise(w io.Writer) {
	live := l.Live()
	memviz.Map(w, &live)
}
