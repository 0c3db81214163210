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

package ledger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/sdlwrap/handle"
	"github.com/jetsetilly/sdlwrap/ledger"
	"github.com/jetsetilly/sdlwrap/logger"
	"github.com/jetsetilly/sdlwrap/test"
)

type widget struct {
	id int
}

type widgetDeleter struct{}

func (widgetDeleter) Delete(w *widget) {}

type quiet struct{}

func (quiet) AllowLogging() bool {
	return false
}

func install(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.NewLedger(quiet{})
	l.Install()
	t.Cleanup(l.Uninstall)
	return l
}

func TestLiveHandles(t *testing.T) {
	l := install(t)

	a := handle.New[widgetDeleter](&widget{id: 1})
	b := handle.New[widgetDeleter](&widget{id: 2})
	test.ExpectEquality(t, l.Len(), 2)

	live := l.Live()
	test.DemandEquality(t, len(live), 2)
	test.ExpectEquality(t, live[0].Kind, "ledger_test.widgetDeleter")

	a.Destroy()
	test.ExpectEquality(t, l.Len(), 1)

	// released handles are no longer the business of the ledger
	raw := b.Release()
	test.ExpectEquality(t, l.Len(), 0)
	test.ExpectEquality(t, raw.id, 2)

	test.ExpectEquality(t, len(l.Findings()), 0)
}

func TestDoubleClaim(t *testing.T) {
	l := install(t)

	w := &widget{id: 1}
	a := handle.New[widgetDeleter](w)
	defer a.Release()

	// a second owner for the same raw handle
	b := handle.New[widgetDeleter](w)
	defer b.Release()

	f := l.Findings()
	test.DemandEquality(t, len(f), 1)
	test.ExpectEquality(t, f[0].Type, ledger.DoubleClaim)
}

func TestDoubleClaimDestroy(t *testing.T) {
	l := install(t)

	w := &widget{id: 1}
	a := handle.New[widgetDeleter](w)
	b := handle.New[widgetDeleter](w)
	test.ExpectEquality(t, l.Len(), 1)

	// the entry survives until both owners have destroyed the handle
	b.Destroy()
	test.ExpectEquality(t, l.Len(), 1)
	a.Destroy()
	test.ExpectEquality(t, l.Len(), 0)

	// the double claim is the only finding
	f := l.Findings()
	test.DemandEquality(t, len(f), 1)
	test.ExpectEquality(t, f[0].Type, ledger.DoubleClaim)
}

func TestUnclaimedDestroy(t *testing.T) {
	// the handle is claimed before the ledger is installed
	a := handle.New[widgetDeleter](&widget{id: 1})

	l := install(t)
	a.Destroy()

	f := l.Findings()
	test.DemandEquality(t, len(f), 1)
	test.ExpectEquality(t, f[0].Type, ledger.UnclaimedDestroy)
}

func TestCrossGoroutine(t *testing.T) {
	l := install(t)

	a := handle.New[widgetDeleter](&widget{id: 1})

	done := make(chan bool)
	go func() {
		a.Destroy()
		done <- true
	}()
	<-done

	f := l.Findings()
	test.DemandEquality(t, len(f), 1)
	test.ExpectEquality(t, f[0].Type, ledger.CrossGoroutine)
	test.ExpectEquality(t, l.Len(), 0)
}

func TestLeakEvent(t *testing.T) {
	l := install(t)

	// leak events normally come from a finalizer. sending one directly is
	// enough to test the ledger's handling of it
	w := &widget{id: 1}
	a := handle.New[widgetDeleter](w)
	l.OnHandleEvent(handle.Event{
		Type: handle.EventLeaked,
		Kind: "ledger_test.widgetDeleter",
		Raw:  w,
	})
	a.Release()

	f := l.Findings()
	test.DemandEquality(t, len(f), 1)
	test.ExpectEquality(t, f[0].Type, ledger.Leak)
	test.ExpectEquality(t, l.Len(), 0)
}

func TestReport(t *testing.T) {
	l := install(t)

	echo := &test.CompareWriter{}
	l.SetEcho(echo)

	a := handle.New[widgetDeleter](&widget{id: 1})
	defer a.Destroy()

	w := &widget{id: 2}
	b := handle.New[widgetDeleter](w)
	c := handle.New[widgetDeleter](w)
	b.Release()
	c.Release()

	var s strings.Builder
	l.Report(&s)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "1 live handles\n"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "1 findings\n  double claim: ledger_test.widgetDeleter"))
	test.ExpectSuccess(t, echo.HasPrefix("ledger: double claim"))

	var v strings.Builder
	l.Visualise(&v)
	test.ExpectSuccess(t, strings.Contains(v.String(), "digraph"))
}

func TestFindingsAreLogged(t *testing.T) {
	logger.Clear()

	l := ledger.NewLedger(logger.Allow)
	l.Install()
	defer l.Uninstall()

	w := &widget{id: 1}
	a := handle.New[widgetDeleter](w)
	b := handle.New[widgetDeleter](w)
	a.Release()
	b.Release()

	var s strings.Builder
	logger.Tail(&s, 1)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "ledger: double claim: ledger_test.widgetDeleter"))
}
