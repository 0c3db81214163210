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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Group is a named collection of preferences. Values can be loaded from the
// command line stack.
type Group struct {
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Pref),
	}
}

// Add a preference to the group. The key must be unique within the group.
func (g *Group) Add(key string, p Pref) error {
	if _, ok := g.entries[key]; ok {
		return fmt.Errorf("prefs: %s: already in group", key)
	}
	g.entries[key] = p
	return nil
}

// Load sets the value of every preference in the group that has an entry in
// the top group of the command line stack. Errors from individual preferences
// are collected and returned together after every preference has been tried.
func (g *Group) Load() error {
	var errs []string
	for _, k := range g.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := g.entries[k].Set(v); err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", k, err))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("prefs: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Reset every preference in the group to its zero value.
func (g *Group) Reset() error {
	for _, k := range g.keys() {
		if err := g.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// String returns the group as a prefs string suitable for
// PushCommandLineStack().
func (g *Group) String() string {
	s := make([]string, 0, len(g.entries))
	for _, k := range g.keys() {
		s = append(s, fmt.Sprintf("%s::%s", k, g.entries[k].String()))
	}
	return strings.Join(s, "; ")
}

func (g *Group) keys() []string {
	keys := make([]string, 0, len(g.entries))
	for k := range g.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
