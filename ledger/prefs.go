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
	"github.com/jetsetilly/sdlwrap/prefs"
)

// Preferences for the ledger.
type Preferences struct {
	group *prefs.Group

	// whether a ledger should be installed at all
	Enabled prefs.Bool

	// whether findings should be echoed as well as logged
	Echo prefs.Bool
}

func (p *Preferences) String() string {
	return p.group.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the top of the command line stack.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		group: prefs.NewGroup(),
	}

	if err := p.group.Add("ledger.enabled", &p.Enabled); err != nil {
		return nil, err
	}
	if err := p.group.Add("ledger.echo", &p.Echo); err != nil {
		return nil, err
	}

	if err := p.group.Load(); err != nil {
		return nil, err
	}

	return p, nil
}
