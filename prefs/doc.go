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

// Package prefs holds the preference types used to configure the optional
// parts of sdlwrap. Preferences are collected into a Group and can be set from
// the command line by pushing a prefs string onto the command line stack
// before calling Group.Load():
//
//	prefs.PushCommandLineStack("ledger.enabled::true; ledger.echo::true")
//	err := group.Load()
//	unused := prefs.PopCommandLineStack()
package prefs
