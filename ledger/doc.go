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

// Package ledger is an optional checker for the ownership rules of the handle
// package. Once installed it receives every ownership event and keeps a record
// of which raw handles are currently owned.
//
// The ledger reports:
//
//	a raw handle claimed by a second owner
//	the destruction of a raw handle the ledger has no record of
//	the destruction of a raw handle by a goroutine other than the one that claimed it
//	an owning handle that became unreachable without being destroyed
//
// Findings are written to the central logger under the "ledger" tag. The
// ledger never changes the behaviour of the handles it watches.
//
// Installing a ledger has a cost. Every claim records the goroutine ID and
// every owning handle created while the ledger is installed has a finalizer.
package ledger
