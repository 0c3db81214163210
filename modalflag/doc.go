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

// Package modalflag wraps the flag package for programs that have more than
// one mode of operation, each with its own flags. The go command is a good
// example: build, test and run all accept different flags.
//
// Arguments are given once with NewArgs() and then parsed one mode at a time.
// Sub-modes for the next call to Parse() are added with AddSubModes(). The
// first sub-mode is the default and is selected when the first non-flag
// argument is not a sub-mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "info")
//	verbose := md.AddBool("verbose", false, "echo log entries")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		...
//	}
//
// Sub-mode comparisons are case insensitive. Mode() and Path() always return
// upper case mode names.
package modalflag
