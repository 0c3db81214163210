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

// Package audio wraps SDL audio devices and audio streams in the handle types
// of the handle package. It also provides WAV recording of PCM data and the
// decoding of WAV and MP3 files to PCM data suitable for queueing on a device.
//
// The types in this package follow the same pattern as the video package:
// DeviceOf is the method set, Device is the owning alias and DeviceRef is the
// reference alias.
//
// SDL must be initialised with the sdl.INIT_AUDIO flag before a device or a
// stream is created.
package audio
