// This file is part of Emulate6502.
//
// Emulate6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emulate6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emulate6502.  If not, see <https://www.gnu.org/licenses/>.

package performance

// CalcRate takes the number of cycles and the duration (in seconds) and returns
// the cycles-per-second and the accuracy of that value as a percentage of the
// requested rate. The accuracy is zero if the requested rate is zero or less.
func CalcRate(cycles uint64, duration float64, requestedRate float64) (rate float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	rate = float64(cycles) / duration
	if requestedRate > 0 {
		accuracy = 100 * rate / requestedRate
	}
	return rate, accuracy
}
