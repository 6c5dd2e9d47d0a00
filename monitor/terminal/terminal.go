// This file is part of Gopher86.
//
// Gopher86 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher86 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher86.  If not, see <https://www.gnu.org/licenses/>.

package terminal

// Style indicates how a line of output should be presented.
type Style int

// List of valid Style values.
const (
	StyleFeedback Style = iota
	StyleHelp
	StyleError
	StyleLog
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input, without the trailing newline.
	// io.EOF is returned when there is no more input.
	TermRead(prompt string) (string, error)

	// IsInteractive should return true for implementations that require user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the monitor's command line.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible.
	CleanUp()
}
