// Package viz is the terminal frontend, built on Bubble Tea.
//
//   - [Model]: a running board with a stats panel and population chart
//   - [Canvas]: Braille canvas used for the overview mode on large boards
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Start/stop auto-update
//	N     - Next frame
//	C     - Clear field
//	R     - Randomize
//	B     - Toggle Braille overview
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//	Q/Esc - Quit
//
// Clicking a cell with the left mouse button toggles it.
//
// # Recording
//
// G starts recording generations; pressing it again writes golife.gif to
// the current directory.
package viz
