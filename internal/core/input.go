package core

// Direction is a requested move on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in button order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit (row, col) offset of the direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Button identifies one of the four physical buttons.
// The same button means a difficulty (or records) while selecting and a
// direction while playing, mirroring the hardware wiring of buttons 1-4.
type Button int

const (
	ButtonNone  Button = iota
	ButtonUp           // button 1: Easy / move up
	ButtonDown         // button 2: Normal / move down
	ButtonLeft         // button 3: Hard / move left
	ButtonRight        // button 4: view records / move right
)

// Buttons lists the four buttons in hardware order.
var Buttons = []Button{ButtonUp, ButtonDown, ButtonLeft, ButtonRight}

// Direction returns the play-mode direction bound to the button.
func (b Button) Direction() (Direction, bool) {
	switch b {
	case ButtonUp:
		return DirUp, true
	case ButtonDown:
		return DirDown, true
	case ButtonLeft:
		return DirLeft, true
	case ButtonRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Difficulty returns the selection-mode difficulty bound to the button.
// ButtonRight has none: it opens the records view.
func (b Button) Difficulty() (Difficulty, bool) {
	switch b {
	case ButtonUp:
		return Easy, true
	case ButtonDown:
		return Normal, true
	case ButtonLeft:
		return Hard, true
	default:
		return "", false
	}
}

// ViewsRecords reports whether the button opens the records view in selection mode.
func (b Button) ViewsRecords() bool {
	return b == ButtonRight
}

// Number returns the 1-based hardware number of the button, or 0.
func (b Button) Number() int {
	if b < ButtonUp || b > ButtonRight {
		return 0
	}
	return int(b)
}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// ButtonFor returns the button whose play-mode direction is d.
func ButtonFor(d Direction) Button {
	switch d {
	case DirUp:
		return ButtonUp
	case DirDown:
		return ButtonDown
	case DirLeft:
		return ButtonLeft
	case DirRight:
		return ButtonRight
	default:
		return ButtonNone
	}
}
