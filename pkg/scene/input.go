package scene

import "github.com/ansipixels/orrery/pkg/render"

// Action is something a key press asks the scene or frontend to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionCapture
	ActionPause
	ActionReset
	ActionToggleHUD
	ActionZoomIn
	ActionZoomOut
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionQuit:      "quit",
	ActionForward:   "forward",
	ActionBackward:  "backward",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionCapture:   "capture",
	ActionPause:     "pause",
	ActionReset:     "reset",
	ActionToggleHUD: "toggle-hud",
	ActionZoomIn:    "zoom-in",
	ActionZoomOut:   "zoom-out",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "unknown"
}

// KeyAction maps a terminal input byte to an action.
func KeyAction(b byte) Action {
	switch b {
	case 27: // Escape
		return ActionQuit
	case 3, 4: // Ctrl-C, Ctrl-D
		return ActionQuit
	case 'w', 'W':
		return ActionForward
	case 's', 'S':
		return ActionBackward
	case 'a', 'A':
		return ActionLeft
	case 'd', 'D':
		return ActionRight
	case 'p', 'P':
		return ActionCapture
	case ' ':
		return ActionPause
	case 'r', 'R':
		return ActionReset
	case '?':
		return ActionToggleHUD
	case '+', '=':
		return ActionZoomIn
	case '-', '_':
		return ActionZoomOut
	}
	return ActionNone
}

// KeyActions maps one read of terminal input to actions. A lone Escape
// quits; escape sequences (arrow keys, mouse reports, Alt+key) are skipped
// whole so their leading ESC byte is not taken as Escape.
func KeyActions(data []byte) []Action {
	var actions []Action
	for i := 0; i < len(data); i++ {
		if data[i] == 27 && i+1 < len(data) {
			i = skipEscape(data, i)
			continue
		}
		if a := KeyAction(data[i]); a != ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}

// skipEscape returns the index of the last byte of the escape sequence
// starting at data[i].
func skipEscape(data []byte, i int) int {
	switch data[i+1] {
	case '[': // CSI: parameters then a final byte in 0x40..0x7E
		for j := i + 2; j < len(data); j++ {
			if data[j] >= 0x40 && data[j] <= 0x7e {
				return j
			}
		}
		return len(data) - 1
	case 'O': // SS3: one more byte
		return min(i+2, len(data)-1)
	}
	return i + 1
}

// Movement returns the camera movement for a move action.
func (a Action) Movement() (render.Movement, bool) {
	switch a {
	case ActionForward:
		return render.Forward, true
	case ActionBackward:
		return render.Backward, true
	case ActionLeft:
		return render.Left, true
	case ActionRight:
		return render.Right, true
	}
	return 0, false
}

// zoomStep is the field of view change, in degrees, per zoom key press.
const zoomStep = 2.0

// Apply performs the scene-level part of an action and reports whether the
// action was handled. Quit, capture and HUD are left to the frontend.
func (s *Scene) Apply(a Action) bool {
	if m, ok := a.Movement(); ok {
		s.Camera.Nudge(m)
		return true
	}
	switch a {
	case ActionPause:
		s.Paused = !s.Paused
	case ActionReset:
		s.Reset()
	case ActionZoomIn:
		s.Camera.ProcessMouseScroll(zoomStep)
	case ActionZoomOut:
		s.Camera.ProcessMouseScroll(-zoomStep)
	default:
		return false
	}
	return true
}
