package gridkit

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyCount
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

// DoubleClickTime is the maximum gap between two presses of the same
// button for the second press to count as a double click (seconds).
const DoubleClickTime float32 = 0.4

// DoubleClickDist is the maximum pointer travel between the two presses
// of a double click, in pixels.
const DoubleClickDist float32 = 4

// InputState holds input state for the current frame.
// This is typically populated by the application from GLFW or similar.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Double click tracking
	mouseDoubleClicked [MouseButtonCount]bool
	lastClickTime      [MouseButtonCount]float32
	lastClickX         [MouseButtonCount]float32
	lastClickY         [MouseButtonCount]float32

	// Mouse wheel
	MouseWheelX float32
	MouseWheelY float32

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released

	// Key repeat tracking
	keyHoldTime [KeyCount]float32 // How long each key has been held

	// Monotonic clock, advanced by the application each frame
	now float32

	// Modifiers
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	s := &InputState{}
	for i := range s.lastClickTime {
		s.lastClickTime[i] = -DoubleClickTime * 2
	}
	return s
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	// Clear single-frame events
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
	for i := range s.mouseDoubleClicked {
		s.mouseDoubleClicked[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	for i := range s.keyUp {
		s.keyUp[i] = false
	}
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// AdvanceTime advances the input clock by the frame's delta time and
// updates key hold times for repeat detection. Call once per frame.
func (s *InputState) AdvanceTime(dt float32) {
	s.now += dt
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
// Double clicks are detected here: a second press of the same button
// within DoubleClickTime and DoubleClickDist of the first registers as
// both a click and a double click on that frame.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true

		dx := s.MouseX - s.lastClickX[button]
		dy := s.MouseY - s.lastClickY[button]
		if s.now-s.lastClickTime[button] <= DoubleClickTime &&
			dx*dx+dy*dy <= DoubleClickDist*DoubleClickDist {
			s.mouseDoubleClicked[button] = true
			// Require a full fresh click before the next double click
			s.lastClickTime[button] = -DoubleClickTime * 2
		} else {
			s.lastClickTime[button] = s.now
			s.lastClickX[button] = s.MouseX
			s.lastClickY[button] = s.MouseY
		}
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0 // Reset hold time on fresh press
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0 // Reset hold time on release
	}
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just clicked (pressed this frame).
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseDoubleClicked returns true if this frame's press completed a
// double click of the button.
func (s *InputState) MouseDoubleClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDoubleClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was just released.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyRepeated returns true if a key should trigger this frame.
// Returns true on initial press, then after KeyRepeatDelay, then every
// KeyRepeatInterval. Arrow navigation uses this so holding a key keeps
// moving the current row.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}

	// Trigger on initial press
	if s.keyPressed[key] {
		return true
	}

	// Check if held long enough to repeat
	if !s.keyDown[key] {
		return false
	}

	holdTime := s.keyHoldTime[key]
	if holdTime < KeyRepeatDelay {
		return false
	}

	// Calculate how many repeat intervals have passed since delay
	timeSinceDelay := holdTime - KeyRepeatDelay
	// Trigger if we just crossed an interval boundary this frame
	// This is approximate but works well for typical frame rates
	repeatCount := int(timeSinceDelay / KeyRepeatInterval)
	prevRepeatCount := int((timeSinceDelay - 0.016) / KeyRepeatInterval) // Assume ~60fps for prev frame
	return repeatCount > prevRepeatCount
}
