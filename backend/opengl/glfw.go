package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gridkit/gridkit"
)

// GLFWInputAdapter feeds GLFW events into a gridkit.InputState and
// maps the table's cursor requests back onto the window.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *gridkit.InputState

	arrowCursor   *glfw.Cursor
	hResizeCursor *glfw.Cursor
	lastCursor    gridkit.Cursor

	lastTime float64
}

// NewGLFWInputAdapter wires the window's input callbacks.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window:        window,
		input:         gridkit.NewInputState(),
		arrowCursor:   glfw.CreateStandardCursor(glfw.ArrowCursor),
		hResizeCursor: glfw.CreateStandardCursor(glfw.HResizeCursor),
		lastTime:      glfw.GetTime(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update begins a new input frame: clears edge events, advances the
// input clock and refreshes position and modifiers. Call once per
// frame before glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *gridkit.InputState {
	a.input.Reset()

	now := glfw.GetTime()
	a.input.AdvanceTime(float32(now - a.lastTime))
	a.lastTime = now

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press
	a.input.ModSuper = a.window.GetKey(glfw.KeyLeftSuper) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightSuper) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *gridkit.InputState {
	return a.input
}

// ApplyCursor switches the window cursor to match the table's request,
// e.g. the horizontal resize arrows near a column edge.
func (a *GLFWInputAdapter) ApplyCursor(cursor gridkit.Cursor) {
	if cursor == a.lastCursor {
		return
	}
	a.lastCursor = cursor
	switch cursor {
	case gridkit.CursorResizeH:
		a.window.SetCursor(a.hResizeCursor)
	default:
		a.window.SetCursor(a.arrowCursor)
	}
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == gridkit.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToKey maps GLFW keys to the table's navigation key set.
func glfwKeyToKey(key glfw.Key) gridkit.Key {
	switch key {
	case glfw.KeyTab:
		return gridkit.KeyTab
	case glfw.KeyLeft:
		return gridkit.KeyLeft
	case glfw.KeyRight:
		return gridkit.KeyRight
	case glfw.KeyUp:
		return gridkit.KeyUp
	case glfw.KeyDown:
		return gridkit.KeyDown
	case glfw.KeyPageUp:
		return gridkit.KeyPageUp
	case glfw.KeyPageDown:
		return gridkit.KeyPageDown
	case glfw.KeyHome:
		return gridkit.KeyHome
	case glfw.KeyEnd:
		return gridkit.KeyEnd
	case glfw.KeyDelete:
		return gridkit.KeyDelete
	case glfw.KeySpace:
		return gridkit.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return gridkit.KeyEnter
	case glfw.KeyEscape:
		return gridkit.KeyEscape
	case glfw.KeyA:
		return gridkit.KeyA
	default:
		return gridkit.KeyNone
	}
}

// glfwMouseButtonToButton maps GLFW mouse buttons.
func glfwMouseButtonToButton(button glfw.MouseButton) gridkit.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gridkit.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gridkit.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gridkit.MouseButtonMiddle
	default:
		return -1
	}
}
