// Example shows a virtual table with a million rows, sortable and
// reorderable columns, checkboxes and multi-selection.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, initializes the OpenGL renderer,
// and drives a gridkit table from the window's input events.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gridkit/gridkit"
	"github.com/gridkit/gridkit/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "gridkit example"
	rowCount     = 1_000_000
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	// The builtin fixed font draws from the backend's glyph atlas.
	style := gridkit.DefaultStyle()
	font := gridkit.NewFixedFont(style.CharWidth, style.CharHeight)
	font.SetTexture(renderer.FontTextureID())

	// A virtual table: rows materialize lazily as they scroll into
	// view, so a million of them costs nothing up front.
	table := gridkit.New(
		gridkit.WithStyle(style),
		gridkit.WithFont(font),
		gridkit.WithMultiSelection(),
		gridkit.WithCheckBoxes(),
		gridkit.WithVirtual(func(it *gridkit.Item, index int) {
			_ = it.SetText(0, fmt.Sprintf("Row %d", index))
			_ = it.SetText(1, fmt.Sprintf("%d", index*index%9973))
			_ = it.SetText(2, []string{"alpha", "beta", "gamma", "delta"}[index%4])
		}),
	)
	defer table.Dispose()

	for _, c := range []struct {
		text  string
		width float32
	}{{"Name", 200}, {"Value", 120}, {"Group", 120}} {
		if _, err := table.NewColumn(c.text, c.width); err != nil {
			return fmt.Errorf("column: %w", err)
		}
	}
	if err := table.SetItemCount(rowCount); err != nil {
		return fmt.Errorf("item count: %w", err)
	}
	table.SetFocused(true)
	table.SetLinesVisible(true)

	table.OnSelect(func(e gridkit.SelectionEvent) {
		if e.Check {
			fmt.Printf("row %d checked=%v\n", e.Index, e.Item.Checked())
		}
	})
	table.OnActivate(func(e gridkit.SelectionEvent) {
		fmt.Printf("activated row %d\n", e.Index)
	})
	table.OnColumnSelect(func(e gridkit.ColumnEvent) {
		// Header clicks cycle the sort chevron on that column.
		if table.SortColumn() == e.Column && table.SortDirection() == gridkit.SortUp {
			table.SetSortDirection(gridkit.SortDown)
		} else {
			_ = table.SetSortColumn(e.Column)
			table.SetSortDirection(gridkit.SortUp)
		}
	})

	dl := gridkit.AcquireDrawList()
	defer gridkit.ReleaseDrawList(dl)

	for !window.ShouldClose() {
		inputAdapter.Update()
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.10, 0.10, 0.12, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		table.SetBounds(gridkit.Rect{X: 0, Y: 0, W: float32(w), H: float32(h)})
		if err := table.HandleInput(inputAdapter.Input()); err != nil {
			return fmt.Errorf("input: %w", err)
		}
		inputAdapter.ApplyCursor(table.Cursor())

		if err := table.Render(dl); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if err := renderer.Render(dl); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
