// Example opens a GLFW window and renders a few text nodes through the
// OpenGL backend.
//
// Prerequisites:
//
//	go run ./example/       # needs OpenGL 4.1 and X11/Wayland headers
package main

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	scene "github.com/go-scene2d/scene"
	"github.com/go-scene2d/scene/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "scene example"
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
	window, err := opengl.CreateWindow(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer glfw.Terminate()

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("scene renderer: %w", err)
	}
	defer renderer.Delete()

	provider, err := opengl.NewProvider()
	if err != nil {
		return fmt.Errorf("font provider: %w", err)
	}
	defer provider.Delete()

	// Build the scene: a title, a fading multi-line body and a
	// stroked counter.
	sc := scene.NewScene()

	title := scene.NewLabel("scene2d", scene.Vec2{X: 20, Y: 20},
		"Arial", scene.Px(26), scene.WithFill(scene.ColorYellow))
	title.Font().Bold()
	sc.Add(title)

	body := scene.NewLabel("Multi-line text\nwith trailing spaces   \n\nand a blank line.",
		scene.Vec2{X: 20, Y: 70},
		"Arial", scene.Px(16),
		scene.WithFill(scene.ColorWhite),
		scene.WithLineHeight(1.4))
	sc.Add(body)

	counter := scene.NewText("Arial", scene.Px(20),
		scene.WithFill(scene.ColorWhite),
		scene.WithStroke(scene.ColorBlack, 2),
		scene.WithAlign(scene.AlignCenter))

	frame := 0
	for !window.ShouldClose() {
		glfw.PollEvents()
		frame++

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// Pulse the body opacity to show alpha save/restore at work.
		body.SetOpacity(float32(0.6 + 0.4*math.Sin(float64(frame)/60)))

		dl := scene.AcquireDrawList()
		surface := scene.NewListSurface(dl, provider)

		sc.Render(surface)
		counter.DrawStroke(surface, fmt.Sprintf("frame %d", frame),
			float32(w)/2, float32(h)-40)

		err := renderer.Render(dl)
		scene.ReleaseDrawList(dl)
		if err != nil {
			return fmt.Errorf("scene render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
