package main

import (
	"fmt"

	"github.com/chip8vm/chip8/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

/// sdlFrontend shows the CHIP-8 video memory in an SDL window.
///
type sdlFrontend struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// render target the size of the CHIP-8 display, stretched to the
	// window when presented
	screen *sdl.Texture
}

/// newSDLFrontend opens a window scale times the CHIP-8 resolution.
///
func newSDLFrontend(scale int) (*sdlFrontend, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	w := int32(chip8.Width * scale)
	h := int32(chip8.Height * scale)

	window, renderer, err := sdl.CreateWindowAndRenderer(w, h, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	window.SetTitle("CHIP-8")

	// create a render target for the display
	screen, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, chip8.Width, chip8.Height)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating screen texture: %w", err)
	}

	return &sdlFrontend{
		window:   window,
		renderer: renderer,
		screen:   screen,
	}, nil
}

/// Render the CHIP-8 video memory, 0 is black and anything else white.
///
func (s *sdlFrontend) Render(vm *chip8.CHIP_8) error {
	if err := s.renderer.SetRenderTarget(s.screen); err != nil {
		return err
	}

	// the background color for the screen
	s.renderer.SetDrawColor(0, 0, 0, 255)
	s.renderer.Clear()

	// set the pixel color
	s.renderer.SetDrawColor(255, 255, 255, 255)

	// draw all the pixels
	for p, c := range vm.Video {
		if c != 0 {
			s.renderer.DrawPoint(int32(p%chip8.Width), int32(p/chip8.Width))
		}
	}

	// restore the render target
	if err := s.renderer.SetRenderTarget(nil); err != nil {
		return err
	}

	// stretch the render target to fit
	if err := s.renderer.Copy(s.screen, nil, nil); err != nil {
		return err
	}

	s.renderer.Present()

	return nil
}

/// Close the window and shut down SDL.
///
func (s *sdlFrontend) Close() {
	s.screen.Destroy()
	s.renderer.Destroy()
	s.window.Destroy()

	sdl.Quit()
}
