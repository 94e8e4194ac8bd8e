// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command imdemo renders a small UI frame headlessly and prints the
// recorded render pass commands.
//
// It opens the noop HAL backend, builds a renderer with the bundled font
// atlas, lays out a panel with a title bar, a few lines of text and a
// custom callback, renders it into a Recorder and dumps the command stream.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/imrender"
	"github.com/gogpu/imrender/draw"
	"github.com/gogpu/imrender/fontatlas"
)

func main() {
	var (
		width   = flag.Int("width", 800, "display width")
		height  = flag.Int("height", 600, "display height")
		frames  = flag.Int("frames", 1, "number of frames to render")
		spirv   = flag.Bool("spirv", false, "compile the shader to SPIR-V with naga")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		imrender.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	device, queue, cleanup, err := openNoopDevice()
	if err != nil {
		log.Fatalf("Failed to open device: %v", err)
	}
	defer cleanup()

	atlas, err := fontatlas.New()
	if err != nil {
		log.Fatalf("Failed to build font atlas: %v", err)
	}

	opts := []imrender.Option{imrender.WithLabel("imdemo")}
	if *spirv {
		opts = append(opts, imrender.WithShaderFormat(imrender.ShaderSPIRV))
	}
	r, err := imrender.New(fontatlas.NewContext(atlas), device, queue, gputypes.TextureFormatBGRA8Unorm, opts...)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Destroy()

	for i := range *frames {
		rec := imrender.NewRecorder()
		data := buildFrame(atlas, float32(*width), float32(*height), i)
		if err := r.Render(rec, data); err != nil {
			log.Fatalf("Frame %d: %v", i, err)
		}
		rec.End()

		fmt.Printf("frame %d: %v\n", i, r.Stats())
		for _, c := range rec.Commands() {
			fmt.Printf("  %v\n", c)
		}
	}

	log.Printf("Rendered %d frame(s) at %dx%d, %d texture(s), %d bytes\n",
		*frames, *width, *height, r.TextureCount(), r.TextureBytes())
}

// buildFrame lays out a panel the way an immediate-mode UI library would.
func buildFrame(atlas *fontatlas.Atlas, w, h float32, frame int) *draw.Data {
	screen := draw.Rect{MaxX: w, MaxY: h}
	panel := draw.Rect{MinX: 40, MinY: 40, MaxX: 360, MaxY: 220}
	title := draw.Rect{MinX: panel.MinX, MinY: panel.MinY, MaxX: panel.MaxX, MaxY: panel.MinY + 20}

	bg := &draw.List{}
	atlas.AppendRect(bg, screen, draw.PackColor(30, 30, 40, 255), screen)

	win := &draw.List{Native: "panel"}
	atlas.AppendRect(win, panel, draw.PackColor(50, 50, 70, 240), screen)
	atlas.AppendRect(win, title, draw.PackColor(70, 90, 160, 255), screen)
	atlas.AppendText(win, [2]float32{title.MinX + 6, title.MinY + 4}, draw.PackColor(255, 255, 255, 255), title, "imrender demo")

	lines := []string{
		fmt.Sprintf("frame %d", frame),
		"The quick brown fox",
		"jumps over the lazy dog.",
	}
	y := title.MaxY + 8
	for _, line := range lines {
		atlas.AppendText(win, [2]float32{panel.MinX + 8, y}, draw.PackColor(220, 220, 220, 255), panel, line)
		y += atlas.LineHeight() + 2
	}

	win.Cmds = append(win.Cmds, draw.RawCallback{
		Func: func(list *draw.List, cmd draw.RawCallback) {
			fmt.Printf("  callback(list=%v, token=%v)\n", list.Native, cmd.Token)
		},
		Token: "custom-viewport",
	})

	return &draw.Data{
		DisplaySize: [2]float32{w, h},
		Lists:       []*draw.List{bg, win},
	}
}

func openNoopDevice() (hal.Device, hal.Queue, func(), error) {
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, nil, nil, fmt.Errorf("no adapters")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, nil, nil, fmt.Errorf("open adapter: %w", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup, nil
}
