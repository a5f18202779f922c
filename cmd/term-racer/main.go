package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-racer/audio"
	"github.com/lixenwraith/term-racer/engine"
	"github.com/lixenwraith/term-racer/input"
	"github.com/lixenwraith/term-racer/render"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal to a sane state before printing
	// the error and stack trace to stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nTERM RACER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	screen.Clear()

	ctx := engine.NewContext()
	ctx.Sampler = input.NewSampler(screen, &ctx.Running)

	reactor := audio.NewReactor(ctx)
	// Audio init failure is non-fatal; the game runs silent
	_ = reactor.Init()
	defer reactor.Close()

	renderer := render.NewRenderer(ctx, screen)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); ctx.RunPhysics() }()
	go func() { defer wg.Done(); renderer.Run() }()
	go func() { defer wg.Done(); reactor.Run() }()

	// The sampler blocks in PollEvent; finalizing the screen after the
	// loops stop unblocks and ends it
	go ctx.Sampler.Run()

	wg.Wait()
	screen.Fini()
}
