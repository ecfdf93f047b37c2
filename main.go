package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/conwayterm/go-life/model"
	"github.com/conwayterm/go-life/terminal"
	"github.com/conwayterm/go-life/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run checks the startup precondition, seeds the board, and drives the
// frame loop. It returns nil only when the process is signalled; left
// alone it never returns.
func run() error {
	config := utils.DefaultConfig()
	if err := config.Validate(); err != nil {
		return err
	}

	tty := terminal.Stdout{}
	if err := terminal.RequireSize(tty, config.Width, config.Height); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	grid := model.NewGrid(config.Width, config.Height)
	grid.Randomize()

	pool := model.NewGridPool()
	renderer := model.NewTerminalRenderer(tty, config.AliveGlyph, config.DeadGlyph)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := time.Now()

		next := step(grid, config, pool)
		pool.Put(grid)
		grid = next

		renderer.Render(grid)

		waitForNextFrame(frameStart, config.FrameInterval)
	}
}

// step advances one generation, reading only the old grid.
func step(grid *model.Grid, config utils.Config, pool *model.GridPool) *model.Grid {
	if config.UseParallel {
		return grid.NextGenerationParallel(pool)
	}
	return grid.NextGeneration(pool)
}

// waitForNextFrame sleeps out the remainder of the frame interval. A
// slow frame is followed immediately by the next one; there is no
// catch-up, so the animation can only run slower than nominal, never
// faster.
func waitForNextFrame(frameStart time.Time, interval time.Duration) {
	if remaining := interval - time.Since(frameStart); remaining > 0 {
		time.Sleep(remaining)
	}
}
