package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/config"
	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/chewxy/math32"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		keys         []string
		ticks        int
		releaseAfter int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Hold keys for a number of ticks without a window and log the camera path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runSimulation(cfg, simulation{
				keys:         keys,
				ticks:        ticks,
				releaseAfter: releaseAfter,
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringSliceVarP(&keys, "keys", "k", []string{"d"}, "keys held from the first tick (names such as w, left, space)")
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 10, "number of frames to run")
	cmd.Flags().IntVar(&releaseAfter, "release-after", 0, "release every key after this many ticks (0 holds them throughout)")
	return cmd
}

type simulation struct {
	keys         []string
	ticks        int
	releaseAfter int
}

// runSimulation drives a window-less engine: the key presses are queued before the first frame,
// and each frame's eye and radius are written to out.
func runSimulation(cfg *config.Config, sim simulation, out io.Writer) error {
	if sim.ticks <= 0 {
		return fmt.Errorf("ticks: must be positive, got %d", sim.ticks)
	}

	codes := make([]uint32, 0, len(sim.keys))
	for _, name := range sim.keys {
		code, ok := common.KeyByName(name)
		if !ok {
			return fmt.Errorf("unknown key %q", strings.TrimSpace(name))
		}
		codes = append(codes, code)
	}

	logger := log.New(out, "", 0)
	cam := camera.NewCamera(cfg.CameraOptions()...)
	eng := engine.NewEngine(engine.WithCamera(cam), engine.WithProfiling(cfg.Profiling))
	defer eng.Close()

	for _, code := range codes {
		eng.HandleEvent(input.KeyEvent{Key: code, Action: input.KeyActionPress})
	}

	start := cam.Radius()
	var drift float32
	for tick := 1; tick <= sim.ticks; tick++ {
		if sim.releaseAfter > 0 && tick == sim.releaseAfter+1 {
			for _, code := range codes {
				eng.HandleEvent(input.KeyEvent{Key: code, Action: input.KeyActionRelease})
			}
		}
		if err := eng.Frame(); err != nil {
			return fmt.Errorf("tick %d: %w", tick, err)
		}

		eye := cam.Eye()
		radius := cam.Radius()
		drift = max(drift, math32.Abs(radius-start))
		logger.Printf("[Simulate] tick %d eye=(%.4f, %.4f, %.4f) radius=%.4f", tick, eye[0], eye[1], eye[2], radius)
	}
	logger.Printf("[Simulate] done: %d ticks, max radius drift %.2e", sim.ticks, drift)
	return nil
}
