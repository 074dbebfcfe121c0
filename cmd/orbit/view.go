package main

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	var software bool
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open a window and orbit the reference scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			width, height := cfg.WindowSize()
			win := window.NewWindow(
				window.WithTitle(cfg.WindowTitle()),
				window.WithSize(width, height),
			)

			presentMode := renderer.PresentModeUncapped
			if cfg.VSync {
				presentMode = renderer.PresentModeVSync
			}
			r, err := renderer.NewRenderer(win,
				renderer.WithPresentMode(presentMode),
				renderer.WithForceSoftwareRenderer(software),
			)
			if err != nil {
				_ = win.Close()
				return err
			}

			provider := bind_group_provider.NewBindGroupProvider("Camera")
			if err := r.InitCameraBindGroup(provider); err != nil {
				r.Release()
				_ = win.Close()
				return fmt.Errorf("failed to initialize camera bind group: %w", err)
			}

			options := append(cfg.CameraOptions(), camera.WithUniformSink(renderer.NewUniformSink(r, provider, 0)))
			eng := engine.NewEngine(
				engine.WithWindow(win),
				engine.WithCamera(camera.NewCamera(options...)),
				engine.WithRenderer(r),
				engine.WithProfiling(cfg.Profiling),
				engine.WithProfilerToggleKey(common.KeyF3),
			)
			defer func() {
				if err := eng.Close(); err != nil {
					log.Printf("[Engine] %v", err)
				}
			}()

			log.Printf("[Engine] %s %dx%d, vsync=%t, F3 toggles profiling", cfg.WindowTitle(), win.Width(), win.Height(), cfg.VSync)
			return eng.Run()
		},
	}
	cmd.Flags().BoolVar(&software, "software", false, "force the software fallback adapter")
	return cmd
}
