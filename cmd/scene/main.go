package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-tweaks/internal/app"
	"cube-tweaks/internal/commands"
	"cube-tweaks/internal/debug"
	"cube-tweaks/internal/download"
	"cube-tweaks/internal/engineconfig"
	"cube-tweaks/internal/env"
	"cube-tweaks/internal/fonts"
	"cube-tweaks/internal/graphics"
	"cube-tweaks/internal/host"
	"cube-tweaks/internal/logger"
	"cube-tweaks/internal/render"
	"cube-tweaks/internal/terminal"
	"cube-tweaks/internal/ui"
	"cube-tweaks/internal/ui/theme"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	cfgPath := engineconfig.Path(os.Getenv)
	prefs, cfgErr := engineconfig.Load(cfgPath)
	prefs.ApplyEnv(os.Getenv)

	log := logger.New(prefs.LogFile, os.Stdout)
	slog := log.Slog()
	if cfgErr != nil {
		slog.Warn("config rejected, using defaults", "err", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	state, err := app.StateFromPreset(prefs.Debug)
	if err != nil {
		return err
	}

	window := graphics.Open(graphics.Options{
		Width:     prefs.Window.Width,
		Height:    prefs.Window.Height,
		Title:     prefs.Window.Title,
		TargetFPS: int32(prefs.Window.TargetFPS),
	})
	defer graphics.Close()

	surface := render.New(rl.GetScreenWidth(), rl.GetScreenHeight())
	defer surface.Close()

	pointer := &host.Pointer{}
	a, err := app.New(ctx, app.Config{
		Width:       rl.GetScreenWidth(),
		Height:      rl.GetScreenHeight(),
		PixelRatio:  rl.GetWindowScaleDPI().X,
		TexturePath: prefs.Texture,
		Title:       prefs.Panel.Title,
		State:       state,
		Fetcher:     download.New(prefs.AssetCache),
		Logger:      slog,
	}, surface, render.Uploader{}, pointer)
	if err != nil {
		return err
	}
	defer func() {
		if t := a.Texture(); t != nil {
			render.Unload(t)
		}
	}()

	for _, f := range a.Registry.Folders() {
		f.Closed = prefs.Panel.CloseFolders
	}
	sheet, err := loadTheme(prefs.Panel.Stylesheet)
	if err != nil {
		slog.Warn("panel theme", "err", err)
	}
	ui.ApplyTheme(sheet)
	panel := ui.New(a.Registry, int32(prefs.Panel.Width), slog)

	reg := commands.NewRegistry()
	a.RegisterCommands(reg, log.Log, func() error {
		p := prefs
		p.Debug = a.Preset()
		return engineconfig.Save(cfgPath, p)
	})
	term := terminal.New(log, reg)

	err = engineconfig.Watch(ctx, cfgPath, func(p engineconfig.Prefs) {
		s, err := app.StateFromPreset(p.Debug)
		if err != nil {
			slog.Warn("config reload", "err", err)
			return
		}
		a.PostPreset(s)
	}, func(err error) {
		slog.Warn("config reload", "err", err)
	})
	if err != nil {
		slog.Warn("config not watched", "err", err)
	}

	stats := debug.New()
	if prefs.Panel.Font != "" {
		if path, err := fonts.Find(prefs.Panel.Font, fonts.DefaultDirs); err != nil {
			slog.Warn("overlay font", "err", err)
		} else {
			font := rl.LoadFontEx(path, 32, nil)
			defer rl.UnloadFont(font)
			gui.SetFont(font)
			term.SetFont(font)
			stats.SetFont(font)
		}
	}

	h := host.New(a, surface, panel, term, stats, pointer)
	slog.Info("scene ready", "config", cfgPath, "texture", prefs.Texture)
	frames := graphics.Run(ctx, window, h.Update, h.Draw)
	slog.Info("scene closed", "frames", frames)
	return nil
}

func loadTheme(path string) (*theme.Sheet, error) {
	if path == "" {
		return ui.DefaultSheet(), nil
	}
	sheet, err := theme.Load(path)
	if err != nil {
		return ui.DefaultSheet(), err
	}
	return sheet, nil
}
