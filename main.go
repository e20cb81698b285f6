package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gen2brain/beeep"
	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/soellman/pidfile"

	"github.com/milk9111/auramixer/assets"
	"github.com/milk9111/auramixer/audio"
	"github.com/milk9111/auramixer/backdrop"
	"github.com/milk9111/auramixer/board"
	"github.com/milk9111/auramixer/config"
	"github.com/milk9111/auramixer/input"
	"github.com/milk9111/auramixer/mixer"
	"github.com/milk9111/auramixer/pkg/logger"
)

const (
	appName = "Auramixer"

	exitOK             = 0
	exitFailure        = 1
	exitAlreadyRunning = 2
)

var log *logger.Zerolog

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "auramixer: %v\n", err)
		return exitFailure
	}

	log = logger.NewZerolog(logger.ZeroConfig{
		Level:             cfg.Logger.Level,
		TimeFieldFormat:   cfg.Logger.TimeFieldFormat,
		PrettyPrint:       cfg.Logger.PrettyPrint,
		DisableSampling:   cfg.Logger.DisableSampling,
		RedirectStdLogger: cfg.Logger.RedirectStdLogger,
		ErrorStack:        cfg.Logger.ErrorStack,
		ShowCaller:        cfg.Logger.ShowCaller,
	})

	if err := lock(cfg.LockFile); err != nil {
		if errors.Is(err, pidfile.ErrProcessRunning) {
			log.Warn().Msgf("another instance is running (%s)", cfg.LockFile)
			return exitAlreadyRunning
		}
		log.Error().Msgf("failed to create pid file: %v", err)
		return exitFailure
	}
	defer func() {
		_ = pidfile.Remove(cfg.LockFile)
	}()

	if err := play(cfg); err != nil {
		log.Error().Msg(err.Error())
		return exitFailure
	}
	return exitOK
}

// lock takes the single-instance pidfile, replacing one left by a crash.
func lock(path string) error {
	err := pidfile.Write(path)
	if errors.Is(err, pidfile.ErrFileStale) || errors.Is(err, pidfile.ErrFileInvalid) {
		log.Warn().Msgf("removing stale pid file %s", path)
		if err := pidfile.Remove(path); err != nil {
			return err
		}
		err = pidfile.Write(path)
	}
	return err
}

func play(cfg *config.Config) error {
	base, err := assets.ResolveBase(cfg.AssetDir, cfg.Portable)
	if err != nil {
		return err
	}
	paths, firstRun, err := assets.Setup(base, !cfg.Portable && cfg.AssetDir == "")
	if err != nil {
		return err
	}
	if firstRun {
		msg := fmt.Sprintf("Put images, effects and music into %s", paths.Base)
		if err := beeep.Notify(appName, msg, ""); err != nil {
			log.Warn().Msgf("notify: %v", err)
		}
	}
	log.Info().Msgf("assets in %s", paths.Base)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := audio.NewEngine(cfg.Voices, log.With("audio"))
	defer engine.Close()
	go engine.Run(ctx)

	width, height := ebiten.Monitor().Size()
	ebiten.SetWindowTitle(appName)
	ebiten.SetFullscreen(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	loader := assets.NewLoader(
		audio.NewDecoder(ebaudio.NewContext(audio.SampleRate)),
		assets.ScaledImages{Width: width, Height: height},
		log.With("assets"),
	)
	alerts := assets.NewAlerts(appName)
	reload := func() (*assets.Bundle, assets.Report, string) {
		return load(loader, alerts, paths, width, height)
	}
	bundle, _, banner := reload()

	chans := engine.Channels()
	mix := mixer.New(
		[2]mixer.Channel{chans[0], chans[1]},
		bundle.Music,
		cfg.MusicVolume,
		cfg.Crossfade(),
		log.With("mixer"),
	)

	b := board.New(board.Options{
		Mixer:      mix,
		Voices:     engine.Voices(),
		Scheduler:  backdrop.New(bundle.Backgrounds, cfg.BlendStep, cfg.Placeholder()),
		Bundle:     bundle,
		Banner:     banner,
		Reload:     reload,
		VolumeStep: cfg.VolumeStep,
		Volume:     cfg.EffectVolume,
		Log:        log.With("board"),
	})

	var changes <-chan string
	if cfg.WatchAssets {
		w, err := assets.NewWatcher(paths.Dirs()...)
		if err != nil {
			log.Warn().Msgf("asset watcher disabled: %v", err)
		} else {
			defer w.Close()
			changes = w.Events
			go logWatchErrors(w.Errors)
		}
	}

	source := input.NewSource(cfg.BackgroundEvery(), changes)
	defer source.Close()

	if err := ebiten.RunGame(board.NewGame(b, source, width, height)); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Info().Msg("bye")
	return nil
}

// load decodes the asset folders and reports what the user has to fix.
// Missing backgrounds fall back to the built-in placeholder.
func load(loader *assets.Loader, alerts *assets.Alerts, paths assets.Paths, width, height int) (*assets.Bundle, assets.Report, string) {
	bundle, report := loader.Load(paths)

	if len(bundle.Backgrounds) == 0 {
		img, err := assets.Placeholder(width, height)
		if err != nil {
			log.Error().Msgf("placeholder: %v", err)
		} else {
			bundle.Backgrounds = append(bundle.Backgrounds, img)
		}
	}

	msg := ""
	if report.Fatal {
		msg = report.Message(paths)
	}
	if _, err := alerts.Observe(report, msg); err != nil {
		log.Warn().Msgf("alert: %v", err)
	}
	return bundle, report, msg
}

func logWatchErrors(errs <-chan error) {
	for err := range errs {
		log.Warn().Msgf("asset watcher: %v", err)
	}
}
