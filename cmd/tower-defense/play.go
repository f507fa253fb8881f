package main

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/tower-defense/audio"
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/game"
	"github.com/lixenwraith/tower-defense/input"
	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/render"
)

// playSession is the interactive host: it owns the screen and drives ticks and frames
// All world mutation happens on the loop goroutine
type playSession struct {
	log     zerolog.Logger
	screen  tcell.Screen
	game    *game.Game
	orch    *render.RenderOrchestrator
	handler *input.Handler
	clock   *engine.PausableClock
	audio   *audio.Engine // nil when unavailable
	tick    time.Duration
}

func runPlay(cmd *cobra.Command, opts *options) error {
	cfg := opts.cfg

	logFile, err := openLogFile(cfg.LogDir)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := newLogger(logFile, cfg.Debug, uuid.NewString())

	screen, err := tcell.NewScreen()
	if err != nil {
		return eris.Wrap(err, "failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return eris.Wrap(err, "failed to initialize terminal screen")
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	core.SetCrashReset(fini)
	defer fini()

	screen.EnableMouse()
	screen.HideCursor()

	s := &playSession{
		log:    log,
		screen: screen,
		clock:  engine.NewPausableClock(engine.NewTimeProvider()),
		tick:   cfg.TickInterval(),
	}

	var player engine.AudioPlayer
	if !cfg.Mute {
		eng := audio.NewEngine(audio.DefaultAudioConfig())
		if err := eng.Start(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing muted")
		} else {
			defer eng.Stop()
			s.audio = eng
			player = eng
		}
	}

	s.game = game.New(gameOptions(cfg, log, player))
	s.game.SetupScene()
	s.orch = render.NewDefaultOrchestrator(screen)
	s.handler = input.NewHandler(s.game.World, log)

	log.Info().Dur("tick", s.tick).Bool("audio", s.audio != nil).Msg("session started")

	events := make(chan tcell.Event, 256)
	grp, ctx := errgroup.WithContext(cmd.Context())

	grp.Go(core.Guard(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	}))

	grp.Go(core.Guard(func() error {
		// Closing the screen unblocks PollEvent
		defer fini()
		return s.loop(ctx, events)
	}))

	err = grp.Wait()
	log.Info().
		Uint32("money", s.game.Player.Money).
		Uint32("health", s.game.Player.Health).
		Bool("game_over", s.game.Over()).
		Interface("counters", s.game.Counters()).
		Msg("session ended")
	return err
}

func (s *playSession) loop(ctx context.Context, events <-chan tcell.Event) error {
	tickTicker := time.NewTicker(s.tick)
	defer tickTicker.Stop()
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	s.render()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			intent := s.handler.HandleEvent(ev, s.orch.Layout())
			switch intent.Type {
			case input.IntentQuit:
				s.log.Info().Msg("quit requested")
				return nil
			case input.IntentPause:
				paused := s.clock.Toggle()
				s.log.Debug().Bool("paused", paused).Msg("pause toggled")
			case input.IntentToggleMute:
				if s.audio != nil {
					muted := s.audio.ToggleMute()
					s.log.Debug().Bool("muted", muted).Msg("mute toggled")
				}
			case input.IntentResize:
				s.screen.Sync()
			}

		case <-tickTicker.C:
			dt := s.clock.Step(parameter.MaxTickDelta)
			if s.clock.IsPaused() || s.game.Over() {
				continue
			}
			s.game.Tick(dt)

		case <-frameTicker.C:
			s.render()
		}
	}
}

func (s *playSession) render() {
	s.orch.RenderFrame(render.RenderContext{
		World:  s.game.World,
		Player: s.game.Player,
		Path:   s.game.Path,
		Paused: s.clock.IsPaused(),
		Muted:  s.audio == nil || s.audio.IsMuted(),
		Over:   s.game.Over(),
	})
}
