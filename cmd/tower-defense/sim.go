package main

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/game"
	"github.com/lixenwraith/tower-defense/input"
)

// ErrBadBuild is returned for malformed --build values
var ErrBadBuild = eris.New("invalid build order")

// buildOrder places one tower of Kind on the build site at Site (zero-based)
type buildOrder struct {
	Kind core.TowerKind
	Site int
}

// parseBuild decodes "kind@site", e.g. "potato@1"
func parseBuild(s string) (buildOrder, error) {
	name, site, ok := strings.Cut(s, "@")
	if !ok {
		return buildOrder{}, eris.Wrapf(ErrBadBuild, "%q: expected kind@site", s)
	}
	kind, err := core.ParseTowerKind(name)
	if err != nil {
		return buildOrder{}, eris.Wrapf(err, "build order %q", s)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(site))
	if err != nil || idx < 0 {
		return buildOrder{}, eris.Wrapf(ErrBadBuild, "%q: site must be a non-negative index", s)
	}
	return buildOrder{Kind: kind, Site: idx}, nil
}

type ledgerLine struct {
	Tick    int64  `json:"tick"`
	Reason  string `json:"reason"`
	Delta   int64  `json:"delta"`
	Balance uint32 `json:"balance"`
}

type buildResult struct {
	Kind   string `json:"kind"`
	Site   int    `json:"site"`
	Placed bool   `json:"placed"`
}

// simSummary is the machine-readable result of a headless run
type simSummary struct {
	Session  string           `json:"session"`
	Ticks    int              `json:"ticks"`
	Frames   int64            `json:"frames"`
	Elapsed  string           `json:"elapsed"`
	Money    uint32           `json:"money"`
	Health   uint32           `json:"health"`
	GameOver bool             `json:"game_over"`
	Builds   []buildResult    `json:"builds,omitempty"`
	Counters map[string]int64 `json:"counters"`
	Ledger   []ledgerLine     `json:"ledger"`
}

func newSimCmd(opts *options) *cobra.Command {
	var (
		ticks  int
		dt     time.Duration
		builds []string
	)

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the simulation headless and print a JSON summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders := make([]buildOrder, 0, len(builds))
			for _, b := range builds {
				o, err := parseBuild(b)
				if err != nil {
					return err
				}
				orders = append(orders, o)
			}
			if dt <= 0 {
				dt = opts.cfg.TickInterval()
			}

			session := uuid.NewString()
			log := newLogger(consoleWriter(cmd.ErrOrStderr()), opts.cfg.Debug, session)
			summary, err := runSim(gameOptions(opts.cfg, log, nil), orders, ticks, dt)
			if err != nil {
				return err
			}
			summary.Session = session
			return writeSummary(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 1200, "number of ticks to simulate")
	cmd.Flags().DurationVar(&dt, "dt", 0, "tick duration (default: configured tick interval)")
	cmd.Flags().StringArrayVar(&builds, "build", nil, "place a tower before the run, as kind@site (repeatable)")
	return cmd
}

// runSim places the ordered towers through the regular panel and purchase flow, then ticks until
// the tick budget runs out or the game ends
func runSim(gopts game.Options, orders []buildOrder, ticks int, dt time.Duration) (simSummary, error) {
	g := game.New(gopts)
	g.SetupScene()

	var summary simSummary
	for _, o := range orders {
		if o.Site >= len(g.BuildSites) {
			return summary, eris.Wrapf(ErrBadBuild, "site %d out of range, have %d", o.Site, len(g.BuildSites))
		}
		placed, err := placeTower(g, o, dt)
		if err != nil {
			return summary, err
		}
		summary.Builds = append(summary.Builds, buildResult{Kind: o.Kind.String(), Site: o.Site, Placed: placed})
	}

	run := 0
	for ; run < ticks && !g.Over(); run++ {
		g.Tick(dt)
	}

	summary.Ticks = run
	summary.Frames = g.World.Resources.Time.FrameNumber
	summary.Elapsed = g.World.Resources.Time.Elapsed.String()
	summary.Money = g.Player.Money
	summary.Health = g.Player.Health
	summary.GameOver = g.Over()
	summary.Counters = g.Counters()
	summary.Ledger = ledgerLines(g.Player.Ledger)
	return summary, nil
}

// placeTower selects the site, lets the panel spawn its buttons, then clicks and lets the purchase run
// Returns false when the site is already taken or the player cannot afford the tower
func placeTower(g *game.Game, o buildOrder, dt time.Duration) (bool, error) {
	site := g.BuildSites[o.Site]
	if !g.World.IsAlive(site) {
		return false, nil
	}
	if err := input.SelectOnly(g.World, site); err != nil {
		return false, err
	}
	g.Tick(dt)
	if err := input.ClickButton(g.World, o.Kind); err != nil {
		return false, err
	}
	g.Tick(dt)

	placed := !g.World.IsAlive(site)
	if !placed {
		input.ClearSelection(g.World)
	}
	return placed, nil
}

func ledgerLines(entries []engine.LedgerEntry) []ledgerLine {
	lines := make([]ledgerLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, ledgerLine{Tick: e.Tick, Reason: string(e.Reason), Delta: e.Delta, Balance: e.Balance})
	}
	return lines
}

func writeSummary(w io.Writer, summary simSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return eris.Wrap(err, "failed to encode summary")
	}
	return nil
}
