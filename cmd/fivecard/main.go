package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"fivecarddraw/internal/config"
	"fivecarddraw/internal/util"
	"fivecarddraw/pkg/draw"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var seed = flag.Int64("seed", 0, "shuffle the deck deterministically (0 for a random shuffle)")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	opts := draw.DefaultOptions()
	opts.Seed = cfg.Game.Seed
	opts.MaxSwap = cfg.Game.MaxSwap
	if *seed > 0 {
		opts.Seed = *seed
	}

	game, err := draw.NewGame(logrus.StandardLogger(), opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not start game")
	}

	house := cfg.Game.HouseName
	if house == "" {
		house = util.GetRandomName()
	}

	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))

	c := &console{
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
		house: house,
	}

	if err := c.play(game); err != nil {
		logrus.WithError(err).Fatal("could not play")
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetOutput(os.Stderr)
}
