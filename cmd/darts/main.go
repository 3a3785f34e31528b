package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/playmatatu/minidarts/internal/config"
	"github.com/playmatatu/minidarts/internal/game"
	"github.com/playmatatu/minidarts/internal/ui"
)

func main() {
	simulate := flag.Int("simulate", 0, "throw N jittered darts instead of reading shots from stdin")
	aimX := flag.Float64("aim-x", 0, "simulated aim x, relative to the board center")
	aimY := flag.Float64("aim-y", 0, "simulated aim y, relative to the board center")
	shake := flag.Bool("shake", false, "apply crosshair jitter to stdin shots")
	quiet := flag.Bool("quiet", false, "suppress match logging")
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	if *quiet {
		log.SetOutput(io.Discard)
	}

	// Initialize configuration
	cfg := config.Load()

	opts, err := cfg.LayoutOptions()
	if err != nil {
		log.Fatalf("Invalid board configuration: %v", err)
	}
	layout, err := game.NewBoardLayout(opts)
	if err != nil {
		log.Fatalf("Invalid board configuration: %v", err)
	}

	match, err := game.NewMatch(cfg.StartingScore, cfg.DartsPerTurn)
	if err != nil {
		log.Fatalf("Invalid match configuration: %v", err)
	}
	match.Start()

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	crosshair := game.NewCrosshair(layout.Center, rand.New(rand.NewSource(seed)))
	crosshair.ShakeFocused = cfg.ShakeFocused
	crosshair.ShakeUnfocused = cfg.ShakeUnfocused

	if *simulate > 0 {
		aim := layout.Center.Plus(game.NewVec2(*aimX, *aimY))
		for i := 0; i < *simulate && match.Status == game.StatusInProgress; i++ {
			crosshair.Position = aim
			crosshair.Focused = true
			crosshair.Shake()
			crosshair.Bound(cfg.WindowWidth, cfg.WindowHeight)
			throw(match, layout, crosshair.Aim())
		}
	} else {
		if err := readShots(os.Stdin, func(s shot) bool {
			crosshair.Position = s.pos
			crosshair.Focused = s.focused
			if *shake {
				crosshair.Shake()
			}
			crosshair.Bound(cfg.WindowWidth, cfg.WindowHeight)
			throw(match, layout, crosshair.Aim())
			return match.Status == game.StatusInProgress
		}); err != nil {
			log.Fatalf("[DARTS] Failed to read shots: %v", err)
		}
	}

	fmt.Println(ui.RenderScoreboard(match))
}

func throw(match *game.Match, layout *game.BoardLayout, at game.Vec2) {
	res, err := match.Throw(at, layout)
	if err != nil {
		log.Printf("[DARTS] Throw rejected: %v", err)
		return
	}
	fmt.Println(ui.RenderDebug(res, match.DartsLeft))
}

type shot struct {
	pos     game.Vec2
	focused bool
}

var errBadShot = errors.New("expected \"x y [focus]\"")

// readShots feeds each "x y [focus]" line to fn until fn returns false.
// Blank lines and lines starting with # are skipped.
func readShots(r io.Reader, fn func(shot) bool) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s, err := parseShot(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !fn(s) {
			return nil
		}
	}
	return scanner.Err()
}

func parseShot(line string) (shot, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return shot{}, errBadShot
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return shot{}, fmt.Errorf("%w: %v", errBadShot, err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return shot{}, fmt.Errorf("%w: %v", errBadShot, err)
	}
	s := shot{pos: game.NewVec2(x, y)}
	if len(fields) == 3 {
		if fields[2] != "focus" {
			return shot{}, errBadShot
		}
		s.focused = true
	}
	return s, nil
}
