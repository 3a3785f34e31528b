package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/playmatatu/minidarts/internal/game"
)

type Config struct {
	// Environment
	Environment string

	// Board geometry
	BoardCenterX      float64
	BoardCenterY      float64
	BoardRadius       float64
	Rings             game.Rings
	CalibrationOffset float64
	SectionScores     []int

	// Match
	StartingScore int
	DartsPerTurn  int

	// Aiming
	ShakeFocused   float64
	ShakeUnfocused float64
	WindowWidth    float64
	WindowHeight   float64
	RandomSeed     int64
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	defaults := game.DefaultRings()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Board geometry
		BoardCenterX: getEnvFloat("BOARD_CENTER_X", game.DefaultBoardX),
		BoardCenterY: getEnvFloat("BOARD_CENTER_Y", game.DefaultBoardY),
		BoardRadius:  getEnvFloat("BOARD_RADIUS", game.DefaultBoardRadius),
		Rings: game.Rings{
			Bullseye:     getEnvFloat("RING_BULLSEYE", defaults.Bullseye),
			HalfBullseye: getEnvFloat("RING_HALF_BULLSEYE", defaults.HalfBullseye),
			TrebleNear:   getEnvFloat("RING_TREBLE_NEAR", defaults.TrebleNear),
			TrebleFar:    getEnvFloat("RING_TREBLE_FAR", defaults.TrebleFar),
			DoubleNear:   getEnvFloat("RING_DOUBLE_NEAR", defaults.DoubleNear),
			DoubleFar:    getEnvFloat("RING_DOUBLE_FAR", defaults.DoubleFar),
		},
		CalibrationOffset: getEnvFloat("CALIBRATION_OFFSET", game.DefaultCalibrationOffset),
		SectionScores:     getEnvIntList("SECTION_SCORES", game.CanonicalSectionOrder[:]),

		// Match
		StartingScore: getEnvInt("STARTING_SCORE", game.DefaultStartingScore),
		DartsPerTurn:  getEnvInt("DARTS_PER_TURN", game.DefaultDartsPerTurn),

		// Aiming
		ShakeFocused:   getEnvFloat("SHAKE_FOCUSED", game.ShakeFocused),
		ShakeUnfocused: getEnvFloat("SHAKE_UNFOCUSED", game.ShakeUnfocused),
		WindowWidth:    getEnvFloat("WINDOW_WIDTH", 800),
		WindowHeight:   getEnvFloat("WINDOW_HEIGHT", 600),
		RandomSeed:     int64(getEnvInt("RANDOM_SEED", 0)),
	}
}

// LayoutOptions converts the board settings for game.NewBoardLayout.
func (c *Config) LayoutOptions() (game.LayoutOptions, error) {
	var order [game.SectionCount]int
	if len(c.SectionScores) != game.SectionCount {
		return game.LayoutOptions{}, fmt.Errorf("%w: SECTION_SCORES has %d entries, want %d",
			game.ErrInvalidScoreOrder, len(c.SectionScores), game.SectionCount)
	}
	copy(order[:], c.SectionScores)

	return game.LayoutOptions{
		Center:            game.NewVec2(c.BoardCenterX, c.BoardCenterY),
		Radius:            c.BoardRadius,
		Rings:             c.Rings,
		CalibrationOffset: c.CalibrationOffset,
		ScoreOrder:        order,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// getEnvIntList parses a comma separated list; any bad entry yields the default.
func getEnvIntList(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return append([]int(nil), defaultValue...)
	}
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return append([]int(nil), defaultValue...)
		}
		out = append(out, n)
	}
	return out
}
