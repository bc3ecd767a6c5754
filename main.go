// mariusz is a side-scrolling platformer in the style of the 1985 classic.
//
// Usage:
//
//	mariusz                 - Play from world 1
//	mariusz --level 2       - Start from another world
//	mariusz scores          - Show the best finished runs
//
// Keys: arrows move, Down crouches, Space/S jumps, A/Shift runs and shoots,
// Enter starts and pauses, F5 reloads tuning, F3 toggles debug, Esc quits.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/game"
	"github.com/milk9111/mariusz/prefabs"
	"github.com/milk9111/mariusz/sound"
	"github.com/milk9111/mariusz/storage"
	"github.com/spf13/cobra"
)

var (
	flagLevel     float64
	flagDBPath    string
	flagLevelDir  string
	flagPrefabDir string
	flagDebug     bool
	flagWatch     bool
	flagMute      bool
	flagVolume    float64
	flagTPS       int
	flagScale     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mariusz",
	Short: "A side-scrolling platformer",
	Long: `Run, jump and stomp through the worlds, collecting coins and power-ups
before the clock runs out.

Examples:
  mariusz
  mariusz --level 2 --debug
  mariusz --levels ./levels --prefabs ./prefabs --watch
  mariusz scores`,
	Args: cobra.NoArgs,
	RunE: runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mariusz/scores.db", "Path to scores database")

	rootCmd.Flags().Float64Var(&flagLevel, "level", 0, "Start world (0 = tuning default)")
	rootCmd.Flags().StringVar(&flagLevelDir, "levels", "", "Load levels from this directory instead of the embedded set")
	rootCmd.Flags().StringVar(&flagPrefabDir, "prefabs", prefabs.Dir, "Directory checked for tuning.yaml overrides")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay and log verbosely")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload tuning when YAML files change")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
	rootCmd.Flags().Float64Var(&flagVolume, "volume", 0.25, "Audio volume (0-1)")
	rootCmd.Flags().IntVar(&flagTPS, "tps", 60, "Updates per second")
	rootCmd.Flags().IntVar(&flagScale, "scale", 3, "Window scale")

	rootCmd.AddCommand(scoresCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mariusz",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	prefabs.Dir = flagPrefabDir

	cfg, err := prefabs.LoadConfig()
	if err != nil {
		logger.Warn("using default tuning", "error", err)
	} else {
		logger.Debug("tuning loaded", "from", prefabs.Origin(prefabs.TuningFile))
	}
	if flagLevel > 0 {
		cfg.StartWorld = flagLevel
	}

	var scores game.ScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores will not be saved", "path", flagDBPath, "error", err)
	} else {
		defer store.Close()
		scores = store
	}

	audio := sound.New(logger.WithPrefix("sound"), flagMute, flagVolume)
	defer audio.Close()

	ctrl := game.New(cfg, levelSource(flagLevelDir, cfg.Level), scores, audio, logger.WithPrefix("game"))

	var watcher *prefabs.Watcher
	if flagWatch {
		dirs := []string{flagPrefabDir}
		if flagLevelDir != "" {
			dirs = append(dirs, flagLevelDir)
		}
		watcher, err = prefabs.NewWatcher(dirs...)
		if err != nil {
			logger.Warn("file watching disabled", "error", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetTPS(flagTPS)
	ebiten.SetWindowSize(common.DisplayWidth*flagScale, common.DisplayHeight*flagScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Super Mariusz")

	g := NewGame(ctrl, watcher, flagLevelDir, flagDebug, logger)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
