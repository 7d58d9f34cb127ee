package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/llehouerou/vidlib/internal/catalog"
	"github.com/llehouerou/vidlib/internal/config"
	"github.com/llehouerou/vidlib/internal/logging"
	"github.com/llehouerou/vidlib/internal/player"
	"github.com/llehouerou/vidlib/internal/shell"
)

type Params struct {
	Config   string   `short:"c" optional:"true" help:"Extra config file, loaded after the default ones." default:""`
	Catalog  string   `optional:"true" help:"Catalog file (Title | id | #tag1 , #tag2). Overrides the config." default:""`
	Seed     int      `optional:"true" help:"Random seed for PLAY_RANDOM. 0 uses the config, then the clock." default:"0"`
	LogLevel string   `optional:"true" help:"Log level: debug, info, warn or error." default:""`
	Scripts  []string `pos:"true" help:"Command files to run instead of reading stdin."`
}

func main() {
	boa.CmdT[Params]{
		Use:     "vidlib",
		Short:   "Command-line video library and playlist manager",
		Version: appVersion(),
		ParamEnrich: boa.ParamEnricherCombine(
			boa.ParamEnricherBool,
			boa.ParamEnricherName,
			boa.ParamEnricherShort,
		),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "vidlib: %v\n", err)
				os.Exit(1)
			}
		},
	}.Run()
}

func run(params *Params) error {
	cfg, err := config.Load(params.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.GetLogLevel()
	if params.LogLevel != "" {
		level = params.LogLevel
	}
	logger := logging.Setup(os.Stderr, level)

	catalogPath := cfg.Catalog
	if params.Catalog != "" {
		catalogPath = params.Catalog
	}
	lib, err := loadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded", "videos", lib.Len(), "path", catalogPath)

	in, interactive, closeInput, err := openInput(params.Scripts)
	if err != nil {
		return err
	}
	defer closeInput()

	sh := shell.New(lib, in, os.Stdout, shell.Options{
		Prompt:      cfg.GetPrompt(),
		Interactive: interactive,
		Logger:      logger,
		Player: player.Options{
			Rand:       newRand(int64(params.Seed), cfg.Seed, logger),
			MaxResults: cfg.GetSearchConfig().MaxResults,
		},
	})
	return sh.Run()
}

func loadCatalog(path string) (*catalog.Library, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

// openInput returns stdin, or the script files read one after another.
func openInput(scripts []string) (io.Reader, bool, func(), error) {
	if len(scripts) == 0 {
		return os.Stdin, term.IsTerminal(int(os.Stdin.Fd())), func() {}, nil
	}

	var (
		readers []io.Reader
		files   []*os.File
	)
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	for _, path := range scripts {
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, false, nil, err
		}
		files = append(files, f)
		// A script without a trailing newline must not merge into the next one.
		readers = append(readers, f, strings.NewReader("\n"))
	}
	return io.MultiReader(readers...), false, closeAll, nil
}

// newRand seeds from the flag, then the config, then the clock.
func newRand(flagSeed, cfgSeed int64, logger *slog.Logger) *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = cfgSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("random source seeded", "seed", seed)
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed))) //nolint:gosec // seed bits only
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "unknown"
	}
	return bi.Main.Version
}
