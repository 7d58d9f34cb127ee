// Package shell reads commands one line at a time and dispatches them to
// the video player. Bad input is reported and never ends the session.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vidlib/internal/catalog"
	"github.com/llehouerou/vidlib/internal/command"
	"github.com/llehouerou/vidlib/internal/player"
)

const (
	DefaultPrompt = "YT> "
	farewell      = "Exiting the video player."
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// Options configures a Shell.
type Options struct {
	Prompt      string // DefaultPrompt if empty
	Interactive bool   // show banner and prompt
	Logger      *slog.Logger
	Player      player.Options // Prompter and Logger are set by the shell
}

// Shell is the command loop around a VideoPlayer.
type Shell struct {
	player   *player.VideoPlayer
	resolver *command.Resolver
	input    *lineReader
	out      io.Writer
	prompt   string
	interact bool
	log      *slog.Logger
}

// New creates a shell reading commands from in and writing reports to out.
func New(c catalog.Catalog, in io.Reader, out io.Writer, opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	s := &Shell{
		resolver: command.NewResolver(command.All),
		out:      out,
		prompt:   prompt,
		interact: opts.Interactive,
		log:      logger,
	}
	s.input = &lineReader{scanner: bufio.NewScanner(in), shell: s}

	popts := opts.Player
	popts.Prompter = s.input
	popts.Logger = logger
	s.player = player.New(c, out, popts)
	return s
}

// Player returns the player commands are dispatched to.
func (s *Shell) Player() *player.VideoPlayer {
	return s.player
}

// Run processes commands until EXIT or end of input.
func (s *Shell) Run() error {
	if s.interact {
		fmt.Fprintln(s.out, bannerStyle.Render("Hello and welcome to vidlib, what would you like to do?"))
		fmt.Fprintln(s.out, hintStyle.Render("Enter HELP for list of available commands or EXIT to terminate."))
	}
	for {
		line, ok := s.input.next()
		if !ok {
			break
		}
		if quit := s.Execute(line); quit {
			return nil
		}
	}
	return s.input.err()
}

// Execute runs a single command line and reports whether the shell
// should stop.
func (s *Shell) Execute(line string) bool {
	head, rest, err := command.TokenizeN(line, 1)
	if err != nil {
		return s.invalid(line, err)
	}
	if len(head) == 0 {
		return false
	}

	b, ok := s.resolver.Resolve(head[0])
	if !ok {
		s.log.Debug("unknown command", "command", head[0])
		fmt.Fprintf(s.out, "Command not found: %s. Type HELP for a list of available commands.\n", head[0])
		return false
	}
	args, err := arguments(b, rest)
	if err != nil {
		return s.invalid(line, err)
	}
	if !b.Accepts(len(args)) {
		s.log.Debug("bad arguments", "command", b.Name(), "args", len(args))
		fmt.Fprintf(s.out, "Usage: %s\n", b.Usage())
		return false
	}

	s.log.Debug("dispatch", "command", b.Name(), "args", args)
	return s.dispatch(b.Action, args)
}

// arguments splits the text after the command name. For a variadic
// binding the text past the fixed arguments is kept verbatim as one
// final argument.
func arguments(b command.Binding, text string) ([]string, error) {
	if b.MaxArgs != command.Variadic {
		return command.Tokenize(text)
	}
	args, rest, err := command.TokenizeN(text, b.MinArgs)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		args = append(args, rest)
	}
	return args, nil
}

func (s *Shell) invalid(line string, err error) bool {
	s.log.Debug("tokenize failed", "line", line, "error", err)
	fmt.Fprintf(s.out, "Invalid command: %v\n", err)
	return false
}

func (s *Shell) dispatch(action command.Action, args []string) bool {
	p := s.player
	switch action {
	case command.ActionNumberOfVideos:
		p.NumberOfVideos()
	case command.ActionShowAllVideos:
		p.ShowAllVideos()
	case command.ActionPlay:
		p.Play(args[0])
	case command.ActionStop:
		p.Stop()
	case command.ActionPlayRandom:
		p.PlayRandom()
	case command.ActionPause:
		p.Pause()
	case command.ActionContinue:
		p.Continue()
	case command.ActionShowPlaying:
		p.ShowPlaying()
	case command.ActionCreatePlaylist:
		p.CreatePlaylist(args[0])
	case command.ActionAddToPlaylist:
		p.AddToPlaylist(args[0], args[1])
	case command.ActionRemoveFromPlaylist:
		p.RemoveFromPlaylist(args[0], args[1])
	case command.ActionClearPlaylist:
		p.ClearPlaylist(args[0])
	case command.ActionDeletePlaylist:
		p.DeletePlaylist(args[0])
	case command.ActionShowAllPlaylists:
		p.ShowAllPlaylists()
	case command.ActionShowPlaylist:
		p.ShowPlaylist(args[0])
	case command.ActionSearchVideos:
		p.SearchVideos(args[0])
	case command.ActionSearchVideosTag:
		p.SearchVideosTag(args[0])
	case command.ActionFlagVideo:
		var reason string
		if len(args) > 1 {
			reason = args[1]
		}
		p.FlagVideo(args[0], reason)
	case command.ActionAllowVideo:
		p.AllowVideo(args[0])
	case command.ActionHelp:
		command.WriteHelp(s.out, command.All)
	case command.ActionExit:
		fmt.Fprintln(s.out, farewell)
		return true
	}
	return false
}
