package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Variadic marks a binding whose last argument absorbs the rest of the line.
const Variadic = -1

// Binding describes one command: the names that invoke it and its arguments.
type Binding struct {
	Action      Action
	Names       []string // first name is canonical
	Args        string   // usage, e.g. "<playlist_name> <video_id>"
	MinArgs     int
	MaxArgs     int // Variadic for no upper bound
	Description string
}

// Name returns the canonical command name.
func (b Binding) Name() string {
	return b.Names[0]
}

// Usage returns the canonical invocation, e.g. "PLAY <video_id>".
func (b Binding) Usage() string {
	if b.Args == "" {
		return b.Name()
	}
	return b.Name() + " " + b.Args
}

// Accepts reports whether n arguments are valid for this command.
func (b Binding) Accepts(n int) bool {
	if n < b.MinArgs {
		return false
	}
	return b.MaxArgs == Variadic || n <= b.MaxArgs
}

// All contains every command in help order.
var All = []Binding{
	{ActionNumberOfVideos, []string{"NUMBER_OF_VIDEOS"}, "", 0, 0, "Shows how many videos are in the library."},
	{ActionShowAllVideos, []string{"SHOW_ALL_VIDEOS"}, "", 0, 0, "Lists all videos from the library."},
	{ActionPlay, []string{"PLAY"}, "<video_id>", 1, 1, "Plays specified video."},
	{ActionPlayRandom, []string{"PLAY_RANDOM"}, "", 0, 0, "Plays a random video from the library."},
	{ActionStop, []string{"STOP"}, "", 0, 0, "Stop the current video."},
	{ActionPause, []string{"PAUSE"}, "", 0, 0, "Pause the current video."},
	{ActionContinue, []string{"CONTINUE", "RESUME"}, "", 0, 0, "Resume the current paused video."},
	{ActionShowPlaying, []string{"SHOW_PLAYING"}, "", 0, 0, "Displays the title, video_id, video tags and paused status of the video that is currently playing (or paused)."},
	{ActionCreatePlaylist, []string{"CREATE_PLAYLIST"}, "<playlist_name>", 1, 1, "Creates a new (empty) playlist with the provided name."},
	{ActionAddToPlaylist, []string{"ADD_TO_PLAYLIST"}, "<playlist_name> <video_id>", 2, 2, "Adds the requested video to the playlist."},
	{ActionRemoveFromPlaylist, []string{"REMOVE_FROM_PLAYLIST"}, "<playlist_name> <video_id>", 2, 2, "Removes the specified video from the specified playlist."},
	{ActionClearPlaylist, []string{"CLEAR_PLAYLIST"}, "<playlist_name>", 1, 1, "Removes all videos from the playlist."},
	{ActionDeletePlaylist, []string{"DELETE_PLAYLIST"}, "<playlist_name>", 1, 1, "Deletes the playlist."},
	{ActionShowPlaylist, []string{"SHOW_PLAYLIST"}, "<playlist_name>", 1, 1, "List all videos in this playlist."},
	{ActionShowAllPlaylists, []string{"SHOW_ALL_PLAYLISTS"}, "", 0, 0, "Display all the available playlists."},
	{ActionSearchVideos, []string{"SEARCH_VIDEOS"}, "<search_term>", 1, 1, "Display all the videos whose titles contain the search_term."},
	{ActionSearchVideosTag, []string{"SEARCH_VIDEOS_TAG", "SEARCH_VIDEOS_WITH_TAG"}, "<tag_name>", 1, 1, "Display all videos whose tags contains the provided tag."},
	{ActionFlagVideo, []string{"FLAG_VIDEO"}, "<video_id> [flag_reason]", 1, Variadic, "Mark a video as flagged."},
	{ActionAllowVideo, []string{"ALLOW_VIDEO"}, "<video_id>", 1, 1, "Removes a flag from a video."},
	{ActionHelp, []string{"HELP"}, "", 0, 0, "Displays help."},
	{ActionExit, []string{"EXIT", "QUIT"}, "", 0, 0, "Terminates the program execution."},
}

// WriteHelp writes one aligned line per binding.
func WriteHelp(w io.Writer, bindings []Binding) {
	width := 0
	for _, b := range bindings {
		width = max(width, runewidth.StringWidth(b.Usage()))
	}
	fmt.Fprintln(w, "Available commands:")
	for _, b := range bindings {
		line := "    " + runewidth.FillRight(b.Usage(), width) + " - " + b.Description
		if len(b.Names) > 1 {
			line += " (also: " + strings.Join(b.Names[1:], ", ") + ")"
		}
		fmt.Fprintln(w, line)
	}
}
