// Package command defines the textual command surface: command names,
// their argument usage and a case-insensitive resolver.
package command

// Action represents a user-triggerable command.
type Action string

const (
	// Catalog actions
	ActionNumberOfVideos Action = "number_of_videos"
	ActionShowAllVideos  Action = "show_all_videos"

	// Playback actions
	ActionPlay        Action = "play"
	ActionStop        Action = "stop"
	ActionPlayRandom  Action = "play_random"
	ActionPause       Action = "pause"
	ActionContinue    Action = "continue"
	ActionShowPlaying Action = "show_playing"

	// Playlist actions
	ActionCreatePlaylist     Action = "create_playlist"
	ActionAddToPlaylist      Action = "add_to_playlist"
	ActionRemoveFromPlaylist Action = "remove_from_playlist"
	ActionClearPlaylist      Action = "clear_playlist"
	ActionDeletePlaylist     Action = "delete_playlist"
	ActionShowAllPlaylists   Action = "show_all_playlists"
	ActionShowPlaylist       Action = "show_playlist"

	// Search actions
	ActionSearchVideos    Action = "search_videos"
	ActionSearchVideosTag Action = "search_videos_tag"

	// Moderation actions
	ActionFlagVideo  Action = "flag_video"
	ActionAllowVideo Action = "allow_video"

	// Shell actions
	ActionHelp Action = "help"
	ActionExit Action = "exit"
)
