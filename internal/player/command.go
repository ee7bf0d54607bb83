package player

import (
	"fmt"

	"github.com/desertthunder/neonx/internal/models"
	"github.com/desertthunder/neonx/internal/shared"
)

// CommandKind enumerates every state transition.
type CommandKind int

const (
	CmdSelectTrack CommandKind = iota
	CmdTogglePlay
	CmdToggleMute
	CmdSetVolume
	CmdToggleShuffle
	CmdCycleRepeat
	CmdSkipBack
	CmdSkipForward
	CmdSeek
	CmdToggleLike
	CmdTick
)

var commandNames = map[CommandKind]string{
	CmdSelectTrack:   "select",
	CmdTogglePlay:    "toggle_play",
	CmdToggleMute:    "toggle_mute",
	CmdSetVolume:     "set_volume",
	CmdToggleShuffle: "toggle_shuffle",
	CmdCycleRepeat:   "cycle_repeat",
	CmdSkipBack:      "skip_back",
	CmdSkipForward:   "skip_forward",
	CmdSeek:          "seek",
	CmdToggleLike:    "toggle_like",
	CmdTick:          "tick",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(k))
}

// Command is a request to change [State], applied with [State.Apply].
//
// Track is only read by [CmdSelectTrack]; Value only by [CmdSetVolume] and [CmdSeek].
type Command struct {
	Kind  CommandKind
	Track models.Track
	Value int
}

func SelectTrack(t models.Track) Command { return Command{Kind: CmdSelectTrack, Track: t} }
func TogglePlay() Command                { return Command{Kind: CmdTogglePlay} }
func ToggleMute() Command                { return Command{Kind: CmdToggleMute} }
func SetVolume(v int) Command            { return Command{Kind: CmdSetVolume, Value: v} }
func ToggleShuffle() Command             { return Command{Kind: CmdToggleShuffle} }
func CycleRepeat() Command               { return Command{Kind: CmdCycleRepeat} }
func SkipBack() Command                  { return Command{Kind: CmdSkipBack} }
func SkipForward() Command               { return Command{Kind: CmdSkipForward} }
func Seek(s int) Command                 { return Command{Kind: CmdSeek, Value: s} }
func ToggleLike() Command                { return Command{Kind: CmdToggleLike} }
func Tick() Command                      { return Command{Kind: CmdTick} }

// ParseCommand builds a transport command from its name.
//
// [CmdSelectTrack] is not parseable since it needs a resolved track.
func ParseCommand(name string, value int) (Command, error) {
	for kind, n := range commandNames {
		if n != name {
			continue
		}
		if kind == CmdSelectTrack {
			break
		}
		return Command{Kind: kind, Value: value}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", shared.ErrUnknownCommand, name)
}

// Apply returns the state that results from running c against s.
//
// Apply never fails. Selecting a track rewinds the transport to the new track's start;
// a tick while paused does nothing; a tick at the end of a track stops playback.
func (s State) Apply(c Command) State {
	next := s
	switch c.Kind {
	case CmdSelectTrack:
		next.SelectTrack(c.Track)
		next.Load(c.Track.Seconds())
	case CmdTogglePlay:
		next.TogglePlayPause()
	case CmdToggleMute:
		next.ToggleMute()
	case CmdSetVolume:
		next.SetVolume(c.Value)
	case CmdToggleShuffle:
		next.ToggleShuffle()
	case CmdCycleRepeat:
		next.CycleRepeat()
	case CmdSkipBack:
		next.SkipBack()
	case CmdSkipForward:
		next.SkipForward()
	case CmdSeek:
		next.Seek(c.Value)
	case CmdToggleLike:
		next.ToggleLike()
	case CmdTick:
		if next.Playing && next.Transport.Tick() {
			next.Playing = false
		}
	}
	return next
}
