package player

import "errors"

var (
	ErrNotInVoiceChannel = errors.New("you must be in a voice channel to use this command")
	ErrInvalidURL        = errors.New("that does not look like a valid http(s) link")
	ErrNoActiveSession   = errors.New("nothing is currently playing")
	ErrInvalidTimeFormat = errors.New("invalid time format, use ss, mm:ss or hh:mm:ss")
	ErrConnectionFailed  = errors.New("failed to join the voice channel")
	ErrDecoderStart      = errors.New("failed to start the media decoder")
)
