// Package player owns per-guild streaming sessions: one decoding
// subprocess and one voice sink per guild, with transport controls on
// top. It knows nothing about Discord itself; the transport is supplied
// through the Voice, Connection and Sink interfaces.
package player

import "io"

// Decoder launches the external process that turns a media URL into raw
// PCM on its stdout.
type Decoder interface {
	Start(url string, offsetSec int) (DecoderProcess, error)
}

// DecoderProcess is one live decoding subprocess. Kill must be safe to
// call more than once and on an already-exited process.
type DecoderProcess interface {
	Output() io.ReadCloser
	Kill()
}

// Voice joins guild voice channels.
type Voice interface {
	Connect(guildID, channelID string) (Connection, error)
}

// Connection is a live voice connection that can host one sink at a time.
type Connection interface {
	// OpenSink starts streaming src into the connection. onIdle fires at
	// most once, when src is exhausted before Stop was called.
	OpenSink(src io.ReadCloser, onIdle func()) (Sink, error)
	Close() error
}

// Sink is the transport-level playback handle. Stop must be idempotent
// and must not block waiting for the pump goroutine; the controller may
// call it from that goroutine's own idle callback.
type Sink interface {
	Pause()
	Resume()
	Stop()
}

// NotifyFunc delivers asynchronous one-shot messages, such as "stream
// finished", to the text channel a session was started from.
type NotifyFunc func(channelID, message string)

// Session tracks what a single guild is playing and the resources it
// owns. All fields below the identifiers are guarded by the controller's
// per-guild lock.
type Session struct {
	GuildID        string
	SourceURL      string
	ReplyChannelID string

	proc      DecoderProcess
	sink      Sink
	conn      Connection
	offsetSec int
	paused    bool
	gen       uint64
}

// Offset returns the seek origin of the current stream in seconds.
func (s *Session) Offset() int { return s.offsetSec }

// Paused reports whether the session is intentionally paused.
func (s *Session) Paused() bool { return s.paused }
