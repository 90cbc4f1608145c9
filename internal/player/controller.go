package player

import (
	"fmt"
	"log"
	"regexp"
	"sync"
	"sync/atomic"

	"streamcast/internal/timeutil"
)

var urlPattern = regexp.MustCompile(`(?i)^https?://.+`)

// Controller drives the per-guild playback state machine. Operations for
// one guild are serialized through a per-guild lock; operations for
// different guilds run in parallel.
type Controller struct {
	voice   Voice
	decoder Decoder
	notify  NotifyFunc

	registry *Registry

	// gens tags every started stream with a unique generation so late
	// idle events from replaced streams can be told apart from current
	// ones, even across session replacement.
	gens atomic.Uint64

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewController(voice Voice, decoder Decoder, notify NotifyFunc) *Controller {
	if notify == nil {
		notify = func(string, string) {}
	}
	return &Controller{
		voice:    voice,
		decoder:  decoder,
		notify:   notify,
		registry: NewRegistry(),
		locks:    make(map[string]*sync.Mutex),
	}
}

// Registry exposes the session registry for inspection.
func (c *Controller) Registry() *Registry { return c.registry }

func (c *Controller) guildLock(guildID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[guildID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[guildID] = l
	}
	return l
}

// Play connects to the caller's voice channel and streams url into it.
// An existing session for the guild is fully torn down first. progress,
// if not nil, receives human-readable stage updates while setup is in
// flight. On any setup failure no partial session is left behind.
func (c *Controller) Play(guildID, voiceChannelID, replyChannelID, url string, progress func(string)) error {
	if voiceChannelID == "" {
		return ErrNotInVoiceChannel
	}
	if !urlPattern.MatchString(url) {
		return ErrInvalidURL
	}
	if progress == nil {
		progress = func(string) {}
	}

	l := c.guildLock(guildID)
	l.Lock()
	defer l.Unlock()

	if old, ok := c.registry.Get(guildID); ok {
		log.Printf("[INFO] Replacing active session for guild %s", guildID)
		c.teardown(old)
	}

	progress("Connecting to the voice channel...")
	conn, err := c.voice.Connect(guildID, voiceChannelID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	progress("Checking the URL...")
	proc, err := c.decoder.Start(url, 0)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: %v", ErrDecoderStart, err)
	}

	sess := &Session{
		GuildID:        guildID,
		SourceURL:      url,
		ReplyChannelID: replyChannelID,
		proc:           proc,
		conn:           conn,
		gen:            c.gens.Add(1),
	}

	sink, err := conn.OpenSink(proc.Output(), c.idleFunc(guildID, sess.gen))
	if err != nil {
		proc.Kill()
		conn.Close()
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	sess.sink = sink
	c.registry.Put(sess)

	log.Printf("[INFO] Streaming %s to guild %s", url, guildID)
	return nil
}

// Pause suspends the sink. The decoder process and voice connection stay
// alive so playback can resume where it left off.
func (c *Controller) Pause(guildID string) error {
	l := c.guildLock(guildID)
	l.Lock()
	defer l.Unlock()

	sess, ok := c.registry.Get(guildID)
	if !ok {
		return ErrNoActiveSession
	}

	sess.sink.Pause()
	sess.paused = true
	return nil
}

// Resume continues a paused session.
func (c *Controller) Resume(guildID string) error {
	l := c.guildLock(guildID)
	l.Lock()
	defer l.Unlock()

	sess, ok := c.registry.Get(guildID)
	if !ok {
		return ErrNoActiveSession
	}

	sess.sink.Resume()
	sess.paused = false
	return nil
}

// Seek restarts the decoder at the given timestamp, keeping the session
// and voice connection alive. Seeking a paused session resumes it. The
// returned value is the target position in seconds.
func (c *Controller) Seek(guildID, timestamp string) (int, error) {
	target, err := timeutil.ParseTimestamp(timestamp)
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}

	l := c.guildLock(guildID)
	l.Lock()
	defer l.Unlock()

	sess, ok := c.registry.Get(guildID)
	if !ok {
		return 0, ErrNoActiveSession
	}

	// The old stream must be fully dead before its replacement starts;
	// moving to a fresh generation makes its late idle events no-ops.
	sess.gen = c.gens.Add(1)
	sess.proc.Kill()
	sess.sink.Stop()

	proc, err := c.decoder.Start(sess.SourceURL, target)
	if err != nil {
		c.teardown(sess)
		return 0, fmt.Errorf("%w: %v", ErrDecoderStart, err)
	}

	sink, err := sess.conn.OpenSink(proc.Output(), c.idleFunc(guildID, sess.gen))
	if err != nil {
		proc.Kill()
		c.teardown(sess)
		return 0, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	sess.proc = proc
	sess.sink = sink
	sess.offsetSec = target
	sess.paused = false

	log.Printf("[INFO] Seeked to %ds for guild %s", target, guildID)
	return target, nil
}

// Stop kills the decoder, leaves the voice channel and forgets the
// session.
func (c *Controller) Stop(guildID string) error {
	l := c.guildLock(guildID)
	l.Lock()
	defer l.Unlock()

	sess, ok := c.registry.Get(guildID)
	if !ok {
		return ErrNoActiveSession
	}

	c.teardown(sess)
	log.Printf("[INFO] Stopped playback for guild %s", guildID)
	return nil
}

// HandleDisconnect runs when the voice connection is lost without a
// user-issued stop. The decoder must not be left running.
func (c *Controller) HandleDisconnect(guildID string) {
	l := c.guildLock(guildID)
	l.Lock()
	defer l.Unlock()

	sess, ok := c.registry.Get(guildID)
	if !ok {
		return
	}

	log.Printf("[WARN] Voice connection lost for guild %s, tearing down session", guildID)
	c.teardown(sess)
}

// Shutdown tears down every active session. Used on process exit.
func (c *Controller) Shutdown() {
	for _, id := range c.registry.GuildIDs() {
		l := c.guildLock(id)
		l.Lock()
		if sess, ok := c.registry.Get(id); ok {
			c.teardown(sess)
		}
		l.Unlock()
	}
}

// idleFunc builds the end-of-stream callback for one stream generation.
func (c *Controller) idleFunc(guildID string, gen uint64) func() {
	return func() { c.handleIdle(guildID, gen) }
}

// handleIdle reacts to the sink running out of data. A paused session
// going idle is the expected pause condition, not end-of-stream, and
// events from superseded stream generations are discarded.
func (c *Controller) handleIdle(guildID string, gen uint64) {
	l := c.guildLock(guildID)
	l.Lock()
	defer l.Unlock()

	sess, ok := c.registry.Get(guildID)
	if !ok || sess.gen != gen {
		return
	}
	if sess.paused {
		return
	}

	log.Printf("[INFO] Stream finished for guild %s", guildID)
	url := sess.SourceURL
	reply := sess.ReplyChannelID
	c.teardown(sess)
	c.notify(reply, fmt.Sprintf("Finished playing: %s", url))
}

// teardown releases everything a session owns and erases it from the
// registry. Callers must hold the guild lock.
func (c *Controller) teardown(sess *Session) {
	if sess.proc != nil {
		sess.proc.Kill()
	}
	if sess.sink != nil {
		sess.sink.Stop()
	}
	if sess.conn != nil {
		if err := sess.conn.Close(); err != nil {
			log.Printf("[WARN] Failed to close voice connection for guild %s: %v", sess.GuildID, err)
		}
	}
	c.registry.Delete(sess.GuildID)
}
