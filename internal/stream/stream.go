// Package stream pumps raw PCM from the decoder into a Discord voice
// connection as opus frames.
package stream

import (
	"encoding/binary"
	"io"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
	"layeh.com/gopus"
)

const (
	channels   = 2
	sampleRate = 48000
	frameSize  = 960 // 20ms at 48kHz
)

// Streamer pumps one PCM source into a voice connection. It satisfies
// the player.Sink contract: Pause, Resume and Stop are safe from any
// goroutine, Stop is idempotent and returns without waiting for the
// pump goroutine.
type Streamer struct {
	src    io.ReadCloser
	vc     *discordgo.VoiceConnection
	onIdle func()

	pause    chan bool
	stop     chan struct{}
	stopOnce sync.Once
	idleOnce sync.Once
}

// New creates a Streamer and starts pumping immediately. onIdle fires at
// most once, when the source runs out of data before Stop was called.
func New(vc *discordgo.VoiceConnection, src io.ReadCloser, onIdle func()) *Streamer {
	s := &Streamer{
		src:    src,
		vc:     vc,
		onIdle: onIdle,
		pause:  make(chan bool, 1),
		stop:   make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Streamer) Pause()  { s.setPaused(true) }
func (s *Streamer) Resume() { s.setPaused(false) }

func (s *Streamer) setPaused(v bool) {
	// Collapse a pending toggle so the send below never blocks.
	select {
	case <-s.pause:
	default:
	}
	select {
	case s.pause <- v:
	case <-s.stop:
	}
}

// Stop halts the pump. The goroutine unblocks on its own: either it sees
// the stop channel, or the killed decoder makes the next read fail.
func (s *Streamer) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Streamer) run() {
	defer s.src.Close()

	enc, err := gopus.NewEncoder(sampleRate, channels, gopus.Audio)
	if err != nil {
		log.Printf("[ERR] Opus encoder init failed: %v", err)
		s.emitIdle()
		return
	}

	if err := s.vc.Speaking(true); err != nil {
		log.Printf("[WARN] Failed to set speaking state: %v", err)
	}
	defer func() { _ = s.vc.Speaking(false) }()

	pcmBuf := make([]byte, frameSize*channels*2)
	intBuf := make([]int16, frameSize*channels)
	paused := false

	for {
		select {
		case <-s.stop:
			return
		case paused = <-s.pause:
		default:
		}

		if paused {
			_ = s.vc.Speaking(false)
			select {
			case <-s.stop:
				return
			case paused = <-s.pause:
				if !paused {
					_ = s.vc.Speaking(true)
				}
			}
			continue
		}

		if _, err := io.ReadFull(s.src, pcmBuf); err != nil {
			// EOF or a dead pipe: the decoder has no more data.
			s.emitIdle()
			return
		}

		for i := range intBuf {
			intBuf[i] = int16(binary.LittleEndian.Uint16(pcmBuf[i*2 : i*2+2]))
		}

		frame, err := enc.Encode(intBuf, frameSize, len(pcmBuf))
		if err != nil {
			log.Printf("[ERR] Opus encode failed: %v", err)
			s.emitIdle()
			return
		}

		select {
		case s.vc.OpusSend <- frame:
		case <-s.stop:
			return
		}
	}
}

// emitIdle reports end-of-stream unless the streamer was stopped
// deliberately.
func (s *Streamer) emitIdle() {
	select {
	case <-s.stop:
		return
	default:
	}
	s.idleOnce.Do(func() {
		if s.onIdle != nil {
			s.onIdle()
		}
	})
}
