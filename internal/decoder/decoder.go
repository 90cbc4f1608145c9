// Package decoder launches the external ffmpeg process that fetches a
// remote media URL and emits raw PCM (48 kHz stereo s16le) on stdout.
package decoder

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strconv"
	"sync"

	"streamcast/internal/player"
)

// Options control the spawned process. Zero values fall back to the
// defaults the bot ships with.
type Options struct {
	Path              string // ffmpeg binary, default "ffmpeg"
	Threads           int    // worker cap, default 2
	Bitrate           string // audio bitrate, default "64k"
	ReconnectDelayMax int    // seconds, default 5
}

// FFmpeg implements player.Decoder.
type FFmpeg struct {
	opts Options
}

func New(opts Options) *FFmpeg {
	if opts.Path == "" {
		opts.Path = "ffmpeg"
	}
	if opts.Threads <= 0 {
		opts.Threads = 2
	}
	if opts.Bitrate == "" {
		opts.Bitrate = "64k"
	}
	if opts.ReconnectDelayMax <= 0 {
		opts.ReconnectDelayMax = 5
	}
	return &FFmpeg{opts: opts}
}

// args builds the ffmpeg argv: reconnect on transient network failures,
// optional input-side seek, capped worker threads, modest bitrate.
func (f *FFmpeg) args(url string, offsetSec int) []string {
	args := []string{
		"-reconnect", "1",
		"-reconnect_streamed", "1",
		"-reconnect_delay_max", strconv.Itoa(f.opts.ReconnectDelayMax),
	}
	if offsetSec > 0 {
		args = append(args, "-ss", strconv.Itoa(offsetSec))
	}
	args = append(args,
		"-threads", strconv.Itoa(f.opts.Threads),
		"-i", url,
		"-f", "s16le",
		"-ar", "48000",
		"-ac", "2",
		"-b:a", f.opts.Bitrate,
		"-loglevel", "warning",
		"pipe:1",
	)
	return args
}

// Start spawns one decoding process. The caller owns the returned
// process and must Kill it eventually.
func (f *FFmpeg) Start(url string, offsetSec int) (player.DecoderProcess, error) {
	cmd := exec.Command(f.opts.Path, f.args(url, offsetSec)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", f.opts.Path, err)
	}
	log.Printf("[INFO] Decoder started (pid %d, offset %ds)", cmd.Process.Pid, offsetSec)

	go logStderr(cmd.Process.Pid, stderr)

	return &Process{cmd: cmd, stdout: stdout}, nil
}

// logStderr drains diagnostic output so the process never blocks on a
// full pipe. Lines are logged, never parsed.
func logStderr(pid int, r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		log.Printf("[FFMPEG %d] %s", pid, sc.Text())
	}
}

// Process is one live ffmpeg subprocess.
type Process struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	kill   sync.Once
}

func (p *Process) Output() io.ReadCloser { return p.stdout }

// Kill terminates the process and reaps it. Safe to call repeatedly and
// on a process that already exited.
func (p *Process) Kill() {
	p.kill.Do(func() {
		// Kill returns an error for an already-finished process; that
		// is exactly the idempotency we want, so it is not logged.
		_ = p.cmd.Process.Kill()
		go func() { _ = p.cmd.Wait() }()
	})
}
