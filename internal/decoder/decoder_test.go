package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsWithoutOffset(t *testing.T) {
	f := New(Options{})
	args := f.args("https://media.example/a.mp3", 0)

	assert.NotContains(t, args, "-ss")
	assert.Contains(t, args, "-reconnect")
	assert.Contains(t, args, "-i")
	assert.Equal(t, "pipe:1", args[len(args)-1])

	// Raw PCM in the format the voice sink expects.
	assert.Subset(t, args, []string{"-f", "s16le", "-ar", "48000", "-ac", "2"})
}

func TestArgsWithOffset(t *testing.T) {
	f := New(Options{})
	args := f.args("https://media.example/a.mp3", 120)

	ss := indexOf(args, "-ss")
	require.GreaterOrEqual(t, ss, 0)
	assert.Equal(t, "120", args[ss+1])

	// The seek flag must precede the input so ffmpeg seeks the source
	// instead of decoding from the start.
	assert.Less(t, ss, indexOf(args, "-i"))
}

func TestArgsApplyOptions(t *testing.T) {
	f := New(Options{Threads: 4, Bitrate: "96k", ReconnectDelayMax: 10})
	args := f.args("https://media.example/a.mp3", 0)

	assert.Subset(t, args, []string{"-threads", "4"})
	assert.Subset(t, args, []string{"-b:a", "96k"})
	assert.Subset(t, args, []string{"-reconnect_delay_max", "10"})
}

func TestOptionDefaults(t *testing.T) {
	f := New(Options{})

	assert.Equal(t, "ffmpeg", f.opts.Path)
	assert.Equal(t, 2, f.opts.Threads)
	assert.Equal(t, "64k", f.opts.Bitrate)
	assert.Equal(t, 5, f.opts.ReconnectDelayMax)
}

func TestStartFailsForMissingBinary(t *testing.T) {
	f := New(Options{Path: "/nonexistent/ffmpeg-binary"})

	_, err := f.Start("https://media.example/a.mp3", 0)
	require.Error(t, err)
}

func indexOf(args []string, want string) int {
	for i, a := range args {
		if a == want {
			return i
		}
	}
	return -1
}
