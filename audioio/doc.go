// Package audioio is the file boundary for the equalizer core: it decodes
// WAV files into mono float64 sample buffers and encodes processed buffers
// back to 16-bit PCM WAV.
//
// The DSP packages never touch files; they consume and produce in-memory
// buffers only. Multi-channel input is downmixed to mono by channel
// averaging before it reaches the core, since the core processes one mono
// stream per invocation.
package audioio
