// Package cmdstream runs an external command through the platform shell and
// exposes its standard output as a pull-based byte stream with a small,
// fixed-size buffer. Probes that parse tool output read from it line by line
// instead of loading the whole report into memory.
//
// There is no timeout or cancellation: a tool that never closes its output
// stalls the caller until it exits.
package cmdstream

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// BufferSize is the capacity of a Reader's internal buffer. Each refill is a
// single read of at most this many bytes from the child's stdout.
const BufferSize = 512

// maxEmptyReads bounds consecutive reads that return no bytes and no error.
const maxEmptyReads = 100

// ErrCannotOpen is returned when the command cannot be spawned.
var ErrCannotOpen = errors.New("cannot open command")

// Reader streams the standard output of a running command. A Reader is owned
// by a single caller and is not safe for concurrent use.
type Reader struct {
	command string
	cmd     *exec.Cmd
	stdout  io.ReadCloser

	buf []byte // nil once closed
	pos int
	end int
	eof bool

	closed bool
}

// Open spawns command through the platform shell and attaches to its stdout.
// Stderr is discarded.
func Open(command string) (*Reader, error) {
	shell, args := shellCommand()
	cmd := exec.Command(shell, append(args, command)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrCannotOpen, command, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrCannotOpen, command, err)
	}

	return &Reader{
		command: command,
		cmd:     cmd,
		stdout:  stdout,
		buf:     make([]byte, BufferSize),
	}, nil
}

// Run opens command, hands the reader to fn and closes it on every exit path,
// including a panic inside fn. The error from fn is returned unchanged.
func Run(command string, fn func(r *Reader) error) error {
	r, err := Open(command)
	if err != nil {
		return err
	}
	defer r.Close()

	return fn(r)
}

// Command returns the command line the reader was opened with.
func (r *Reader) Command() string {
	return r.command
}

// Buffered returns the number of bytes that can be read without a refill.
func (r *Reader) Buffered() int {
	if r.buf == nil {
		return 0
	}
	return r.end - r.pos
}

// Read fills p from the buffer, refilling from the child as needed. It only
// returns fewer than len(p) bytes when the child has closed its output; the
// short count is returned with a nil error and the next call returns io.EOF.
// Read errors from the pipe are reported as end of stream.
func (r *Reader) Read(p []byte) (int, error) {
	if r.buf == nil {
		return 0, io.EOF
	}

	n := 0
	for n < len(p) {
		if r.pos == r.end && !r.refill() {
			break
		}
		c := copy(p[n:], r.buf[r.pos:r.end])
		r.pos += c
		n += c
	}

	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// ReadByte returns the next byte of output, refilling the buffer when it is
// exhausted.
func (r *Reader) ReadByte() (byte, error) {
	if r.buf == nil {
		return 0, io.EOF
	}
	if r.pos == r.end && !r.refill() {
		return 0, io.EOF
	}

	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// refill performs one blocking read of up to BufferSize bytes, retrying reads
// that return nothing without an error. It reports false when the child
// produced nothing more.
func (r *Reader) refill() bool {
	if r.eof {
		return false
	}

	for i := 0; i < maxEmptyReads; i++ {
		n, err := r.stdout.Read(r.buf)
		r.pos, r.end = 0, n
		if err != nil {
			// keep what was read, stop on the next refill
			r.eof = true
			return n > 0
		}
		if n > 0 {
			return true
		}
	}
	r.eof = true
	return false
}

// Close releases the buffer, closes the pipe and reaps the child. The exit
// status is discarded. Close is idempotent and always returns nil.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.buf = nil
	r.pos, r.end = 0, 0

	_ = r.stdout.Close()
	_ = r.cmd.Wait()
	return nil
}
