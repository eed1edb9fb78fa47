package cmdstream

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"testing"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests rely on /bin/sh")
	}
}

func TestReadShortAtEndOfStream(t *testing.T) {
	skipOnWindows(t)

	r, err := Open("printf 0123456789")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	buf := make([]byte, 100)
	n, err := r.Read(buf)
	if err != nil {
		t.Fatalf("first Read returned error: %v", err)
	}
	if n != 10 {
		t.Fatalf("expected 10 bytes, got %d", n)
	}
	if got := string(buf[:n]); got != "0123456789" {
		t.Errorf("unexpected data %q", got)
	}

	n, err = r.Read(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("expected (0, io.EOF) after drain, got (%d, %v)", n, err)
	}
}

func TestReadServesFromBufferBeforeRefill(t *testing.T) {
	skipOnWindows(t)

	r, err := Open("printf abcdef")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	two := make([]byte, 2)
	if n, err := r.Read(two); n != 2 || err != nil {
		t.Fatalf("Read = (%d, %v), want (2, nil)", n, err)
	}
	if r.Buffered() != 4 {
		t.Errorf("expected 4 buffered bytes, got %d", r.Buffered())
	}
	if n, err := r.Read(two); n != 2 || err != nil || string(two) != "cd" {
		t.Errorf("Read = (%d, %v, %q), want (2, nil, \"cd\")", n, err, two)
	}
}

func TestReadSpansManyRefills(t *testing.T) {
	skipOnWindows(t)

	const size = 5*BufferSize + 37
	r, err := Open("head -c 2597 /dev/zero | tr '\\000' 'x'")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(data) != size {
		t.Fatalf("expected %d bytes, got %d", size, len(data))
	}
	if !bytes.Equal(data, bytes.Repeat([]byte("x"), size)) {
		t.Error("unexpected content")
	}
}

func TestReadByte(t *testing.T) {
	skipOnWindows(t)

	r, err := Open("printf 'a\\nb'")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	var got []byte
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadByte failed: %v", err)
		}
		got = append(got, b)
	}
	if string(got) != "a\nb" {
		t.Errorf("unexpected bytes %q", got)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	skipOnWindows(t)

	r, err := Open("printf hello")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	if n, err := r.Read(make([]byte, 8)); n != 0 || err != io.EOF {
		t.Errorf("Read after Close = (%d, %v), want (0, io.EOF)", n, err)
	}
	if _, err := r.ReadByte(); err != io.EOF {
		t.Errorf("ReadByte after Close = %v, want io.EOF", err)
	}
}

func TestCloseBeforeDrain(t *testing.T) {
	skipOnWindows(t)

	r, err := Open("yes")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := r.ReadByte(); err != nil {
		t.Fatalf("ReadByte failed: %v", err)
	}
	// the child is killed by SIGPIPE once the read end goes away
	if err := r.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestOpenFailure(t *testing.T) {
	prev := shellCommand
	shellCommand = func() (string, []string) {
		return "/nonexistent/shell", []string{"-c"}
	}
	t.Cleanup(func() { shellCommand = prev })

	_, err := Open("true")
	if !errors.Is(err, ErrCannotOpen) {
		t.Fatalf("expected ErrCannotOpen, got %v", err)
	}

	called := false
	err = Run("true", func(*Reader) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrCannotOpen) {
		t.Errorf("Run: expected ErrCannotOpen, got %v", err)
	}
	if called {
		t.Error("callback must not run when the command cannot be opened")
	}
}

func TestRunClosesReaderOnError(t *testing.T) {
	skipOnWindows(t)

	parseErr := errors.New("parse failed")
	var kept *Reader
	err := Run("printf data", func(r *Reader) error {
		kept = r
		return parseErr
	})
	if !errors.Is(err, parseErr) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if kept == nil || !kept.closed {
		t.Fatal("reader should be closed after Run returns")
	}
	if kept.Command() != "printf data" {
		t.Errorf("unexpected command %q", kept.Command())
	}
}

func TestCommandExists(t *testing.T) {
	skipOnWindows(t)

	if !CommandExists("sh") {
		t.Error("expected sh to be on the path")
	}
	if CommandExists("breeze-no-such-tool-xyz") {
		t.Error("unexpected match for a missing tool")
	}
	if CommandExists("") {
		t.Error("empty name must not exist")
	}
}

// stutterReader returns a number of empty reads before each chunk.
type stutterReader struct {
	chunks []string
	empty  int
	reads  int
}

func (s *stutterReader) Read(p []byte) (int, error) {
	s.reads++
	if len(s.chunks) == 0 {
		return 0, io.EOF
	}
	if s.empty > 0 {
		s.empty--
		return 0, nil
	}
	n := copy(p, s.chunks[0])
	s.chunks = s.chunks[1:]
	s.empty = 2
	return n, nil
}

func TestReadRetriesEmptyReads(t *testing.T) {
	src := &stutterReader{chunks: []string{"Handle 0x0000\n", "BIOS Information\n"}, empty: 2}
	r := &Reader{stdout: io.NopCloser(src), buf: make([]byte, BufferSize)}

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "Handle 0x0000\nBIOS Information\n" {
		t.Fatalf("got %q", got)
	}
}

func TestReadGivesUpOnEndlessEmptyReads(t *testing.T) {
	src := &stutterReader{chunks: []string{"x"}, empty: maxEmptyReads + 1}
	r := &Reader{stdout: io.NopCloser(src), buf: make([]byte, BufferSize)}

	n, err := r.Read(make([]byte, 4))
	if n != 0 || err != io.EOF {
		t.Fatalf("Read = %d, %v; want 0, io.EOF", n, err)
	}
	if src.reads != maxEmptyReads {
		t.Fatalf("reads = %d, want %d", src.reads, maxEmptyReads)
	}
}
