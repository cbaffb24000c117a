package trace

import (
	"io"
	"sync"
)

// Stream writes each event as soon as it is emitted.
type Stream struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
	err    error
	closer io.Closer // файл, открытый New; чужие writer не закрываем
}

// NewStream creates a tracer writing to w.
func NewStream(w io.Writer, level Level, format Format) *Stream {
	return &Stream{w: w, level: level, format: format}
}

func (s *Stream) Emit(ev Event) {
	if !s.level.Allows(ev.Scope) {
		return
	}
	ev.Seq = nextSeq()
	data := Render(ev, s.format)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	// ошибки записи не должны ронять компиляцию, запоминаем первую
	if _, err := s.w.Write(data); err != nil {
		s.err = err
	}
}

func (s *Stream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return err
		}
	}
	return s.err
}

func (s *Stream) Close() error {
	err := s.Flush()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
		s.closer = nil
	}
	return err
}

func (s *Stream) Level() Level { return s.level }
