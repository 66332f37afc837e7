package terminal

import "errors"

// scriptSource replays bytes; a negative value in the script is a timeout
type scriptSource struct {
	script []int
	pos    int
	err    error
	writes [][]byte
}

func newScript(s ...int) *scriptSource {
	return &scriptSource{script: s}
}

func bytesScript(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int(s[i])
	}
	return out
}

const timeout = -1

func (s *scriptSource) ReadKeyByte() (byte, bool, error) {
	if s.pos >= len(s.script) {
		if s.err != nil {
			return 0, false, s.err
		}
		return 0, false, nil
	}
	v := s.script[s.pos]
	s.pos++
	if v < 0 {
		return 0, false, nil
	}
	return byte(v), true, nil
}

func (s *scriptSource) Write(p []byte) error {
	if s.err != nil && errors.Is(s.err, errWriteFail) {
		return s.err
	}
	s.writes = append(s.writes, append([]byte(nil), p...))
	return nil
}

var errWriteFail = errors.New("write failed")
