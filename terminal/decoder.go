// @lixen: #focus{sys[term,io,input]}
package terminal

// ByteSource yields one byte per call
// ok is false when the read timed out without data, which is not an error
type ByteSource interface {
	ReadKeyByte() (b byte, ok bool, err error)
}

// decodeState is the escape sequence parser state
type decodeState uint8

const (
	stateNormal      decodeState = iota // Awaiting first byte of a key
	stateEscSeen                        // After ESC
	stateBracketSeen                    // After ESC [
	stateBracketDigit                   // After ESC [ digit, awaiting ~
	stateSS3Seen                        // After ESC O
)

// Decoder turns the raw byte stream into key events
// Follow-up bytes of an escape sequence are read with the same bounded timeout
// as the first byte, so a lone ESC resolves after one timeout
type Decoder struct {
	src ByteSource
	seq [2]byte
}

// NewDecoder creates a decoder reading from src
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// Next reads and decodes one key event
// Any unrecognized or incomplete sequence decodes to EventEscape
func (d *Decoder) Next() (Event, error) {
	state := stateNormal
	n := 0

	for {
		b, ok, err := d.src.ReadKeyByte()
		if err != nil {
			return Event{}, err
		}

		if !ok {
			if state == stateNormal {
				return TimeoutEvent(), nil
			}
			return EscapeEvent(), nil
		}

		switch state {
		case stateNormal:
			if b != keyEsc {
				return CharEvent(b), nil
			}
			state = stateEscSeen

		case stateEscSeen:
			switch b {
			case '[':
				state = stateBracketSeen
			case 'O':
				state = stateSS3Seen
			default:
				return EscapeEvent(), nil
			}

		case stateBracketSeen:
			d.seq[0] = b
			n = 1
			if b >= '0' && b <= '9' {
				state = stateBracketDigit
				continue
			}
			if ev, ok := lookupCSI(d.seq[:n]); ok {
				return ev, nil
			}
			return EscapeEvent(), nil

		case stateBracketDigit:
			d.seq[1] = b
			n = 2
			if b == '~' {
				if ev, ok := lookupCSI(d.seq[:n]); ok {
					return ev, nil
				}
			}
			return EscapeEvent(), nil

		case stateSS3Seen:
			d.seq[0] = b
			if ev, ok := lookupSS3(d.seq[:1]); ok {
				return ev, nil
			}
			return EscapeEvent(), nil
		}
	}
}
