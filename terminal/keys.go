// @focus: #sys { io } #input { keys }
package terminal

const keyEsc = 0x1b

// escapeSequence maps the final byte(s) of a sequence to an event
// Key: bytes after ESC [ or ESC O (e.g. "A" for up arrow, "5~" for page up)
type escapeSequence struct {
	seq string
	ev  Event
}

// Known CSI sequences (ESC [ ...)
var csiSequences = []escapeSequence{
	// Arrow keys
	{"A", ArrowEvent(DirUp)},
	{"B", ArrowEvent(DirDown)},
	{"C", ArrowEvent(DirRight)},
	{"D", ArrowEvent(DirLeft)},

	// Navigation (xterm)
	{"H", NavEvent(NavHome)},
	{"F", NavEvent(NavEnd)},

	// Navigation (vt220 style, ESC [ digit ~)
	{"1~", NavEvent(NavHome)},
	{"3~", NavEvent(NavDelete)},
	{"4~", NavEvent(NavEnd)},
	{"5~", NavEvent(NavPageUp)},
	{"6~", NavEvent(NavPageDown)},
	{"7~", NavEvent(NavHome)},
	{"8~", NavEvent(NavEnd)},
}

// SS3 sequences (ESC O ...)
var ss3Sequences = []escapeSequence{
	{"H", NavEvent(NavHome)},
	{"F", NavEvent(NavEnd)},
}

var csiMap = buildSequenceMap(csiSequences)
var ss3Map = buildSequenceMap(ss3Sequences)

func buildSequenceMap(seqs []escapeSequence) map[string]Event {
	m := make(map[string]Event, len(seqs))
	for _, s := range seqs {
		m[s.seq] = s.ev
	}
	return m
}

// lookupCSI performs zero-alloc map lookup via compiler optimization
// The string([]byte) conversion inline in map access does not allocate
func lookupCSI(seq []byte) (Event, bool) {
	ev, ok := csiMap[string(seq)]
	return ev, ok
}

// lookupSS3 performs zero-alloc map lookup
func lookupSS3(seq []byte) (Event, bool) {
	ev, ok := ss3Map[string(seq)]
	return ev, ok
}
