package probe

// tailLen is the number of raw probe output lines kept for the summary
const tailLen = 4

// tailBuffer keeps a sliding window of the most recent lines
type tailBuffer struct {
	lines []string
	max   int
}

func newTailBuffer(max int) *tailBuffer {
	return &tailBuffer{max: max}
}

func (b *tailBuffer) Append(line string) {
	b.lines = append(b.lines, line)
	if len(b.lines) > b.max {
		b.lines = b.lines[len(b.lines)-b.max:]
	}
}

func (b *tailBuffer) Lines() []string {
	return b.lines
}
