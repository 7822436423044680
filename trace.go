package motion

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/esimov/motion/utils"
)

// maxTraceLine bounds the length of a single trace record.
const maxTraceLine = 1 << 20

// ReadTrace decodes a newline delimited JSON trace of motion events.
// Blank lines are skipped.
func ReadTrace(r io.Reader) ([]MotionEvent, error) {
	var events []MotionEvent

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTraceLine)
	for line := 1; sc.Scan(); line++ {
		data := bytes.TrimSpace(sc.Bytes())
		if len(data) == 0 {
			continue
		}
		var ev MotionEvent
		if err := utils.JSON.Unmarshal(data, &ev); err != nil {
			return nil, fmt.Errorf("trace line %d: %w", line, err)
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("unable to read the trace: %w", err)
	}
	return events, nil
}

// WriteTrace encodes motion events as a newline delimited JSON trace.
func WriteTrace(w io.Writer, events []MotionEvent) error {
	enc := utils.JSON.NewEncoder(w)
	for i := range events {
		if err := enc.Encode(&events[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteEvents encodes the normalized events, one JSON document per line.
func WriteEvents(w io.Writer, events []*TouchEvent) error {
	enc := utils.JSON.NewEncoder(w)
	for _, ev := range events {
		if err := enc.Encode(ev); err != nil {
			return err
		}
	}
	return nil
}
