// Package cast loads asciinema v2 recordings and replays them through the
// same pollable contract banners use. Frame reconstruction is stateless:
// every query replays the event stream from the beginning, which keeps the
// recording immutable and the query API free of hidden cursor state.
package cast

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// FormatError reports a malformed cast file, pointing at the offending line.
type FormatError struct {
	Line    int
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Event is one retained output record from a recording.
type Event struct {
	Time float64
	Data string
}

// Recording is a parsed cast file. It is immutable after Parse.
type Recording struct {
	events []Event
	width  int
	height int
}

type castHeader struct {
	Version   int    `json:"version"`
	Width     *int   `json:"width"`
	Height    *int   `json:"height"`
	Timestamp *int64 `json:"timestamp"`
}

// Parse reads a cast file: a JSON header object on the first line followed
// by one JSON event array per line. Only "o" (output) events are retained,
// in file order. Blank lines are skipped.
func Parse(content string) (*Recording, error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		return nil, &FormatError{Line: 1, Message: "empty cast file"}
	}

	var header castHeader
	if err := json.Unmarshal(scanner.Bytes(), &header); err != nil {
		return nil, &FormatError{Line: 1, Message: fmt.Sprintf("invalid header: %v", err)}
	}
	if header.Version != 2 {
		return nil, &FormatError{Line: 1, Message: fmt.Sprintf("unsupported cast version: %d", header.Version)}
	}

	width, height := 80, 24
	if header.Width != nil {
		width = *header.Width
	}
	if header.Height != nil {
		height = *header.Height
	}

	var events []Event
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		event, eventType, err := parseEvent(line)
		if err != nil {
			return nil, &FormatError{Line: lineNo, Message: err.Error()}
		}
		if eventType == "o" {
			events = append(events, event)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &FormatError{Line: lineNo, Message: err.Error()}
	}

	return &Recording{events: events, width: width, height: height}, nil
}

// Load parses the cast file at path.
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

func parseEvent(line string) (Event, string, error) {
	var fields []json.RawMessage
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return Event{}, "", fmt.Errorf("invalid event: %v", err)
	}
	if len(fields) < 3 {
		return Event{}, "", fmt.Errorf("invalid event: expected [time, type, data], got %d fields", len(fields))
	}

	var t float64
	if err := json.Unmarshal(fields[0], &t); err != nil {
		return Event{}, "", fmt.Errorf("invalid event time: %v", err)
	}
	var eventType, data string
	if err := json.Unmarshal(fields[1], &eventType); err != nil {
		return Event{}, "", fmt.Errorf("invalid event type: %v", err)
	}
	if err := json.Unmarshal(fields[2], &data); err != nil {
		return Event{}, "", fmt.Errorf("invalid event data: %v", err)
	}
	return Event{Time: t, Data: data}, eventType, nil
}

// Duration is the timestamp of the last retained event, 0 when there are none.
func (r *Recording) Duration() float64 {
	if len(r.events) == 0 {
		return 0
	}
	return r.events[len(r.events)-1].Time
}

func (r *Recording) Width() int  { return r.width }
func (r *Recording) Height() int { return r.height }

// Events returns the retained output events in file order.
func (r *Recording) Events() []Event { return r.events }

// outputAt concatenates every payload with a timestamp at or before the
// query. Events are assumed time-ordered, so the scan stops at the first
// later one.
func (r *Recording) outputAt(timestamp float64) string {
	var out strings.Builder
	for _, ev := range r.events {
		if ev.Time > timestamp {
			break
		}
		out.WriteString(ev.Data)
	}
	return out.String()
}

// ScreenAt reconstructs the terminal screen as of the given timestamp by
// replaying all output up to it from an empty screen.
func (r *Recording) ScreenAt(timestamp float64) []string {
	s := newScreen(r.width, r.height)
	s.feed([]byte(r.outputAt(timestamp)))
	return s.render()
}
