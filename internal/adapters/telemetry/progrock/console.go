package progrock

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

const (
	iconSuccess = "✔"
	iconFailure = "✘"
	iconSkipped = "∅"
)

var _ progrock.Writer = (*Console)(nil)

// Console is a progrock.Writer that prints vertex output line by line, prefixed
// with the vertex name, followed by one status line when the vertex finishes.
type Console struct {
	mu      sync.Mutex
	w       io.Writer
	names   map[string]string
	partial map[string][]byte
	done    map[string]bool
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{
		w:       w,
		names:   make(map[string]string),
		partial: make(map[string][]byte),
		done:    make(map[string]bool),
	}
}

// WriteStatus implements progrock.Writer.
func (c *Console) WriteStatus(status *progrock.StatusUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range status.Vertexes {
		c.names[v.Id] = v.Name
	}

	for _, l := range status.Logs {
		if err := c.writeLog(l.Vertex, l.Data); err != nil {
			return err
		}
	}

	for _, v := range status.Vertexes {
		if err := c.writeVertex(v); err != nil {
			return err
		}
	}
	return nil
}

// Close prints output that did not end with a newline.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id := range c.partial {
		if err := c.flush(id); err != nil {
			return err
		}
	}
	return nil
}

// writeLog prints every complete line of data. Carriage returns end a line too,
// since git redraws its progress counters with them.
func (c *Console) writeLog(id string, data []byte) error {
	buf := append(c.partial[id], data...)
	for {
		i := bytes.IndexAny(buf, "\r\n")
		if i < 0 {
			break
		}
		if err := c.line(id, buf[:i]); err != nil {
			return err
		}
		buf = buf[i+1:]
	}
	c.partial[id] = bytes.Clone(buf)
	return nil
}

func (c *Console) writeVertex(v *progrock.Vertex) error {
	if c.done[v.Id] {
		return nil
	}

	switch {
	case v.Cached:
		c.done[v.Id] = true
		_, err := fmt.Fprintf(c.w, "%s %s (already present)\n", iconSkipped, v.Name)
		return err
	case v.Completed != nil:
		c.done[v.Id] = true
		if err := c.flush(v.Id); err != nil {
			return err
		}
		if v.Error != nil {
			_, err := fmt.Fprintf(c.w, "%s %s: %s\n", iconFailure, v.Name, v.GetError())
			return err
		}
		_, err := fmt.Fprintf(c.w, "%s %s\n", iconSuccess, v.Name)
		return err
	}
	return nil
}

func (c *Console) flush(id string) error {
	rest := c.partial[id]
	delete(c.partial, id)
	return c.line(id, rest)
}

func (c *Console) line(id string, text []byte) error {
	text = bytes.TrimRight(text, " \t")
	if len(text) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(c.w, "  %s | %s\n", c.names[id], text)
	return err
}
