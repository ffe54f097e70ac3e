package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/budgetme/budgetme/output"
)

// slowThreshold marks operations worth highlighting in the report.
const slowThreshold = 100 * time.Millisecond

// TimingCollector collects hierarchical timing data. The first timer
// started becomes the root of the reported tree.
type TimingCollector struct {
	root    *timerNode
	current *timerNode
	mu      sync.Mutex
}

// timerNode represents a single timed operation in the tree.
type timerNode struct {
	name     string
	start    time.Time
	end      time.Time
	children []*timerNode
	parent   *timerNode
}

// NewTimingCollector creates a new timing collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing an operation.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	node := &timerNode{
		name:  name,
		start: time.Now(),
	}

	if c.root == nil {
		c.root = node
		c.current = node
	} else {
		node.parent = c.current
		c.current.children = append(c.current.children, node)
		c.current = node
	}

	return &timingTimer{
		collector: c,
		node:      node,
	}
}

// Report outputs the timing tree:
//
//	spend: 125ms
//	├─ fetch ledger: 85ms
//	├─ reconcile: 0ms
//	└─ store ledger: 40ms
func (c *TimingCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == nil {
		return
	}

	name := c.root.name
	if styles != nil {
		name = styles.Keyword(name)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", name, renderDuration(c.root.end.Sub(c.root.start), false, styles))

	for i, child := range c.root.children {
		formatNode(w, child, "", i == len(c.root.children)-1, styles)
	}
}

func formatNode(w io.Writer, node *timerNode, prefix string, isLast bool, styles *output.Styles) {
	duration := node.end.Sub(node.start)

	branch, extension := "├─ ", "│  "
	if isLast {
		branch, extension = "└─ ", "   "
	}

	treeChars := prefix + branch
	if styles != nil {
		treeChars = styles.Dim(treeChars)
	}
	_, _ = fmt.Fprintf(w, "%s%s: %s\n", treeChars, node.name, renderDuration(duration, duration >= slowThreshold, styles))

	childPrefix := prefix + extension
	for i, child := range node.children {
		formatNode(w, child, childPrefix, i == len(node.children)-1, styles)
	}
}

// renderDuration shows milliseconds below a second, seconds above.
func renderDuration(d time.Duration, slow bool, styles *output.Styles) string {
	var text string
	if d < time.Second {
		text = fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	} else {
		text = fmt.Sprintf("%.2fs", float64(d)/float64(time.Second))
	}
	if styles != nil {
		return styles.Timing(text, slow)
	}
	return text
}

// timingTimer is a Timer implementation recording to a TimingCollector.
type timingTimer struct {
	collector *TimingCollector
	node      *timerNode
}

// End stops the timer.
func (t *timingTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.node.end = time.Now()

	if t.node.parent != nil {
		t.collector.current = t.node.parent
	}
}

// Child creates a nested timer.
func (t *timingTimer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	node := &timerNode{
		name:   name,
		start:  time.Now(),
		parent: t.node,
	}

	t.node.children = append(t.node.children, node)

	return &timingTimer{
		collector: t.collector,
		node:      node,
	}
}
