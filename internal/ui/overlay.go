package ui

import (
	"fmt"
	"time"
)

// Anchor ids the gallery overlay is built around.
const (
	InfoID    = "info"
	LoadingID = "loading"
)

// Timings.
const (
	CaptionDuration = 3 * time.Second
	LoadingDelay    = time.Second
)

// LoadingText is shown in #loading until it hides.
const LoadingText = "전시관 불러오는 중..."

// DefaultNodes returns the #loading and #info nodes, with #info showing title.
func DefaultNodes(title string) []*Node {
	return []*Node{
		NewNode("label", "", InfoID, title),
		NewNode("panel", "", LoadingID, LoadingText),
	}
}

// Caption is the #info text surface: the gallery title, or a transient caption that reverts
// to the title after CaptionDuration. It keeps its own clock, advanced by Update.
type Caption struct {
	node     *Node
	title    string
	now      time.Duration
	deadline time.Duration
	pending  bool
}

// NewCaption shows title on node.
func NewCaption(node *Node, title string) *Caption {
	node.Text = title
	return &Caption{node: node, title: title}
}

// Show displays text and (re)starts the reversion countdown. An earlier countdown is dropped.
func (c *Caption) Show(text string) {
	c.node.Text = text
	c.deadline = c.now + CaptionDuration
	c.pending = true
}

// Update advances the caption clock by dt and restores the title once the countdown ends.
func (c *Caption) Update(dt time.Duration) {
	c.now += dt
	if c.pending && c.now >= c.deadline {
		c.node.Text = c.title
		c.pending = false
	}
}

// Text is what #info currently shows.
func (c *Caption) Text() string { return c.node.Text }

// Pending reports whether a caption is waiting to revert.
func (c *Caption) Pending() bool { return c.pending }

// Title is the static text.
func (c *Caption) Title() string { return c.title }

// Loading hides the #loading node a fixed delay after startup.
type Loading struct {
	node    *Node
	delay   time.Duration
	elapsed time.Duration
}

// NewLoading shows node until delay has passed.
func NewLoading(node *Node, delay time.Duration) *Loading {
	node.Show()
	return &Loading{node: node, delay: delay}
}

func (l *Loading) Update(dt time.Duration) {
	if l.Done() {
		return
	}
	l.elapsed += dt
	if l.elapsed >= l.delay {
		l.node.Hide()
	}
}

// Done reports whether the overlay has been hidden.
func (l *Loading) Done() bool { return l.node.Hidden }

// Bind finds the #info and #loading anchors in e and attaches the caption and the loading
// timer to them. A missing anchor is an error.
func Bind(e *Engine, title string) (*Caption, *Loading, error) {
	info, err := e.Node(InfoID)
	if err != nil {
		return nil, nil, fmt.Errorf("ui: caption anchor: %w", err)
	}
	loading, err := e.Node(LoadingID)
	if err != nil {
		return nil, nil, fmt.Errorf("ui: loading anchor: %w", err)
	}
	return NewCaption(info, title), NewLoading(loading, LoadingDelay), nil
}
