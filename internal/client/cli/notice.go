package cli

import "time"

// Notice is the transient one-line banner shown above the prompt. A message
// stays visible for the configured TTL and then disappears on its own; a new
// message replaces the old one immediately.
type Notice struct {
	ttl   time.Duration
	msg   string
	setAt time.Time
	now   func() time.Time
}

func NewNotice(ttl time.Duration) *Notice {
	return &Notice{ttl: ttl, now: time.Now}
}

func (n *Notice) Show(msg string) {
	n.msg = msg
	n.setAt = n.now()
}

// Current returns the active message, or ok=false once it has expired or
// was never set.
func (n *Notice) Current() (string, bool) {
	if n.msg == "" {
		return "", false
	}
	if n.now().Sub(n.setAt) > n.ttl {
		n.msg = ""
		return "", false
	}
	return n.msg, true
}

func (n *Notice) Clear() {
	n.msg = ""
}
