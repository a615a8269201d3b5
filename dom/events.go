package dom

// Kinds of node events.
const (
	NodeAdded   = "+node"
	NodeRemoved = "-node"
)

// AttrAdded is the kind of event published when attribute key is created.
func AttrAdded(key string) string {
	return "+attr." + key
}

// AttrChanged is the kind of event published when attribute key changes its
// value.
func AttrChanged(key string) string {
	return "~attr." + key
}

// AttrRemoved is the kind of event published when attribute key is deleted.
func AttrRemoved(key string) string {
	return "-attr." + key
}

// Event describes a mutation which has been applied to a tree.
//
// For node events, Node is the node inserted or removed. For attribute
// events, Node is the node holding the attribute, Value is the new value
// (nil for deletions) and Old is the previous value (nil for new keys).
type Event struct {
	Kind  string
	Node  *Node
	Value any
	Old   any
}

// Listener is a callback for events.
type Listener func(Event)

// Subscription identifies a listener registered at a document.
type Subscription struct {
	kind string
	id   uint64
}

// Kind returns the event kind the subscription is registered for.
func (s Subscription) Kind() string {
	return s.kind
}

// --- Event channel ---------------------------------------------------------

type subscriber struct {
	id       uint64
	listener Listener
}

// channel dispatches events to listeners, synchronously and in order of
// subscription.
type channel struct {
	serial    uint64
	listeners map[string][]subscriber
}

func newChannel() *channel {
	return &channel{listeners: make(map[string][]subscriber)}
}

func (c *channel) subscribe(kind string, l Listener) Subscription {
	c.serial++
	c.listeners[kind] = append(c.listeners[kind], subscriber{id: c.serial, listener: l})
	return Subscription{kind: kind, id: c.serial}
}

func (c *channel) unsubscribe(s Subscription) bool {
	subs := c.listeners[s.kind]
	for i, sub := range subs {
		if sub.id == s.id {
			if len(subs) == 1 {
				delete(c.listeners, s.kind)
			} else {
				// copy, as a dispatch may be iterating over subs
				c.listeners[s.kind] = append(subs[:i:i], subs[i+1:]...)
			}
			return true
		}
	}
	return false
}

func (c *channel) publish(evt Event) {
	subs := c.listeners[evt.Kind]
	if len(subs) == 0 {
		return
	}
	tracer().Debugf("publishing %s for %v to %d listener(s)", evt.Kind, evt.Node, len(subs))
	for _, sub := range subs {
		sub.listener(evt)
	}
}
