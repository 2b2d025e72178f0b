package events

// Publisher emits audit events to an external broker. Publishing is
// best-effort; statement generation never fails on a publish error.
type Publisher interface {
	Publish(topic string, event any) error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(topic string, event any) error {
	return nil
}
