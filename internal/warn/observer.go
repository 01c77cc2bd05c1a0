package warn

// Observer receives warnings pushed by a Manager. Next is called exactly once
// per recorded warning for every observer subscribed at the moment of
// recording. The manager itself never calls Error; the channel exists for the
// wider observable contract so that adapters can forward failures of their
// own.
//
// Next runs inside the manager's locked section: implementations must return
// promptly and must not call back into the manager.
type Observer interface {
	Next(rec Record)
	Error(err error)
}

// ObserverFunc adapts plain functions to the Observer interface. Nil fields
// turn the corresponding call into a no-op.
type ObserverFunc struct {
	OnNext  func(rec Record)
	OnError func(err error)
}

func (o ObserverFunc) Next(rec Record) {
	if o.OnNext != nil {
		o.OnNext(rec)
	}
}

func (o ObserverFunc) Error(err error) {
	if o.OnError != nil {
		o.OnError(err)
	}
}

// ChannelObserver forwards records into a channel, e.g. to feed a UI loop.
// Sends never block: when the channel is full the record is dropped, since
// delivery happens inside the manager's critical section.
type ChannelObserver struct {
	Ch chan<- Record
}

func (o ChannelObserver) Next(rec Record) {
	select {
	case o.Ch <- rec:
	default:
	}
}

func (o ChannelObserver) Error(err error) {}
