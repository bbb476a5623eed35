package bollywood

// Actor is the interface that defines actor behavior.
// Actors process messages sequentially received from their mailbox, so state
// owned by an actor needs no locking as long as only Receive touches it.
type Actor interface {
	Receive(ctx Context)
}
