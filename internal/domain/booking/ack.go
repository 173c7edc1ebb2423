package booking

// Ack is the outcome of a registration attempt. Duplicates are not transport
// errors: callers get acknowledged=false plus a message and must inspect the
// payload, mirroring the driver's insert acknowledgment shape.
type Ack struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   any    `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}
