package tele

const (
	ContentTypeJSON = "application/json"
	EncodingUTF8    = "utf-8"
	DefaultQOS      = 1
)

// Envelope is the transport wrapper around one telemetry payload.
// Created once per tick, discarded after send.
type Envelope struct {
	Payload         []byte
	ContentType     string
	ContentEncoding string
}

func NewEnvelope(payload []byte) *Envelope {
	return &Envelope{
		Payload:         payload,
		ContentType:     ContentTypeJSON,
		ContentEncoding: EncodingUTF8,
	}
}
