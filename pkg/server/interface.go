/*
Package server implements msgpack IPC for abbreviation detection services.

The server speaks a request/response protocol over stdin/stdout using binary
msgpack encoding. Each request carries an ID, an op, and the text to scan;
the matching response echoes the ID so clients can pipeline requests.

A detect request:

	{"id": "req_001", "op": "detect", "text": "Prof. John has a Ph.D."}

is answered with both result sequences and their rune spans:

	{"id": "req_001", "known": [{"text": "Prof.", "s": 0, "e": 5}, ...], "unknown": [], "t": 12}

Supported ops are "detect", "sentences", "chunks", "dict_info" and
"health". Malformed requests produce structured error responses, never a
dropped connection.
*/
package server

// Request is an incoming IPC message.
type Request struct {
	ID   string `msgpack:"id"`
	Op   string `msgpack:"op"`
	Text string `msgpack:"text,omitempty"`
}

// Span is one detected abbreviation, sentence or chunk with its half-open
// rune bounds into the request text.
type Span struct {
	Text  string `msgpack:"text"`
	Start int    `msgpack:"s"`
	End   int    `msgpack:"e"`
}

// DetectResponse answers a "detect" request.
type DetectResponse struct {
	ID        string `msgpack:"id"`
	Known     []Span `msgpack:"known"`
	Unknown   []Span `msgpack:"unknown"`
	TimeTaken int64  `msgpack:"t"` // microseconds
}

// SegmentResponse answers a "sentences" or "chunks" request.
type SegmentResponse struct {
	ID        string `msgpack:"id"`
	Spans     []Span `msgpack:"spans"`
	TimeTaken int64  `msgpack:"t"` // microseconds
}

// StatusResponse answers "health" and "dict_info" requests, and is sent
// once at startup with status "ready".
type StatusResponse struct {
	ID      string `msgpack:"id,omitempty"`
	Status  string `msgpack:"status"`
	Entries int    `msgpack:"entries,omitempty"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
