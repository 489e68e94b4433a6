/*
Package server implements msgpack IPC for the word solver.

The server reads a stream of msgpack maps from stdin and writes one msgpack map
per request to stdout. Messages are processed in arrival order by a single
worker, so callers never share state with the engine, only messages.

# IPC

Every request carries a type and an optional id that is echoed back:

	{"id": "req_001", "type": "INIT"}
	{"id": "req_002", "type": "CHECK_WORD", "word": "C?T"}
	{"id": "req_003", "type": "SOLVE_ANAGRAM", "letters": "AC?", "searchType": "anagram"}

Responses mirror the request:

	{"id": "req_001", "type": "INIT_COMPLETE", "ready": true}
	{"id": "req_002", "type": "CHECK_WORD_RESULT", "word": "C?T", "isValid": true}
	{"id": "req_003", "type": "SOLVE_ANAGRAM_RESULT", "letters": "AC?", "searchType": "anagram",
	 "originalLetters": "AC?", "results": {3: [{"word": "ACE", "length": 3, "blankSubstitutions": ["E"]}]}}

On start the server writes {"type": "READY"}. Requests it cannot decode or
route are answered with an ERROR message; engine failures are not errors and
come back as empty results.

# Search Types

searchType selects the strategy: anagram, wordbuilder, startswith, endswith,
containing, qwithoutu, bingo7, bingo8, twoletter, threeletter, fourletter,
fiveletter. Unknown values run anagram.
*/
package server

// Message types written by the server itself.
const (
	TypeReady = "READY"
	TypeError = "ERROR"
)

// Error codes carried by ErrorResponse.
const (
	CodeBadRequest    = 400
	CodeInputTooLarge = 413
	CodeInternal      = 500
)

// StatusResponse is written once the server is listening.
type StatusResponse struct {
	Type string `msgpack:"type"`
}

// ErrorResponse holds basic error information for requests the transport
// could not hand to the engine.
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Type  string `msgpack:"type"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
