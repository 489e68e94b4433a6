package engine

import (
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/vmihailenco/msgpack/v5"
)

// RequestType tags an incoming message.
type RequestType string

// ResponseType tags an outgoing message.
type ResponseType string

const (
	RequestInit         RequestType = "INIT"
	RequestCheckWord    RequestType = "CHECK_WORD"
	RequestSolveAnagram RequestType = "SOLVE_ANAGRAM"
)

const (
	ResponseInitComplete ResponseType = "INIT_COMPLETE"
	ResponseCheckWord    ResponseType = "CHECK_WORD_RESULT"
	ResponseSolveAnagram ResponseType = "SOLVE_ANAGRAM_RESULT"
)

// Request is one message sent to the engine. Only the fields of its Type are
// read.
type Request struct {
	ID              string      `msgpack:"id,omitempty"`
	Type            RequestType `msgpack:"type"`
	Word            string      `msgpack:"word,omitempty"`
	Letters         string      `msgpack:"letters,omitempty"`
	SearchType      string      `msgpack:"searchType,omitempty"`
	OriginalLetters string      `msgpack:"originalLetters,omitempty"`
}

// Response is the engine's answer to a Request, echoing its ID. On the wire
// it is encoded as the message of its Type, so every field of that kind is
// always present and no other kind's fields leak in.
type Response struct {
	ID              string         `msgpack:"id,omitempty"`
	Type            ResponseType   `msgpack:"type"`
	Word            string         `msgpack:"word"`
	IsValid         bool           `msgpack:"isValid"`
	Ready           bool           `msgpack:"ready"`
	Letters         string         `msgpack:"letters"`
	Results         solver.Grouped `msgpack:"results"`
	OriginalLetters string         `msgpack:"originalLetters"`
	SearchType      string         `msgpack:"searchType"`
}

// InitCompleteMessage is the wire form of INIT_COMPLETE.
type InitCompleteMessage struct {
	ID    string       `msgpack:"id,omitempty"`
	Type  ResponseType `msgpack:"type"`
	Ready bool         `msgpack:"ready"`
}

// CheckWordMessage is the wire form of CHECK_WORD_RESULT.
type CheckWordMessage struct {
	ID      string       `msgpack:"id,omitempty"`
	Type    ResponseType `msgpack:"type"`
	Word    string       `msgpack:"word"`
	IsValid bool         `msgpack:"isValid"`
}

// SolveAnagramMessage is the wire form of SOLVE_ANAGRAM_RESULT. Results is
// an empty map, never nil, when nothing matched.
type SolveAnagramMessage struct {
	ID              string         `msgpack:"id,omitempty"`
	Type            ResponseType   `msgpack:"type"`
	Letters         string         `msgpack:"letters"`
	Results         solver.Grouped `msgpack:"results"`
	OriginalLetters string         `msgpack:"originalLetters"`
	SearchType      string         `msgpack:"searchType"`
}

// Message returns the wire form of r for its Type.
func (r Response) Message() any {
	switch r.Type {
	case ResponseInitComplete:
		return InitCompleteMessage{ID: r.ID, Type: r.Type, Ready: r.Ready}
	case ResponseCheckWord:
		return CheckWordMessage{ID: r.ID, Type: r.Type, Word: r.Word, IsValid: r.IsValid}
	case ResponseSolveAnagram:
		results := r.Results
		if results == nil {
			results = solver.Grouped{}
		}
		return SolveAnagramMessage{
			ID:              r.ID,
			Type:            r.Type,
			Letters:         r.Letters,
			Results:         results,
			OriginalLetters: r.OriginalLetters,
			SearchType:      r.SearchType,
		}
	}
	return struct {
		ID   string       `msgpack:"id,omitempty"`
		Type ResponseType `msgpack:"type"`
	}{r.ID, r.Type}
}

var _ msgpack.CustomEncoder = Response{}

// EncodeMsgpack writes r as its per-type message.
func (r Response) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(r.Message())
}

// CheckWordResult is the outcome of CheckWord.
type CheckWordResult struct {
	Word    string
	IsValid bool
}

// SolveResult is the outcome of SolveAnagram.
type SolveResult struct {
	Letters         string
	Results         solver.Grouped
	OriginalLetters string
	SearchType      solver.SearchType
}
