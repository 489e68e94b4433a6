package server

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/bastiangx/wordsolve/internal/logger"
	"github.com/bastiangx/wordsolve/pkg/config"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/engine"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

const testWords = "CAT\nACT\nTAC\nACE\nDOG\nDO\n"

// wireMessage holds any message the server writes.
type wireMessage struct {
	ID              string         `msgpack:"id"`
	Type            string         `msgpack:"type"`
	Ready           bool           `msgpack:"ready"`
	IsValid         bool           `msgpack:"isValid"`
	SearchType      string         `msgpack:"searchType"`
	OriginalLetters string         `msgpack:"originalLetters"`
	Results         solver.Grouped `msgpack:"results"`
	Error           string         `msgpack:"e"`
	Code            int            `msgpack:"c"`
}

// roundTrip feeds reqs to a fresh server and decodes everything it wrote.
func roundTrip(t *testing.T, cfg *config.Config, reqs ...any) []wireMessage {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range reqs {
		require.NoError(t, enc.Encode(r))
	}

	eng := engine.New(dictionary.StaticSource(testWords), engine.WithLogger(logger.Discard()))
	var out bytes.Buffer
	srv := NewServerWithIO(eng, cfg, &in, &out)
	srv.log = logger.Discard()
	require.NoError(t, srv.Start(context.Background()))

	var msgs []wireMessage
	dec := msgpack.NewDecoder(&out)
	for {
		var m wireMessage
		if err := dec.Decode(&m); err == io.EOF {
			break
		} else {
			require.NoError(t, err)
		}
		msgs = append(msgs, m)
	}
	return msgs
}

func TestServerSessions(t *testing.T) {
	msgs := roundTrip(t, nil,
		engine.Request{ID: "1", Type: engine.RequestInit},
		engine.Request{ID: "2", Type: engine.RequestCheckWord, Word: "C?T"},
		engine.Request{ID: "3", Type: engine.RequestSolveAnagram, Letters: "ACT", SearchType: "anagram"},
	)
	require.Len(t, msgs, 4)

	assert.Equal(t, TypeReady, msgs[0].Type)

	assert.Equal(t, "1", msgs[1].ID)
	assert.Equal(t, "INIT_COMPLETE", msgs[1].Type)
	assert.True(t, msgs[1].Ready)

	assert.Equal(t, "2", msgs[2].ID)
	assert.Equal(t, "CHECK_WORD_RESULT", msgs[2].Type)
	assert.True(t, msgs[2].IsValid)

	assert.Equal(t, "3", msgs[3].ID)
	assert.Equal(t, "SOLVE_ANAGRAM_RESULT", msgs[3].Type)
	assert.Equal(t, "anagram", msgs[3].SearchType)
	assert.Equal(t, "ACT", msgs[3].OriginalLetters)
	assert.Equal(t, []string{"ACT", "CAT", "TAC"}, msgs[3].Results.Words(3))
}

func TestServerDecodesTypedResponse(t *testing.T) {
	var in bytes.Buffer
	require.NoError(t, msgpack.NewEncoder(&in).Encode(engine.Request{
		ID: "7", Type: engine.RequestSolveAnagram, Letters: "AC?",
	}))
	eng := engine.New(dictionary.StaticSource(testWords), engine.WithLogger(logger.Discard()))
	var out bytes.Buffer
	srv := NewServerWithIO(eng, nil, &in, &out)
	srv.log = logger.Discard()
	require.NoError(t, srv.Start(context.Background()))

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, TypeReady, ready.Type)

	var resp engine.Response
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "7", resp.ID)
	assert.Equal(t, []string{"ACE", "ACT", "CAT", "TAC"}, resp.Results.Words(3))
	for _, m := range resp.Results[3] {
		assert.Len(t, m.BlankSubstitutions, 1)
	}
	assert.Equal(t, 1, srv.Requests())
}

func TestServerUnknownType(t *testing.T) {
	msgs := roundTrip(t, nil,
		map[string]any{"id": "x", "type": "SHUTDOWN"},
		engine.Request{ID: "y", Type: engine.RequestCheckWord, Word: "DOG"},
	)
	require.Len(t, msgs, 3)
	assert.Equal(t, "x", msgs[1].ID)
	assert.Equal(t, TypeError, msgs[1].Type)
	assert.Equal(t, CodeBadRequest, msgs[1].Code)
	assert.NotEmpty(t, msgs[1].Error)

	// the session survives the bad request
	assert.Equal(t, "CHECK_WORD_RESULT", msgs[2].Type)
	assert.True(t, msgs[2].IsValid)
}

func TestServerInputLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxInput = 4
	msgs := roundTrip(t, cfg,
		engine.Request{ID: "long", Type: engine.RequestSolveAnagram, Letters: "ABCDEFG"},
		engine.Request{ID: "ok", Type: engine.RequestSolveAnagram, Letters: "ACT"},
	)
	require.Len(t, msgs, 3)
	assert.Equal(t, TypeError, msgs[1].Type)
	assert.Equal(t, CodeInputTooLarge, msgs[1].Code)
	assert.Equal(t, "SOLVE_ANAGRAM_RESULT", msgs[2].Type)
}

func TestServerEmptyInput(t *testing.T) {
	msgs := roundTrip(t, nil)
	require.Len(t, msgs, 1)
	assert.Equal(t, TypeReady, msgs[0].Type)
}

// messageKeys runs reqs through a server and returns the key set of every
// message it wrote, READY included.
func messageKeys(t *testing.T, reqs ...engine.Request) [][]string {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range reqs {
		require.NoError(t, enc.Encode(r))
	}
	eng := engine.New(dictionary.StaticSource(testWords), engine.WithLogger(logger.Discard()))
	var out bytes.Buffer
	srv := NewServerWithIO(eng, nil, &in, &out)
	srv.log = logger.Discard()
	require.NoError(t, srv.Start(context.Background()))

	var keys [][]string
	dec := msgpack.NewDecoder(&out)
	for {
		var m map[string]msgpack.RawMessage
		if err := dec.Decode(&m); err == io.EOF {
			break
		} else {
			require.NoError(t, err)
		}
		ks := make([]string, 0, len(m))
		for k := range m {
			ks = append(ks, k)
		}
		keys = append(keys, ks)
	}
	return keys
}

func TestServerMessagesCarryEveryField(t *testing.T) {
	keys := messageKeys(t,
		engine.Request{ID: "1", Type: engine.RequestInit},
		engine.Request{ID: "2", Type: engine.RequestSolveAnagram, Letters: "ZZZ", SearchType: "anagram"},
		engine.Request{ID: "3", Type: engine.RequestSolveAnagram, SearchType: "qwithoutu"},
		engine.Request{ID: "4", Type: engine.RequestCheckWord, Word: "ZZZ"},
		engine.Request{Type: engine.RequestCheckWord, Word: "DOG"},
	)
	require.Len(t, keys, 6)

	solveKeys := []string{"id", "type", "letters", "results", "originalLetters", "searchType"}
	assert.ElementsMatch(t, []string{"type"}, keys[0])
	assert.ElementsMatch(t, []string{"id", "type", "ready"}, keys[1])
	assert.ElementsMatch(t, solveKeys, keys[2], "empty results still encode every field")
	assert.ElementsMatch(t, solveKeys, keys[3], "letterless search keeps letters")
	assert.ElementsMatch(t, []string{"id", "type", "word", "isValid"}, keys[4])
	assert.ElementsMatch(t, []string{"type", "word", "isValid"}, keys[5])
}

func TestServerEmptyResultsDecodeAsMap(t *testing.T) {
	msgs := roundTrip(t, nil,
		engine.Request{ID: "z", Type: engine.RequestSolveAnagram, Letters: "ZZZ", SearchType: "anagram"},
	)
	require.Len(t, msgs, 2)
	assert.NotNil(t, msgs[1].Results)
	assert.Zero(t, msgs[1].Results.Count())
	assert.Equal(t, "ZZZ", msgs[1].OriginalLetters)
}
