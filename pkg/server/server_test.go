package server

import (
	"bytes"
	"io"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/preproc-tools/abbrevserve/pkg/abbrev"
	"github.com/preproc-tools/abbrevserve/pkg/config"
	"github.com/preproc-tools/abbrevserve/pkg/dictionary"
)

// run feeds the requests through a server instance and returns a decoder
// positioned at the first response (the ready status).
func run(t *testing.T, reqs ...Request) *msgpack.Decoder {
	t.Helper()

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range reqs {
		if err := enc.Encode(r); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}

	var out bytes.Buffer
	dict := dictionary.Default()
	srv := NewServer(abbrev.NewDetector(dict), dict, config.DefaultConfig(), &in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return msgpack.NewDecoder(&out)
}

func expectReady(t *testing.T, dec *msgpack.Decoder) {
	t.Helper()
	var status StatusResponse
	if err := dec.Decode(&status); err != nil {
		t.Fatalf("decoding ready status: %v", err)
	}
	if status.Status != "ready" {
		t.Fatalf("status = %q, want ready", status.Status)
	}
	if status.Entries == 0 {
		t.Error("ready status should report dictionary entries")
	}
}

func TestServerDetect(t *testing.T) {
	dec := run(t, Request{ID: "r1", Op: "detect", Text: "Prof. John has a Ph.D. in computer science and is experienced in OOP."})
	expectReady(t, dec)

	var resp DetectResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding detect response: %v", err)
	}
	if resp.ID != "r1" {
		t.Errorf("ID = %q, want r1", resp.ID)
	}
	wantKnown := []Span{{"Prof.", 0, 5}, {"Ph.D.", 17, 22}}
	wantUnknown := []Span{{"OOP.", 65, 69}}
	if len(resp.Known) != len(wantKnown) {
		t.Fatalf("known = %+v, want %+v", resp.Known, wantKnown)
	}
	for i := range wantKnown {
		if resp.Known[i] != wantKnown[i] {
			t.Errorf("known[%d] = %+v, want %+v", i, resp.Known[i], wantKnown[i])
		}
	}
	if len(resp.Unknown) != 1 || resp.Unknown[0] != wantUnknown[0] {
		t.Errorf("unknown = %+v, want %+v", resp.Unknown, wantUnknown)
	}
}

func TestServerSentences(t *testing.T) {
	dec := run(t, Request{ID: "r2", Op: "sentences", Text: "Dr. Smith arrived. He left."})
	expectReady(t, dec)

	var resp SegmentResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding sentences response: %v", err)
	}
	if len(resp.Spans) != 2 {
		t.Fatalf("spans = %+v, want 2 sentences", resp.Spans)
	}
	if resp.Spans[0].Text != "Dr. Smith arrived." {
		t.Errorf("first sentence = %q", resp.Spans[0].Text)
	}
}

func TestServerHealthAndDictInfo(t *testing.T) {
	dec := run(t,
		Request{ID: "h1", Op: "health"},
		Request{ID: "d1", Op: "dict_info"},
	)
	expectReady(t, dec)

	var health StatusResponse
	if err := dec.Decode(&health); err != nil {
		t.Fatal(err)
	}
	if health.ID != "h1" || health.Status != "ok" {
		t.Errorf("health = %+v", health)
	}
	var info StatusResponse
	if err := dec.Decode(&info); err != nil {
		t.Fatal(err)
	}
	if info.Entries == 0 {
		t.Errorf("dict_info reported no entries: %+v", info)
	}
}

func TestServerUnknownOp(t *testing.T) {
	dec := run(t, Request{ID: "x1", Op: "explode"})
	expectReady(t, dec)

	var errResp ErrorResponse
	if err := dec.Decode(&errResp); err != nil {
		t.Fatal(err)
	}
	if errResp.Code != 400 || errResp.ID != "x1" {
		t.Errorf("error = %+v, want code 400 for x1", errResp)
	}
}

func TestServerEmptyTextIsValid(t *testing.T) {
	dec := run(t, Request{ID: "e1", Op: "detect", Text: ""})
	expectReady(t, dec)

	var resp DetectResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Known) != 0 || len(resp.Unknown) != 0 {
		t.Errorf("empty text produced results: %+v", resp)
	}
	if err := dec.Decode(&resp); err != io.EOF {
		t.Errorf("expected EOF after last response, got %v", err)
	}
}
