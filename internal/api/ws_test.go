package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestChatSocket_StreamsTranscriptAppends(t *testing.T) {
	s := setupTest(t)
	srv := httptest.NewServer(s)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dialing %s: %v", wsURL, err)
	}
	defer conn.Close()
	resp.Body.Close()

	// Give the handler a moment to register its subscription.
	time.Sleep(50 * time.Millisecond)

	doJSON(t, s, "POST", "/api/chat/messages", `{"content":"summarize page 5"}`)

	var events []wsEvent
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for len(events) < 2 {
		var ev wsEvent
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("reading event after %d: %v", len(events), err)
		}
		if ev.Type != "message" {
			t.Fatalf("expected message event, got %q", ev.Type)
		}
		events = append(events, ev)
	}

	if !events[0].Message.IsUser {
		t.Error("first event should be the user message")
	}
	if events[1].Message.IsUser {
		t.Error("second event should be the delayed reply")
	}
	if len(events[1].Message.Citations) == 0 {
		t.Error("reply should carry a citation")
	}
}

func TestChatSocket_DocumentOpenEvent(t *testing.T) {
	s := setupTest(t)
	srv := httptest.NewServer(s)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dialing %s: %v", wsURL, err)
	}
	defer conn.Close()
	resp.Body.Close()

	time.Sleep(50 * time.Millisecond)

	openReport(t, s)

	var ev wsEvent
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("reading event: %v", err)
	}
	if ev.Type != "document" {
		t.Fatalf("expected document event, got %q", ev.Type)
	}
	if ev.Document.PageCount != 7 {
		t.Errorf("expected 7 pages in event, got %d", ev.Document.PageCount)
	}
}
