package websocket

import (
	"encoding/json"
	"log/slog"
	"testing"
)

func testHub() *Hub {
	return NewHub(slog.New(slog.DiscardHandler))
}

func TestRegisterUnregister(t *testing.T) {
	hub := testHub()
	c := NewClient(hub, nil, 1)

	hub.Register(c)
	if got := hub.ClientCount(1); got != 1 {
		t.Errorf("ClientCount = %d, want 1", got)
	}

	hub.Unregister(c)
	if got := hub.ClientCount(1); got != 0 {
		t.Errorf("ClientCount after unregister = %d, want 0", got)
	}
}

func TestUnregisterTwice(t *testing.T) {
	hub := testHub()
	c := NewClient(hub, nil, 1)

	hub.Register(c)
	hub.Unregister(c)
	// Second unregister must not close the channel again
	hub.Unregister(c)
}

func TestBroadcastToOwnerOnly(t *testing.T) {
	hub := testHub()

	alice1 := NewClient(hub, nil, 1)
	alice2 := NewClient(hub, nil, 1)
	bob := NewClient(hub, nil, 2)
	hub.Register(alice1)
	hub.Register(alice2)
	hub.Register(bob)

	hub.BroadcastTo(1, NewMessage("pantry_item", "created", 7))

	for _, c := range []*Client{alice1, alice2} {
		select {
		case data := <-c.send:
			var msg Message
			if err := json.Unmarshal(data, &msg); err != nil {
				t.Fatalf("unmarshal broadcast: %v", err)
			}
			if msg.Type != "pantry_item_created" {
				t.Errorf("type = %q, want %q", msg.Type, "pantry_item_created")
			}
			if msg.ID != 7 {
				t.Errorf("id = %d, want 7", msg.ID)
			}
		default:
			t.Error("expected broadcast to reach owner's client")
		}
	}

	select {
	case <-bob.send:
		t.Error("broadcast leaked to another user's client")
	default:
	}
}

func TestBroadcastToUnknownUser(t *testing.T) {
	hub := testHub()
	// No clients registered; must not panic
	hub.BroadcastTo(99, NewMessage("saved_recipe", "deleted", 3))
}

func TestBroadcastFullBufferDoesNotBlock(t *testing.T) {
	hub := testHub()
	c := NewClient(hub, nil, 1)
	hub.Register(c)

	msg := NewMessage("pantry_item", "created", 1)
	for i := 0; i < sendBufferSize+5; i++ {
		hub.BroadcastTo(1, msg)
	}

	if got := len(c.send); got != sendBufferSize {
		t.Errorf("buffered = %d, want %d", got, sendBufferSize)
	}
}
