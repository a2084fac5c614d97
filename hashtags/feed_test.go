package hashtags

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "instagram",
	}
	hub.register <- client

	update := FeedUpdate{Hashtag: "#fire", Platform: "instagram", Delta: 3}
	data, _ := json.Marshal(update)
	hub.broadcast <- broadcastMsg{Room: "instagram", Data: data}

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestBroadcastReachesAllRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	everything := &Client{Send: make(chan []byte, 10), Room: "all"}
	tiktokOnly := &Client{Send: make(chan []byte, 10), Room: "tiktok"}
	hub.register <- everything
	hub.register <- tiktokOnly

	data, _ := json.Marshal(FeedUpdate{Hashtag: "#zy", Platform: "instagram", Delta: 1})
	hub.Broadcast("instagram", data)

	select {
	case <-everything.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("the all room should see every platform")
	}

	select {
	case msg := <-tiktokOnly.Send:
		t.Fatalf("tiktok subscriber got a foreign update: %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
