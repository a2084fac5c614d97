package mq

import (
	"context"
	"encoding/json"
	"log"

	"fanhub/models"
	"fanhub/rdx"
	"fanhub/search"
)

// Emit publishes indexing events to Redis; the worker applies them.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), "indexing-events", data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}

// StartIndexingWorker keeps the redis search index in sync with entity
// writes. Runs for the life of the process.
func StartIndexingWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, "indexing-events")
	ch := sub.Channel()

	log.Println("[IndexingWorker] Listening for indexing events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[IndexingWorker] Failed to parse event: %v", err)
			continue
		}

		if err := search.ApplyIndexEvent(ctx, event); err != nil {
			log.Printf("[IndexingWorker] Index update error for %s/%s: %v",
				event.EntityType, event.EntityId, err)
		}
	}
}
