package client

import (
	"bufio"
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// snapshotEvent mirrors the server's SSE payload.
type snapshotEvent struct {
	Collection string          `json:"collection"`
	Items      json.RawMessage `json:"items"`
}

// subscribe opens an SSE stream and delivers each snapshot's decoded item
// slice on the returned channel. The channel closes when the stream ends or
// the context is cancelled. Feed it straight into a listsync session's Watch.
func subscribe[T any](ctx context.Context, c *Client, path string) (<-chan []T, error) {
	resp, err := c.stream.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "text/event-stream").
		Get(path)
	if err != nil {
		return nil, errors.Wrap(err, "stream request failed")
	}
	if resp.IsError() {
		resp.RawBody().Close()
		return nil, errors.Errorf("stream rejected: %s", resp.Status())
	}

	out := make(chan []T)
	go func() {
		defer close(out)
		defer resp.RawBody().Close()

		scanner := bufio.NewScanner(resp.RawBody())
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}

			var event snapshotEvent
			if err := json.Unmarshal([]byte(strings.TrimSpace(line[len("data:"):])), &event); err != nil {
				continue
			}

			var items []T
			if err := json.Unmarshal(event.Items, &items); err != nil {
				continue
			}

			select {
			case out <- items:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// SubscribeShopping streams authoritative shopping list snapshots.
func (c *Client) SubscribeShopping(ctx context.Context) (<-chan []ShoppingItem, error) {
	return subscribe[ShoppingItem](ctx, c, "/api/v1/shopping/stream")
}

// SubscribeTasks streams authoritative task list snapshots.
func (c *Client) SubscribeTasks(ctx context.Context) (<-chan []Task, error) {
	return subscribe[Task](ctx, c, "/api/v1/tasks/stream")
}
