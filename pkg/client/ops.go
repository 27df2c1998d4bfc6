package client

import (
	"context"

	"github.com/homehub-app/homehub/pkg/listsync"
)

// ShoppingOps adapts the client to a listsync session over shopping items.
type ShoppingOps struct {
	c *Client
}

func (c *Client) ShoppingOps() *ShoppingOps {
	return &ShoppingOps{c: c}
}

func (o *ShoppingOps) Create(ctx context.Context, item ShoppingItem) error {
	return o.c.AddShoppingItem(ctx, item)
}

func (o *ShoppingOps) SetCompleted(ctx context.Context, itemID string, completed bool) error {
	return o.c.SetShoppingCompleted(ctx, itemID, completed)
}

func (o *ShoppingOps) Delete(ctx context.Context, itemID string) error {
	return o.c.DeleteShoppingItem(ctx, itemID)
}

// NewShoppingSession builds an optimistic session wired to this client.
// The caller runs Watch with a SubscribeShopping channel.
func (c *Client) NewShoppingSession() *listsync.Session[ShoppingItem] {
	return listsync.NewSession[ShoppingItem](c.ShoppingOps())
}

// TaskOps adapts the client to a listsync session over tasks.
type TaskOps struct {
	c *Client
}

func (c *Client) TaskOps() *TaskOps {
	return &TaskOps{c: c}
}

func (o *TaskOps) Create(ctx context.Context, task Task) error {
	_, err := o.c.CreateTask(ctx, map[string]any{
		"title":   task.Title,
		"dueDate": task.DueDate,
		"dueTime": task.DueTime,
	})
	return err
}

func (o *TaskOps) SetCompleted(ctx context.Context, taskID string, completed bool) error {
	return o.c.SetTaskCompleted(ctx, taskID, completed)
}

func (o *TaskOps) Delete(ctx context.Context, taskID string) error {
	return o.c.DeleteTask(ctx, taskID)
}

func (c *Client) NewTaskSession() *listsync.Session[Task] {
	return listsync.NewSession[Task](c.TaskOps())
}
