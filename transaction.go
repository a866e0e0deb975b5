package udns

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// batchPath is the endpoint committed transactions are submitted to.
const batchPath = "/v1/batch"

// PendingOperation is one queued write, in the shape the batch endpoint
// expects. Body is {} when the original call carried no body.
type PendingOperation struct {
	Method string          `json:"method"`
	URI    string          `json:"uri"`
	Body   json.RawMessage `json:"body"`
}

// transaction buffers pending writes while open. The queue is non-empty
// only while active.
type transaction struct {
	active bool
	queue  []PendingOperation
}

func (t *transaction) enqueue(method, uri string, body any) error {
	raw := json.RawMessage("{}")
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("udns: marshal queued body: %w", err)
		}
		raw = data
	}
	t.queue = append(t.queue, PendingOperation{Method: method, URI: uri, Body: raw})
	return nil
}

func (t *transaction) reset() {
	t.active = false
	t.queue = nil
}

// StartTransaction opens a transaction. Until commit or rollback, write
// calls are queued instead of hitting the network, and reads fail with
// ErrReadInTransaction.
func (c *Client) StartTransaction() error {
	if c.tx.active {
		return ErrTransactionInProgress
	}
	c.tx.queue = nil
	c.tx.active = true
	c.log.V(1).Info("transaction started")
	return nil
}

// CommitTransaction submits the queued operations as one atomic batch call,
// in the order they were issued, and returns the decoded batch response.
// The transaction is closed and its queue discarded even when the batch
// call fails; a partial failure surfaces as *TransactionError.
func (c *Client) CommitTransaction(ctx context.Context) (json.RawMessage, error) {
	if !c.tx.active {
		return nil, ErrNoActiveTransaction
	}
	if len(c.tx.queue) == 0 {
		return nil, ErrEmptyTransaction
	}

	ops := c.tx.queue
	c.tx.reset()

	c.log.Info("committing transaction", "operations", len(ops))
	return c.do(ctx, http.MethodPost, batchPath, nil, ops, true)
}

// RollbackTransaction discards the queued operations without any network
// call and closes the transaction.
func (c *Client) RollbackTransaction() error {
	if !c.tx.active {
		return ErrNoActiveTransaction
	}
	c.log.V(1).Info("transaction rolled back", "discarded", len(c.tx.queue))
	c.tx.reset()
	return nil
}

// InTransaction reports whether a transaction is open.
func (c *Client) InTransaction() bool {
	return c.tx.active
}
