// Package agenttest provides a canned agent.Client for handler tests.
package agenttest

import (
	"context"

	"ehr-dashboard-api/internal/agent"
)

// Client satisfies agent.Client with canned output and records what the
// handler under test asked for.
type Client struct {
	Text       string
	ObjectJSON string
	Err        error
	Chunks     []agent.Chunk

	Calls      int
	LastReq    agent.Request
	LastSchema agent.Schema
}

func (c *Client) Generate(ctx context.Context, req agent.Request) (string, error) {
	c.Calls++
	c.LastReq = req
	return c.Text, c.Err
}

func (c *Client) GenerateObject(ctx context.Context, req agent.Request, schema agent.Schema, out any) error {
	c.Calls++
	c.LastReq = req
	c.LastSchema = schema
	if c.Err != nil {
		return c.Err
	}
	return agent.DecodeStructured(c.ObjectJSON, out)
}

func (c *Client) Stream(ctx context.Context, req agent.Request) (<-chan agent.Chunk, error) {
	c.Calls++
	c.LastReq = req
	if c.Err != nil {
		return nil, c.Err
	}

	chunks := c.Chunks
	if chunks == nil {
		chunks = []agent.Chunk{{Text: c.Text}}
	}

	ch := make(chan agent.Chunk, len(chunks))
	for _, chunk := range chunks {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}
