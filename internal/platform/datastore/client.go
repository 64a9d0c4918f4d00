package datastore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to the managed row store over its PostgREST-style REST API.
// Persistence lives entirely on the other side of this interface; we only
// query, insert and update rows.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// From starts a query against a table.
func (c *Client) From(table string) *Query {
	return &Query{
		client: c,
		table:  table,
		params: url.Values{},
	}
}

// Query builds a single table read, filtered and ordered PostgREST-style.
type Query struct {
	client *Client
	table  string
	params url.Values
	single bool
}

// Select sets the column projection, including embedded relations
// ("*, sender:profiles(id, full_name)").
func (q *Query) Select(columns string) *Query {
	q.params.Set("select", columns)
	return q
}

// Eq adds an equality filter on a column.
func (q *Query) Eq(column, value string) *Query {
	q.params.Set(column, "eq."+value)
	return q
}

// Order sorts the result by a column.
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.params.Set("order", column+"."+dir)
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.params.Set("limit", strconv.Itoa(n))
	return q
}

// Get executes the query and decodes the row list into dest.
func (q *Query) Get(ctx context.Context, dest any) error {
	return q.client.do(ctx, http.MethodGet, q, nil, dest)
}

// Insert writes a row and decodes the stored representation into dest.
// Pass a nil dest to discard it.
func (q *Query) Insert(ctx context.Context, row any, dest any) error {
	q.single = true
	return q.client.do(ctx, http.MethodPost, q, row, dest)
}

// Update patches the rows matched by the query's filters and decodes the
// updated representation into dest.
func (q *Query) Update(ctx context.Context, patch any, dest any) error {
	q.single = true
	return q.client.do(ctx, http.MethodPatch, q, patch, dest)
}

func (q *Query) endpoint() string {
	return fmt.Sprintf("%s/rest/v1/%s?%s", q.client.baseURL, q.table, q.params.Encode())
}

func (c *Client) do(ctx context.Context, method string, q *Query, body any, dest any) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, q.endpoint(), reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}
	if q.single {
		// Single-object representation so callers can decode into a struct.
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("datastore request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("datastore returned status: %s, body: %s", resp.Status, string(respBody))
	}

	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
