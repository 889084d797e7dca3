package svn

import (
	"context"
	"time"
)

const (
	// DefaultBinary is the svn executable looked up on PATH
	DefaultBinary = "svn"

	// ExternalsProperty is the property holding external definitions
	ExternalsProperty = "svn:externals"
)

// Client issues the svn commands needed to rewrite the externals property
type Client struct {
	runner  Runner
	binary  string
	timeout time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithBinary sets the svn executable
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithTimeout bounds each invocation. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a Client running commands through runner
func NewClient(runner Runner, opts ...Option) *Client {
	c := &Client{runner: runner, binary: DefaultBinary}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Checkout creates an empty-depth working copy of url in dir
func (c *Client) Checkout(ctx context.Context, dir, url string) error {
	_, err := c.run(ctx, dir, "checkout", "--depth", "empty", url, ".")
	return err
}

// PropGetExternals returns the svn:externals property of dir, line by line
func (c *Client) PropGetExternals(ctx context.Context, dir string) ([]string, error) {
	out, err := c.run(ctx, dir, "propget", ExternalsProperty)
	if err != nil {
		return nil, err
	}
	return out.Lines(), nil
}

// PropSetExternals sets svn:externals on dir from the contents of file
func (c *Client) PropSetExternals(ctx context.Context, dir, file string) error {
	_, err := c.run(ctx, dir, "propset", ExternalsProperty, "-F", file, ".")
	return err
}

// Commit commits the property change on dir without recursing
func (c *Client) Commit(ctx context.Context, dir, message string) error {
	_, err := c.run(ctx, dir, "commit", "--depth", "empty", ".", "-m", message)
	return err
}

func (c *Client) run(ctx context.Context, dir string, args ...string) (Output, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.runner.Run(ctx, dir, c.binary, args...)
}
