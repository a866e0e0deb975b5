package udns

import (
	"context"
	"fmt"
	"net/http"
)

// AccountDetails lists the accounts the authenticated user is a member of.
func (c *Client) AccountDetails(ctx context.Context) (*AccountList, error) {
	raw, err := c.call(ctx, http.MethodGet, "/v1/accounts", nil, nil)
	if err != nil {
		return nil, err
	}

	var list AccountList
	if err := unmarshalResult(raw, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// accountName returns the first account of the authenticated user, used
// when creating zones.
func (c *Client) accountName(ctx context.Context) (string, error) {
	accounts, err := c.AccountDetails(ctx)
	if err != nil {
		return "", err
	}
	if accounts == nil || len(accounts.Accounts) == 0 {
		return "", fmt.Errorf("udns: user has no accounts")
	}
	return accounts.Accounts[0].AccountName, nil
}

// Version returns the version of the REST API server.
func (c *Client) Version(ctx context.Context) (string, error) {
	raw, err := c.call(ctx, http.MethodGet, "/v1/version", nil, nil)
	if err != nil {
		return "", err
	}

	var v struct {
		Version string `json:"version"`
	}
	if err := unmarshalResult(raw, &v); err != nil {
		return "", err
	}
	return v.Version, nil
}

// Status returns the status of the REST API server.
func (c *Client) Status(ctx context.Context) (string, error) {
	raw, err := c.call(ctx, http.MethodGet, "/v1/status", nil, nil)
	if err != nil {
		return "", err
	}

	var s struct {
		Message string `json:"message"`
	}
	if err := unmarshalResult(raw, &s); err != nil {
		return "", err
	}
	return s.Message, nil
}
