package udns

import (
	"context"
	"net/http"
)

// CreatePrimaryZone creates a new primary zone under the caller's account.
// The zone name must be unique.
func (c *Client) CreatePrimaryZone(ctx context.Context, zoneName string) error {
	account, err := c.accountName(ctx)
	if err != nil {
		return err
	}

	zone := primaryZoneCreate{
		Properties: ZoneProperties{
			Name:        zoneName,
			AccountName: account,
			Type:        "PRIMARY",
		},
		PrimaryCreateInfo: primaryCreateInfo{
			ForceImport: true,
			CreateType:  "NEW",
		},
	}

	c.log.Info("creating primary zone", "zone", zoneName, "account", account)
	_, err = c.call(ctx, http.MethodPost, "/v1/zones", nil, zone)
	return err
}

// ZoneMetadata returns the metadata of a zone.
func (c *Client) ZoneMetadata(ctx context.Context, zoneName string) (*Zone, error) {
	raw, err := c.call(ctx, http.MethodGet, "/v1/zones/"+zoneName, nil, nil)
	if err != nil {
		return nil, err
	}

	var zone Zone
	if err := unmarshalResult(raw, &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

// DeleteZone deletes a zone.
func (c *Client) DeleteZone(ctx context.Context, zoneName string) error {
	c.log.Info("deleting zone", "zone", zoneName)
	_, err := c.call(ctx, http.MethodDelete, "/v1/zones/"+zoneName, nil, nil)
	return err
}

// ZonesOfAccount lists the zones of an account. The listing can be
// filtered, sorted and paginated with ListOptions.
func (c *Client) ZonesOfAccount(ctx context.Context, accountName string, opts ...ListOption) (*ZoneList, error) {
	uri := "/v1/accounts/" + accountName + "/zones"
	raw, err := c.call(ctx, http.MethodGet, uri, listParams(opts), nil)
	if err != nil {
		return nil, err
	}

	var list ZoneList
	if err := unmarshalResult(raw, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
