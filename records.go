package udns

import (
	"context"
	"net/http"
)

// Records lists the RRSets of a zone. A "records not found" response is
// not an error here: it yields an empty slice.
func (c *Client) Records(ctx context.Context, zoneName string, opts ...ListOption) ([]RRSet, error) {
	return c.listRecords(ctx, rrsetPath(zoneName, "", ""), opts)
}

// RecordsByType lists the RRSets of a zone restricted to one record type.
// The type can be numeric (1) or a well-known name (A). Like Records, a
// "records not found" response yields an empty slice.
func (c *Client) RecordsByType(ctx context.Context, zoneName, rtype string, opts ...ListOption) ([]RRSet, error) {
	return c.listRecords(ctx, rrsetPath(zoneName, rtype, ""), opts)
}

func (c *Client) listRecords(ctx context.Context, uri string, opts []ListOption) ([]RRSet, error) {
	raw, err := c.call(ctx, http.MethodGet, uri, listParams(opts), nil)
	if err != nil {
		if IsRecordsNotFound(err) {
			return []RRSet{}, nil
		}
		return nil, err
	}

	var list RRSetList
	if err := unmarshalResult(raw, &list); err != nil {
		return nil, err
	}
	return list.RRSets, nil
}

// CreateRecord creates a new RRSet in a zone. An owner name without a
// trailing dot is relative to the zone; with a trailing dot it is absolute.
// A ttl of 0 leaves the TTL to the server default.
func (c *Client) CreateRecord(ctx context.Context, zoneName, rtype, ownerName string, ttl int, rdata ...string) error {
	c.log.Info("creating record", "zone", zoneName, "type", rtype, "owner", ownerName)
	body := rrsetBody{TTL: ttl, RData: rdata}
	_, err := c.call(ctx, http.MethodPost, rrsetPath(zoneName, rtype, ownerName), nil, body)
	return err
}

// UpdateRecord replaces an existing RRSet in a zone.
func (c *Client) UpdateRecord(ctx context.Context, zoneName, rtype, ownerName string, ttl int, rdata ...string) error {
	c.log.Info("updating record", "zone", zoneName, "type", rtype, "owner", ownerName)
	body := rrsetBody{TTL: ttl, RData: rdata}
	_, err := c.call(ctx, http.MethodPut, rrsetPath(zoneName, rtype, ownerName), nil, body)
	return err
}

// DeleteRecord deletes an RRSet.
func (c *Client) DeleteRecord(ctx context.Context, zoneName, rtype, ownerName string) error {
	c.log.Info("deleting record", "zone", zoneName, "type", rtype, "owner", ownerName)
	_, err := c.call(ctx, http.MethodDelete, rrsetPath(zoneName, rtype, ownerName), nil, nil)
	return err
}

// rrsetPath builds an rrsets URI, optionally narrowed by type and owner.
func rrsetPath(zoneName, rtype, ownerName string) string {
	uri := "/v1/zones/" + zoneName + "/rrsets"
	if rtype != "" {
		uri += "/" + rtype
	}
	if ownerName != "" {
		uri += "/" + ownerName
	}
	return uri
}
