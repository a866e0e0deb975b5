package udns

// RRSet is a resource-record set: one or more BIND-format data values
// sharing an owner name, type and TTL within a zone.
type RRSet struct {
	OwnerName string   `json:"ownerName"`
	RRType    string   `json:"rrtype"`
	TTL       int      `json:"ttl,omitempty"`
	RData     []string `json:"rdata"`
}

// RRSetList is the response shape of the rrsets listing endpoints.
type RRSetList struct {
	ZoneName   string     `json:"zoneName"`
	RRSets     []RRSet    `json:"rrSets"`
	ResultInfo ResultInfo `json:"resultInfo"`
}

// ResultInfo describes pagination of a listing response.
type ResultInfo struct {
	TotalCount    int `json:"totalCount"`
	Offset        int `json:"offset"`
	ReturnedCount int `json:"returnedCount"`
}

// ZoneProperties holds the metadata of a zone.
type ZoneProperties struct {
	Name                 string `json:"name"`
	AccountName          string `json:"accountName,omitempty"`
	Type                 string `json:"type,omitempty"`
	Owner                string `json:"owner,omitempty"`
	Status               string `json:"status,omitempty"`
	DNSSecStatus         string `json:"dnssecStatus,omitempty"`
	ResourceRecordCount  int    `json:"resourceRecordCount,omitempty"`
	LastModifiedDateTime string `json:"lastModifiedDateTime,omitempty"`
}

// Zone is a DNS namespace container managed by the service.
type Zone struct {
	Properties ZoneProperties `json:"properties"`
}

// ZoneList is the response shape of the account zones listing endpoint.
type ZoneList struct {
	Zones      []Zone     `json:"zones"`
	ResultInfo ResultInfo `json:"resultInfo"`
}

// Account describes an account the authenticated user is a member of.
type Account struct {
	AccountName string `json:"accountName"`
	AccountType string `json:"accountType,omitempty"`
}

// AccountList is the response shape of the accounts endpoint.
type AccountList struct {
	Accounts []Account `json:"accounts"`
}

// Zone creation wire shapes.
type primaryZoneCreate struct {
	Properties        ZoneProperties    `json:"properties"`
	PrimaryCreateInfo primaryCreateInfo `json:"primaryCreateInfo"`
}

type primaryCreateInfo struct {
	ForceImport bool   `json:"forceImport"`
	CreateType  string `json:"createType"`
}

// rrsetBody is the request body for record create/update calls.
type rrsetBody struct {
	TTL   int      `json:"ttl,omitempty"`
	RData []string `json:"rdata"`
}

// tokenResponse is the body of a successful token grant.
type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
