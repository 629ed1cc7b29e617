package models

import "time"

// LookupRecord is one entry of the information lookup audit log
type LookupRecord struct {
	ID             int64     `json:"id" db:"id"`
	RequestID      string    `json:"requestId" db:"request_id"`
	RequestedName  string    `json:"requestedName" db:"requested_name"`
	ResolvedName   string    `json:"resolvedName" db:"resolved_name"`
	MatchedProfile bool      `json:"matchedProfile" db:"matched_profile"`
	ServedAt       time.Time `json:"servedAt" db:"served_at"`
}

// NewLookupRecord builds an audit entry for a served lookup
func NewLookupRecord(requestID, requestedName string, info Information, matched bool) *LookupRecord {
	return &LookupRecord{
		RequestID:      requestID,
		RequestedName:  requestedName,
		ResolvedName:   info.Name,
		MatchedProfile: matched,
		ServedAt:       time.Now().UTC(),
	}
}
