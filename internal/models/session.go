package models

import "time"

// AddressType classifies a Zcash address by its pool.
type AddressType string

const (
	AddressSapling     AddressType = "sapling"
	AddressUnified     AddressType = "unified"
	AddressTransparent AddressType = "transparent"
	AddressOrchard     AddressType = "orchard"
	AddressUnknown     AddressType = "unknown"
)

// Session binds an opaque bearer token to a connected wallet address.
// A session is valid while the current time is before ExpiresAt; reads
// through the repository refresh LastActivityAt but never ExpiresAt.
type Session struct {
	SessionID      string      `json:"sessionId"`
	Address        string      `json:"address"`
	AddressType    AddressType `json:"addressType"`
	IsShielded     bool        `json:"isShielded"`
	WalletType     string      `json:"walletType"`
	ConnectedAt    time.Time   `json:"connectedAt"`
	ExpiresAt      time.Time   `json:"expiresAt"`
	LastActivityAt time.Time   `json:"lastActivityAt"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
