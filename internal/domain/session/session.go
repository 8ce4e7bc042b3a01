package session

import "time"

// Region is the sales region chosen at login.
type Region string

const (
	RegionEurope   Region = "Europe"
	RegionAsia     Region = "Asia"
	RegionAmericas Region = "Americas"
)

// Valid reports whether the region is one of the known values.
func (r Region) Valid() bool {
	switch r {
	case RegionEurope, RegionAsia, RegionAmericas:
		return true
	}
	return false
}

// Session is the singleton login state. Authentication is client-side only,
// nothing here is verified remotely.
type Session struct {
	CompanyCode string    `json:"companyCode"`
	Region      Region    `json:"region"`
	Email       string    `json:"email"`
	LoginTime   time.Time `json:"loginTime"`
	SessionID   string    `json:"sessionId"`
}
