package models

// ConversionResult is the outcome of converting a single IPv4 address,
// possibly resolved from a domain, with its optional enrichments.
// Nil pointer fields mean the lookup was disabled or failed.
type ConversionResult struct {
	IPv4        string       `json:"ipv4"`
	IPv6        string       `json:"ipv6"`
	URLNoSSL    string       `json:"url_nossl"`
	URLSSL      string       `json:"url_ssl"`
	Domain      *string      `json:"domain"`
	Geolocation *GeoLocation `json:"geolocation"`
	NetworkInfo *NetworkInfo `json:"network_info"`
	WhoisInfo   *WhoisInfo   `json:"whois_info"`
	QRCodePath  *string      `json:"qr_code_path"`
}

type GeoLocation struct {
	Country   string  `json:"country"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// WhoisInfo contains registry data for a domain or an address.
// NameServers and Status are never nil.
type WhoisInfo struct {
	Registrar      *string  `json:"registrar"`
	CreationDate   *string  `json:"creation_date"`
	ExpirationDate *string  `json:"expiration_date"`
	NameServers    []string `json:"name_servers"`
	Status         []string `json:"status"`
}

// NetworkInfo contains reachability data. OpenPorts is always empty
// since no port scanning is done.
type NetworkInfo struct {
	IsReachable bool     `json:"is_reachable"`
	LatencyMS   *float64 `json:"latency_ms"`
	ReverseDNS  *string  `json:"reverse_dns"`
	OpenPorts   []int    `json:"open_ports"`
}
