package validator

import (
	"net"
	"strings"
)

// UnknownIP is logged when the remote address cannot be parsed
const UnknownIP = "unknown"

// IsValidIP reports whether ip is a literal IPv4 or IPv6 address
func IsValidIP(ip string) bool {
	return ip != "" && net.ParseIP(ip) != nil
}

// StripZone drops an IPv6 zone, fe80::1%eth0 becomes fe80::1
func StripZone(ip string) string {
	if idx := strings.IndexByte(ip, '%'); idx != -1 {
		return ip[:idx]
	}
	return ip
}

// ClientIP normalizes a client address for request logs
func ClientIP(raw string) string {
	ip := StripZone(strings.TrimSpace(raw))
	if IsValidIP(ip) {
		return ip
	}
	return UnknownIP
}
