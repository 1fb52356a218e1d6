package whois

import (
	"bufio"
	"errors"
	"strings"

	whoisparser "github.com/likexian/whois-parser"
	"github.com/qdm12/rtmask/internal/models"
)

var ErrNoDataFound = errors.New("no WHOIS data found")

// parse extracts registry data from a raw WHOIS response.
// Domain registry responses are parsed with whois-parser, and other
// responses such as the ones of IP address registries fall back on
// a key-value line scanner.
func parse(raw string) (info models.WhoisInfo, err error) {
	parsed, err := whoisparser.Parse(raw)
	switch {
	case err == nil:
		info = fromParsed(parsed)
	case errors.Is(err, whoisparser.ErrNotFoundDomain),
		errors.Is(err, whoisparser.ErrDomainLimitExceed):
		return info, err
	default:
		info = scan(raw)
	}

	if info.Registrar == nil && info.CreationDate == nil &&
		info.ExpirationDate == nil && len(info.NameServers) == 0 &&
		len(info.Status) == 0 {
		return info, ErrNoDataFound
	}
	return info, nil
}

func fromParsed(parsed whoisparser.WhoisInfo) (info models.WhoisInfo) {
	info.NameServers = []string{}
	info.Status = []string{}

	if parsed.Registrar != nil {
		info.Registrar = nonEmpty(parsed.Registrar.Name)
		if info.Registrar == nil {
			info.Registrar = nonEmpty(parsed.Registrar.Organization)
		}
	}

	if parsed.Domain != nil {
		info.CreationDate = nonEmpty(parsed.Domain.CreatedDate)
		info.ExpirationDate = nonEmpty(parsed.Domain.ExpirationDate)
		info.NameServers = appendNonEmpty(info.NameServers, parsed.Domain.NameServers...)
		info.Status = appendNonEmpty(info.Status, parsed.Domain.Status...)
	}

	return info
}

// Keys are lowercased. Scalar fields keep the first value found.
//
//nolint:gochecknoglobals
var (
	registrarKeys = map[string]struct{}{
		"registrar": {}, "orgname": {}, "org-name": {}, "organization": {},
		"owner": {},
	}
	creationKeys = map[string]struct{}{
		"creation date": {}, "created": {}, "regdate": {},
		"registration date": {}, "created on": {},
	}
	expirationKeys = map[string]struct{}{
		"registry expiry date": {}, "registrar registration expiration date": {},
		"expiration date": {}, "expires": {}, "expiry date": {}, "paid-till": {},
	}
	nameServerKeys = map[string]struct{}{
		"name server": {}, "nserver": {}, "nameserver": {},
	}
	statusKeys = map[string]struct{}{
		"domain status": {}, "status": {},
	}
)

func scan(raw string) (info models.WhoisInfo) {
	info.NameServers = []string{}
	info.Status = []string{}

	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '%' || line[0] == '#' || line[0] == '>' {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch {
		case has(registrarKeys, key):
			if info.Registrar == nil {
				info.Registrar = &value
			}
		case has(creationKeys, key):
			if info.CreationDate == nil {
				info.CreationDate = &value
			}
		case has(expirationKeys, key):
			if info.ExpirationDate == nil {
				info.ExpirationDate = &value
			}
		case has(nameServerKeys, key):
			info.NameServers = appendUnique(info.NameServers, strings.ToLower(value))
		case has(statusKeys, key):
			// Domain status lines carry a trailing ICANN URL.
			status, _, _ := strings.Cut(value, " ")
			info.Status = appendUnique(info.Status, status)
		}
	}

	return info
}

func has(keys map[string]struct{}, key string) bool {
	_, ok := keys[key]
	return ok
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func appendNonEmpty(slice []string, values ...string) []string {
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value != "" {
			slice = append(slice, value)
		}
	}
	return slice
}

func appendUnique(slice []string, value string) []string {
	for _, existing := range slice {
		if existing == value {
			return slice
		}
	}
	return append(slice, value)
}
