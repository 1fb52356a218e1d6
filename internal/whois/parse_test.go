package whois

import (
	"testing"

	whoisparser "github.com/likexian/whois-parser"
	"github.com/qdm12/rtmask/internal/models"
	"github.com/stretchr/testify/assert"
)

func ptrTo[T any](value T) *T { return &value }

func Test_scan(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		raw  string
		info models.WhoisInfo
	}{
		"empty": {
			info: models.WhoisInfo{
				NameServers: []string{},
				Status:      []string{},
			},
		},
		"ARIN network": {
			raw: `#
# ARIN WHOIS data and services are subject to the Terms of Use
#

NetRange:       8.8.8.0 - 8.8.8.255
CIDR:           8.8.8.0/24
NetName:        GOGL
RegDate:        2014-03-14
Updated:        2014-03-14

OrgName:        Google LLC
OrgId:          GOGL
RegDate:        2000-03-30
`,
			info: models.WhoisInfo{
				Registrar:    ptrTo("Google LLC"),
				CreationDate: ptrTo("2014-03-14"),
				NameServers:  []string{},
				Status:       []string{},
			},
		},
		"RIPE network": {
			raw: `% This is the RIPE Database query service.

inetnum:        193.0.0.0 - 193.0.7.255
netname:        RIPE-NCC
org-name:       Reseaux IP Europeens Network Coordination Centre (RIPE NCC)
status:         ASSIGNED PA
created:        2003-03-17T12:15:57Z
`,
			info: models.WhoisInfo{
				Registrar:    ptrTo("Reseaux IP Europeens Network Coordination Centre (RIPE NCC)"),
				CreationDate: ptrTo("2003-03-17T12:15:57Z"),
				NameServers:  []string{},
				Status:       []string{"ASSIGNED"},
			},
		},
		"thin domain record": {
			raw: `   Domain Name: EXAMPLE.COM
   Creation Date: 1995-08-14T04:00:00Z
   Registry Expiry Date: 2025-08-13T04:00:00Z
   Registrar: RESERVED-Internet Assigned Numbers Authority
   Domain Status: clientDeleteProhibited https://icann.org/epp#clientDeleteProhibited
   Domain Status: clientTransferProhibited https://icann.org/epp#clientTransferProhibited
   Name Server: A.IANA-SERVERS.NET
   Name Server: B.IANA-SERVERS.NET
   Name Server: a.iana-servers.net
>>> Last update of whois database: 2024-09-01T00:00:00Z <<<
`,
			info: models.WhoisInfo{
				Registrar:      ptrTo("RESERVED-Internet Assigned Numbers Authority"),
				CreationDate:   ptrTo("1995-08-14T04:00:00Z"),
				ExpirationDate: ptrTo("2025-08-13T04:00:00Z"),
				NameServers:    []string{"a.iana-servers.net", "b.iana-servers.net"},
				Status:         []string{"clientDeleteProhibited", "clientTransferProhibited"},
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			info := scan(testCase.raw)

			assert.Equal(t, testCase.info, info)
		})
	}
}

func Test_fromParsed(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		parsed whoisparser.WhoisInfo
		info   models.WhoisInfo
	}{
		"nil sections": {
			info: models.WhoisInfo{
				NameServers: []string{},
				Status:      []string{},
			},
		},
		"full": {
			parsed: whoisparser.WhoisInfo{
				Domain: &whoisparser.Domain{
					CreatedDate:    "2000-01-01",
					ExpirationDate: "2030-01-01",
					NameServers:    []string{"ns1.example.com", " ", "ns2.example.com"},
					Status:         []string{"clienttransferprohibited"},
				},
				Registrar: &whoisparser.Contact{
					Name: "Example Registrar",
				},
			},
			info: models.WhoisInfo{
				Registrar:      ptrTo("Example Registrar"),
				CreationDate:   ptrTo("2000-01-01"),
				ExpirationDate: ptrTo("2030-01-01"),
				NameServers:    []string{"ns1.example.com", "ns2.example.com"},
				Status:         []string{"clienttransferprohibited"},
			},
		},
		"registrar organization only": {
			parsed: whoisparser.WhoisInfo{
				Registrar: &whoisparser.Contact{
					Organization: "Org Registrar",
				},
			},
			info: models.WhoisInfo{
				Registrar:   ptrTo("Org Registrar"),
				NameServers: []string{},
				Status:      []string{},
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			info := fromParsed(testCase.parsed)

			assert.Equal(t, testCase.info, info)
		})
	}
}
