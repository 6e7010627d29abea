// Package qrlink composes the per-table ordering links. The QR bitmap
// itself is rendered by an external image service; this package only
// builds URLs.
package qrlink

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	renderEndpoint = "https://api.qrserver.com/v1/create-qr-code/"
	defaultSize    = 256
)

// PredefinedTables are the standard table labels offered for quick
// selection when printing QR codes.
var PredefinedTables = []string{
	"Table 1", "Table 2", "Table 3", "Table 4", "Table 5",
	"Table 6", "Table 7", "Table 8", "Table 9", "Table 10",
	"VIP Table A", "VIP Table B", "Outdoor Table 1", "Outdoor Table 2",
}

// MenuURL returns the ordering entry point for one table, with the
// table identifier attached as a query parameter.
func MenuURL(baseURL, tableID string) string {
	q := url.Values{"table": {strings.TrimSpace(tableID)}}
	return strings.TrimRight(baseURL, "/") + "/menu?" + q.Encode()
}

// ImageURL returns the external rendering service URL producing a QR
// image of the given link at size x size pixels.
func ImageURL(link string, size int) string {
	if size <= 0 {
		size = defaultSize
	}
	return fmt.Sprintf("%s?size=%dx%d&data=%s", renderEndpoint, size, size, url.QueryEscape(link))
}
