package deploy

import (
	"net/url"
	"regexp"
	"strings"
)

// Deployment host suffixes recognized in deploy output. Pages hosts get
// canonicalized; workers hosts are already stable.
const (
	pagesSuffix   = "pages.dev"
	workersSuffix = "workers.dev"
)

var deploymentURLPattern = regexp.MustCompile(`https://[A-Za-z0-9][A-Za-z0-9.-]*\.(pages\.dev|workers\.dev)`)

// ExtractDeploymentURL returns the first deployment URL found in command
// output, or "" when there is none.
func ExtractDeploymentURL(output string) string {
	return deploymentURLPattern.FindString(output)
}

// CanonicalizeURL rewrites a preview Pages URL to its stable form. A
// pages.dev host has the shape <hash>.<project>.pages.dev; dropping the
// leading hash label leaves the shareable project URL. Hosts that are
// not pages.dev, or that already have the stable three-label form, pass
// through unchanged.
func CanonicalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	host := u.Hostname()
	if !strings.HasSuffix(host, "."+pagesSuffix) {
		return raw
	}

	labels := strings.Split(host, ".")
	if len(labels) < 4 {
		return raw
	}

	u.Host = strings.Join(labels[len(labels)-3:], ".")
	return u.String()
}
