// Package catalog holds the endpoint whitelists of every supported API
// surface. An endpoint is a remote method name plus the parameter names the
// remote accepts; anything else a caller passes is discarded before the
// request is built.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lzjever/chimpgate/internal/core"
)

// API identifies a remote API family.
type API string

const (
	MailChimp API = "mailchimp"
	Export    API = "export"
	STS       API = "sts"
	Mandrill  API = "mandrill"
	Partner   API = "partner"
)

// Title is the human name used in error messages.
func (a API) Title() string {
	switch a {
	case MailChimp:
		return "MailChimp API"
	case Export:
		return "MailChimp Export API"
	case STS:
		return "MailChimp STS API"
	case Mandrill:
		return "Mandrill API"
	case Partner:
		return "MailChimp Partner API"
	}
	return string(a)
}

// ParseAPI accepts the API identifier case-insensitively.
func ParseAPI(s string) (API, error) {
	a := API(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[a]; !ok {
		return "", fmt.Errorf("unknown API %q", s)
	}
	return a, nil
}

type Endpoint struct {
	Method string   `json:"method"`
	Params []string `json:"params"`
}

// Accepts reports whether name is on the endpoint whitelist.
func (e Endpoint) Accepts(name string) bool {
	for _, p := range e.Params {
		if p == name {
			return true
		}
	}
	return false
}

// Filter returns the whitelisted subset of params. Nil values are treated as
// absent.
func (e Endpoint) Filter(params map[string]any) map[string]any {
	out := make(map[string]any, len(e.Params))
	for _, p := range e.Params {
		if v, ok := params[p]; ok && v != nil {
			out[p] = v
		}
	}
	return out
}

// Catalog is the ordered endpoint set of one API version.
type Catalog struct {
	api       API
	version   string
	endpoints []Endpoint
	index     map[string]int
}

func newCatalog(api API, version string, endpoints []Endpoint) *Catalog {
	c := &Catalog{
		api:       api,
		version:   version,
		endpoints: endpoints,
		index:     make(map[string]int, len(endpoints)),
	}
	for i, e := range endpoints {
		c.index[e.Method] = i
	}
	return c
}

func (c *Catalog) API() API        { return c.api }
func (c *Catalog) Version() string { return c.version }
func (c *Catalog) Len() int        { return len(c.endpoints) }

// Endpoints returns a copy of the endpoint list in declaration order.
func (c *Catalog) Endpoints() []Endpoint {
	out := make([]Endpoint, len(c.endpoints))
	copy(out, c.endpoints)
	return out
}

// Lookup finds an endpoint by its exact remote method name.
func (c *Catalog) Lookup(method string) (Endpoint, error) {
	i, ok := c.index[method]
	if !ok {
		return Endpoint{}, fmt.Errorf("the %s %s method %s does not exist: %w", c.api.Title(), c.version, method, core.ErrUnknownMethod)
	}
	return c.endpoints[i], nil
}

// Resolve assembles a method name from a section and a method the way the
// 2.0 and Mandrill documentation names them, e.g. ("lists", "batch_subscribe")
// resolves lists/batch-subscribe.
func (c *Catalog) Resolve(section, method string) (Endpoint, error) {
	if section == "" || method == "" {
		return Endpoint{}, fmt.Errorf("you have to provide the section and the name of the method to call: %w", core.ErrUnknownMethod)
	}
	name := section + "/" + method
	if e, err := c.Lookup(name); err == nil {
		return e, nil
	}
	return c.Lookup(strings.ReplaceAll(name, "_", "-"))
}

var registry = map[API]map[string]*Catalog{
	MailChimp: {
		"1.1": newCatalog(MailChimp, "1.1", mailchimpV11),
		"1.2": newCatalog(MailChimp, "1.2", mailchimpV12),
		"1.3": newCatalog(MailChimp, "1.3", mailchimpV13),
		"2.0": newCatalog(MailChimp, "2.0", mailchimpV20),
	},
	Export:   {"1.0": newCatalog(Export, "1.0", exportV10)},
	STS:      {"1.0": newCatalog(STS, "1.0", stsV10)},
	Mandrill: {"1.0": newCatalog(Mandrill, "1.0", mandrillV10)},
	Partner:  {"1.3": newCatalog(Partner, "1.3", partnerV13)},
}

var defaults = map[API]string{
	MailChimp: "1.3",
	Export:    "1.0",
	STS:       "1.0",
	Mandrill:  "1.0",
	Partner:   "1.3",
}

// Get returns the catalog of api at version; an empty version selects the
// default one.
func Get(api API, version string) (*Catalog, error) {
	versions, ok := registry[api]
	if !ok {
		return nil, fmt.Errorf("unknown API %q", api)
	}
	if version == "" {
		version = defaults[api]
	}
	c, ok := versions[version]
	if !ok {
		return nil, fmt.Errorf("version %s of the %s is currently not supported: %w", version, api.Title(), core.ErrUnsupportedVersion)
	}
	return c, nil
}

func DefaultVersion(api API) string { return defaults[api] }

// Versions lists the supported versions of api in ascending order.
func Versions(api API) []string {
	out := make([]string, 0, len(registry[api]))
	for v := range registry[api] {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// APIs lists every known API in a stable order.
func APIs() []API {
	return []API{MailChimp, Export, STS, Mandrill, Partner}
}
