// Package urldetect classifies raw product URLs into a marketplace provider,
// a canonical product URL and a provider-specific item id. It is pure string
// parsing: the only error it can return is for a non-http(s) protocol.
package urldetect

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

type Provider string

const (
	ProviderAmazon     Provider = "amazon"
	ProviderEtsy       Provider = "etsy"
	ProviderAliExpress Provider = "aliexpress"
	ProviderAlibaba    Provider = "alibaba"
	ProviderWalmart    Provider = "walmart"
	ProviderShopify    Provider = "shopify"
	ProviderGeneric    Provider = "generic"
)

var SupportedProviders = []Provider{
	ProviderAmazon,
	ProviderEtsy,
	ProviderAliExpress,
	ProviderAlibaba,
	ProviderWalmart,
	ProviderShopify,
	ProviderGeneric,
}

func IsSupported(p Provider) bool {
	for _, s := range SupportedProviders {
		if s == p {
			return true
		}
	}
	return false
}

// Result is the outcome of classifying one product URL.
type Result struct {
	Provider     Provider `json:"provider"`
	CanonicalURL string   `json:"canonical_url"`
	ID           string   `json:"id,omitempty"`
	Domain       string   `json:"domain"`
	ProductName  string   `json:"product_name,omitempty"`
}

var ErrUnsupportedProtocol = errors.New("unsupported protocol")

var (
	trackingParamRe = regexp.MustCompile(`(?i)^(utm_|fbclid|gclid|msclkid|aff|ref)`)
	schemeRe        = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
)

var idPatterns = map[Provider][]*regexp.Regexp{
	ProviderAmazon: {
		regexp.MustCompile(`(?i)/dp/([A-Z0-9]{10})(?:[/?]|$)`),
		regexp.MustCompile(`(?i)/gp/product/([A-Z0-9]{10})(?:[/?]|$)`),
	},
	ProviderEtsy: {
		regexp.MustCompile(`(?i)/listing/(\d+)(?:[/?]|$)`),
	},
	ProviderAliExpress: {
		regexp.MustCompile(`(?i)/item/(\d+)\.html`),
		regexp.MustCompile(`(?i)/i/(\d+)\.html`),
	},
	ProviderAlibaba: {
		regexp.MustCompile(`(?i)/product-detail/.*?(\d+)\.html`),
	},
	ProviderWalmart: {
		regexp.MustCompile(`(?i)/ip/(?:[^/]+/)?(\d+)(?:[/?]|$)`),
		regexp.MustCompile(`(?i)/(?:\w+/){1,3}(\d{7,})(?:[/?]|$)`),
	},
	ProviderShopify: {
		regexp.MustCompile(`(?i)/products/([a-z0-9-]+)`),
	},
}

var (
	amazonHostRe     = regexp.MustCompile(`^(.+\.)?amazon\.`)
	aliexpressHostRe = regexp.MustCompile(`^(.+\.)?aliexpress\.`)
)

// Detect classifies a raw product URL. A missing scheme defaults to https;
// anything other than http/https is rejected. Malformed but parseable URLs
// never error, they fall through to the generic provider.
func Detect(raw string) (*Result, error) {
	input := strings.TrimSpace(raw)
	if !schemeRe.MatchString(input) {
		input = "https://" + input
	}

	u, err := url.Parse(input)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, ErrUnsupportedProtocol
	}

	hostname := strings.ToLower(u.Hostname())
	hostname = strings.TrimPrefix(hostname, "www.")
	domain := rootDomain(hostname)
	stripTracking(u)

	provider := ProviderGeneric
	switch {
	case amazonHostRe.MatchString(hostname):
		provider = ProviderAmazon
	case domain == "etsy.com":
		provider = ProviderEtsy
	case aliexpressHostRe.MatchString(hostname):
		provider = ProviderAliExpress
	case domain == "alibaba.com":
		provider = ProviderAlibaba
	case domain == "walmart.com":
		provider = ProviderWalmart
	case strings.HasSuffix(hostname, ".myshopify.com"):
		provider = ProviderShopify
	}

	var id string
	for _, p := range idPatterns[provider] {
		if m := p.FindStringSubmatch(u.Path); m != nil {
			id = m[1]
			break
		}
	}

	return &Result{
		Provider:     provider,
		CanonicalURL: canonicalURL(provider, domain, hostname, id, u),
		ID:           id,
		Domain:       domain,
		ProductName:  productName(provider, u.Path),
	}, nil
}

func stripTracking(u *url.URL) {
	q := u.Query()
	for key := range q {
		if trackingParamRe.MatchString(key) {
			q.Del(key)
		}
	}
	u.RawQuery = q.Encode()
}

// rootDomain reduces a hostname to its registrable domain, recognizing the
// co.uk and com.au second-level suffixes.
func rootDomain(host string) string {
	parts := strings.FieldsFunc(host, func(r rune) bool { return r == '.' })
	if len(parts) <= 2 {
		return host
	}
	candidate := parts[len(parts)-2] + "." + parts[len(parts)-1]
	if candidate == "co.uk" || candidate == "com.au" {
		return parts[len(parts)-3] + "." + candidate
	}
	return candidate
}

func canonicalURL(provider Provider, domain, hostname, id string, u *url.URL) string {
	switch provider {
	case ProviderAmazon:
		if id != "" {
			return "https://www." + domain + "/dp/" + id
		}
	case ProviderEtsy:
		if id != "" {
			return "https://www.etsy.com/listing/" + id
		}
	case ProviderAliExpress:
		if id != "" {
			return "https://www.aliexpress.com/item/" + id + ".html"
		}
	case ProviderAlibaba:
		if id != "" {
			return "https://www.alibaba.com/product-detail/_/" + id + ".html"
		}
	case ProviderWalmart:
		if id != "" {
			return "https://www.walmart.com/ip/" + id
		}
	case ProviderShopify:
		if id != "" {
			return "https://" + hostname + "/products/" + id
		}
		return "https://" + hostname + u.Path
	default:
		canonical := "https://" + hostname + u.Path
		if u.RawQuery != "" {
			canonical += "?" + u.RawQuery
		}
		return canonical
	}
	return "https://www." + domain + u.Path
}

var (
	amazonNameRe  = regexp.MustCompile(`/([^/]+)/dp/`)
	etsyNameRe    = regexp.MustCompile(`/listing/\d+/([^/?]+)`)
	shopifyNameRe = regexp.MustCompile(`/products/([^/?]+)`)
)

// productName guesses a human-readable product name from the URL path slug.
// Best-effort only; an empty string means no guess.
func productName(provider Provider, path string) string {
	var slug string
	switch provider {
	case ProviderAmazon:
		if m := amazonNameRe.FindStringSubmatch(path); m != nil {
			slug = m[1]
		}
	case ProviderEtsy:
		if m := etsyNameRe.FindStringSubmatch(path); m != nil {
			slug = m[1]
		}
	case ProviderShopify:
		if m := shopifyNameRe.FindStringSubmatch(path); m != nil {
			slug = m[1]
		}
	default:
		segments := strings.Split(strings.Trim(path, "/"), "/")
		last := segments[len(segments)-1]
		last = strings.TrimSuffix(last, ".html")
		if strings.ContainsAny(last, "-_") {
			slug = last
		}
	}
	if slug == "" {
		return ""
	}
	return formatProductName(slug)
}

func formatProductName(raw string) string {
	name := strings.NewReplacer("-", " ", "_", " ").Replace(raw)
	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	name = strings.Join(words, " ")
	if runes := []rune(name); len(runes) > 50 {
		name = string(runes[:50])
	}
	return name
}
