package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/lzjever/chimpgate/internal/catalog"
	"github.com/lzjever/chimpgate/internal/core"
	"github.com/lzjever/chimpgate/internal/form"
)

const (
	contentJSON = "application/json"
	contentForm = "application/x-www-form-urlencoded"
)

// field is one request parameter; order follows the endpoint whitelist with
// the key first.
type field struct {
	name  string
	value any
}

type wireRequest struct {
	method      string
	path        string
	body        []byte
	contentType string
}

type (
	requestBuilder  func(version, method string, fields []field) (wireRequest, error)
	responseDecoder func(method string, status int, body []byte) (json.RawMessage, error)
)

// profile describes how one API version talks to its remote.
type profile struct {
	host      string // fixed host, or a suffix behind the datacenter
	perDC     bool
	keyParam  string
	alwaysTLS bool
	build     requestBuilder
	decode    responseDecoder
}

func profileFor(api catalog.API, version string) (profile, error) {
	switch api {
	case catalog.MailChimp:
		p := profile{host: "api.mailchimp.com", perDC: true, keyParam: "apikey", decode: decodeMailChimp}
		switch version {
		case "1.1", "1.2":
			p.build = buildQueryMethod(true, true)
		case "1.3":
			p.build = buildQueryMethod(false, false)
		case "2.0":
			p.build = buildPathJSON("/2.0/")
			p.alwaysTLS = true
		default:
			return profile{}, unsupported(api, version)
		}
		return p, nil
	case catalog.Export:
		return profile{host: "api.mailchimp.com", perDC: true, keyParam: "apikey", build: buildExport, decode: decodeNDJSON}, nil
	case catalog.STS:
		return profile{host: "sts.mailchimp.com", perDC: true, keyParam: "apikey", build: buildForm, decode: decodePlain}, nil
	case catalog.Mandrill:
		return profile{host: "mandrillapp.com", keyParam: "key", build: buildPathJSON("/api/1.0/"), decode: decodeMandrill}, nil
	case catalog.Partner:
		return profile{host: "partner-api.mailchimp.com", perDC: true, keyParam: "app_key", build: buildQueryMethod(false, true), decode: decodeMailChimp}, nil
	}
	return profile{}, fmt.Errorf("unknown API %q", api)
}

func unsupported(api catalog.API, version string) error {
	return fmt.Errorf("version %s of the %s is currently not supported: %w", version, api.Title(), core.ErrUnsupportedVersion)
}

// buildQueryMethod covers the 1.x style: POST /<version>/?method=<m> with the
// parameters as one JSON document, optionally URI-component encoded.
func buildQueryMethod(outputParam, encodeBody bool) requestBuilder {
	return func(version, method string, fields []field) (wireRequest, error) {
		doc, err := marshalFields(fields)
		if err != nil {
			return wireRequest{}, err
		}
		q := "method=" + url.QueryEscape(method)
		if outputParam {
			q = "output=json&" + q
		}
		req := wireRequest{method: http.MethodPost, path: "/" + version + "/?" + q, body: doc, contentType: contentJSON}
		if encodeBody {
			req.body = []byte(form.EncodeURIComponent(string(doc)))
			req.contentType = contentForm
		}
		return req, nil
	}
}

func buildPathJSON(prefix string) requestBuilder {
	return func(_, method string, fields []field) (wireRequest, error) {
		doc, err := marshalFields(fields)
		if err != nil {
			return wireRequest{}, err
		}
		return wireRequest{method: http.MethodPost, path: prefix + method, body: doc, contentType: contentJSON}, nil
	}
}

func buildExport(version, method string, fields []field) (wireRequest, error) {
	return wireRequest{
		method: http.MethodGet,
		path:   "/export/" + version + "/" + method + "/?" + encodeFields(fields),
	}, nil
}

func buildForm(version, method string, fields []field) (wireRequest, error) {
	return wireRequest{
		method:      http.MethodPost,
		path:        "/" + version + "/" + method,
		body:        []byte(encodeFields(fields)),
		contentType: contentForm,
	}, nil
}

func encodeFields(fields []field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if s := form.Serialize(f.value, f.name); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "&")
}

func marshalFields(fields []field) ([]byte, error) {
	doc := make(map[string]any, len(fields))
	for _, f := range fields {
		doc[f.name] = f.value
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode parameters: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// envelope is the error-relevant subset of a remote answer.
type envelope struct {
	Status  any `json:"status"`
	Error   any `json:"error"`
	Message any `json:"message"`
	Code    any `json:"code"`
	Name    any `json:"name"`
}

func readEnvelope(body []byte) (envelope, bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return envelope{}, false
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var env envelope
	if err := dec.Decode(&env); err != nil {
		return envelope{}, false
	}
	return env, true
}

func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	}
	return fmt.Sprint(v)
}

var errNotJSON = errors.New("body is not valid JSON")

// decodeMailChimp fails on a non-200 status, on status "error" and on a
// non-empty error member.
func decodeMailChimp(_ string, status int, body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, errNotJSON
	}
	env, isObject := readEnvelope(body)
	if status != http.StatusOK || (isObject && (env.Status == "error" || text(env.Error) != "")) {
		msg := text(env.Error)
		if msg == "" && status != http.StatusOK {
			msg = http.StatusText(status)
		}
		return nil, &core.APIError{Message: msg, Code: env.Code, Name: text(env.Name)}
	}
	return body, nil
}

func decodeMandrill(_ string, _ int, body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, errNotJSON
	}
	if env, ok := readEnvelope(body); ok && env.Status == "error" {
		return nil, &core.APIError{Message: text(env.Message), Code: env.Code, Name: text(env.Name)}
	}
	return body, nil
}

// decodePlain passes any JSON answer through; STS has no error envelope.
func decodePlain(_ string, _ int, body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, errNotJSON
	}
	return body, nil
}

// decodeNDJSON folds one JSON document per line into a JSON array. An error
// object on the first line fails the call. An empty body is an empty array.
func decodeNDJSON(_ string, _ int, body []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	n := 0
	for _, line := range bytes.Split(body, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			return nil, fmt.Errorf("line %d: %w", n+1, errNotJSON)
		}
		if n == 0 {
			if env, ok := readEnvelope(line); ok && text(env.Error) != "" {
				return nil, &core.APIError{Message: text(env.Error), Code: env.Code}
			}
		} else {
			buf.WriteByte(',')
		}
		buf.Write(line)
		n++
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
