package catalog

// mandrillV10 lists the Mandrill API 1.0 methods and their accepted parameters.
var mandrillV10 = []Endpoint{
	{Method: "users/info"},
	{Method: "users/ping"},
	{Method: "users/ping2"},
	{Method: "users/senders"},
	{Method: "messages/send", Params: []string{"message", "async"}},
	{Method: "messages/send-template", Params: []string{"template_name", "template_content", "message", "async"}},
	{Method: "messages/search", Params: []string{"query", "date_from", "date_to", "tags", "senders", "limit"}},
	{Method: "messages/parse", Params: []string{"raw_message"}},
	{Method: "messages/send-raw", Params: []string{"raw_message", "from_email", "from_name", "to", "async"}},
	{Method: "tags/list"},
	{Method: "tags/delete", Params: []string{"tag"}},
	{Method: "tags/info", Params: []string{"tag"}},
	{Method: "tags/time-series", Params: []string{"tag"}},
	{Method: "tags/all-time-series"},
	{Method: "rejects/add", Params: []string{"email"}},
	{Method: "rejects/list", Params: []string{"email", "include_expired"}},
	{Method: "rejects/delete", Params: []string{"email"}},
	{Method: "whitelists/add", Params: []string{"email"}},
	{Method: "whitelists/list", Params: []string{"email"}},
	{Method: "whitelists/delete", Params: []string{"email"}},
	{Method: "senders/list"},
	{Method: "senders/domains"},
	{Method: "senders/info", Params: []string{"address"}},
	{Method: "senders/time-series", Params: []string{"address"}},
	{Method: "urls/list"},
	{Method: "urls/search", Params: []string{"q"}},
	{Method: "urls/time-series", Params: []string{"url"}},
	{Method: "templates/add", Params: []string{"name", "from_email", "from_name", "subject", "code", "text", "publish"}},
	{Method: "templates/info", Params: []string{"name"}},
	{Method: "templates/update", Params: []string{"name", "from_email", "from_name", "subject", "code", "text", "publish"}},
	{Method: "templates/publish", Params: []string{"name"}},
	{Method: "templates/delete", Params: []string{"name"}},
	{Method: "templates/list"},
	{Method: "templates/time-series", Params: []string{"name"}},
	{Method: "templates/render", Params: []string{"template_name", "template_content", "merge_vars"}},
	{Method: "webhooks/list"},
	{Method: "webhooks/add", Params: []string{"url", "description", "events"}},
	{Method: "webhooks/info", Params: []string{"id"}},
	{Method: "webhooks/update", Params: []string{"id", "url", "description", "events"}},
	{Method: "webhooks/delete", Params: []string{"id"}},
	{Method: "inbound/domains", Params: []string{"domain"}},
	{Method: "inbound/routes", Params: []string{"domain"}},
	{Method: "inbound/send-raw", Params: []string{"raw_message", "to", "mail_from", "helo", "client_address"}},
	{Method: "exports/info", Params: []string{"id"}},
	{Method: "exports/list"},
	{Method: "exports/rejects", Params: []string{"notify_email"}},
	{Method: "exports/whitelist", Params: []string{"notify_email"}},
	{Method: "exports/activity", Params: []string{"notify_email", "date_from", "date_to", "tags", "senders", "states"}},
}
