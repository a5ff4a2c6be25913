package catalog

// exportV10 lists the MailChimp Export API 1.0 methods and their accepted parameters.
var exportV10 = []Endpoint{
	{Method: "list", Params: []string{"id", "status", "segment", "since"}},
	{Method: "campaignSubscriberActivity", Params: []string{"id", "include_empty"}},
}
