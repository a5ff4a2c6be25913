package catalog

// stsV10 lists the MailChimp STS API 1.0 methods and their accepted parameters.
var stsV10 = []Endpoint{
	{Method: "DeleteVerifiedEmailAddress", Params: []string{"email"}},
	{Method: "ListVerifiedEmailAddresses"},
	{Method: "VerifyEmailAddress", Params: []string{"email"}},
	{Method: "GetSendStats", Params: []string{"tag_id", "since"}},
	{Method: "GetTags"},
	{Method: "GetUrlStats", Params: []string{"url_id", "since"}},
	{Method: "GetUrls"},
	{Method: "SendEmail", Params: []string{"message", "track_opens", "track_clicks", "tags"}},
	{Method: "GetSendQuota"},
	{Method: "GetSendStatistics"},
}
