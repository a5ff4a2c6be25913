package catalog

// mailchimpV11 lists the MailChimp API 1.1 methods and their accepted parameters.
var mailchimpV11 = []Endpoint{
	{Method: "campaignContent", Params: []string{"cid", "for_archive"}},
	{Method: "campaignCreate", Params: []string{"type", "options", "content", "segment_opts", "type_opts"}},
	{Method: "campaignDelete", Params: []string{"cid"}},
	{Method: "campaignEcommAddOrder", Params: []string{"order"}},
	{Method: "campaignFolders"},
	{Method: "campaignPause", Params: []string{"cid"}},
	{Method: "campaignReplicate", Params: []string{"cid"}},
	{Method: "campaignResume", Params: []string{"cid"}},
	{Method: "campaignSchedule", Params: []string{"cid", "schedule_time", "schedule_time_b"}},
	{Method: "campaignSegmentTest", Params: []string{"list_id", "options"}},
	{Method: "campaignSendNow", Params: []string{"cid"}},
	{Method: "campaignSendTest", Params: []string{"cid", "test_emails", "send_type"}},
	{Method: "campaignTemplates"},
	{Method: "campaignUnschedule", Params: []string{"cid"}},
	{Method: "campaignUpdate", Params: []string{"cid", "name", "value"}},
	{Method: "campaigns", Params: []string{"filter_id", "filter_folder", "filter_fromname", "filter_fromemail", "filter_title", "filter_subject", "filter_sendtimestart", "filter_sendtimeend", "filter_exact", "start", "limit"}},
	{Method: "campaignAbuseReports", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignClickStats", Params: []string{"cid"}},
	{Method: "campaignHardBounces", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignSoftBounces", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignStats", Params: []string{"cid"}},
	{Method: "campaignUnsubscribes", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignClickDetailAIM", Params: []string{"cid", "url", "start", "limit"}},
	{Method: "campaignEmailStatsAIM", Params: []string{"cid", "email_address"}},
	{Method: "campaignEmailStatsAIMAll", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignNotOpenedAIM", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignOpenedAIM", Params: []string{"cid", "start", "limit"}},
	{Method: "createFolder", Params: []string{"name"}},
	{Method: "generateText", Params: []string{"type", "content"}},
	{Method: "getAffiliateInfo"},
	{Method: "inlineCss", Params: []string{"html", "strip_css"}},
	{Method: "ping"},
	{Method: "listBatchSubscribe", Params: []string{"id", "batch", "double_optin", "update_existing", "replace_interests"}},
	{Method: "listBatchUnsubscribe", Params: []string{"id", "emails", "delete_member", "send_goodbye", "send_notify"}},
	{Method: "listInterestGroupAdd", Params: []string{"id", "group_name", "grouping_id", "optional"}},
	{Method: "listInterestGroupDel", Params: []string{"id", "group_name", "grouping_id", "optional"}},
	{Method: "listInterestGroupings", Params: []string{"id"}},
	{Method: "listInterestGroups", Params: []string{"id"}},
	{Method: "listMemberInfo", Params: []string{"id", "email_address"}},
	{Method: "listMembers", Params: []string{"id", "status", "start", "limit"}},
	{Method: "listMergeVarAdd", Params: []string{"id", "tag", "name", "req"}},
	{Method: "listMergeVarDel", Params: []string{"id", "tag"}},
	{Method: "listMergeVars", Params: []string{"id"}},
	{Method: "listSubscribe", Params: []string{"id", "email_address", "merge_vars", "email_type", "double_optin"}},
	{Method: "listUnsubscribe", Params: []string{"id", "email_address", "delete_member", "send_goodbye", "send_notify"}},
	{Method: "listUpdateMember", Params: []string{"id", "email_address", "merge_vars", "email_type", "replace_interests"}},
	{Method: "lists"},
	{Method: "apikeyAdd", Params: []string{"username", "password"}},
	{Method: "apikeyExpire", Params: []string{"username", "password"}},
	{Method: "apikeys", Params: []string{"username", "password", "expired"}},
}
