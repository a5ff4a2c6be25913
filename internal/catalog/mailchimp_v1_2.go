package catalog

// mailchimpV12 lists the MailChimp API 1.2 methods and their accepted parameters.
var mailchimpV12 = []Endpoint{
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
	{Method: "campaignShareReport", Params: []string{"cid", "opts"}},
	{Method: "campaignTemplates"},
	{Method: "campaignUnschedule", Params: []string{"cid"}},
	{Method: "campaignUpdate", Params: []string{"cid", "name", "value"}},
	{Method: "campaigns", Params: []string{"filters", "start", "limit"}},
	{Method: "campaignAbuseReports", Params: []string{"cid", "since", "start", "limit"}},
	{Method: "campaignAdvice", Params: []string{"cid"}},
	{Method: "campaignAnalytics", Params: []string{"cid"}},
	{Method: "campaignBounceMessages", Params: []string{"cid", "start", "limit", "since"}},
	{Method: "campaignClickStats", Params: []string{"cid"}},
	{Method: "campaignEcommOrders", Params: []string{"cid", "start", "limit", "since"}},
	{Method: "campaignEepUrlStats", Params: []string{"cid"}},
	{Method: "campaignEmailDomainPerformance", Params: []string{"cid"}},
	{Method: "campaignGeoOpens", Params: []string{"cid"}},
	{Method: "campaignGeoOpensForCountry", Params: []string{"cid", "code"}},
	{Method: "campaignHardBounces", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignSoftBounces", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignStats", Params: []string{"cid"}},
	{Method: "campaignUnsubscribes", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignClickDetailAIM", Params: []string{"cid", "url", "start", "limit"}},
	{Method: "campaignEmailStatsAIM", Params: []string{"cid", "email_address"}},
	{Method: "campaignEmailStatsAIMAll", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignNotOpenedAIM", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignOpenedAIM", Params: []string{"cid", "start", "limit"}},
	{Method: "chimpChatter"},
	{Method: "createFolder", Params: []string{"name"}},
	{Method: "ecommAddOrder", Params: []string{"order"}},
	{Method: "generateText", Params: []string{"type", "content"}},
	{Method: "getAccountDetails"},
	{Method: "getAffiliateInfo"},
	{Method: "inlineCss", Params: []string{"html", "strip_css"}},
	{Method: "listsForEmail", Params: []string{"email_address"}},
	{Method: "ping"},
	{Method: "listAbuseReports", Params: []string{"id", "start", "limit", "since"}},
	{Method: "listAddStaticSegment", Params: []string{"id", "name"}},
	{Method: "listBatchSubscribe", Params: []string{"id", "batch", "double_optin", "update_existing", "replace_interests"}},
	{Method: "listBatchUnsubscribe", Params: []string{"id", "emails", "delete_member", "send_goodbye", "send_notify"}},
	{Method: "listDelStaticSegment", Params: []string{"id", "seg_id"}},
	{Method: "listGrowthHistory", Params: []string{"id"}},
	{Method: "listInterestGroupAdd", Params: []string{"id", "group_name", "grouping_id"}},
	{Method: "listInterestGroupDel", Params: []string{"id", "group_name", "grouping_id", "optional"}},
	{Method: "listInterestGroupUpdate", Params: []string{"id", "old_name", "new_name", "grouping_id", "optional"}},
	{Method: "listInterestGroupingAdd", Params: []string{"id", "name", "type", "groups"}},
	{Method: "listInterestGroupingDel", Params: []string{"grouping_id"}},
	{Method: "listInterestGroupingUpdate", Params: []string{"grouping_id", "name", "value"}},
	{Method: "listInterestGroupings", Params: []string{"id"}},
	{Method: "listInterestGroups", Params: []string{"id"}},
	{Method: "listMemberInfo", Params: []string{"id", "email_address"}},
	{Method: "listMembers", Params: []string{"id", "status", "since", "start", "limit"}},
	{Method: "listMergeVarAdd", Params: []string{"id", "tag", "name", "req"}},
	{Method: "listMergeVarDel", Params: []string{"id", "tag"}},
	{Method: "listMergeVarUpdate", Params: []string{"id", "tag", "options"}},
	{Method: "listMergeVars", Params: []string{"id"}},
	{Method: "listResetStaticSegment", Params: []string{"id", "seg_id"}},
	{Method: "listStaticSegmentAddMembers", Params: []string{"id", "seg_id", "batch"}},
	{Method: "listStaticSegmentDelMembers", Params: []string{"id", "seg_id", "batch"}},
	{Method: "listStaticSegments", Params: []string{"id"}},
	{Method: "listSubscribe", Params: []string{"id", "email_address", "merge_vars", "email_type", "double_optin", "update_existing", "replace_interests", "send_welcome"}},
	{Method: "listUnsubscribe", Params: []string{"id", "email_address", "delete_member", "send_goodbye", "send_notify"}},
	{Method: "listUpdateMember", Params: []string{"id", "email_address", "merge_vars", "email_type", "replace_interests"}},
	{Method: "listWebhookAdd", Params: []string{"id", "url", "actions", "sources"}},
	{Method: "listWebhookDel", Params: []string{"id", "url"}},
	{Method: "listWebhooks", Params: []string{"id"}},
	{Method: "lists"},
	{Method: "apikeyAdd", Params: []string{"username", "password"}},
	{Method: "apikeyExpire", Params: []string{"username", "password"}},
	{Method: "apikeys", Params: []string{"username", "password", "expired"}},
}
