package catalog

// mailchimpV13 lists the MailChimp API 1.3 methods and their accepted parameters.
var mailchimpV13 = []Endpoint{
	{Method: "campaignContent", Params: []string{"cid", "for_archive"}},
	{Method: "campaignCreate", Params: []string{"type", "options", "content", "segment_opts", "type_opts"}},
	{Method: "campaignDelete", Params: []string{"cid"}},
	{Method: "campaignEcommOrderAdd", Params: []string{"order"}},
	{Method: "campaignPause", Params: []string{"cid"}},
	{Method: "campaignReplicate", Params: []string{"cid"}},
	{Method: "campaignResume", Params: []string{"cid"}},
	{Method: "campaignSchedule", Params: []string{"cid", "schedule_time", "schedule_time_b"}},
	{Method: "campaignSegmentTest", Params: []string{"list_id", "options"}},
	{Method: "campaignSendNow", Params: []string{"cid"}},
	{Method: "campaignSendTest", Params: []string{"cid", "test_emails", "send_type"}},
	{Method: "campaignShareReport", Params: []string{"cid", "opts"}},
	{Method: "campaignTemplateContent", Params: []string{"cid"}},
	{Method: "campaignUnschedule", Params: []string{"cid"}},
	{Method: "campaignUpdate", Params: []string{"cid", "name", "value"}},
	{Method: "campaigns", Params: []string{"filters", "start", "limit"}},
	{Method: "campaignAbuseReports", Params: []string{"cid", "since", "start", "limit"}},
	{Method: "campaignAdvice", Params: []string{"cid"}},
	{Method: "campaignAnalytics", Params: []string{"cid"}},
	{Method: "campaignBounceMessage", Params: []string{"cid", "email"}},
	{Method: "campaignBounceMessages", Params: []string{"cid", "start", "limit", "since"}},
	{Method: "campaignClickStats", Params: []string{"cid"}},
	{Method: "campaignEcommOrders", Params: []string{"cid", "start", "limit", "since"}},
	{Method: "campaignEepUrlStats", Params: []string{"cid"}},
	{Method: "campaignEmailDomainPerformance", Params: []string{"cid"}},
	{Method: "campaignGeoOpens", Params: []string{"cid"}},
	{Method: "campaignGeoOpensForCountry", Params: []string{"cid", "code"}},
	{Method: "campaignHardBounces", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignMembers", Params: []string{"cid", "status", "start", "limit"}},
	{Method: "campaignSoftBounces", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignStats", Params: []string{"cid"}},
	{Method: "campaignUnsubscribes", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignClickDetailAIM", Params: []string{"cid", "url", "start", "limit"}},
	{Method: "campaignEmailStatsAIM", Params: []string{"cid", "email_address"}},
	{Method: "campaignEmailStatsAIMAll", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignNotOpenedAIM", Params: []string{"cid", "start", "limit"}},
	{Method: "campaignOpenedAIM", Params: []string{"cid", "start", "limit"}},
	{Method: "ecommOrderAdd", Params: []string{"order"}},
	{Method: "ecommOrderDel", Params: []string{"store_id", "order_id"}},
	{Method: "ecommOrders", Params: []string{"start", "limit", "since"}},
	{Method: "folderAdd", Params: []string{"name", "type"}},
	{Method: "folderDel", Params: []string{"fid", "type"}},
	{Method: "folderUpdate", Params: []string{"fid", "name", "type"}},
	{Method: "folders", Params: []string{"type"}},
	{Method: "campaignsForEmail", Params: []string{"email_address"}},
	{Method: "chimpChatter"},
	{Method: "generateText", Params: []string{"type", "content"}},
	{Method: "getAccountDetails"},
	{Method: "inlineCss", Params: []string{"html", "strip_css"}},
	{Method: "listsForEmail", Params: []string{"email_address"}},
	{Method: "ping"},
	{Method: "listAbuseReports", Params: []string{"id", "start", "limit", "since"}},
	{Method: "listActivity", Params: []string{"id"}},
	{Method: "listBatchSubscribe", Params: []string{"id", "batch", "double_optin", "update_existing", "replace_interests"}},
	{Method: "listBatchUnsubscribe", Params: []string{"id", "emails", "delete_member", "send_goodbye", "send_notify"}},
	{Method: "listClients", Params: []string{"id"}},
	{Method: "listGrowthHistory", Params: []string{"id"}},
	{Method: "listInterestGroupAdd", Params: []string{"id", "group_name", "grouping_id", "optional"}},
	{Method: "listInterestGroupDel", Params: []string{"id", "group_name", "grouping_id"}},
	{Method: "listInterestGroupUpdate", Params: []string{"id", "old_name", "new_name", "grouping_id", "optional"}},
	{Method: "listInterestGroupingAdd", Params: []string{"id", "name", "type", "groups"}},
	{Method: "listInterestGroupingDel", Params: []string{"grouping_id"}},
	{Method: "listInterestGroupingUpdate", Params: []string{"grouping_id", "name", "value"}},
	{Method: "listInterestGroupings", Params: []string{"id"}},
	{Method: "listLocations", Params: []string{"id"}},
	{Method: "listMemberActivity", Params: []string{"id", "email_address"}},
	{Method: "listMemberInfo", Params: []string{"id", "email_address"}},
	{Method: "listMembers", Params: []string{"id", "status", "since", "start", "limit"}},
	{Method: "listMergeVarAdd", Params: []string{"id", "tag", "name", "options"}},
	{Method: "listMergeVarDel", Params: []string{"id", "tag"}},
	{Method: "listMergeVarUpdate", Params: []string{"id", "tag", "options"}},
	{Method: "listMergeVars", Params: []string{"id"}},
	{Method: "listStaticSegmentAdd", Params: []string{"id", "name"}},
	{Method: "listStaticSegmentDel", Params: []string{"id", "seg_id"}},
	{Method: "listStaticSegmentMembersAdd", Params: []string{"id", "seg_id", "batch"}},
	{Method: "listStaticSegmentMembersDel", Params: []string{"id", "seg_id", "batch"}},
	{Method: "listStaticSegmentReset", Params: []string{"id", "seg_id"}},
	{Method: "listStaticSegments", Params: []string{"id"}},
	{Method: "listSubscribe", Params: []string{"id", "email_address", "merge_vars", "email_type", "double_optin", "update_existing", "replace_interests", "send_welcome"}},
	{Method: "listUnsubscribe", Params: []string{"id", "email_address", "delete_member", "send_goodbye", "send_notify"}},
	{Method: "listUpdateMember", Params: []string{"id", "email_address", "merge_vars", "email_type", "replace_interests"}},
	{Method: "listWebhookAdd", Params: []string{"id", "url", "actions", "sources"}},
	{Method: "listWebhookDel", Params: []string{"id", "url"}},
	{Method: "listWebhooks", Params: []string{"id"}},
	{Method: "lists", Params: []string{"filters", "start", "limit"}},
	{Method: "apikeyAdd", Params: []string{"username", "password"}},
	{Method: "apikeyExpire", Params: []string{"username", "password"}},
	{Method: "apikeys", Params: []string{"username", "password", "expired"}},
	{Method: "templateAdd", Params: []string{"name", "html"}},
	{Method: "templateDel", Params: []string{"id"}},
	{Method: "templateInfo", Params: []string{"tid", "type"}},
	{Method: "templateUndel", Params: []string{"id"}},
	{Method: "templateUpdate", Params: []string{"id", "values"}},
	{Method: "templates", Params: []string{"types", "inactives", "category"}},
}
