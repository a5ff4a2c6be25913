package catalog

// mailchimpV20 lists the MailChimp API 2.0 methods and their accepted parameters.
var mailchimpV20 = []Endpoint{
	{Method: "campaigns/content", Params: []string{"cid", "options"}},
	{Method: "campaigns/create", Params: []string{"type", "options", "content", "segment_opts", "type_opts"}},
	{Method: "campaigns/delete", Params: []string{"cid"}},
	{Method: "campaigns/list", Params: []string{"filters", "start", "limit", "sort_field", "sort_dir"}},
	{Method: "campaigns/pause", Params: []string{"cid"}},
	{Method: "campaigns/replicate", Params: []string{"cid"}},
	{Method: "campaigns/resume", Params: []string{"cid"}},
	{Method: "campaigns/schedule-batch", Params: []string{"cid", "schedule_time", "num_batches", "stagger_mins"}},
	{Method: "campaigns/schedule", Params: []string{"cid", "schedule_time", "schedule_time_b"}},
	{Method: "campaigns/segment-test", Params: []string{"list_id", "options"}},
	{Method: "campaigns/send", Params: []string{"cid"}},
	{Method: "campaigns/send-test", Params: []string{"cid", "test_emails", "send_type"}},
	{Method: "campaigns/template-content", Params: []string{"cid"}},
	{Method: "campaigns/unschedule", Params: []string{"cid"}},
	{Method: "campaigns/update", Params: []string{"cid", "name", "value"}},
	{Method: "ecomm/order-add", Params: []string{"order"}},
	{Method: "ecomm/order-del", Params: []string{"store_id", "order_id"}},
	{Method: "ecomm/orders", Params: []string{"cid", "start", "limit", "since"}},
	{Method: "folders/add", Params: []string{"name", "type"}},
	{Method: "folders/del", Params: []string{"fid", "type"}},
	{Method: "folders/list", Params: []string{"type"}},
	{Method: "folders/update", Params: []string{"fid", "name", "type"}},
	{Method: "lists/abuse-reports", Params: []string{"id", "start", "limit", "since"}},
	{Method: "lists/activity", Params: []string{"id"}},
	{Method: "lists/batch-subscribe", Params: []string{"id", "batch", "double_optin", "update_existing", "replace_interests"}},
	{Method: "lists/batch-unsubscribe", Params: []string{"id", "batch", "delete_member", "send_goodbye", "send_notify"}},
	{Method: "lists/clients", Params: []string{"id"}},
	{Method: "lists/growth-history", Params: []string{"id"}},
	{Method: "lists/interest-group-add", Params: []string{"id", "group_name", "grouping_id"}},
	{Method: "lists/interest-group-del", Params: []string{"id", "group_name", "grouping_id"}},
	{Method: "lists/interest-group-update", Params: []string{"id", "old_name", "new_name", "grouping_id"}},
	{Method: "lists/interest-grouping-add", Params: []string{"id", "name", "type", "groups"}},
	{Method: "lists/interest-grouping-del", Params: []string{"grouping_id"}},
	{Method: "lists/interest-grouping-update", Params: []string{"grouping_id", "name", "value"}},
	{Method: "lists/interest-groupings", Params: []string{"id", "counts"}},
	{Method: "lists/list", Params: []string{"filters", "start", "limit", "sort_field", "sort_dir"}},
	{Method: "lists/locations", Params: []string{"id"}},
	{Method: "lists/member-activity", Params: []string{"id", "emails"}},
	{Method: "lists/member-info", Params: []string{"id", "emails"}},
	{Method: "lists/members", Params: []string{"id", "status", "opts"}},
	{Method: "lists/merge-var-add", Params: []string{"id", "tag", "name", "options"}},
	{Method: "lists/merge-var-del", Params: []string{"id", "tag"}},
	{Method: "lists/merge-var-reset", Params: []string{"id", "tag"}},
	{Method: "lists/merge-var-set", Params: []string{"id", "tag", "value"}},
	{Method: "lists/merge-var-update", Params: []string{"id", "tag", "options"}},
	{Method: "lists/merge-vars", Params: []string{"id"}},
	{Method: "lists/segment-add", Params: []string{"id", "opts"}},
	{Method: "lists/static-segment-add", Params: []string{"id", "name"}},
	{Method: "lists/static-segment-del", Params: []string{"id", "seg_id"}},
	{Method: "lists/static-segment-members-add", Params: []string{"id", "seg_id", "batch"}},
	{Method: "lists/static-segment-members-del", Params: []string{"id", "seg_id", "batch"}},
	{Method: "lists/static-segment-reset", Params: []string{"id", "seg_id"}},
	{Method: "lists/static-segments", Params: []string{"id"}},
	{Method: "lists/segments", Params: []string{"id", "type"}},
	{Method: "lists/subscribe", Params: []string{"id", "email", "merge_vars", "email_type", "double_optin", "update_existing", "replace_interests", "send_welcome"}},
	{Method: "lists/unsubscribe", Params: []string{"id", "email", "delete_member", "send_goodbye", "send_notify"}},
	{Method: "lists/update-member", Params: []string{"id", "email", "merge_vars", "email_type", "replace_interests"}},
	{Method: "lists/webhook-add", Params: []string{"id", "url", "actions", "sources"}},
	{Method: "lists/webhook-del", Params: []string{"id", "url"}},
	{Method: "lists/webhooks", Params: []string{"id"}},
	{Method: "helper/account-details", Params: []string{"id", "exclude"}},
	{Method: "helper/campaigns-for-email", Params: []string{"email", "options"}},
	{Method: "helper/chimp-chatter"},
	{Method: "helper/generate-text", Params: []string{"type", "content"}},
	{Method: "helper/inline-css", Params: []string{"html", "strip_css"}},
	{Method: "helper/lists-for-email", Params: []string{"email"}},
	{Method: "helper/ping"},
	{Method: "helper/search-campaigns", Params: []string{"query", "offset", "snip_start", "snip_end"}},
	{Method: "helper/search-members", Params: []string{"query", "id", "offset"}},
	{Method: "helper/verified-domains"},
	{Method: "reports/abuse", Params: []string{"cid", "opts"}},
	{Method: "reports/advice", Params: []string{"cid"}},
	{Method: "reports/bounce-message", Params: []string{"cid", "email"}},
	{Method: "reports/bounce-messages", Params: []string{"cid", "opts"}},
	{Method: "reports/click-detail", Params: []string{"cid", "tid", "opts"}},
	{Method: "reports/clicks", Params: []string{"cid"}},
	{Method: "reports/domain-performance", Params: []string{"cid"}},
	{Method: "reports/ecomm-orders", Params: []string{"cid", "opts"}},
	{Method: "reports/eepurl", Params: []string{"cid"}},
	{Method: "reports/geo-opens", Params: []string{"cid"}},
	{Method: "reports/google-analytics", Params: []string{"cid"}},
	{Method: "reports/member-activity", Params: []string{"cid", "emails"}},
	{Method: "reports/not-opened", Params: []string{"cid", "opts"}},
	{Method: "reports/opened", Params: []string{"cid", "opts"}},
	{Method: "reports/sent-to", Params: []string{"cid", "opts"}},
	{Method: "reports/share", Params: []string{"cid", "opts"}},
	{Method: "reports/summary", Params: []string{"cid"}},
	{Method: "reports/unsubscribes", Params: []string{"cid", "opts"}},
	{Method: "templates/add", Params: []string{"name", "html", "folder_id"}},
	{Method: "templates/del", Params: []string{"template_id"}},
	{Method: "templates/info", Params: []string{"template_id", "type"}},
	{Method: "templates/list", Params: []string{"types", "filters"}},
	{Method: "templates/undel", Params: []string{"template_id"}},
	{Method: "templates/update", Params: []string{"template_id", "values"}},
	{Method: "users/invite", Params: []string{"email", "role", "msg"}},
	{Method: "users/invite-resend", Params: []string{"email"}},
	{Method: "users/invite-revoke", Params: []string{"email"}},
	{Method: "users/invites"},
	{Method: "users/login-revoke", Params: []string{"username"}},
	{Method: "users/logins"},
	{Method: "vip/activity"},
	{Method: "vip/add", Params: []string{"id", "emails"}},
	{Method: "vip/del", Params: []string{"id", "emails"}},
	{Method: "vip/members"},
}
