package catalog

// partnerV13 lists the MailChimp Partner API 1.3 methods and their accepted parameters.
var partnerV13 = []Endpoint{
	{Method: "createList", Params: []string{"apikey", "detail"}},
	{Method: "checkUsername", Params: []string{"username"}},
	{Method: "createUser", Params: []string{"details", "username"}},
	{Method: "getNewUserDc"},
}
