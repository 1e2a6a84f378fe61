package email

// PreviewData holds sample template variables per template. It is only for
// previewing templates locally and for tests; production sends never read it.
//
//	PreviewData[TemplateWelcome]["UserFirstName"] == "Betty"
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserFirstName": "Betty",
	},
}
