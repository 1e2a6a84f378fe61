package email

// SendWelcomeEmail greets a newly registered user.
func (c *Client) SendWelcomeEmail(to, firstName string) error {
	if firstName == "" {
		firstName = "there"
	}

	data := map[string]string{
		"UserFirstName": firstName,
	}

	return c.SendEmail(
		to,
		"Welcome to HBnB!",
		TemplateWelcome,
		data,
	)
}
