package api

import "context"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. The only unauthenticated
// call in the client; the credentials are never stored.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out loginResponse
	err := c.postAnon(ctx, "/api/v1/auth/login", loginRequest{
		Username: username,
		Password: password,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}
