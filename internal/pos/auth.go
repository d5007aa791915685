package pos

import "context"

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

type LoginResult struct {
	Token string       `json:"token"`
	Admin AdminProfile `json:"admin"`
}

// Login authenticates an admin and installs the returned token on the
// client, so subsequent admin calls are authorized.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var result LoginResult
	if err := c.postJSON(ctx, "/admin/login", creds, &result); err != nil {
		return nil, err
	}
	c.SetToken(result.Token)
	return &result, nil
}

type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

func (c *Client) Register(ctx context.Context, input RegisterInput) (*AdminProfile, error) {
	var profile AdminProfile
	if err := c.postJSON(ctx, "/admin/register", input, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) Profile(ctx context.Context) (*AdminProfile, error) {
	var profile AdminProfile
	if err := c.get(ctx, "/admin/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

type ProfileUpdate struct {
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*AdminProfile, error) {
	var profile AdminProfile
	if err := c.putJSON(ctx, "/admin/profile", update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
