package shared

import (
	"fmt"
	"net/http"
)

const (
	version           = "1.0.2"
	userAgentTemplate = "Forget-Bot/%s (+https://github.com/forget-svc/forget)"
)

type IUserAgent interface {
	AddUserAgent(req *http.Request)
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent() IUserAgent {
	return &userAgent{
		userAgentValue: fmt.Sprintf(userAgentTemplate, version),
	}
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Add("User-Agent", ua.userAgentValue)
}
