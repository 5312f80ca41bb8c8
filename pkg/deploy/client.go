// Package deploy pushes validated workflows to a flow engine instance over
// its HTTP API.
package deploy

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/flowlint/flowlint/pkg/logger"
)

var deployLog = logger.New("deploy:client")

// Client talks to the flow engine deployment API.
type Client struct {
	httpc *resty.Client
	url   string
}

// New builds a Client for the engine at url. The token is sent as a bearer
// credential on every request.
func New(url string, token string) Client {
	httpc := resty.New()
	httpc.SetBaseURL(url)
	httpc.SetHeader("Authorization", fmt.Sprintf("Bearer %s", token))
	httpc.SetRetryCount(3)
	httpc.SetRetryWaitTime(500 * time.Millisecond)
	httpc.SetTimeout(30 * time.Second)

	return Client{
		httpc: httpc,
		url:   url,
	}
}

// DeployedWorkflow is the engine's record of an uploaded workflow.
type DeployedWorkflow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version int    `json:"version"`
}

// Ping verifies the engine is reachable and the token is accepted.
func (c Client) Ping() error {
	resp, err := c.httpc.R().Get("/api/v1/health")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%d on engine health check", resp.StatusCode())
	}
	return nil
}

// PushWorkflow uploads one workflow document to the named project. The engine
// versions workflows by name; pushing an existing name creates a new version.
func (c Client) PushWorkflow(project string, name string, content []byte) (*DeployedWorkflow, error) {
	deployLog.Printf("pushing workflow %s to project %s", name, project)

	var deployed DeployedWorkflow
	resp, err := c.httpc.R().
		SetHeader("Content-Type", "application/yaml").
		SetBody(content).
		SetResult(&deployed).
		Post(fmt.Sprintf("/api/v1/projects/%s/workflows/%s", project, name))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, fmt.Errorf("%d on pushing workflow '%s'", resp.StatusCode(), name)
	}
	return &deployed, nil
}
