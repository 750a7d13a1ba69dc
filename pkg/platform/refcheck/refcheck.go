// Package refcheck implements the cross-service reference validation used
// before persisting an entity that points at an entity owned by a sibling
// service: a single blocking GET against that service's resource-by-id
// endpoint, with the transport's default timeout and no retries.
package refcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrNotConfirmed means the referenced entity does not exist or its service
// is not accessible. Callers cannot tell the two cases apart.
var ErrNotConfirmed = errors.New("referenced entity does not exist or is not accessible")

// Checker confirms that an entity with the given id exists in the service
// owning it.
type Checker interface {
	Confirm(ctx context.Context, id int) error
}

// Policy controls how a failed check affects the caller's write.
type Policy int

const (
	// FailFast aborts the caller's operation on a failed check.
	FailFast Policy = iota
	// BestEffort logs the failure and lets the caller proceed.
	BestEffort
)

// Validate runs the check under the given policy. Under BestEffort a failure
// is logged and swallowed.
func Validate(ctx context.Context, checker Checker, id int, policy Policy) error {
	err := checker.Confirm(ctx, id)
	if err == nil {
		return nil
	}
	if policy == BestEffort {
		log.WithError(err).WithField("id", id).Warn("best-effort reference check failed")
		return nil
	}
	return err
}

// HTTPChecker resolves a sibling service by its logical name and issues
// GET http://<name>/api/<resource>/<id>.
type HTTPChecker struct {
	client   *http.Client
	baseURL  string
	resource string
}

// NewHTTPChecker builds a checker for one dependency, addressed by logical
// service name rather than a hardcoded host.
func NewHTTPChecker(serviceName, resource string) *HTTPChecker {
	return NewHTTPCheckerWithBase("http://"+serviceName, resource)
}

// NewHTTPCheckerWithBase builds a checker against an explicit base URL.
func NewHTTPCheckerWithBase(baseURL, resource string) *HTTPChecker {
	return &HTTPChecker{
		client:   http.DefaultClient,
		baseURL:  baseURL,
		resource: resource,
	}
}

func (c *HTTPChecker) Confirm(ctx context.Context, id int) error {
	url := fmt.Sprintf("%s/api/%s/%d", c.baseURL, c.resource, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "build %s existence request", c.resource)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(ErrNotConfirmed, "%s %d: %v", c.resource, id, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Wrapf(ErrNotConfirmed, "%s %d: status %d", c.resource, id, resp.StatusCode)
	}
	return nil
}
