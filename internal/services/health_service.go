package services

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/alimgiray/mistakelog/internal/models"
)

type HealthService struct{}

func NewHealthService() *HealthService {
	return &HealthService{}
}

// Report builds a health snapshot: current UTC time, the host's resolved
// address, and the echo inputs passed through unchanged. Address resolution
// is the only failure path.
func (s *HealthService) Report(echo, pathEcho *string) (*models.Health, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve hostname: %w", err)
	}

	addrs, err := net.LookupHost(hostname)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve host address: %w", err)
	}
	if len(addrs) == 0 {
		return nil, errors.New("no address resolved for host " + hostname)
	}

	return &models.Health{
		Status:        http.StatusOK,
		StatusMessage: "OK",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		IPAddress:     addrs[0],
		Echo:          echo,
		PathEcho:      pathEcho,
	}, nil
}
